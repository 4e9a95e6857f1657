package repository

import (
	"context"
	"errors"
	"time"

	"coursedesk/internal/domain/entities"
	"coursedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID            string `dynamodbav:"id"`
	Email         string `dynamodbav:"email"`
	Name          string `dynamodbav:"name"`
	HasAccess     bool   `dynamodbav:"has_access"`
	IsEarlyAccess bool   `dynamodbav:"is_early_access"`
	PurchaseDate  string `dynamodbav:"purchase_date,omitempty"`
}

// UserDynamoRepository reads and updates user records owned by the auth
// backend. This service never creates users.
//
// Table requirements:
//   - PK: id (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GrantAccess(ctx context.Context, id string, purchaseDate time.Time, earlyAccess bool) (entities.User, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #has_access = :has_access, #is_early_access = :is_early_access, #purchase_date = :purchase_date"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":has_access":      &types.AttributeValueMemberBOOL{Value: true},
			":is_early_access": &types.AttributeValueMemberBOOL{Value: earlyAccess},
			":purchase_date":   &types.AttributeValueMemberS{Value: purchaseDate.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#has_access":      "has_access",
			"#is_early_access": "is_early_access",
			"#purchase_date":   "purchase_date",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func fromUserItem(it userItem) entities.User {
	var purchaseDate time.Time
	if it.PurchaseDate != "" {
		purchaseDate, _ = time.Parse(time.RFC3339Nano, it.PurchaseDate)
	}
	return entities.User{
		ID:            it.ID,
		Email:         it.Email,
		Name:          it.Name,
		HasAccess:     it.HasAccess,
		IsEarlyAccess: it.IsEarlyAccess,
		PurchaseDate:  purchaseDate,
	}
}
