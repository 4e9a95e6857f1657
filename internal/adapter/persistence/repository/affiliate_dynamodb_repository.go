package repository

import (
	"context"
	"strconv"
	"time"

	"coursedesk/internal/domain/entities"
	"coursedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAffiliatesTableName = "affiliates"
	affiliatesCodeIndex        = "code-index"
)

type affiliateItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	Code            string `dynamodbav:"code"`
	TotalEarnings   int64  `dynamodbav:"total_earnings"`
	TotalReferrals  int64  `dynamodbav:"total_referrals"`
	PendingEarnings int64  `dynamodbav:"pending_earnings"`
	PaidEarnings    int64  `dynamodbav:"paid_earnings"`
	IsActive        bool   `dynamodbav:"is_active"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// AffiliateDynamoRepository persists Affiliate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// Counter updates use an ADD expression: one request, no read-then-write
// window. There is no compare-and-swap on the resulting totals.

type AffiliateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAffiliateRepository = (*AffiliateDynamoRepository)(nil)

func NewAffiliateDynamoRepository(ddb *dynamodb.Client) *AffiliateDynamoRepository {
	return &AffiliateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AFFILIATES_TABLE", defaultAffiliatesTableName),
	}
}

func (r *AffiliateDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Affiliate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(affiliatesCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Affiliate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Affiliate{}, nil
	}

	var it affiliateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Affiliate{}, err
	}
	return fromAffiliateItem(it), nil
}

func (r *AffiliateDynamoRepository) IncrementReferral(ctx context.Context, id string, earnings int64) (entities.Affiliate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #total_earnings :earnings, #total_referrals :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":earnings": &types.AttributeValueMemberN{Value: strconv.FormatInt(earnings, 10)},
			":one":      &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#total_earnings":  "total_earnings",
			"#total_referrals": "total_referrals",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Affiliate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Affiliate{}, nil
	}

	var it affiliateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Affiliate{}, err
	}
	return fromAffiliateItem(it), nil
}

func fromAffiliateItem(it affiliateItem) entities.Affiliate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Affiliate{
		ID:              it.ID,
		UserID:          it.UserID,
		Code:            it.Code,
		TotalEarnings:   it.TotalEarnings,
		TotalReferrals:  it.TotalReferrals,
		PendingEarnings: it.PendingEarnings,
		PaidEarnings:    it.PaidEarnings,
		IsActive:        it.IsActive,
		CreatedAt:       createdAt,
	}
}
