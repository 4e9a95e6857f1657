package repository

import (
	"context"
	"time"

	"coursedesk/internal/domain/entities"
	"coursedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultReferralsTableName = "referrals"

type referralItem struct {
	ID          string `dynamodbav:"id"`
	AffiliateID string `dynamodbav:"affiliate_id"`
	PaymentID   string `dynamodbav:"payment_id"`
	BuyerUserID string `dynamodbav:"buyer_user_id"`
	Earnings    int64  `dynamodbav:"earnings"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ReferralDynamoRepository appends referral ledger entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: affiliate_id-index (PK: affiliate_id)

type ReferralDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReferralRepository = (*ReferralDynamoRepository)(nil)

func NewReferralDynamoRepository(ddb *dynamodb.Client) *ReferralDynamoRepository {
	return &ReferralDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REFERRALS_TABLE", defaultReferralsTableName),
	}
}

func (r *ReferralDynamoRepository) Create(ctx context.Context, ref entities.Referral) (entities.Referral, error) {
	it := referralItem{
		ID:          ref.ID,
		AffiliateID: ref.AffiliateID,
		PaymentID:   ref.PaymentID,
		BuyerUserID: ref.BuyerUserID,
		Earnings:    ref.Earnings,
		Status:      string(ref.Status),
		CreatedAt:   ref.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Referral{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Referral{}, err
	}
	return ref, nil
}
