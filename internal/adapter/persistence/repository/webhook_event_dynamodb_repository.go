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

const defaultWebhookEventsTableName = "webhook_events"

type webhookEventItem struct {
	EventID    string `dynamodbav:"event_id"`
	Provider   string `dynamodbav:"provider"`
	Type       string `dynamodbav:"type"`
	ReceivedAt string `dynamodbav:"received_at"`
}

// WebhookEventDynamoRepository is the processed-event ledger.
//
// Table requirements:
//   - PK: event_id (string)
//
// The conditional put doubles as the idempotency check: a second delivery
// of the same event id fails the condition and is reported as not fresh.

type WebhookEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb *dynamodb.Client) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName),
	}
}

func (r *WebhookEventDynamoRepository) Record(ctx context.Context, ev entities.WebhookEvent) (bool, error) {
	it := webhookEventItem{
		EventID:    ev.EventID,
		Provider:   ev.Provider,
		Type:       ev.Type,
		ReceivedAt: ev.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#event_id)"),
		ExpressionAttributeNames: map[string]string{
			"#event_id": "event_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
