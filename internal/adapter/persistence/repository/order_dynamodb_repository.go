package repository

import (
	"context"
	"errors"
	"time"

	"bizdir_billing/internal/domain/entities"
	"bizdir_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultOrdersTableName  = "orders"
	ordersMerchOrderIDIndex = "merch_order_id-index"
)

type orderItem struct {
	ID            string `dynamodbav:"id"`
	MerchOrderID  string `dynamodbav:"merch_order_id"`
	Kind          string `dynamodbav:"kind"`
	Amount        string `dynamodbav:"amount"`
	Title         string `dynamodbav:"title"`
	ContractNo    string `dynamodbav:"contract_no,omitempty"`
	Status        string `dynamodbav:"status"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	PaymentDate   string `dynamodbav:"payment_date,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	LastCheckedAt string `dynamodbav:"last_checked_at,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: merch_order_id-index (PK: merch_order_id)
//
// The status transition uses a conditional update on the stored status, which
// is what serializes racing notification deliveries for the same order.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByMerchOrderID(ctx context.Context, merchOrderID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersMerchOrderIDIndex),
		KeyConditionExpression: aws.String("merch_order_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: merchOrderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// CompareAndSetStatus transitions the order only while the stored status still
// equals expected. A ConditionalCheckFailedException means a concurrent or
// duplicate writer already committed; that is reported as (false, nil), never
// as an error, so callers skip side effects instead of retrying.
func (r *OrderDynamoRepository) CompareAndSetStatus(ctx context.Context, id string, expected, next entities.OrderStatus, transactionID string, paymentDate time.Time) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :next, #last_checked_at = :now"
	values := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(next)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":now":      &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":              "id",
		"#status":          "status",
		"#last_checked_at": "last_checked_at",
	}
	if transactionID != "" {
		updateExpr += ", #transaction_id = :tid"
		values[":tid"] = &types.AttributeValueMemberS{Value: transactionID}
		names["#transaction_id"] = "transaction_id"
	}
	if !paymentDate.IsZero() {
		updateExpr += ", #payment_date = :pdate"
		values[":pdate"] = &types.AttributeValueMemberS{Value: paymentDate.UTC().Format(time.RFC3339Nano)}
		names["#payment_date"] = "payment_date"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
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

func (r *OrderDynamoRepository) UpdateLastChecked(ctx context.Context, id string, checkedAt time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #last_checked_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: checkedAt.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#last_checked_at": "last_checked_at",
		},
	})
	return err
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:            o.ID,
		MerchOrderID:  o.MerchOrderID,
		Kind:          string(o.Kind),
		Amount:        o.Amount.String(),
		Title:         o.Title,
		ContractNo:    o.ContractNo,
		Status:        string(o.Status),
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !o.PaymentDate.IsZero() {
		it.PaymentDate = o.PaymentDate.UTC().Format(time.RFC3339Nano)
	}
	if !o.LastCheckedAt.IsZero() {
		it.LastCheckedAt = o.LastCheckedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	paymentDate, _ := time.Parse(time.RFC3339Nano, it.PaymentDate)
	lastCheckedAt, _ := time.Parse(time.RFC3339Nano, it.LastCheckedAt)
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.Order{
		ID:            it.ID,
		MerchOrderID:  it.MerchOrderID,
		Kind:          entities.OrderKind(it.Kind),
		Amount:        amount,
		Title:         it.Title,
		ContractNo:    it.ContractNo,
		Status:        entities.OrderStatus(it.Status),
		TransactionID: it.TransactionID,
		PaymentDate:   paymentDate,
		CreatedAt:     createdAt,
		LastCheckedAt: lastCheckedAt,
	}
}
