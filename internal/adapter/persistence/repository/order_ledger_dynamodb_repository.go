package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type logisticsStepItem struct {
	Time   string `dynamodbav:"time"`
	Status string `dynamodbav:"status"`
	Detail string `dynamodbav:"detail"`
	Done   bool   `dynamodbav:"done"`
}

type orderItem struct {
	ID        string              `dynamodbav:"id"`
	CreatedAt string              `dynamodbav:"created_at"`
	Amount    string              `dynamodbav:"amount"`
	Status    string              `dynamodbav:"status"`
	Items     string              `dynamodbav:"items"`
	Origin    string              `dynamodbav:"origin"`
	Logistics []logisticsStepItem `dynamodbav:"logistics"`
}

// OrderLedgerDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The ledger is small, so List scans the table and sorts in process.

type OrderLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderLedgerRepository = (*OrderLedgerDynamoRepository)(nil)

func NewOrderLedgerDynamoRepository(ddb *dynamodb.Client) *OrderLedgerDynamoRepository {
	return &OrderLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderLedgerDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
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

// Seed writes the historical orders if they are not already present.
// An order that exists is left untouched, so restarts do not clobber
// state written by a previous run.
func (r *OrderLedgerDynamoRepository) Seed(ctx context.Context, seed []entities.Order) error {
	for _, o := range seed {
		if _, err := r.Create(ctx, o); err != nil {
			var conditionFailed *types.ConditionalCheckFailedException
			if errors.As(err, &conditionFailed) {
				continue
			}
			return err
		}
	}
	return nil
}

func (r *OrderLedgerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderLedgerDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			o, err := fromOrderItem(it)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	steps := make([]logisticsStepItem, len(o.Logistics))
	for i, s := range o.Logistics {
		steps[i] = logisticsStepItem{Time: s.Time, Status: s.Status, Detail: s.Detail, Done: s.Done}
	}
	return orderItem{
		ID:        o.ID,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		Amount:    o.Amount.String(),
		Status:    o.Status,
		Items:     o.Items,
		Origin:    string(o.Origin),
		Logistics: steps,
	}
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Order{}, err
	}
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.Order{}, err
	}
	steps := make([]entities.LogisticsStep, len(it.Logistics))
	for i, s := range it.Logistics {
		steps[i] = entities.LogisticsStep{Time: s.Time, Status: s.Status, Detail: s.Detail, Done: s.Done}
	}
	return entities.Order{
		ID:        it.ID,
		CreatedAt: createdAt,
		Amount:    amount,
		Status:    it.Status,
		Items:     it.Items,
		Origin:    entities.OrderOrigin(it.Origin),
		Logistics: steps,
	}, nil
}
