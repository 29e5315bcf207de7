package repository

import (
	"context"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersOrderIDIndex     = "order_id-index"
	ordersUserIDIndex      = "user_id-index"
	ordersStatusIndex      = "status-index"
)

type orderLineItem struct {
	FileURL        string  `dynamodbav:"file_url"`
	FileName       string  `dynamodbav:"file_name"`
	Pages          string  `dynamodbav:"pages"`
	PageCount      int     `dynamodbav:"page_count"`
	Copies         int     `dynamodbav:"copies"`
	Color          string  `dynamodbav:"color"`
	Sides          string  `dynamodbav:"sides"`
	Size           string  `dynamodbav:"size"`
	Schedule       string  `dynamodbav:"schedule"`
	PickupTime     string  `dynamodbav:"pickup_time,omitempty"`
	EstimatedPrice float64 `dynamodbav:"estimated_price"`
}

type orderItem struct {
	ID               string          `dynamodbav:"id"`
	OrderID          string          `dynamodbav:"order_id"`
	UserID           string          `dynamodbav:"user_id"`
	UserEmail        string          `dynamodbav:"user_email,omitempty"`
	Items            []orderLineItem `dynamodbav:"items"`
	TotalAmount      float64         `dynamodbav:"total_amount"`
	Status           string          `dynamodbav:"status"`
	PaymentReference string          `dynamodbav:"payment_reference,omitempty"`
	CreatedAt        string          `dynamodbav:"created_at"`
	UpdatedAt        string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//   - GSI: status-index (PK: status, SK: created_at)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: OrdersTableName(),
	}
}

func OrdersTableName() string {
	return getenvDefault("ORDERS_TABLE", defaultOrdersTableName)
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
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

func (r *OrderDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
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

func (r *OrderDynamoRepository) UpdateStatusByOrderID(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	return r.updateByOrderID(ctx, orderID, "#status", "status", &types.AttributeValueMemberS{Value: string(status)})
}

func (r *OrderDynamoRepository) SetPaymentReference(ctx context.Context, orderID string, paymentRef string) (entities.Order, error) {
	return r.updateByOrderID(ctx, orderID, "#payment_reference", "payment_reference", &types.AttributeValueMemberS{Value: paymentRef})
}

// ListByUserID returns the user's orders, newest first.
func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersUserIDIndex, "#k = :v", "user_id", userID)
}

// ListByStatus returns orders in the given status, newest first.
func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersStatusIndex, "#k = :v", "status", string(status))
}

func (r *OrderDynamoRepository) queryIndex(ctx context.Context, index, keyCond, attr, value string) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String(keyCond),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

// updateByOrderID resolves the internal id through the order_id index and
// sets one attribute. A missing order yields a zero Order.
func (r *OrderDynamoRepository) updateByOrderID(ctx context.Context, orderID, nameRef, attr string, value types.AttributeValue) (entities.Order, error) {
	order, err := r.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: order.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET " + nameRef + " = :value, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value":      value,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{nameRef: attr, "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func ordersTableInput(name string) *dynamodb.CreateTableInput {
	gsi := func(index, hash, rangeKey string) types.GlobalSecondaryIndex {
		keys := []types.KeySchemaElement{{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash}}
		if rangeKey != "" {
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(rangeKey), KeyType: types.KeyTypeRange})
		}
		return types.GlobalSecondaryIndex{
			IndexName:  aws.String(index),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}
	}
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("order_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("user_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("status"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			gsi(ordersOrderIDIndex, "order_id", ""),
			gsi(ordersUserIDIndex, "user_id", "created_at"),
			gsi(ordersStatusIndex, "status", "created_at"),
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, i := range o.Items {
		lines = append(lines, orderLineItem{
			FileURL:        i.FileURL,
			FileName:       i.FileName,
			Pages:          i.Pages,
			PageCount:      i.PageCount,
			Copies:         i.Copies,
			Color:          i.Color,
			Sides:          i.Sides,
			Size:           i.Size,
			Schedule:       i.Schedule,
			PickupTime:     i.PickupTime,
			EstimatedPrice: i.EstimatedPrice,
		})
	}
	return orderItem{
		ID:               o.ID,
		OrderID:          o.OrderID,
		UserID:           o.UserID,
		UserEmail:        o.UserEmail,
		Items:            lines,
		TotalAmount:      o.TotalAmount,
		Status:           string(o.Status),
		PaymentReference: o.PaymentReference,
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, l := range it.Items {
		items = append(items, entities.OrderItem{
			PrintJobSpec: entities.PrintJobSpec{
				FileURL:    l.FileURL,
				FileName:   l.FileName,
				Pages:      l.Pages,
				PageCount:  l.PageCount,
				Copies:     l.Copies,
				Color:      l.Color,
				Sides:      l.Sides,
				Size:       l.Size,
				Schedule:   l.Schedule,
				PickupTime: l.PickupTime,
			},
			EstimatedPrice: l.EstimatedPrice,
		})
	}
	return entities.Order{
		ID:               it.ID,
		OrderID:          it.OrderID,
		UserID:           it.UserID,
		UserEmail:        it.UserEmail,
		Items:            items,
		TotalAmount:      it.TotalAmount,
		Status:           entities.OrderStatus(it.Status),
		PaymentReference: it.PaymentReference,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
