package repository

import (
	"context"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceStatusTableName = "service_status"

type serviceStatusItem struct {
	Service   string `dynamodbav:"service"`
	Available bool   `dynamodbav:"available"`
	Message   string `dynamodbav:"message,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
}

// ServiceStatusDynamoRepository persists ServiceStatus entities in DynamoDB.
//
// Table requirements:
//   - PK: service (string)
type ServiceStatusDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceStatusRepository = (*ServiceStatusDynamoRepository)(nil)

func NewServiceStatusDynamoRepository(ddb *dynamodb.Client) *ServiceStatusDynamoRepository {
	return &ServiceStatusDynamoRepository{
		ddb:       ddb,
		tableName: ServiceStatusTableName(),
	}
}

func ServiceStatusTableName() string {
	return getenvDefault("SERVICE_STATUS_TABLE", defaultServiceStatusTableName)
}

func (r *ServiceStatusDynamoRepository) Get(ctx context.Context, service string) (entities.ServiceStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"service": &types.AttributeValueMemberS{Value: service},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceStatus{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceStatus{}, nil
	}

	var it serviceStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceStatus{}, err
	}
	return fromServiceStatusItem(it), nil
}

func (r *ServiceStatusDynamoRepository) List(ctx context.Context) ([]entities.ServiceStatus, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	statuses := make([]entities.ServiceStatus, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceStatusItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			statuses = append(statuses, fromServiceStatusItem(it))
		}
	}
	return statuses, nil
}

// Put overwrites the record for s.Service.
func (r *ServiceStatusDynamoRepository) Put(ctx context.Context, s entities.ServiceStatus) (entities.ServiceStatus, error) {
	av, err := attributevalue.MarshalMap(toServiceStatusItem(s))
	if err != nil {
		return entities.ServiceStatus{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.ServiceStatus{}, err
	}
	return s, nil
}

func serviceStatusTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("service"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("service"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

func toServiceStatusItem(s entities.ServiceStatus) serviceStatusItem {
	return serviceStatusItem{
		Service:   s.Service,
		Available: s.Available,
		Message:   s.Message,
		UpdatedAt: formatTime(s.UpdatedAt),
		UpdatedBy: s.UpdatedBy,
	}
}

func fromServiceStatusItem(it serviceStatusItem) entities.ServiceStatus {
	return entities.ServiceStatus{
		Service:   it.Service,
		Available: it.Available,
		Message:   it.Message,
		UpdatedAt: parseTime(it.UpdatedAt),
		UpdatedBy: it.UpdatedBy,
	}
}
