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
	defaultRateTablesTableName = "rate_tables"
	rateTablePartition         = "RATE_TABLE"
)

type rateTableItem struct {
	PK                   string             `dynamodbav:"pk"`
	Version              int                `dynamodbav:"version"`
	ID                   string             `dynamodbav:"id"`
	BlackWhite           float64            `dynamodbav:"black_white"`
	Color                float64            `dynamodbav:"color"`
	DoubleSided          float64            `dynamodbav:"double_sided"`
	PaperSizeMultipliers map[string]float64 `dynamodbav:"paper_size_multipliers"`
	TaxPercentage        float64            `dynamodbav:"tax_percentage"`
	LastModified         string             `dynamodbav:"last_modified"`
	ModifiedBy           string             `dynamodbav:"modified_by"`
}

// RateTableDynamoRepository persists RateTable versions in DynamoDB.
//
// Table requirements:
//   - PK: pk (string, always RATE_TABLE)
//   - SK: version (number)
//
// All versions share one partition so the current table is a single
// descending query with Limit 1.
type RateTableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateTableRepository = (*RateTableDynamoRepository)(nil)

func NewRateTableDynamoRepository(ddb *dynamodb.Client) *RateTableDynamoRepository {
	return &RateTableDynamoRepository{
		ddb:       ddb,
		tableName: RateTablesTableName(),
	}
}

func RateTablesTableName() string {
	return getenvDefault("RATE_TABLES_TABLE", defaultRateTablesTableName)
}

func (r *RateTableDynamoRepository) GetCurrent(ctx context.Context) (entities.RateTable, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: rateTablePartition},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return entities.RateTable{}, err
	}
	if len(out.Items) == 0 {
		return entities.RateTable{}, nil
	}

	var it rateTableItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.RateTable{}, err
	}
	return fromRateTableItem(it), nil
}

func (r *RateTableDynamoRepository) Create(ctx context.Context, rt entities.RateTable) (entities.RateTable, error) {
	av, err := attributevalue.MarshalMap(toRateTableItem(rt))
	if err != nil {
		return entities.RateTable{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#version)"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.RateTable{}, interfaces.ErrRateTableVersionConflict
		}
		return entities.RateTable{}, err
	}
	return rt, nil
}

// ListHistory returns every version, newest first.
func (r *RateTableDynamoRepository) ListHistory(ctx context.Context) ([]entities.RateTable, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: rateTablePartition},
		},
		ScanIndexForward: aws.Bool(false),
	})

	var history []entities.RateTable
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []rateTableItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			history = append(history, fromRateTableItem(it))
		}
	}
	return history, nil
}

func rateTablesTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("pk"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("version"), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("pk"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("version"), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

func toRateTableItem(rt entities.RateTable) rateTableItem {
	return rateTableItem{
		PK:                   rateTablePartition,
		Version:              rt.Version,
		ID:                   rt.ID,
		BlackWhite:           rt.BlackWhite,
		Color:                rt.Color,
		DoubleSided:          rt.DoubleSided,
		PaperSizeMultipliers: rt.PaperSizeMultipliers,
		TaxPercentage:        rt.TaxPercentage,
		LastModified:         rt.LastModified.UTC().Format(time.RFC3339Nano),
		ModifiedBy:           rt.ModifiedBy,
	}
}

func fromRateTableItem(it rateTableItem) entities.RateTable {
	return entities.RateTable{
		ID:                   it.ID,
		Version:              it.Version,
		BlackWhite:           it.BlackWhite,
		Color:                it.Color,
		DoubleSided:          it.DoubleSided,
		PaperSizeMultipliers: it.PaperSizeMultipliers,
		TaxPercentage:        it.TaxPercentage,
		LastModified:         parseTime(it.LastModified),
		ModifiedBy:           it.ModifiedBy,
	}
}
