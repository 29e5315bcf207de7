package repository

import (
	"context"
	"strings"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPrintJobsTableName = "print_jobs"
	printJobsFileURLIndex     = "file_url-index"
)

type printJobItem struct {
	PrintJobID     string  `dynamodbav:"print_job_id"`
	FileURL        string  `dynamodbav:"file_url,omitempty"`
	FileName       string  `dynamodbav:"file_name"`
	FileNameLC     string  `dynamodbav:"file_name_lc"`
	Copies         int     `dynamodbav:"copies"`
	Size           string  `dynamodbav:"size"`
	Color          string  `dynamodbav:"color"`
	Sides          string  `dynamodbav:"sides"`
	Pages          string  `dynamodbav:"pages"`
	Schedule       string  `dynamodbav:"schedule"`
	EstimatedPrice float64 `dynamodbav:"estimated_price"`
	OrderID        string  `dynamodbav:"order_id,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// PrintJobDynamoRepository persists PrintJob entities in DynamoDB.
//
// Table requirements:
//   - PK: print_job_id (string)
//   - GSI: file_url-index (PK: file_url)
//
// file_url is omitted when empty so that the sparse index only holds jobs
// with a file URL.
type PrintJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrintJobRepository = (*PrintJobDynamoRepository)(nil)

func NewPrintJobDynamoRepository(ddb *dynamodb.Client) *PrintJobDynamoRepository {
	return &PrintJobDynamoRepository{
		ddb:       ddb,
		tableName: PrintJobsTableName(),
	}
}

func PrintJobsTableName() string {
	return getenvDefault("PRINT_JOBS_TABLE", defaultPrintJobsTableName)
}

func (r *PrintJobDynamoRepository) FindByFileURL(ctx context.Context, fileURL string) ([]entities.PrintJob, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(printJobsFileURLIndex),
		KeyConditionExpression: aws.String("file_url = :url"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":url": &types.AttributeValueMemberS{Value: fileURL},
		},
	})

	var jobs []entities.PrintJob
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalPrintJobs(page.Items)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, batch...)
	}
	return jobs, nil
}

// FindByFileNameContains scans for jobs whose lower-cased file name contains
// the lower-cased query.
func (r *PrintJobDynamoRepository) FindByFileNameContains(ctx context.Context, fileName string) ([]entities.PrintJob, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("contains(#fn, :q)"),
		ExpressionAttributeNames: map[string]string{
			"#fn": "file_name_lc",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: strings.ToLower(fileName)},
		},
	})

	var jobs []entities.PrintJob
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalPrintJobs(page.Items)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, batch...)
	}
	return jobs, nil
}

func (r *PrintJobDynamoRepository) Create(ctx context.Context, p entities.PrintJob) (entities.PrintJob, error) {
	av, err := attributevalue.MarshalMap(toPrintJobItem(p))
	if err != nil {
		return entities.PrintJob{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "print_job_id",
		},
	})
	if err != nil {
		return entities.PrintJob{}, err
	}
	return p, nil
}

// RelinkToOrder points an existing job at orderID. A job deleted in the
// meantime yields a zero PrintJob.
func (r *PrintJobDynamoRepository) RelinkToOrder(ctx context.Context, printJobID string, orderID string) (entities.PrintJob, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"print_job_id": &types.AttributeValueMemberS{Value: printJobID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #order_id = :order_id, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id":   &types.AttributeValueMemberS{Value: orderID},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "print_job_id",
			"#order_id":   "order_id",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PrintJob{}, nil
		}
		return entities.PrintJob{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PrintJob{}, nil
	}
	var it printJobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PrintJob{}, err
	}
	return fromPrintJobItem(it), nil
}

func unmarshalPrintJobs(raw []map[string]types.AttributeValue) ([]entities.PrintJob, error) {
	var items []printJobItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	jobs := make([]entities.PrintJob, 0, len(items))
	for _, it := range items {
		jobs = append(jobs, fromPrintJobItem(it))
	}
	return jobs, nil
}

func printJobsTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("print_job_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("file_url"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("print_job_id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
			IndexName:  aws.String(printJobsFileURLIndex),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("file_url"), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}},
		BillingMode: types.BillingModePayPerRequest,
	}
}

func toPrintJobItem(p entities.PrintJob) printJobItem {
	return printJobItem{
		PrintJobID:     p.PrintJobID,
		FileURL:        p.FileURL,
		FileName:       p.FileName,
		FileNameLC:     strings.ToLower(p.FileName),
		Copies:         p.Copies,
		Size:           p.Size,
		Color:          p.Color,
		Sides:          p.Sides,
		Pages:          p.Pages,
		Schedule:       p.Schedule,
		EstimatedPrice: p.EstimatedPrice,
		OrderID:        p.OrderID,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromPrintJobItem(it printJobItem) entities.PrintJob {
	return entities.PrintJob{
		PrintJobID:     it.PrintJobID,
		FileURL:        it.FileURL,
		FileName:       it.FileName,
		Copies:         it.Copies,
		Size:           it.Size,
		Color:          it.Color,
		Sides:          it.Sides,
		Pages:          it.Pages,
		Schedule:       it.Schedule,
		EstimatedPrice: it.EstimatedPrice,
		OrderID:        it.OrderID,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
