package repository

import "github.com/aws/aws-sdk-go-v2/service/dynamodb"

// TableDefinitions describes every table the repositories expect, named
// after the *_TABLE environment overrides. Used to provision local DynamoDB.
func TableDefinitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		rateTablesTableInput(RateTablesTableName()),
		ordersTableInput(OrdersTableName()),
		printJobsTableInput(PrintJobsTableName()),
		paymentsTableInput(PaymentsTableName()),
		serviceStatusTableInput(ServiceStatusTableName()),
	}
}
