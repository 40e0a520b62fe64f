package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const tableWaitTimeout = 2 * time.Minute

// TableNames carries the configured table for each repository.
// Empty fields fall back to the repository defaults.
type TableNames struct {
	Orders           string
	Sessions         string
	RefundableErrors string
	ServiceErrorLogs string
	PaymentClaims    string
}

func (n TableNames) withDefaults() TableNames {
	return TableNames{
		Orders:           orDefault(n.Orders, DefaultOrdersTableName),
		Sessions:         orDefault(n.Sessions, DefaultSessionsTableName),
		RefundableErrors: orDefault(n.RefundableErrors, DefaultRefundableErrorsTableName),
		ServiceErrorLogs: orDefault(n.ServiceErrorLogs, DefaultServiceErrorLogsTableName),
		PaymentClaims:    orDefault(n.PaymentClaims, DefaultPaymentClaimsTableName),
	}
}

// CreateTables provisions every table the service needs (on-demand billing)
// and enables native TTL on the sessions and payment claims tables. Existing
// tables are left as is.
func CreateTables(ctx context.Context, client *dynamodb.Client, names TableNames) error {
	names = names.withDefaults()
	specs := []struct {
		table string
		key   string
	}{
		{names.Orders, orderKey},
		{names.Sessions, sessionKey},
		{names.RefundableErrors, refundableErrorKey},
		{names.ServiceErrorLogs, serviceErrorLogKey},
		{names.PaymentClaims, paymentClaimKey},
	}

	for _, s := range specs {
		if err := createTable(ctx, client, s.table, s.key); err != nil {
			return err
		}
	}

	for _, table := range []string{names.Sessions, names.PaymentClaims} {
		_, err := client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
			TableName: aws.String(table),
			TimeToLiveSpecification: &types.TimeToLiveSpecification{
				AttributeName: aws.String(SessionTTLAttribute),
				Enabled:       aws.Bool(true),
			},
		})
		if err != nil && !isTTLAlreadyEnabled(err) {
			return errors.Wrapf(err, "enable ttl on %s", table)
		}
	}
	return nil
}

func createTable(ctx context.Context, client *dynamodb.Client, table, key string) error {
	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
	})
	var inUse *types.ResourceInUseException
	switch {
	case errors.As(err, &inUse):
		log.WithField("table", table).Info("[tables][repository] table already exists")
		return nil
	case err != nil:
		return errors.Wrapf(err, "create table %s", table)
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, tableWaitTimeout); err != nil {
		return errors.Wrapf(err, "wait for table %s", table)
	}
	log.WithField("table", table).Info("[tables][repository] table created")
	return nil
}

// DynamoDB rejects re-enabling TTL with a ValidationException.
func isTTLAlreadyEnabled(err error) bool {
	var apiErr interface{ ErrorMessage() string }
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.ErrorMessage() == "TimeToLive is already enabled"
}
