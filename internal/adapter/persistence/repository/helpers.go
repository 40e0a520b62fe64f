package repository

import (
	"context"
	"strconv"
	"time"

	"gwansang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// DynamoAPI is the subset of the DynamoDB client the repositories call.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// timeDecoder parses stored timestamps and keeps the first failure, so a
// corrupt attribute fails the read instead of decoding as a zero time.
type timeDecoder struct {
	err error
}

func (d *timeDecoder) at(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil && d.err == nil {
		d.err = errors.Wrapf(err, "parse %s %q", field, s)
	}
	return t
}

func (d *timeDecoder) ptr(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t := d.at(field, s)
	return &t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// versionedPut writes item only if the stored version still equals expected.
// It reports (false, nil) when the key does not exist.
func versionedPut(ctx context.Context, ddb DynamoAPI, table, keyName, keyValue string, item map[string]types.AttributeValue, expected int64) (bool, error) {
	cond, names, values := versionCondition(keyName, expected)
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      item,
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err == nil {
		return true, nil
	}
	if !isConditionFailed(err) {
		return false, errors.Wrapf(err, "put %s", table)
	}
	return false, missingOrStale(ctx, ddb, table, keyName, keyValue)
}

// versionCondition is the update guard shared by versionedPut and transactional writes.
func versionCondition(keyName string, expected int64) (string, map[string]string, map[string]types.AttributeValue) {
	return "attribute_exists(#id) AND #version = :expected",
		map[string]string{"#id": keyName, "#version": "version"},
		map[string]types.AttributeValue{":expected": &types.AttributeValueMemberN{Value: formatInt(expected)}}
}

// missingOrStale tells a missing record (nil) apart from a stale version
// after a failed version condition.
func missingOrStale(ctx context.Context, ddb DynamoAPI, table, keyName, keyValue string) error {
	item, err := getByKey(ctx, ddb, table, keyName, keyValue)
	if err != nil {
		return err
	}
	if len(item) == 0 {
		return nil
	}
	return interfaces.ErrVersionConflict
}

func createOnce(ctx context.Context, ddb DynamoAPI, table, keyName string, item map[string]types.AttributeValue) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": keyName,
		},
	})
	if isConditionFailed(err) {
		return interfaces.ErrAlreadyExists
	}
	return errors.Wrapf(err, "create %s", table)
}

func getByKey(ctx context.Context, ddb DynamoAPI, table, keyName, keyValue string) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(keyName, keyValue),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", table)
	}
	return out.Item, nil
}

// scanAll pages through a full table scan.
func scanAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", aws.ToString(in.TableName))
		}
		items = append(items, page.Items...)
	}
	return items, nil
}
