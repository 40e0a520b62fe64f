package repository

import (
	"context"
	"sort"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
)

const (
	DefaultOrdersTableName = "gwansang_orders"
	orderKey               = "order_id"
)

type orderItem struct {
	OrderID           string   `dynamodbav:"order_id"`
	UserEmail         string   `dynamodbav:"user_email,omitempty"`
	ServiceType       string   `dynamodbav:"service_type"`
	Amount            int64    `dynamodbav:"amount"`
	PaymentStatus     string   `dynamodbav:"payment_status"`
	ServiceStatus     string   `dynamodbav:"service_status"`
	PaymentID         string   `dynamodbav:"payment_id,omitempty"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
	CompletedAt       string   `dynamodbav:"completed_at,omitempty"`
	RefundReason      string   `dynamodbav:"refund_reason,omitempty"`
	RefundRequested   bool     `dynamodbav:"refund_requested"`
	RefundRequestedAt string   `dynamodbav:"refund_requested_at,omitempty"`
	RefundedAt        string   `dynamodbav:"refunded_at,omitempty"`
	ErrorLogs         []string `dynamodbav:"error_logs"`
	Version           int64    `dynamodbav:"version"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//
// Updates are whole-item puts guarded by the version attribute.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, DefaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "marshal order")
	}
	if err := createOnce(ctx, r.ddb, r.tableName, orderKey, av); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	item, err := getByKey(ctx, r.ddb, r.tableName, orderKey, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if len(item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Order{}, errors.Wrap(err, "unmarshal order")
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	expected := o.Version
	o.Version++
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "marshal order")
	}

	ok, err := versionedPut(ctx, r.ddb, r.tableName, orderKey, o.OrderID, av, expected)
	if err != nil || !ok {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Order, 0, len(items))
	for _, item := range items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal order")
		}
		o, err := fromOrderItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func toOrderItem(o entities.Order) orderItem {
	logs := o.ErrorLogs
	if logs == nil {
		logs = []string{}
	}
	return orderItem{
		OrderID:           o.OrderID,
		UserEmail:         o.UserEmail,
		ServiceType:       string(o.ServiceType),
		Amount:            o.Amount,
		PaymentStatus:     string(o.PaymentStatus),
		ServiceStatus:     string(o.ServiceStatus),
		PaymentID:         o.PaymentID,
		CreatedAt:         formatTime(o.CreatedAt),
		UpdatedAt:         formatTime(o.UpdatedAt),
		CompletedAt:       formatTimePtr(o.CompletedAt),
		RefundReason:      o.RefundReason,
		RefundRequested:   o.RefundRequested,
		RefundRequestedAt: formatTimePtr(o.RefundRequestedAt),
		RefundedAt:        formatTimePtr(o.RefundedAt),
		ErrorLogs:         logs,
		Version:           o.Version,
	}
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	logs := it.ErrorLogs
	if logs == nil {
		logs = []string{}
	}
	var d timeDecoder
	o := entities.Order{
		OrderID:           it.OrderID,
		UserEmail:         it.UserEmail,
		ServiceType:       entities.ServiceType(it.ServiceType),
		Amount:            it.Amount,
		PaymentStatus:     entities.PaymentStatus(it.PaymentStatus),
		ServiceStatus:     entities.ServiceStatus(it.ServiceStatus),
		PaymentID:         it.PaymentID,
		CreatedAt:         d.at("created_at", it.CreatedAt),
		UpdatedAt:         d.at("updated_at", it.UpdatedAt),
		CompletedAt:       d.ptr("completed_at", it.CompletedAt),
		RefundReason:      it.RefundReason,
		RefundRequested:   it.RefundRequested,
		RefundRequestedAt: d.ptr("refund_requested_at", it.RefundRequestedAt),
		RefundedAt:        d.ptr("refunded_at", it.RefundedAt),
		ErrorLogs:         logs,
		Version:           it.Version,
	}
	if d.err != nil {
		return entities.Order{}, errors.Wrapf(d.err, "order %s", it.OrderID)
	}
	return o, nil
}
