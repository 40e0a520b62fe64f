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
	DefaultRefundableErrorsTableName = "gwansang_refundable_errors"
	refundableErrorKey               = "error_id"
)

type refundPaymentItem struct {
	OrderID       string `dynamodbav:"order_id,omitempty"`
	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	Amount        int64  `dynamodbav:"amount"`
	PaymentStatus string `dynamodbav:"payment_status"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
}

type refundableErrorItem struct {
	ErrorID      string             `dynamodbav:"error_id"`
	SessionID    string             `dynamodbav:"session_id,omitempty"`
	ServiceType  string             `dynamodbav:"service_type"`
	ErrorType    string             `dynamodbav:"error_type"`
	ErrorMessage string             `dynamodbav:"error_message"`
	Payment      *refundPaymentItem `dynamodbav:"payment_info,omitempty"`
	UserIP       string             `dynamodbav:"user_ip,omitempty"`
	UserPhone    string             `dynamodbav:"user_phone,omitempty"`
	UserEmail    string             `dynamodbav:"user_email,omitempty"`
	UserAgent    string             `dynamodbav:"user_agent,omitempty"`
	RefundStatus string             `dynamodbav:"refund_status"`
	IsEligible   bool               `dynamodbav:"is_eligible"`
	Notes        string             `dynamodbav:"notes,omitempty"`
	UpdatedAt    string             `dynamodbav:"updated_at"`
	ProcessedAt  string             `dynamodbav:"processed_at,omitempty"`
	OccurredAt   string             `dynamodbav:"occurred_at"`
	Version      int64              `dynamodbav:"version"`
}

// RefundableErrorDynamoRepository persists refund-tracking records.
//
// Table requirements:
//   - PK: error_id (string)
type RefundableErrorDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRefundableErrorRepository = (*RefundableErrorDynamoRepository)(nil)

func NewRefundableErrorDynamoRepository(ddb DynamoAPI, tableName string) *RefundableErrorDynamoRepository {
	return &RefundableErrorDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, DefaultRefundableErrorsTableName),
	}
}

func (r *RefundableErrorDynamoRepository) Create(ctx context.Context, e entities.RefundableError) (entities.RefundableError, error) {
	av, err := attributevalue.MarshalMap(toRefundableErrorItem(e))
	if err != nil {
		return entities.RefundableError{}, errors.Wrap(err, "marshal refundable error")
	}
	if err := createOnce(ctx, r.ddb, r.tableName, refundableErrorKey, av); err != nil {
		return entities.RefundableError{}, err
	}
	return e, nil
}

func (r *RefundableErrorDynamoRepository) GetByID(ctx context.Context, id string) (entities.RefundableError, error) {
	item, err := getByKey(ctx, r.ddb, r.tableName, refundableErrorKey, id)
	if err != nil {
		return entities.RefundableError{}, err
	}
	if len(item) == 0 {
		return entities.RefundableError{}, nil
	}

	var it refundableErrorItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.RefundableError{}, errors.Wrap(err, "unmarshal refundable error")
	}
	return fromRefundableErrorItem(it)
}

func (r *RefundableErrorDynamoRepository) Update(ctx context.Context, e entities.RefundableError) (entities.RefundableError, error) {
	expected := e.Version
	e.Version++
	av, err := attributevalue.MarshalMap(toRefundableErrorItem(e))
	if err != nil {
		return entities.RefundableError{}, errors.Wrap(err, "marshal refundable error")
	}

	ok, err := versionedPut(ctx, r.ddb, r.tableName, refundableErrorKey, e.ID, av, expected)
	if err != nil || !ok {
		return entities.RefundableError{}, err
	}
	return e, nil
}

func (r *RefundableErrorDynamoRepository) List(ctx context.Context) ([]entities.RefundableError, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	out := make([]entities.RefundableError, 0, len(items))
	for _, item := range items {
		var it refundableErrorItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal refundable error")
		}
		e, err := fromRefundableErrorItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func toRefundableErrorItem(e entities.RefundableError) refundableErrorItem {
	it := refundableErrorItem{
		ErrorID:      e.ID,
		SessionID:    e.SessionID,
		ServiceType:  string(e.ServiceType),
		ErrorType:    string(e.ErrorType),
		ErrorMessage: e.ErrorMessage,
		UserIP:       e.UserInfo.IP,
		UserPhone:    e.UserInfo.Phone,
		UserEmail:    e.UserInfo.Email,
		UserAgent:    e.UserInfo.UserAgent,
		RefundStatus: string(e.RefundStatus.Status),
		IsEligible:   e.RefundStatus.IsEligible,
		Notes:        e.RefundStatus.Notes,
		UpdatedAt:    formatTime(e.RefundStatus.UpdatedAt),
		ProcessedAt:  formatTimePtr(e.RefundStatus.ProcessedAt),
		OccurredAt:   formatTime(e.OccurredAt),
		Version:      e.Version,
	}
	if p := e.PaymentInfo; p != nil {
		it.Payment = &refundPaymentItem{
			OrderID:       p.OrderID,
			PaymentID:     p.PaymentID,
			Amount:        p.Amount,
			PaymentStatus: string(p.PaymentStatus),
			PaymentMethod: p.PaymentMethod,
		}
	}
	return it
}

func fromRefundableErrorItem(it refundableErrorItem) (entities.RefundableError, error) {
	var d timeDecoder
	e := entities.RefundableError{
		ID:           it.ErrorID,
		SessionID:    it.SessionID,
		ServiceType:  entities.ServiceType(it.ServiceType),
		ErrorType:    entities.ErrorKind(it.ErrorType),
		ErrorMessage: it.ErrorMessage,
		UserInfo: entities.RefundUserInfo{
			IP:        it.UserIP,
			Phone:     it.UserPhone,
			Email:     it.UserEmail,
			UserAgent: it.UserAgent,
		},
		RefundStatus: entities.RefundState{
			Status:      entities.RefundStatus(it.RefundStatus),
			IsEligible:  it.IsEligible,
			Notes:       it.Notes,
			UpdatedAt:   d.at("updated_at", it.UpdatedAt),
			ProcessedAt: d.ptr("processed_at", it.ProcessedAt),
		},
		OccurredAt: d.at("occurred_at", it.OccurredAt),
		Version:    it.Version,
	}
	if p := it.Payment; p != nil {
		e.PaymentInfo = &entities.RefundPaymentInfo{
			OrderID:       p.OrderID,
			PaymentID:     p.PaymentID,
			Amount:        p.Amount,
			PaymentStatus: entities.PaymentStatus(p.PaymentStatus),
			PaymentMethod: p.PaymentMethod,
		}
	}
	if d.err != nil {
		return entities.RefundableError{}, errors.Wrapf(d.err, "refundable error %s", it.ErrorID)
	}
	return e, nil
}
