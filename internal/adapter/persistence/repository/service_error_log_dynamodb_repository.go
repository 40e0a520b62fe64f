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
	DefaultServiceErrorLogsTableName = "gwansang_service_error_logs"
	serviceErrorLogKey               = "log_id"
)

type serviceErrorLogItem struct {
	LogID       string            `dynamodbav:"log_id"`
	Kind        string            `dynamodbav:"kind"`
	ServiceType string            `dynamodbav:"service_type,omitempty"`
	OrderID     string            `dynamodbav:"order_id,omitempty"`
	SessionID   string            `dynamodbav:"session_id,omitempty"`
	Message     string            `dynamodbav:"message"`
	Details     map[string]string `dynamodbav:"details,omitempty"`
	OccurredAt  string            `dynamodbav:"occurred_at"`
}

// ServiceErrorLogDynamoRepository is an append-only audit log of failures.
//
// Table requirements:
//   - PK: log_id (string)
type ServiceErrorLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceErrorLogRepository = (*ServiceErrorLogDynamoRepository)(nil)

func NewServiceErrorLogDynamoRepository(ddb DynamoAPI, tableName string) *ServiceErrorLogDynamoRepository {
	return &ServiceErrorLogDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, DefaultServiceErrorLogsTableName),
	}
}

func (r *ServiceErrorLogDynamoRepository) Create(ctx context.Context, l entities.ServiceErrorLog) (entities.ServiceErrorLog, error) {
	av, err := attributevalue.MarshalMap(serviceErrorLogItem{
		LogID:       l.ID,
		Kind:        string(l.Kind),
		ServiceType: string(l.ServiceType),
		OrderID:     l.OrderID,
		SessionID:   l.SessionID,
		Message:     l.Message,
		Details:     l.Details,
		OccurredAt:  formatTime(l.OccurredAt),
	})
	if err != nil {
		return entities.ServiceErrorLog{}, errors.Wrap(err, "marshal service error log")
	}
	if err := createOnce(ctx, r.ddb, r.tableName, serviceErrorLogKey, av); err != nil {
		return entities.ServiceErrorLog{}, err
	}
	return l, nil
}

func (r *ServiceErrorLogDynamoRepository) List(ctx context.Context) ([]entities.ServiceErrorLog, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	out := make([]entities.ServiceErrorLog, 0, len(items))
	for _, item := range items {
		var it serviceErrorLogItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal service error log")
		}
		var d timeDecoder
		entry := entities.ServiceErrorLog{
			ID:          it.LogID,
			Kind:        entities.ErrorKind(it.Kind),
			ServiceType: entities.ServiceType(it.ServiceType),
			OrderID:     it.OrderID,
			SessionID:   it.SessionID,
			Message:     it.Message,
			Details:     it.Details,
			OccurredAt:  d.at("occurred_at", it.OccurredAt),
		}
		if d.err != nil {
			return nil, errors.Wrapf(d.err, "service error log %s", it.LogID)
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}
