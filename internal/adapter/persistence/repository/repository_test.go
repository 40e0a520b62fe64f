package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo answers with canned responses and records the last inputs.
type fakeDynamo struct {
	putErr      error
	transactErr error
	getItem     map[string]types.AttributeValue
	pages       []*dynamodb.ScanOutput

	lastPut      *dynamodb.PutItemInput
	lastScan     *dynamodb.ScanInput
	lastTransact *dynamodb.TransactWriteItemsInput
	deleted      []string
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleted = append(f.deleted, in.Key[sessionKey].(*types.AttributeValueMemberS).Value)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.lastScan = in
	if len(f.pages) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.lastTransact = in
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// canceledAt fails a transaction on the condition of item index i.
func canceledAt(i, total int) error {
	reasons := make([]types.CancellationReason, total)
	for j := range reasons {
		reasons[j].Code = aws.String("None")
	}
	reasons[i].Code = aws.String("ConditionalCheckFailed")
	return &types.TransactionCanceledException{Message: aws.String("Transaction cancelled"), CancellationReasons: reasons}
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func sampleOrder() entities.Order {
	created := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	done := created.Add(time.Minute)
	return entities.Order{
		OrderID:       "ORD-1",
		UserEmail:     "kim@example.com",
		ServiceType:   entities.ServiceTypeSaju,
		Amount:        9900,
		PaymentStatus: entities.PaymentStatusCompleted,
		ServiceStatus: entities.ServiceStatusCompleted,
		PaymentID:     "pay-1",
		CreatedAt:     created,
		UpdatedAt:     done,
		CompletedAt:   &done,
		ErrorLogs:     []string{"network_error: reset"},
		Version:       2,
	}
}

func TestOrderDynamoRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("conditional create", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewOrderDynamoRepository(ddb, "")

		_, err := repo.Create(ctx, sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, DefaultOrdersTableName, aws.ToString(ddb.lastPut.TableName))
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(ddb.lastPut.ConditionExpression))
		assert.Equal(t, orderKey, ddb.lastPut.ExpressionAttributeNames["#id"])
	})

	t.Run("duplicate key", func(t *testing.T) {
		repo := NewOrderDynamoRepository(&fakeDynamo{putErr: conditionFailed()}, "orders")
		_, err := repo.Create(ctx, sampleOrder())
		assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	})

	t.Run("transport error is wrapped", func(t *testing.T) {
		repo := NewOrderDynamoRepository(&fakeDynamo{putErr: errors.New("timeout")}, "orders")
		_, err := repo.Create(ctx, sampleOrder())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create orders: timeout")
	})
}

func TestOrderDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("bumps the version and guards on the old one", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewOrderDynamoRepository(ddb, "orders")

		got, err := repo.Update(ctx, sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Version)

		expected := ddb.lastPut.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN)
		assert.Equal(t, "2", expected.Value)
		stored := ddb.lastPut.Item["version"].(*types.AttributeValueMemberN)
		assert.Equal(t, "3", stored.Value)
	})

	t.Run("stale version", func(t *testing.T) {
		ddb := &fakeDynamo{
			putErr:  conditionFailed(),
			getItem: stringKey(orderKey, "ORD-1"),
		}
		_, err := NewOrderDynamoRepository(ddb, "orders").Update(ctx, sampleOrder())
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	})

	t.Run("missing record", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: conditionFailed()}
		got, err := NewOrderDynamoRepository(ddb, "orders").Update(ctx, sampleOrder())
		require.NoError(t, err)
		assert.Empty(t, got.OrderID)
	})
}

func TestOrderDynamoRepository_GetAndList(t *testing.T) {
	ctx := context.Background()
	older := sampleOrder()
	newer := sampleOrder()
	newer.OrderID = "ORD-2"
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	newer.CompletedAt = nil
	newer.ErrorLogs = nil

	olderAV, err := attributevalue.MarshalMap(toOrderItem(older))
	require.NoError(t, err)
	newerAV, err := attributevalue.MarshalMap(toOrderItem(newer))
	require.NoError(t, err)

	t.Run("get round trip", func(t *testing.T) {
		got, err := NewOrderDynamoRepository(&fakeDynamo{getItem: olderAV}, "orders").GetByID(ctx, "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, older, got)
	})

	t.Run("get missing", func(t *testing.T) {
		got, err := NewOrderDynamoRepository(&fakeDynamo{}, "orders").GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.OrderID)
	})

	t.Run("list pages and sorts newest first", func(t *testing.T) {
		ddb := &fakeDynamo{pages: []*dynamodb.ScanOutput{
			{Items: []map[string]types.AttributeValue{olderAV}, LastEvaluatedKey: stringKey(orderKey, "ORD-1")},
			{Items: []map[string]types.AttributeValue{newerAV}},
		}}
		list, err := NewOrderDynamoRepository(ddb, "orders").List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "ORD-2", list[0].OrderID)
		assert.Equal(t, []string{}, list[0].ErrorLogs)
		assert.Equal(t, "ORD-1", list[1].OrderID)
	})
}

func TestSessionItem(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	s := entities.AnonymousSession{
		SessionID:    "s-1",
		UserID:       "u-1",
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(24 * time.Hour),
		DeviceInfo:   entities.DeviceInfo{IP: "10.0.0.1"},
		Services: []entities.ServiceUsage{{
			ServiceID:   "svc-1",
			ServiceType: entities.ServiceTypeFaceSaju,
			Status:      entities.ServiceUsageStarted,
			StartedAt:   now,
			Payment: &entities.PaymentTracker{
				PaymentID:     "pay-1",
				ServiceType:   entities.ServiceTypeFaceSaju,
				Amount:        9900,
				PaymentStatus: entities.PaymentStatusPending,
				CreatedAt:     now,
			},
		}},
		Version: 1,
	}

	it := toSessionItem(s)
	assert.Equal(t, now.Add(24*time.Hour).Unix(), it.ExpiresAt)
	assert.Equal(t, []string{"pay-1"}, it.PaymentIDs)

	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	_, isSet := av["payment_ids"].(*types.AttributeValueMemberSS)
	assert.True(t, isSet)

	got, err := unmarshalSession(av)
	require.NoError(t, err)
	assert.Equal(t, s.SessionID, got.SessionID)
	assert.True(t, s.ExpiresAt.Equal(got.ExpiresAt))
	require.Len(t, got.Services, 1)
	assert.Equal(t, "pay-1", got.Services[0].Payment.PaymentID)
	assert.Equal(t, []entities.SessionError{}, got.Errors)

	t.Run("no payments omits the set", func(t *testing.T) {
		bare := s
		bare.Services = nil
		av, err := attributevalue.MarshalMap(toSessionItem(bare))
		require.NoError(t, err)
		_, ok := av["payment_ids"]
		assert.False(t, ok)
	})
}

func TestSessionDynamoRepository_Queries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)

	t.Run("find by payment id filters on the set", func(t *testing.T) {
		ddb := &fakeDynamo{}
		got, err := NewSessionDynamoRepository(ddb, "", "").FindByPaymentID(ctx, "pay-9")
		require.NoError(t, err)
		assert.Empty(t, got.SessionID)
		assert.Equal(t, "contains(#pids, :pid)", aws.ToString(ddb.lastScan.FilterExpression))
		assert.Equal(t, DefaultSessionsTableName, aws.ToString(ddb.lastScan.TableName))
	})

	t.Run("list active drops sessions that expired within the second", func(t *testing.T) {
		live := entities.AnonymousSession{SessionID: "live", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
		stale := entities.AnonymousSession{SessionID: "stale", CreatedAt: now, ExpiresAt: now.Add(-time.Millisecond)}
		liveAV, err := attributevalue.MarshalMap(toSessionItem(live))
		require.NoError(t, err)
		staleAV, err := attributevalue.MarshalMap(toSessionItem(stale))
		require.NoError(t, err)

		ddb := &fakeDynamo{pages: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{liveAV, staleAV}}}}
		list, err := NewSessionDynamoRepository(ddb, "sessions", "claims").ListActive(ctx, now)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "live", list[0].SessionID)
	})

	t.Run("delete expired removes each scanned key", func(t *testing.T) {
		ddb := &fakeDynamo{pages: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{
			stringKey(sessionKey, "a"),
			stringKey(sessionKey, "b"),
		}}}}
		n, err := NewSessionDynamoRepository(ddb, "sessions", "claims").DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"a", "b"}, ddb.deleted)
	})
}

func TestSessionDynamoRepository_UpdateClaimsPayments(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	linked := entities.AnonymousSession{
		SessionID: "s-1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
		Services: []entities.ServiceUsage{
			{ServiceID: "a", Payment: &entities.PaymentTracker{PaymentID: "pay-1"}},
			{ServiceID: "b", Payment: &entities.PaymentTracker{PaymentID: "pay-2"}},
		},
		Version: 3,
	}

	t.Run("session and claims are written together", func(t *testing.T) {
		ddb := &fakeDynamo{}
		got, err := NewSessionDynamoRepository(ddb, "sessions", "claims").Update(ctx, linked)
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.Version)
		assert.Nil(t, ddb.lastPut)

		items := ddb.lastTransact.TransactItems
		require.Len(t, items, 3)
		assert.Equal(t, "sessions", aws.ToString(items[0].Put.TableName))
		assert.Equal(t, "3", items[0].Put.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value)

		var claim paymentClaimItem
		require.NoError(t, attributevalue.UnmarshalMap(items[2].Put.Item, &claim))
		assert.Equal(t, paymentClaimItem{PaymentID: "pay-2", SessionID: "s-1", ExpiresAt: now.Add(time.Hour).Unix()}, claim)
		assert.Equal(t, "claims", aws.ToString(items[2].Put.TableName))
		assert.Equal(t, "attribute_not_exists(#pid) OR #sid = :sid", aws.ToString(items[2].Put.ConditionExpression))
	})

	t.Run("claim held by another session", func(t *testing.T) {
		ddb := &fakeDynamo{transactErr: canceledAt(2, 3)}
		_, err := NewSessionDynamoRepository(ddb, "sessions", "claims").Update(ctx, linked)
		assert.ErrorIs(t, err, interfaces.ErrPaymentIDTaken)
	})

	t.Run("stale session version", func(t *testing.T) {
		ddb := &fakeDynamo{transactErr: canceledAt(0, 3), getItem: stringKey(sessionKey, "s-1")}
		_, err := NewSessionDynamoRepository(ddb, "sessions", "claims").Update(ctx, linked)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	})

	t.Run("missing session", func(t *testing.T) {
		ddb := &fakeDynamo{transactErr: canceledAt(0, 3)}
		got, err := NewSessionDynamoRepository(ddb, "sessions", "claims").Update(ctx, linked)
		require.NoError(t, err)
		assert.Empty(t, got.SessionID)
	})

	t.Run("no payments uses a plain versioned put", func(t *testing.T) {
		ddb := &fakeDynamo{}
		bare := linked
		bare.Services = nil
		_, err := NewSessionDynamoRepository(ddb, "sessions", "claims").Update(ctx, bare)
		require.NoError(t, err)
		assert.Nil(t, ddb.lastTransact)
		require.NotNil(t, ddb.lastPut)
	})
}

func TestRefundableErrorItem(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	e := entities.RefundableError{
		ID:           "re-1",
		SessionID:    "s-1",
		ServiceType:  entities.ServiceTypeProfessionalPhysiognomy,
		ErrorType:    entities.ErrorKindAnalysis,
		ErrorMessage: "empty result",
		PaymentInfo: &entities.RefundPaymentInfo{
			PaymentID:     "pay-1",
			Amount:        19900,
			PaymentStatus: entities.PaymentStatusCompleted,
			PaymentMethod: "card",
		},
		UserInfo:     entities.RefundUserInfo{IP: "10.0.0.1"},
		RefundStatus: entities.RefundState{Status: entities.RefundStatusPending, IsEligible: true, UpdatedAt: now},
		OccurredAt:   now,
		Version:      1,
	}

	av, err := attributevalue.MarshalMap(toRefundableErrorItem(e))
	require.NoError(t, err)
	var it refundableErrorItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	got, err := fromRefundableErrorItem(it)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	e.PaymentInfo = nil
	got, err = fromRefundableErrorItem(toRefundableErrorItem(e))
	require.NoError(t, err)
	assert.Nil(t, got.PaymentInfo)
}

func TestCorruptTimestampsFailReads(t *testing.T) {
	ctx := context.Background()

	t.Run("session", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(sessionItem{SessionID: "s-1", CreatedAt: "yesterday", Version: 1})
		require.NoError(t, err)
		_, err = NewSessionDynamoRepository(&fakeDynamo{getItem: item}, "", "").GetByID(ctx, "s-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "created_at")
	})

	t.Run("order optional timestamp", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(orderItem{OrderID: "o-1", CreatedAt: "2026-03-14T03:00:00Z", RefundedAt: "03/14/2026"})
		require.NoError(t, err)
		_, err = NewOrderDynamoRepository(&fakeDynamo{getItem: item}, "").GetByID(ctx, "o-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refunded_at")
	})

	t.Run("refundable error in a scan", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(refundableErrorItem{ErrorID: "e-1", OccurredAt: "not-a-time"})
		require.NoError(t, err)
		ddb := &fakeDynamo{pages: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{item}}}}
		_, err = NewRefundableErrorDynamoRepository(ddb, "").List(ctx)
		assert.Error(t, err)
	})

	t.Run("empty timestamps stay zero", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(orderItem{OrderID: "o-2"})
		require.NoError(t, err)
		o, err := NewOrderDynamoRepository(&fakeDynamo{getItem: item}, "").GetByID(ctx, "o-2")
		require.NoError(t, err)
		assert.True(t, o.CreatedAt.IsZero())
		assert.Nil(t, o.RefundedAt)
	})
}

func TestServiceErrorLogDynamoRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	ddb := &fakeDynamo{}
	repo := NewServiceErrorLogDynamoRepository(ddb, "logs")

	_, err := repo.Create(ctx, entities.ServiceErrorLog{ID: "l-1", Kind: entities.ErrorKindSystem, Message: "boom", OccurredAt: now})
	require.NoError(t, err)

	ddb.pages = []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{ddb.lastPut.Item}}}
	logs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entities.ErrorKindSystem, logs[0].Kind)
	assert.True(t, now.Equal(logs[0].OccurredAt))
}

func TestMetricsRedisHelpers(t *testing.T) {
	assert.Equal(t, "gwansang:metrics:day:2026-03-14", metricsKey("day:2026-03-14"))

	got, err := parseCounters(map[string]string{"revenue": "19800", "errors": "-1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"revenue": 19800, "errors": -1}, got)

	_, err = parseCounters(map[string]string{"revenue": "lots"})
	assert.Error(t, err)

	repo := NewMetricsRedisRepository(nil, 0)
	assert.Equal(t, 90*24*time.Hour, repo.retention)
}
