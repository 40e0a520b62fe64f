package repository

import (
	"context"
	"sort"
	"time"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultSessionsTableName      = "gwansang_sessions"
	DefaultPaymentClaimsTableName = "gwansang_payment_claims"
	sessionKey                    = "session_id"
	paymentClaimKey               = "payment_id"
	// SessionTTLAttribute is enabled as the native TTL attribute of the
	// sessions and payment claims tables.
	SessionTTLAttribute = "expires_at"
)

// paymentClaimItem pins a payment id to the session that linked it.
type paymentClaimItem struct {
	PaymentID string `dynamodbav:"payment_id"`
	SessionID string `dynamodbav:"session_id"`
	ExpiresAt int64  `dynamodbav:"expires_at,omitempty"`
}

type sessionItem struct {
	SessionID    string                  `dynamodbav:"session_id"`
	UserID       string                  `dynamodbav:"user_id"`
	CreatedAt    string                  `dynamodbav:"created_at"`
	LastActivity string                  `dynamodbav:"last_activity"`
	ExpiresAt    int64                   `dynamodbav:"expires_at,omitempty"`
	DeviceInfo   entities.DeviceInfo     `dynamodbav:"device_info"`
	Services     []entities.ServiceUsage `dynamodbav:"services"`
	Errors       []entities.SessionError `dynamodbav:"errors"`
	PaymentIDs   []string                `dynamodbav:"payment_ids,stringset,omitempty"`
	Version      int64                   `dynamodbav:"version"`
}

// SessionDynamoRepository persists anonymous sessions with their usages and
// payment trackers embedded.
//
// Table requirements:
//   - PK: session_id (string)
//   - TTL: expires_at (epoch seconds)
//
// Claims table requirements:
//   - PK: payment_id (string)
//   - TTL: expires_at, kept equal to the owning session's
type SessionDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	claimsTable string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb DynamoAPI, tableName, claimsTable string) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:         ddb,
		tableName:   orDefault(tableName, DefaultSessionsTableName),
		claimsTable: orDefault(claimsTable, DefaultPaymentClaimsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.AnonymousSession) (entities.AnonymousSession, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.AnonymousSession{}, errors.Wrap(err, "marshal session")
	}
	if err := createOnce(ctx, r.ddb, r.tableName, sessionKey, av); err != nil {
		return entities.AnonymousSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, sessionID string) (entities.AnonymousSession, error) {
	item, err := getByKey(ctx, r.ddb, r.tableName, sessionKey, sessionID)
	if err != nil {
		return entities.AnonymousSession{}, err
	}
	if len(item) == 0 {
		return entities.AnonymousSession{}, nil
	}
	return unmarshalSession(item)
}

func (r *SessionDynamoRepository) Update(ctx context.Context, s entities.AnonymousSession) (entities.AnonymousSession, error) {
	expected := s.Version
	s.Version++
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.AnonymousSession{}, errors.Wrap(err, "marshal session")
	}

	var ok bool
	if pids := uniqueStrings(s.PaymentIDs()); len(pids) == 0 {
		ok, err = versionedPut(ctx, r.ddb, r.tableName, sessionKey, s.SessionID, av, expected)
	} else {
		ok, err = r.putWithClaims(ctx, s, av, expected, pids)
	}
	if err != nil || !ok {
		return entities.AnonymousSession{}, err
	}
	return s, nil
}

// putWithClaims writes the session and a claim per payment id in one
// transaction. A claim held by another session cancels the whole write.
func (r *SessionDynamoRepository) putWithClaims(ctx context.Context, s entities.AnonymousSession, av map[string]types.AttributeValue, expected int64, pids []string) (bool, error) {
	cond, names, values := versionCondition(sessionKey, expected)
	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                 aws.String(r.tableName),
			Item:                      av,
			ConditionExpression:       aws.String(cond),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		},
	}}

	claim := paymentClaimItem{SessionID: s.SessionID}
	if !s.ExpiresAt.IsZero() {
		claim.ExpiresAt = s.ExpiresAt.Unix()
	}
	for _, pid := range pids {
		claim.PaymentID = pid
		claimAV, err := attributevalue.MarshalMap(claim)
		if err != nil {
			return false, errors.Wrap(err, "marshal payment claim")
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.claimsTable),
				Item:                     claimAV,
				ConditionExpression:      aws.String("attribute_not_exists(#pid) OR #sid = :sid"),
				ExpressionAttributeNames: map[string]string{"#pid": paymentClaimKey, "#sid": sessionKey},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":sid": &types.AttributeValueMemberS{Value: s.SessionID},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err == nil {
		return true, nil
	}

	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return false, errors.Wrapf(err, "transact %s", r.tableName)
	}
	sessionFailed := false
	for i, reason := range canceled.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
			continue
		}
		if i > 0 {
			log.WithFields(log.Fields{"session_id": s.SessionID, "payment_id": pids[i-1]}).
				Warn("[session][repository] payment id claimed by another session")
			return false, interfaces.ErrPaymentIDTaken
		}
		sessionFailed = true
	}
	if !sessionFailed {
		return false, errors.Wrapf(err, "transact %s", r.tableName)
	}
	return false, missingOrStale(ctx, r.ddb, r.tableName, sessionKey, s.SessionID)
}

// FindByPaymentID scans with a set-membership filter; sets cannot back a GSI.
func (r *SessionDynamoRepository) FindByPaymentID(ctx context.Context, paymentID string) (entities.AnonymousSession, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("contains(#pids, :pid)"),
		ExpressionAttributeNames: map[string]string{"#pids": "payment_ids"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return entities.AnonymousSession{}, err
	}
	if len(items) == 0 {
		return entities.AnonymousSession{}, nil
	}
	return unmarshalSession(items[0])
}

func (r *SessionDynamoRepository) ListActive(ctx context.Context, now time.Time) ([]entities.AnonymousSession, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_not_exists(#exp) OR #exp > :now"),
		ExpressionAttributeNames: map[string]string{"#exp": SessionTTLAttribute},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: formatInt(now.Unix())},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.AnonymousSession, 0, len(items))
	for _, item := range items {
		s, err := unmarshalSession(item)
		if err != nil {
			return nil, err
		}
		// DynamoDB TTL deletion lags; the filter above is second-granular.
		if s.Expired(now) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *SessionDynamoRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	cutoff := &types.AttributeValueMemberN{Value: formatInt(now.Unix())}
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#exp <= :now"),
		ProjectionExpression:      aws.String("#sid"),
		ExpressionAttributeNames:  map[string]string{"#exp": SessionTTLAttribute, "#sid": sessionKey},
		ExpressionAttributeValues: map[string]types.AttributeValue{":now": cutoff},
	})
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, item := range items {
		var key struct {
			SessionID string `dynamodbav:"session_id"`
		}
		if err := attributevalue.UnmarshalMap(item, &key); err != nil {
			return removed, errors.Wrap(err, "unmarshal session key")
		}
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName:                 aws.String(r.tableName),
			Key:                       stringKey(sessionKey, key.SessionID),
			ConditionExpression:       aws.String("#exp <= :now"),
			ExpressionAttributeNames:  map[string]string{"#exp": SessionTTLAttribute},
			ExpressionAttributeValues: map[string]types.AttributeValue{":now": cutoff},
		})
		if isConditionFailed(err) {
			// Touched after the scan.
			continue
		}
		if err != nil {
			return removed, errors.Wrapf(err, "delete session %s", key.SessionID)
		}
		removed++
	}
	if removed > 0 {
		log.WithFields(log.Fields{"table": r.tableName, "removed": removed}).Debug("[session][repository] expired sessions deleted")
	}
	return removed, nil
}

func unmarshalSession(item map[string]types.AttributeValue) (entities.AnonymousSession, error) {
	var it sessionItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.AnonymousSession{}, errors.Wrap(err, "unmarshal session")
	}
	return fromSessionItem(it)
}

func toSessionItem(s entities.AnonymousSession) sessionItem {
	it := sessionItem{
		SessionID:    s.SessionID,
		UserID:       s.UserID,
		CreatedAt:    formatTime(s.CreatedAt),
		LastActivity: formatTime(s.LastActivity),
		DeviceInfo:   s.DeviceInfo,
		Services:     s.Services,
		Errors:       s.Errors,
		PaymentIDs:   s.PaymentIDs(),
		Version:      s.Version,
	}
	if !s.ExpiresAt.IsZero() {
		it.ExpiresAt = s.ExpiresAt.Unix()
	}
	if it.Services == nil {
		it.Services = []entities.ServiceUsage{}
	}
	if it.Errors == nil {
		it.Errors = []entities.SessionError{}
	}
	return it
}

func fromSessionItem(it sessionItem) (entities.AnonymousSession, error) {
	var d timeDecoder
	s := entities.AnonymousSession{
		SessionID:    it.SessionID,
		UserID:       it.UserID,
		CreatedAt:    d.at("created_at", it.CreatedAt),
		LastActivity: d.at("last_activity", it.LastActivity),
		DeviceInfo:   it.DeviceInfo,
		Services:     it.Services,
		Errors:       it.Errors,
		Version:      it.Version,
	}
	if it.ExpiresAt > 0 {
		s.ExpiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	if s.Services == nil {
		s.Services = []entities.ServiceUsage{}
	}
	if s.Errors == nil {
		s.Errors = []entities.SessionError{}
	}
	if d.err != nil {
		return entities.AnonymousSession{}, errors.Wrapf(d.err, "session %s", it.SessionID)
	}
	return s, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0:0]
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
