package response

import (
	"encoding/json"
	"testing"
	"time"

	"gwansang/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrder(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	resp := FromOrder(entities.Order{
		OrderID:       "ORD-1",
		ServiceType:   entities.ServiceTypeFaceSaju,
		Amount:        9900,
		PaymentStatus: entities.PaymentStatusCompleted,
		ServiceStatus: entities.ServiceStatusInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	assert.Equal(t, "관상 사주", resp.ServiceName)
	assert.Equal(t, []string{}, resp.ErrorLogs)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, "face-saju", body["serviceType"])
	assert.NotContains(t, body, "completedAt")
	assert.NotContains(t, body, "userEmail")

	assert.Len(t, FromOrders([]entities.Order{{OrderID: "a"}, {OrderID: "b"}}), 2)
	assert.NotNil(t, FromOrders(nil))
}

func TestFromSession(t *testing.T) {
	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	resp := FromSession(entities.AnonymousSession{
		SessionID:  "s-1",
		UserID:     "u-1",
		CreatedAt:  now,
		DeviceInfo: entities.DeviceInfo{IP: "10.0.0.1"},
	})
	assert.Nil(t, resp.ExpiresAt)
	assert.Equal(t, []entities.ServiceUsage{}, resp.Services)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "10.0.0.1")
}
