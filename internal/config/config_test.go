package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gwansang/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, StorageMemory, cfg.StorageDriver)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "successful_payments", cfg.OrderEventsTopic)
		assert.Equal(t, "Asia/Seoul", cfg.Location().String())
		assert.False(t, cfg.KafkaEnabled())
		assert.False(t, cfg.SMTPEnabled())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", " DynamoDB ")
		t.Setenv("METRICS_DRIVER", "redis")
		t.Setenv("SESSION_TTL", "30m")
		t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "kafka:9092")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, StorageDynamoDB, cfg.StorageDriver)
		assert.Equal(t, MetricsRedis, cfg.MetricsDriver)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.True(t, cfg.KafkaEnabled())
		assert.True(t, cfg.PaymentGatewayMock)
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		_, err := Load()
		assert.ErrorContains(t, err, "STORAGE_DRIVER")
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Mars/Olympus")
		_, err := Load()
		assert.ErrorContains(t, err, "TIMEZONE")
	})
}

const policyYAML = `matching:
  timeWindowWeight: 10
  amountWeight: 20
  phoneWeight: 50
  emailWeight: 45
  cardLastFourWeight: 15
  highThreshold: 60
  mediumThreshold: 25
`

func TestMatchPolicyHolder(t *testing.T) {
	t.Run("loads the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "matching.yml")
		require.NoError(t, os.WriteFile(path, []byte(policyYAML), 0o600))

		h, err := NewMatchPolicyHolder(path)
		require.NoError(t, err)
		p := h.Get()
		assert.Equal(t, 50, p.PhoneWeight)
		assert.Equal(t, 60, p.HighThreshold)
		assert.Equal(t, 25, p.MediumThreshold)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "matching.yml")
		require.NoError(t, os.WriteFile(path, []byte("matching:\n  phoneWeight: 70\n"), 0o600))

		h, err := NewMatchPolicyHolder(path)
		require.NoError(t, err)
		want := entities.DefaultMatchPolicy()
		want.PhoneWeight = 70
		assert.Equal(t, want, h.Get())
	})

	t.Run("invalid thresholds", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "matching.yml")
		require.NoError(t, os.WriteFile(path, []byte("matching:\n  highThreshold: 10\n  mediumThreshold: 20\n"), 0o600))

		_, err := NewMatchPolicyHolder(path)
		assert.Error(t, err)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := NewMatchPolicyHolder(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("reloads on change", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "matching.yml")
		require.NoError(t, os.WriteFile(path, []byte(policyYAML), 0o600))
		h, err := NewMatchPolicyHolder(path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("matching:\n  phoneWeight: 99\n"), 0o600))
		assert.Eventually(t, func() bool { return h.Get().PhoneWeight == 99 }, 5*time.Second, 20*time.Millisecond)
	})

	t.Run("static", func(t *testing.T) {
		h := NewStaticMatchPolicy(entities.DefaultMatchPolicy())
		assert.Equal(t, entities.DefaultMatchPolicy(), h.Get())
	})
}
