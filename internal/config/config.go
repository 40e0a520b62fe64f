package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
	MetricsMemory   = "memory"
	MetricsRedis    = "redis"
)

// Config is read once from the process environment at startup.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	MetricsDriver string `env:"METRICS_DRIVER" envDefault:"memory"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	OrdersTable           string `env:"ORDERS_TABLE" envDefault:"gwansang_orders"`
	SessionsTable         string `env:"SESSIONS_TABLE" envDefault:"gwansang_sessions"`
	RefundableErrorsTable string `env:"REFUNDABLE_ERRORS_TABLE" envDefault:"gwansang_refundable_errors"`
	ServiceErrorLogsTable string `env:"SERVICE_ERROR_LOGS_TABLE" envDefault:"gwansang_service_error_logs"`
	PaymentClaimsTable    string `env:"PAYMENT_CLAIMS_TABLE" envDefault:"gwansang_payment_claims"`

	RedisAddr            string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword        string `env:"REDIS_PASSWORD"`
	RedisDB              int    `env:"REDIS_DB" envDefault:"0"`
	MetricsRetentionDays int    `env:"METRICS_RETENTION_DAYS" envDefault:"90"`

	Timezone             string        `env:"TIMEZONE" envDefault:"Asia/Seoul"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`

	KafkaBootstrapServers string `env:"KAFKA_BOOTSTRAP_SERVERS"`
	OrderEventsTopic      string `env:"ORDER_EVENTS_TOPIC" envDefault:"successful_payments"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM"`
	AdminEmail   string `env:"ADMIN_EMAIL"`

	AdminAPIToken string `env:"ADMIN_API_TOKEN"`

	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`

	MatchingConfigPath string `env:"MATCHING_CONFIG_PATH"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.MetricsDriver = strings.ToLower(strings.TrimSpace(cfg.MetricsDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageDynamoDB:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StorageDynamoDB, c.StorageDriver)
	}
	switch c.MetricsDriver {
	case MetricsMemory, MetricsRedis:
	default:
		return fmt.Errorf("METRICS_DRIVER must be %q or %q, got %q", MetricsMemory, MetricsRedis, c.MetricsDriver)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the zone used for daily metric buckets.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) KafkaEnabled() bool {
	return strings.TrimSpace(c.KafkaBootstrapServers) != ""
}

func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.MailFrom != "" && c.AdminEmail != ""
}
