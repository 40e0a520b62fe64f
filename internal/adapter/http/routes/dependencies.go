package routes

import (
	"context"
	"time"

	"gwansang/internal/adapter/persistence/memory"
	"gwansang/internal/adapter/persistence/repository"
	"gwansang/internal/config"
	"gwansang/internal/infrastructure/clock"
	"gwansang/internal/infrastructure/database"
	"gwansang/internal/infrastructure/events"
	"gwansang/internal/infrastructure/notify"
	"gwansang/internal/infrastructure/payments"
	"gwansang/internal/usecase"
	"gwansang/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// dependencies holds the use cases the handlers are built from.
type dependencies struct {
	orders   usecase.IOrderUseCase
	sessions usecase.IAnonymousUserUseCase
	refunds  usecase.IRefundTrackingUseCase
	metrics  usecase.IMetricsUseCase
	admin    usecase.IAdminUseCase
	gateway  interfaces.IPaymentGateway

	closers []func()
}

func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

type stores struct {
	orders    interfaces.IOrderRepository
	sessions  interfaces.ISessionRepository
	refunds   interfaces.IRefundableErrorRepository
	errorLogs interfaces.IServiceErrorLogRepository
}

func buildDependencies(ctx context.Context, cfg config.Config) (*dependencies, error) {
	deps := &dependencies{}

	st, err := buildStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	metricsRepo, closeMetrics, err := buildMetricsRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if closeMetrics != nil {
		deps.closers = append(deps.closers, closeMetrics)
	}

	publisher := buildPublisher(cfg, deps)
	notifier := buildNotifier(cfg)
	deps.gateway = buildGateway(cfg)

	policy, err := config.NewMatchPolicyHolder(cfg.MatchingConfigPath)
	if err != nil {
		deps.close()
		return nil, errors.Wrap(err, "load match policy")
	}

	clk := clock.System{}
	loc := cfg.Location()

	deps.metrics = usecase.NewMetricsUseCase(metricsRepo, clk, loc)
	deps.orders = usecase.NewOrderUseCase(st.orders, deps.gateway, deps.metrics, publisher, clk, loc)
	deps.sessions = usecase.NewAnonymousUserUseCase(st.sessions, policy, deps.metrics, clk, cfg.SessionTTL)
	deps.refunds = usecase.NewRefundTrackingUseCase(st.refunds, deps.metrics, notifier, publisher, clk)
	deps.admin = usecase.NewAdminUseCase(st.errorLogs, deps.orders, deps.sessions, deps.refunds, deps.metrics, clk)
	return deps, nil
}

func buildStores(ctx context.Context, cfg config.Config) (stores, error) {
	if cfg.StorageDriver != config.StorageDynamoDB {
		log.Warn("[routes][wiring] using in-memory storage, data is lost on restart")
		return stores{
			orders:    memory.NewOrderMemoryRepository(),
			sessions:  memory.NewSessionMemoryRepository(),
			refunds:   memory.NewRefundableErrorMemoryRepository(),
			errorLogs: memory.NewServiceErrorLogMemoryRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(cfg))
	if err != nil {
		return stores{}, err
	}
	tables := tableNames(cfg)
	log.WithFields(log.Fields{
		"region":   cfg.AWSRegion,
		"endpoint": cfg.DynamoDBEndpoint,
	}).Info("[routes][wiring] using dynamodb storage")
	return stores{
		orders:    repository.NewOrderDynamoRepository(ddb, tables.Orders),
		sessions:  repository.NewSessionDynamoRepository(ddb, tables.Sessions, tables.PaymentClaims),
		refunds:   repository.NewRefundableErrorDynamoRepository(ddb, tables.RefundableErrors),
		errorLogs: repository.NewServiceErrorLogDynamoRepository(ddb, tables.ServiceErrorLogs),
	}, nil
}

func buildMetricsRepository(ctx context.Context, cfg config.Config) (interfaces.IMetricsRepository, func(), error) {
	if cfg.MetricsDriver != config.MetricsRedis {
		return memory.NewMetricsMemoryRepository(), nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, errors.Wrapf(err, "connect redis %s", cfg.RedisAddr)
	}
	log.WithField("addr", cfg.RedisAddr).Info("[routes][wiring] using redis metrics")

	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.WithError(err).Warn("[routes][wiring] redis close failed")
		}
	}
	return repository.NewMetricsRedisRepository(rdb, cfg.MetricsRetentionDays), closeFn, nil
}

func buildPublisher(cfg config.Config, deps *dependencies) interfaces.IEventPublisher {
	if !cfg.KafkaEnabled() {
		return events.NoopPublisher{}
	}
	p, err := events.NewKafkaPublisher(cfg.KafkaBootstrapServers, cfg.OrderEventsTopic)
	if err != nil {
		log.WithError(err).Error("[routes][wiring] kafka producer unavailable, events are dropped")
		return events.NoopPublisher{}
	}
	deps.closers = append(deps.closers, p.Close)
	return p
}

func buildNotifier(cfg config.Config) interfaces.IAdminNotifier {
	if !cfg.SMTPEnabled() {
		log.Info("[routes][wiring] smtp not configured, refund alerts are logged only")
		return notify.NoopNotifier{}
	}
	return notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.AdminEmail)
}

// buildGateway returns nil when no provider is configured. Refunds are then
// recorded without a provider cancel.
func buildGateway(cfg config.Config) interfaces.IPaymentGateway {
	if !cfg.PaymentGatewayMock && cfg.MercadoPagoAccessToken == "" {
		log.Warn("[routes][wiring] payment gateway not configured")
		return nil
	}
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.WithError(err).Error("[routes][wiring] payment gateway unavailable")
		return nil
	}
	return gw
}

func dynamoOptions(cfg config.Config) database.DynamoDBOptions {
	return database.DynamoDBOptions{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}
}

func tableNames(cfg config.Config) repository.TableNames {
	return repository.TableNames{
		Orders:           cfg.OrdersTable,
		Sessions:         cfg.SessionsTable,
		RefundableErrors: cfg.RefundableErrorsTable,
		ServiceErrorLogs: cfg.ServiceErrorLogsTable,
		PaymentClaims:    cfg.PaymentClaimsTable,
	}
}
