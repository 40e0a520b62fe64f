package routes

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "gwansang/docs" // generated by swag init
	"gwansang/internal/adapter/http/handlers"
	"gwansang/internal/adapter/http/middleware"
	"gwansang/internal/config"
	"gwansang/internal/usecase"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, deps, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go runSessionJanitor(ctx, deps.sessions, cfg.SessionSweepInterval)

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("[routes][server] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	log.Info("[routes][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}

func newRouter(cfg config.Config, deps *dependencies, reg *prometheus.Registry) *gin.Engine {
	router := gin.New()
	httpMetrics := middleware.NewHTTPMetrics(reg)
	setMiddlewares(router, httpMetrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	adminOnly := middleware.AdminAuth(cfg.AdminAPIToken)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, handlers.NewOrderHandler(deps.orders), adminOnly)
	addSessionRoutes(v1, handlers.NewSessionHandler(deps.sessions))
	addPaymentRoutes(v1, handlers.NewPaymentHandler(deps.sessions, deps.gateway), adminOnly)
	addSupportRoutes(v1, handlers.NewSupportHandler(deps.sessions), adminOnly)
	addRefundRoutes(v1, handlers.NewRefundHandler(deps.refunds), adminOnly)
	addMetricsRoutes(v1, handlers.NewMetricsHandler(deps.metrics))
	addAdminRoutes(v1, handlers.NewAdminHandler(deps.admin), handlers.NewSessionHandler(deps.sessions), adminOnly)
	return router
}

func setMiddlewares(router *gin.Engine, httpMetrics *middleware.HTTPMetrics) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithFields(log.Fields{
			"panic":      recovered,
			"request_id": middleware.RequestID(c),
		}).Error("[routes][server] recovered from panic")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	router.Use(middleware.RequestLogger())
	router.Use(httpMetrics.Handler())
	router.Use(middleware.CORS())
}

// runSessionJanitor deletes expired sessions until ctx is cancelled.
func runSessionJanitor(ctx context.Context, sessions usecase.IAnonymousUserUseCase, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sessions.PurgeExpiredSessions(ctx)
			if err != nil {
				log.WithError(err).Warn("[routes][janitor] purge failed")
				continue
			}
			if removed > 0 {
				log.WithField("removed", removed).Info("[routes][janitor] expired sessions purged")
			}
		}
	}
}
