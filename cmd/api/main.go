package main

import (
	"context"
	"os"
	"time"

	_ "gwansang/docs"
	"gwansang/internal/adapter/http/routes"
	"gwansang/internal/adapter/persistence/repository"
	"gwansang/internal/config"
	"gwansang/internal/infrastructure/database"
	"gwansang/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// @title           Gwansang Order & Refund API
// @version         1.0
// @description     Orders, anonymous sessions, refund tracking and metrics for the face-reading service.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	app := &cli.App{
		Name:   "gwansang",
		Usage:  "order, refund and metrics tracking service",
		Before: setup,
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve,
			},
			{
				Name:  "create-tables",
				Usage: "create the DynamoDB tables and enable session TTL",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "timeout",
						Value: 5 * time.Minute,
						Usage: "give up after this long",
					},
				},
				Action: createTables,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("[main] exiting")
	}
}

func setup(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	c.App.Metadata = map[string]any{"config": cfg}
	return nil
}

func loadedConfig(c *cli.Context) config.Config {
	cfg, _ := c.App.Metadata["config"].(config.Config)
	return cfg
}

func serve(c *cli.Context) error {
	return routes.Run(loadedConfig(c))
}

func createTables(c *cli.Context) error {
	cfg := loadedConfig(c)
	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	client, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		return err
	}
	return repository.CreateTables(ctx, client, repository.TableNames{
		Orders:           cfg.OrdersTable,
		Sessions:         cfg.SessionsTable,
		RefundableErrors: cfg.RefundableErrorsTable,
		ServiceErrorLogs: cfg.ServiceErrorLogsTable,
		PaymentClaims:    cfg.PaymentClaimsTable,
	})
}
