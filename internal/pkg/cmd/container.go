package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	commonhttp "github.com/usergraph/social-service/internal/pkg/http"
	"github.com/usergraph/social-service/pkg/cmd"
	"github.com/usergraph/social-service/pkg/env"
	"github.com/usergraph/social-service/pkg/http"
	"github.com/usergraph/social-service/pkg/lazy"
	"github.com/usergraph/social-service/pkg/log"
	"github.com/usergraph/social-service/pkg/metric"
	pkgmetricstub "github.com/usergraph/social-service/pkg/metric/stub"
	"github.com/usergraph/social-service/pkg/observability"
	"github.com/usergraph/social-service/pkg/sql"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

type StorageMode string

const (
	StorageModePostgres StorageMode = "postgres"
	StorageModeMemory   StorageMode = "memory"
)

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[commonhttp.ClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	StorageMode       lazy.Loader[StorageMode]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	_ = godotenv.Load()

	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DBMigrations:      dbMigrations,
		DB:                db,
		StorageMode:       storageModeProvider(),
		Metrics:           metrics,
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return pkgmetricstub.NewMetrics(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := logLevelMap[logLevelStr]
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func storageModeProvider() lazy.Loader[StorageMode] {
	return lazy.New(func() (StorageMode, error) {
		mode := env.Must(env.ParseDefault[string]("STORAGE_MODE", string(StorageModePostgres)))
		switch StorageMode(mode) {
		case StorageModePostgres, StorageModeMemory:
			return StorageMode(mode), nil
		default:
			return "", fmt.Errorf("unknown storage mode %q", mode)
		}
	})
}

func sqlDatabaseProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.ParseDefault[int]("SQL_MAX_OPEN_CONNECTIONS", 10)),
			MaxIdleConnections: env.Must(env.ParseDefault[int]("SQL_MAX_IDLE_CONNECTIONS", 5)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := env.Must(env.ParseDefault[string]("SERVICE_ADDRESS", http.DefaultServerAddress))
		return http.NewServer(
			address,
			http.WithHealthCheck(nil),
			http.WithObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[commonhttp.ClientFactory] {
	return lazy.New(func() (commonhttp.ClientFactory, error) {
		return commonhttp.NewClientFactory(
			http.WithRequestObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
