package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kingrain94/saas-platform-api/internal/repository/pgerr"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
	"github.com/kingrain94/saas-platform-api/pkg/retry"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ConnectionPoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func DefaultConnectionPoolConfig() *ConnectionPoolConfig {
	return &ConnectionPoolConfig{
		MaxOpenConns:    50,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
	}
}

// getEnvDurationWithDefault returns environment variable as duration or default if not set
func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDatabaseConfig(prefix string) *DatabaseConfig {
	return &DatabaseConfig{
		Host:     getEnvWithDefault(prefix+"_HOST", "localhost"),
		Port:     getEnvWithDefault(prefix+"_PORT", "5432"),
		User:     getEnvWithDefault(prefix+"_USER", "postgres"),
		Password: getEnvWithDefault(prefix+"_PASSWORD", ""),
		DBName:   getEnvWithDefault(prefix+"_DB_NAME", "saas_platform"),
		SSLMode:  getEnvWithDefault(prefix+"_SSL_MODE", "disable"),
	}
}

// getReaderConfig falls back to the writer settings for any reader variable
// that is not set, so a single-node setup only configures the writer.
func getReaderConfig(writer *DatabaseConfig) *DatabaseConfig {
	return &DatabaseConfig{
		Host:     getEnvWithDefault("POSTGRES_READER_HOST", writer.Host),
		Port:     getEnvWithDefault("POSTGRES_READER_PORT", writer.Port),
		User:     getEnvWithDefault("POSTGRES_READER_USER", writer.User),
		Password: getEnvWithDefault("POSTGRES_READER_PASSWORD", writer.Password),
		DBName:   getEnvWithDefault("POSTGRES_READER_DB_NAME", writer.DBName),
		SSLMode:  getEnvWithDefault("POSTGRES_READER_SSL_MODE", writer.SSLMode),
	}
}

// getConnectionPoolConfig loads connection pool configuration from environment variables
func getConnectionPoolConfig() *ConnectionPoolConfig {
	defaults := DefaultConnectionPoolConfig()
	return &ConnectionPoolConfig{
		MaxOpenConns:    getEnvIntWithDefault("DB_MAX_OPEN_CONNS", defaults.MaxOpenConns),
		MaxIdleConns:    getEnvIntWithDefault("DB_MAX_IDLE_CONNS", defaults.MaxIdleConns),
		ConnMaxLifetime: getEnvDurationWithDefault("DB_CONN_MAX_LIFETIME", defaults.ConnMaxLifetime),
	}
}

// getConnectRetryConfig bounds how long startup waits for the database.
// Only connectivity failures are retried; bad credentials or an unknown
// database fail on the first attempt.
func getConnectRetryConfig() *retry.Config {
	cfg := retry.DefaultConfig()
	cfg.ShouldRetry = pgerr.IsTransient
	cfg.MaxAttempts = getEnvIntWithDefault("DB_CONNECT_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.MaxBackoff = getEnvDurationWithDefault("DB_CONNECT_MAX_DELAY", cfg.MaxBackoff)
	return cfg
}

// buildDSN creates PostgreSQL connection string from configuration
func (c *DatabaseConfig) buildDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// configureConnectionPool applies connection pool settings to the database connection
func configureConnectionPool(gormDB *gorm.DB, poolConfig *ConnectionPoolConfig) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(poolConfig.MaxOpenConns)
	sqlDB.SetMaxIdleConns(poolConfig.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(poolConfig.ConnMaxLifetime)

	return nil
}

// GormConfig is shared by every connection. TranslateError turns unique
// violations into gorm.ErrDuplicatedKey.
func GormConfig(appEnv string) *gorm.Config {
	level := gormlogger.Info
	if appEnv == "production" {
		level = gormlogger.Warn
	}
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	}
}

// createDatabaseConnection opens a pool and pings it, retrying with capped
// exponential backoff while the server is unreachable.
func createDatabaseConnection(ctx context.Context, name string, config *DatabaseConfig, poolConfig *ConnectionPoolConfig, retryConfig *retry.Config, appEnv string, log *logger.Logger) (*gorm.DB, error) {
	dsn := config.buildDSN()

	return retry.Do(ctx, retryConfig, log, "connect "+name+" database", func(ctx context.Context) (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(dsn), GormConfig(appEnv))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := configureConnectionPool(db, poolConfig); err != nil {
			return nil, fmt.Errorf("failed to configure connection pool: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		return db, nil
	})
}

// DatabaseConnections holds both writer and reader database connections
type DatabaseConnections struct {
	Writer *gorm.DB
	Reader *gorm.DB
}

// NewDatabaseConnections creates both writer and reader database connections
func NewDatabaseConnections(ctx context.Context, appEnv string, log *logger.Logger) (*DatabaseConnections, error) {
	writerConfig := getDatabaseConfig("POSTGRES_WRITER")
	readerConfig := getReaderConfig(writerConfig)
	poolConfig := getConnectionPoolConfig()
	retryConfig := getConnectRetryConfig()

	writer, err := createDatabaseConnection(ctx, "writer", writerConfig, poolConfig, retryConfig, appEnv, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create writer database connection: %w", err)
	}

	if *readerConfig == *writerConfig {
		return &DatabaseConnections{Writer: writer, Reader: writer}, nil
	}

	reader, err := createDatabaseConnection(ctx, "reader", readerConfig, poolConfig, retryConfig, appEnv, log)
	if err != nil {
		if sqlDB, dbErr := writer.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to create reader database connection: %w", err)
	}

	return &DatabaseConnections{
		Writer: writer,
		Reader: reader,
	}, nil
}

// Close closes both writer and reader database connections
func (dc *DatabaseConnections) Close() error {
	var writerErr, readerErr error

	if dc.Writer != nil {
		if sqlDB, err := dc.Writer.DB(); err == nil {
			writerErr = sqlDB.Close()
		}
	}

	if dc.Reader != nil && dc.Reader != dc.Writer {
		if sqlDB, err := dc.Reader.DB(); err == nil {
			readerErr = sqlDB.Close()
		}
	}

	if writerErr != nil {
		return fmt.Errorf("failed to close writer database connection: %w", writerErr)
	}
	if readerErr != nil {
		return fmt.Errorf("failed to close reader database connection: %w", readerErr)
	}

	return nil
}
