package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/saas-platform-api/internal/config"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/repository"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

// Store hands out units of work over the writer and reader pools.
type Store struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	logger   *logger.Logger
}

func NewStore(dbConnections *config.DatabaseConnections, log *logger.Logger) *Store {
	return NewStoreFromDB(dbConnections.Writer, dbConnections.Reader, log)
}

// NewStoreFromDB builds a Store from existing handles. A nil reader falls back
// to the writer.
func NewStoreFromDB(writerDB, readerDB *gorm.DB, log *logger.Logger) *Store {
	if readerDB == nil {
		readerDB = writerDB
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{
		writerDB: writerDB,
		readerDB: readerDB,
		logger:   log,
	}
}

// NewUnitOfWork opens a fresh session with all repositories bound to it.
func (s *Store) NewUnitOfWork() repository.UnitOfWork {
	return newUnitOfWork(s.writerDB, s.readerDB, s.logger)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.writerDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate creates or updates the schema for every entity. Production
// deployments apply the SQL files under migrations/ instead.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.writerDB.WithContext(ctx).AutoMigrate(
		&domain.Tenant{},
		&domain.User{},
		&domain.Customer{},
		&domain.UserRole{},
	)
}
