package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// newTestStore opens a private in-memory database with the full schema.
// A single connection keeps the in-memory database alive and serializes
// access the way one request's unit of work would.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := NewStoreFromDB(db, nil, logger.NewNop())
	require.NoError(t, store.AutoMigrate(context.Background()))
	return store
}

func newTenant(code string) *domain.Tenant {
	return &domain.Tenant{
		Name:               "Tenant " + code,
		Code:               code,
		SubscriptionPlanID: "basic",
		Status:             domain.StatusActive,
		ContactEmail:       strings.ToLower(code) + "@example.com",
		IsActive:           true,
		MaxUsers:           10,
		MaxStorageGB:       5,
	}
}

func newCustomer(tenantID uuid.UUID, code string, createdAt time.Time) *domain.Customer {
	c := &domain.Customer{
		TenantID:          tenantID,
		CustomerCode:      code,
		CustomerType:      domain.CustomerTypeIndividual,
		FirstName:         "First" + code,
		LastName:          "Last" + code,
		Email:             strings.ToLower(code) + "@customers.test",
		Status:            domain.StatusActive,
		PreferredLanguage: domain.DefaultPreferredLanguage,
		CreditLimit:       decimal.NewFromInt(1000),
		IsActive:          true,
	}
	c.CreatedDate = createdAt
	return c
}

func newUser(tenantID uuid.UUID, email string) *domain.User {
	return &domain.User{
		TenantID:  tenantID,
		UserName:  strings.Split(email, "@")[0],
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
	}
}

// seed stages entities and flushes them in one unit of work.
func seed(t *testing.T, store *Store, stage func(uow *unitOfWork)) {
	t.Helper()
	uow := store.NewUnitOfWork().(*unitOfWork)
	defer uow.Close()

	stage(uow)
	_, err := uow.SaveChanges(context.Background())
	require.NoError(t, err)
}
