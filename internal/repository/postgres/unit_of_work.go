package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/saas-platform-api/internal/metrics"
	"github.com/kingrain94/saas-platform-api/internal/repository"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

type opKind int

const (
	opInsert opKind = iota
	opUpdate
	opDelete
)

func (k opKind) String() string {
	switch k {
	case opInsert:
		return "insert"
	case opUpdate:
		return "update"
	default:
		return "delete"
	}
}

type pendingOp struct {
	kind   opKind
	entity any
}

type identifiable interface {
	EnsureID()
}

type creationStamped interface {
	StampCreated(at time.Time)
}

type modificationStamped interface {
	StampModified(at time.Time)
}

// creation audit is written once, on insert
var immutableColumns = []string{"created_date", "created_by"}

// session is the state shared by a unit of work and the repositories it owns.
type session struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	tx       *gorm.DB
	pending  []pendingOp
	flushes  int
	closed   bool
	now      func() time.Time
}

// conn is used for point lookups and uniqueness checks.
func (s *session) conn(ctx context.Context) *gorm.DB {
	return s.pick(ctx, s.writerDB)
}

// readConn is used for list, search and paged queries.
func (s *session) readConn(ctx context.Context) *gorm.DB {
	return s.pick(ctx, s.readerDB)
}

func (s *session) pick(ctx context.Context, db *gorm.DB) *gorm.DB {
	if s.closed {
		tx := s.writerDB.Session(&gorm.Session{NewDB: true, Context: ctx})
		_ = tx.AddError(repository.ErrUnitOfWorkClosed)
		return tx
	}
	if s.tx != nil {
		return s.tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

func (s *session) stage(kind opKind, entity any) {
	if kind == opInsert {
		if e, ok := entity.(identifiable); ok {
			e.EnsureID()
		}
	}
	s.pending = append(s.pending, pendingOp{kind: kind, entity: entity})
}

type unitOfWork struct {
	s      *session
	logger *logger.Logger

	tenants   *TenantRepository
	customers *CustomerRepository
	users     *UserRepository
	userRoles *UserRoleRepository
}

func newUnitOfWork(writerDB, readerDB *gorm.DB, log *logger.Logger) *unitOfWork {
	s := &session{
		writerDB: writerDB,
		readerDB: readerDB,
		now:      func() time.Time { return time.Now().UTC() },
	}
	return &unitOfWork{
		s:         s,
		logger:    log,
		tenants:   newTenantRepository(s),
		customers: newCustomerRepository(s),
		users:     newUserRepository(s),
		userRoles: newUserRoleRepository(s),
	}
}

func (u *unitOfWork) Tenants() repository.TenantRepository {
	return u.tenants
}

func (u *unitOfWork) Customers() repository.CustomerRepository {
	return u.customers
}

func (u *unitOfWork) Users() repository.UserRepository {
	return u.users
}

func (u *unitOfWork) UserRoles() repository.UserRoleRepository {
	return u.userRoles
}

func (u *unitOfWork) InTransaction() bool {
	return u.s.tx != nil
}

func (u *unitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	if u.s.closed {
		return 0, repository.ErrUnitOfWorkClosed
	}
	if len(u.s.pending) == 0 {
		return 0, nil
	}

	var affected int64
	var err error
	if u.s.tx != nil {
		affected, err = u.flushInTransaction(ctx)
	} else {
		err = u.s.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var flushErr error
			affected, flushErr = u.flush(tx)
			return flushErr
		})
	}
	metrics.ObserveFlush(err, affected)
	if err != nil {
		return 0, err
	}

	u.s.pending = nil
	return affected, nil
}

// flushInTransaction runs the flush behind a savepoint. A failed batch is
// rolled back to it, so the open transaction and the staged ops are exactly
// as they were before the call and a corrected retry can succeed.
func (u *unitOfWork) flushInTransaction(ctx context.Context) (int64, error) {
	tx := u.s.tx.WithContext(ctx)
	u.s.flushes++
	savepoint := fmt.Sprintf("uow_flush_%d", u.s.flushes)

	if err := tx.SavePoint(savepoint).Error; err != nil {
		return 0, fmt.Errorf("failed to set savepoint: %w", err)
	}

	affected, err := u.flush(tx)
	if err != nil {
		if rbErr := tx.RollbackTo(savepoint).Error; rbErr != nil {
			return 0, errors.Join(err, fmt.Errorf("failed to roll back to savepoint: %w", rbErr))
		}
		return 0, err
	}
	return affected, nil
}

// flush applies staged operations in the order they were staged.
func (u *unitOfWork) flush(tx *gorm.DB) (int64, error) {
	now := u.s.now()
	var total int64

	for _, op := range u.s.pending {
		var result *gorm.DB
		switch op.kind {
		case opInsert:
			if e, ok := op.entity.(creationStamped); ok {
				e.StampCreated(now)
			}
			result = tx.Omit(clause.Associations).Create(op.entity)
		case opUpdate:
			if e, ok := op.entity.(modificationStamped); ok {
				e.StampModified(now)
			}
			result = tx.Model(op.entity).Select("*").Omit(append(immutableColumns, clause.Associations)...).Updates(op.entity)
		case opDelete:
			result = tx.Delete(op.entity)
		}
		if result.Error != nil {
			u.logger.Debug("flush failed", zap.Stringer("op", op.kind), zap.Error(result.Error))
			return 0, result.Error
		}
		total += result.RowsAffected
	}

	return total, nil
}

func (u *unitOfWork) BeginTransaction(ctx context.Context) error {
	if u.s.closed {
		return repository.ErrUnitOfWorkClosed
	}
	if u.s.tx != nil {
		return repository.ErrTransactionInProgress
	}

	tx := u.s.writerDB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.s.tx = tx
	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.s.closed {
		return repository.ErrUnitOfWorkClosed
	}
	if u.s.tx == nil {
		_, err := u.SaveChanges(ctx)
		return err
	}

	if _, err := u.SaveChanges(ctx); err != nil {
		u.logger.Error("flush before commit failed, rolling back", err)
		if rbErr := u.Rollback(); rbErr != nil {
			u.logger.Error("rollback after failed flush", rbErr)
		}
		return err
	}

	tx := u.s.tx
	u.s.tx = nil
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("commit failed", err)
		_ = tx.Rollback()
		metrics.ObserveTransaction("commit_failed")
		return err
	}

	metrics.ObserveTransaction("commit")
	return nil
}

func (u *unitOfWork) Rollback() error {
	if u.s.closed {
		return nil
	}
	u.s.pending = nil
	if u.s.tx == nil {
		return nil
	}

	tx := u.s.tx
	u.s.tx = nil
	metrics.ObserveTransaction("rollback")
	if err := tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func (u *unitOfWork) Close() error {
	if u.s.closed {
		return nil
	}
	err := u.Rollback()
	u.s.closed = true
	u.s.pending = nil
	return err
}
