package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/metrics"
	"github.com/kingrain94/saas-platform-api/internal/utils"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

const (
	EntityTenant   = "tenant"
	EntityCustomer = "customer"
	EntityUser     = "user"
	EntityUserRole = "user_role"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

//go:generate mockery --name ChangePublisher --output ../mocks
type ChangePublisher interface {
	Publish(ctx context.Context, event *dto.ChangeEvent) error
}

// changeNotifier is embedded by every service. Events are sent only after the
// write has been committed; a failed publish never fails the request.
type changeNotifier struct {
	publisher ChangePublisher
	logger    *logger.Logger
}

func newChangeNotifier(log *logger.Logger) changeNotifier {
	if log == nil {
		log = logger.NewNop()
	}
	return changeNotifier{logger: log}
}

// SetChangePublisher sets the change feed publisher
func (n *changeNotifier) SetChangePublisher(publisher ChangePublisher) {
	n.publisher = publisher
}

func (n *changeNotifier) notify(ctx context.Context, tenantID uuid.UUID, entity, action string, entityID uuid.UUID) {
	if n.publisher == nil {
		return
	}

	event := dto.NewChangeEvent(tenantID, entity, action, entityID, utils.GetUserIDFromContext(ctx))
	if err := n.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		n.logger.Warn("failed to publish change event",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.String("entity_id", event.EntityID),
			zap.Error(err))
		metrics.ObserveChangeEvent(entity, "failed")
		return
	}
	metrics.ObserveChangeEvent(entity, "published")
}

func mapPage[E, R any](page *domain.Page[E], convert func([]E) []R) *domain.Page[R] {
	return &domain.Page[R]{
		Items:      convert(page.Items),
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
