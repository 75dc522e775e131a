package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/types/business"
)

// EventService appends audit rows to a permit's history. Audit failures
// are logged but never abort the operation being audited.
type EventService struct {
	db     db.Querier
	logger *zap.Logger
}

// NewEventService creates a new event service.
func NewEventService(querier db.Querier) *EventService {
	return &EventService{
		db:     querier,
		logger: logger.Log,
	}
}

// Record appends an audit row for a permit.
func (s *EventService) Record(ctx context.Context, params db.CreatePermitEventParams) {
	if _, err := s.db.CreatePermitEvent(ctx, params); err != nil {
		s.logger.Error("failed to record permit event",
			zap.Error(err),
			zap.String("permit_id", params.PermitID.String()),
			zap.String("key", params.Key))
	}
}

// ListEvents returns a permit's audit history, newest first.
func (s *EventService) ListEvents(ctx context.Context, permitID uuid.UUID) ([]*business.PermitEvent, error) {
	return s.db.ListPermitEvents(ctx, permitID)
}
