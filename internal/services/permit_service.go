package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/pkg/dateutil"
	"github.com/citypermits/permits-api/internal/types/business"
)

// PermitService manages the permit lifecycle: drafts, ending, extension
// and the monthly renewal of open-ended permits.
type PermitService struct {
	db      db.Querier
	pricing *PricingService
	events  *EventService
	email   EmailSender
	logger  *zap.Logger
}

// NewPermitService creates a new permit service.
func NewPermitService(querier db.Querier, pricing *PricingService, events *EventService, email EmailSender) *PermitService {
	return &PermitService{
		db:      querier,
		pricing: pricing,
		events:  events,
		email:   email,
		logger:  logger.Log,
	}
}

// CreateDraftPermitParams contains the parameters for a new draft
// permit.
type CreateDraftPermitParams struct {
	CustomerID   uuid.UUID `validate:"required"`
	VehicleID    uuid.UUID `validate:"required"`
	ZoneID       uuid.UUID `validate:"required"`
	ContractType string    `validate:"required,oneof=FIXED_PERIOD OPEN_ENDED"`
	StartTime    time.Time `validate:"required"`
	MonthCount   int
}

// CreateDraftPermit creates a draft permit after checking the vehicle
// does not already hold one and the customer is below the two-permit
// limit. The customer's second permit is always the secondary vehicle
// permit regardless of purchase order.
func (s *PermitService) CreateDraftPermit(ctx context.Context, params CreateDraftPermitParams) (*business.Permit, error) {
	count, err := s.db.CountActivePermitsForVehicle(ctx, params.VehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count vehicle permits")
	}
	if count > 0 {
		return nil, business.ErrDuplicatePermit
	}

	active, err := s.db.ListActivePermitsForCustomer(ctx, params.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer permits")
	}
	if len(active) >= 2 {
		return nil, business.ErrMaxPermits
	}

	monthCount := params.MonthCount
	if params.ContractType == constants.ContractTypeOpenEnded {
		monthCount = 1
	}
	if monthCount < 1 || monthCount > constants.MaxPermitMonths {
		return nil, business.ErrInvalidMonthCount
	}

	endTime := dateutil.PeriodEndTime(params.StartTime, monthCount)

	permit, err := s.db.CreatePermit(ctx, db.CreatePermitParams{
		CustomerID:     params.CustomerID,
		VehicleID:      params.VehicleID,
		ZoneID:         params.ZoneID,
		ContractType:   params.ContractType,
		StartTime:      params.StartTime,
		EndTime:        &endTime,
		MonthCount:     monthCount,
		PrimaryVehicle: len(active) == 0,
	})
	if err != nil {
		return nil, err
	}

	s.events.Record(ctx, db.CreatePermitEventParams{
		PermitID: permit.ID,
		Type:     business.EventTypeCreated,
		Key:      business.EventKeyCreatePermit,
		Message:  "Permit created",
		Context: map[string]interface{}{
			"contract_type": permit.ContractType,
			"month_count":   permit.MonthCount,
		},
	})
	return permit, nil
}

// GetPermit returns a permit by id.
func (s *PermitService) GetPermit(ctx context.Context, id uuid.UUID) (*business.Permit, error) {
	return s.db.GetPermit(ctx, id)
}

// ListPermitsForCustomer returns all of a customer's permits.
func (s *PermitService) ListPermitsForCustomer(ctx context.Context, customerID uuid.UUID) ([]*business.Permit, error) {
	return s.db.ListPermitsForCustomer(ctx, customerID)
}

// EndPermit ends a valid permit with the requested end type. A primary
// vehicle permit can not be ended while the customer still holds an
// active secondary vehicle permit.
func (s *PermitService) EndPermit(ctx context.Context, permitID uuid.UUID, endType string, asOf time.Time) (*business.Permit, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}

	if permit.PrimaryVehicle {
		active, err := s.db.ListActivePermitsForCustomer(ctx, permit.CustomerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list customer permits")
		}
		for _, other := range active {
			if other.ID != permit.ID && other.IsSecondary() {
				return nil, business.ErrPermitCanNotBeEnded
			}
		}
	}

	var endTime time.Time
	switch endType {
	case constants.PermitEndImmediately:
		if !permit.CanEndImmediately(asOf) {
			return nil, business.ErrPermitCanNotBeEnded
		}
		endTime = asOf
	case constants.PermitEndPreviousDayEnd:
		if !permit.CanEndImmediately(asOf) {
			return nil, business.ErrPermitCanNotBeEnded
		}
		endTime = dateutil.EndOfDay(asOf.AddDate(0, 0, -1))
	case constants.PermitEndAfterCurrentPeriod:
		if !permit.CanEndAfterCurrentPeriod(asOf) {
			return nil, business.ErrPermitCanNotBeEnded
		}
		periodEnd := permit.CurrentPeriodEndTime(asOf)
		if periodEnd == nil {
			return nil, business.ErrPermitCanNotBeEnded
		}
		endTime = *periodEnd
	default:
		return nil, errors.Errorf("unknown permit end type %q", endType)
	}

	// a permit ended in the future stays valid until the end time passes
	status := constants.PermitStatusValid
	if !endTime.After(asOf) {
		status = constants.PermitStatusClosed
	}

	ended, err := s.db.EndPermit(ctx, permit.ID, endTime, endType, status)
	if err != nil {
		return nil, err
	}

	s.events.Record(ctx, db.CreatePermitEventParams{
		PermitID: permit.ID,
		Type:     business.EventTypeEnded,
		Key:      business.EventKeyEndPermit,
		Message:  "Permit ended",
		Context: map[string]interface{}{
			"end_type": endType,
			"end_time": endTime,
		},
	})

	if customer, err := s.db.GetCustomer(ctx, permit.CustomerID); err != nil {
		s.logger.Warn("failed to get customer for permit ended email",
			zap.Error(err),
			zap.String("permit_id", permit.ID.String()))
	} else if err := s.email.SendPermitEnded(ctx, customer, ended); err != nil {
		s.logger.Warn("failed to send permit ended email",
			zap.Error(err),
			zap.String("permit_id", permit.ID.String()))
	}

	s.logger.Info("permit ended",
		zap.String("permit_id", permit.ID.String()),
		zap.String("end_type", endType),
		zap.Time("end_time", endTime))
	return ended, nil
}

// GetPermitPrices returns the checkout price rows for a prospective
// permit, before any draft exists.
func (s *PermitService) GetPermitPrices(ctx context.Context, zoneID uuid.UUID, isLowEmission, isSecondary bool, startTime time.Time, monthCount int) ([]*business.PermitPrice, error) {
	start := dateutil.DateOf(startTime)
	end := dateutil.DateOf(dateutil.PeriodEndTime(start, monthCount))
	return s.pricing.GetPermitPrices(ctx, zoneID, constants.ProductTypeResident, isLowEmission, isSecondary, start, end)
}

// GetExtensionPriceList returns the price rows for buying additional
// months on a valid fixed-period permit.
func (s *PermitService) GetExtensionPriceList(ctx context.Context, permitID uuid.UUID, monthCount int) ([]*business.ExtensionPriceItem, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}
	if monthCount < 1 || permit.MonthCount+monthCount > constants.MaxPermitMonths {
		return nil, business.ErrInvalidMonthCount
	}
	return s.pricing.GetPriceListForExtendedPermit(ctx, permit, monthCount)
}

// ExtendPermit adds months to a valid fixed-period permit after the
// extension order has been paid.
func (s *PermitService) ExtendPermit(ctx context.Context, permitID uuid.UUID, monthCount int) (*business.Permit, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}
	if !permit.IsValid() || !permit.IsFixedPeriod() {
		return nil, errors.New("only valid fixed period permits can be extended")
	}
	if monthCount < 1 || permit.MonthCount+monthCount > constants.MaxPermitMonths {
		return nil, business.ErrInvalidMonthCount
	}

	newMonthCount := permit.MonthCount + monthCount
	newEndTime := dateutil.PeriodEndTime(permit.StartTime, newMonthCount)

	extended, err := s.db.UpdatePermitPeriod(ctx, permit.ID, newEndTime, newMonthCount)
	if err != nil {
		return nil, err
	}

	s.events.Record(ctx, db.CreatePermitEventParams{
		PermitID: permit.ID,
		Type:     business.EventTypeUpdated,
		Key:      business.EventKeyExtendPermit,
		Message:  "Permit extended",
		Context: map[string]interface{}{
			"added_months": monthCount,
			"month_count":  newMonthCount,
		},
	})
	return extended, nil
}

// RenewOpenEndedPermit moves a valid open-ended permit's paid period
// one month forward. Called when the payment platform confirms the
// monthly subscription charge.
func (s *PermitService) RenewOpenEndedPermit(ctx context.Context, permitID uuid.UUID) (*business.Permit, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}
	if !permit.IsValid() || !permit.IsOpenEnded() {
		return nil, errors.New("only valid open ended permits can be renewed")
	}
	if permit.EndTime == nil {
		return nil, errors.Errorf("open ended permit %s has no period end time", permit.ID)
	}

	newEndTime := dateutil.AddMonths(*permit.EndTime, 1)
	renewed, err := s.db.UpdatePermitPeriod(ctx, permit.ID, newEndTime, permit.MonthCount)
	if err != nil {
		return nil, err
	}

	s.events.Record(ctx, db.CreatePermitEventParams{
		PermitID: permit.ID,
		Type:     business.EventTypeRenewed,
		Key:      business.EventKeyRenewOrder,
		Message:  "Permit renewed for the next month",
		Context: map[string]interface{}{
			"end_time": newEndTime,
		},
	})
	return renewed, nil
}

// GetPriceChangeList computes the price deltas a zone or emission
// status change would cause from the next unbilled period on.
func (s *PermitService) GetPriceChangeList(ctx context.Context, permitID, newZoneID uuid.UUID, newIsLowEmission bool, asOf time.Time) ([]*business.PriceChangeItem, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}
	return s.pricing.GetPriceChangeList(ctx, permit, newZoneID, newIsLowEmission, asOf)
}
