package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/mocks"
	"github.com/citypermits/permits-api/internal/pkg/dateutil"
	"github.com/citypermits/permits-api/internal/services"
	"github.com/citypermits/permits-api/internal/types/business"
)

func newPermitService(t *testing.T, querier *mocks.MockQuerier) (*services.PermitService, *mocks.MockEmailSender) {
	pricing := newPricingService(querier)
	events := services.NewEventService(querier)
	email := mocks.NewMockEmailSenderForTest(t)
	return services.NewPermitService(querier, pricing, events, email), email
}

func TestCreateDraftPermit(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	customerID := uuid.New()
	vehicleID := uuid.New()
	zoneID := uuid.New()
	startTime := date(2025, time.January, 15)
	endTime := dateutil.PeriodEndTime(startTime, 6)

	created := testFixedPermit(zoneID, startTime, 6)
	created.CustomerID = customerID
	created.VehicleID = vehicleID

	querier.EXPECT().CountActivePermitsForVehicle(ctx, vehicleID).Return(0, nil)
	querier.EXPECT().ListActivePermitsForCustomer(ctx, customerID).Return(nil, nil)
	querier.EXPECT().CreatePermit(ctx, db.CreatePermitParams{
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		ZoneID:         zoneID,
		ContractType:   constants.ContractTypeFixedPeriod,
		StartTime:      startTime,
		EndTime:        &endTime,
		MonthCount:     6,
		PrimaryVehicle: true,
	}).Return(created, nil)
	querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)

	permit, err := service.CreateDraftPermit(ctx, services.CreateDraftPermitParams{
		CustomerID:   customerID,
		VehicleID:    vehicleID,
		ZoneID:       zoneID,
		ContractType: constants.ContractTypeFixedPeriod,
		StartTime:    startTime,
		MonthCount:   6,
	})
	require.NoError(t, err)
	assert.Equal(t, created, permit)
}

func TestCreateDraftPermit_OpenEndedForcesOneMonth(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	customerID := uuid.New()
	vehicleID := uuid.New()
	zoneID := uuid.New()
	startTime := date(2025, time.March, 1)
	endTime := dateutil.PeriodEndTime(startTime, 1)

	created := testOpenEndedPermit(zoneID, startTime)

	querier.EXPECT().CountActivePermitsForVehicle(ctx, vehicleID).Return(0, nil)
	querier.EXPECT().ListActivePermitsForCustomer(ctx, customerID).Return(nil, nil)
	querier.EXPECT().CreatePermit(ctx, db.CreatePermitParams{
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		ZoneID:         zoneID,
		ContractType:   constants.ContractTypeOpenEnded,
		StartTime:      startTime,
		EndTime:        &endTime,
		MonthCount:     1,
		PrimaryVehicle: true,
	}).Return(created, nil)
	querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)

	// the requested month count is ignored for open-ended permits
	_, err := service.CreateDraftPermit(ctx, services.CreateDraftPermitParams{
		CustomerID:   customerID,
		VehicleID:    vehicleID,
		ZoneID:       zoneID,
		ContractType: constants.ContractTypeOpenEnded,
		StartTime:    startTime,
		MonthCount:   6,
	})
	require.NoError(t, err)
}

func TestCreateDraftPermit_SecondPermitIsSecondary(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	customerID := uuid.New()
	vehicleID := uuid.New()
	zoneID := uuid.New()
	startTime := date(2025, time.January, 15)
	endTime := dateutil.PeriodEndTime(startTime, 6)

	existing := testFixedPermit(zoneID, date(2025, time.January, 1), 12)
	created := testFixedPermit(zoneID, startTime, 6)
	created.PrimaryVehicle = false

	querier.EXPECT().CountActivePermitsForVehicle(ctx, vehicleID).Return(0, nil)
	querier.EXPECT().ListActivePermitsForCustomer(ctx, customerID).
		Return([]*business.Permit{existing}, nil)
	querier.EXPECT().CreatePermit(ctx, db.CreatePermitParams{
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		ZoneID:         zoneID,
		ContractType:   constants.ContractTypeFixedPeriod,
		StartTime:      startTime,
		EndTime:        &endTime,
		MonthCount:     6,
		PrimaryVehicle: false,
	}).Return(created, nil)
	querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)

	permit, err := service.CreateDraftPermit(ctx, services.CreateDraftPermitParams{
		CustomerID:   customerID,
		VehicleID:    vehicleID,
		ZoneID:       zoneID,
		ContractType: constants.ContractTypeFixedPeriod,
		StartTime:    startTime,
		MonthCount:   6,
	})
	require.NoError(t, err)
	assert.True(t, permit.IsSecondary())
}

func TestCreateDraftPermit_Guards(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	vehicleID := uuid.New()
	zoneID := uuid.New()

	params := services.CreateDraftPermitParams{
		CustomerID:   customerID,
		VehicleID:    vehicleID,
		ZoneID:       zoneID,
		ContractType: constants.ContractTypeFixedPeriod,
		StartTime:    date(2025, time.January, 15),
		MonthCount:   6,
	}

	tests := []struct {
		name       string
		params     services.CreateDraftPermitParams
		setupMocks func(querier *mocks.MockQuerier)
		wantErr    error
	}{
		{
			name:   "vehicle already has a permit",
			params: params,
			setupMocks: func(querier *mocks.MockQuerier) {
				querier.EXPECT().CountActivePermitsForVehicle(ctx, vehicleID).Return(1, nil)
			},
			wantErr: business.ErrDuplicatePermit,
		},
		{
			name:   "customer at the two permit limit",
			params: params,
			setupMocks: func(querier *mocks.MockQuerier) {
				querier.EXPECT().CountActivePermitsForVehicle(ctx, vehicleID).Return(0, nil)
				querier.EXPECT().ListActivePermitsForCustomer(ctx, customerID).
					Return([]*business.Permit{{}, {}}, nil)
			},
			wantErr: business.ErrMaxPermits,
		},
		{
			name: "zero months",
			params: func() services.CreateDraftPermitParams {
				p := params
				p.MonthCount = 0
				return p
			}(),
			setupMocks: func(querier *mocks.MockQuerier) {
				querier.EXPECT().CountActivePermitsForVehicle(ctx, vehicleID).Return(0, nil)
				querier.EXPECT().ListActivePermitsForCustomer(ctx, customerID).Return(nil, nil)
			},
			wantErr: business.ErrInvalidMonthCount,
		},
		{
			name: "too many months",
			params: func() services.CreateDraftPermitParams {
				p := params
				p.MonthCount = 13
				return p
			}(),
			setupMocks: func(querier *mocks.MockQuerier) {
				querier.EXPECT().CountActivePermitsForVehicle(ctx, vehicleID).Return(0, nil)
				querier.EXPECT().ListActivePermitsForCustomer(ctx, customerID).Return(nil, nil)
			},
			wantErr: business.ErrInvalidMonthCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			querier := mocks.NewMockQuerierForTest(t)
			service, _ := newPermitService(t, querier)
			tt.setupMocks(querier)

			_, err := service.CreateDraftPermit(ctx, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEndPermit_Immediately(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, email := newPermitService(t, querier)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)
	permit.CustomerID = uuid.New()
	asOf := date(2025, time.March, 10)

	ended := *permit
	ended.Status = constants.PermitStatusClosed
	customer := &business.Customer{ID: permit.CustomerID}

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	querier.EXPECT().ListActivePermitsForCustomer(ctx, permit.CustomerID).
		Return([]*business.Permit{permit}, nil)
	querier.EXPECT().
		EndPermit(ctx, permit.ID, asOf, constants.PermitEndImmediately, constants.PermitStatusClosed).
		Return(&ended, nil)
	querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)
	querier.EXPECT().GetCustomer(ctx, permit.CustomerID).Return(customer, nil)
	email.EXPECT().SendPermitEnded(ctx, customer, &ended).Return(nil)

	result, err := service.EndPermit(ctx, permit.ID, constants.PermitEndImmediately, asOf)
	require.NoError(t, err)
	assert.Equal(t, constants.PermitStatusClosed, result.Status)
}

func TestEndPermit_PreviousDayEnd(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, email := newPermitService(t, querier)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)
	permit.CustomerID = uuid.New()
	asOf := date(2025, time.March, 10)
	endTime := dateutil.EndOfDay(date(2025, time.March, 9))
	customer := &business.Customer{ID: permit.CustomerID}

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	querier.EXPECT().ListActivePermitsForCustomer(ctx, permit.CustomerID).
		Return([]*business.Permit{permit}, nil)
	querier.EXPECT().
		EndPermit(ctx, permit.ID, endTime, constants.PermitEndPreviousDayEnd, constants.PermitStatusClosed).
		Return(permit, nil)
	querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)
	querier.EXPECT().GetCustomer(ctx, permit.CustomerID).Return(customer, nil)
	email.EXPECT().SendPermitEnded(ctx, customer, permit).Return(nil)

	_, err := service.EndPermit(ctx, permit.ID, constants.PermitEndPreviousDayEnd, asOf)
	require.NoError(t, err)
}

func TestEndPermit_AfterCurrentPeriodStaysValid(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, email := newPermitService(t, querier)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)
	permit.CustomerID = uuid.New()
	asOf := date(2025, time.March, 10)
	// the current period runs to march 14, which is in the future, so
	// the permit stays valid until then
	periodEnd := time.Date(2025, time.March, 14, 23, 59, 59, 999999000, time.UTC)
	customer := &business.Customer{ID: permit.CustomerID}

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	querier.EXPECT().ListActivePermitsForCustomer(ctx, permit.CustomerID).
		Return([]*business.Permit{permit}, nil)
	querier.EXPECT().
		EndPermit(ctx, permit.ID, periodEnd, constants.PermitEndAfterCurrentPeriod, constants.PermitStatusValid).
		Return(permit, nil)
	querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)
	querier.EXPECT().GetCustomer(ctx, permit.CustomerID).Return(customer, nil)
	email.EXPECT().SendPermitEnded(ctx, customer, permit).Return(nil)

	_, err := service.EndPermit(ctx, permit.ID, constants.PermitEndAfterCurrentPeriod, asOf)
	require.NoError(t, err)
}

func TestEndPermit_PrimaryBlockedBySecondary(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	primary := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)
	primary.CustomerID = uuid.New()
	secondary := testFixedPermit(primary.ZoneID, date(2025, time.February, 1), 6)
	secondary.CustomerID = primary.CustomerID
	secondary.PrimaryVehicle = false

	querier.EXPECT().GetPermit(ctx, primary.ID).Return(primary, nil)
	querier.EXPECT().ListActivePermitsForCustomer(ctx, primary.CustomerID).
		Return([]*business.Permit{primary, secondary}, nil)

	_, err := service.EndPermit(ctx, primary.ID, constants.PermitEndImmediately, date(2025, time.March, 10))
	assert.ErrorIs(t, err, business.ErrPermitCanNotBeEnded)
}

func TestEndPermit_NotValid(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)
	permit.CustomerID = uuid.New()
	permit.Status = constants.PermitStatusDraft

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	querier.EXPECT().ListActivePermitsForCustomer(ctx, permit.CustomerID).
		Return([]*business.Permit{permit}, nil)

	_, err := service.EndPermit(ctx, permit.ID, constants.PermitEndImmediately, date(2025, time.March, 10))
	assert.ErrorIs(t, err, business.ErrPermitCanNotBeEnded)
}

func TestExtendPermit(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)
	newEndTime := dateutil.PeriodEndTime(permit.StartTime, 8)

	extended := *permit
	extended.MonthCount = 8
	extended.EndTime = &newEndTime

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	querier.EXPECT().UpdatePermitPeriod(ctx, permit.ID, newEndTime, 8).Return(&extended, nil)
	querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)

	result, err := service.ExtendPermit(ctx, permit.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, result.MonthCount)
}

func TestExtendPermit_OverCap(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)

	_, err := service.ExtendPermit(ctx, permit.ID, 7)
	assert.ErrorIs(t, err, business.ErrInvalidMonthCount)
}

func TestExtendPermit_OpenEndedRejected(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	permit := testOpenEndedPermit(uuid.New(), date(2025, time.March, 1))

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)

	_, err := service.ExtendPermit(ctx, permit.ID, 2)
	assert.Error(t, err)
}

func TestRenewOpenEndedPermit(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	permit := testOpenEndedPermit(uuid.New(), date(2025, time.March, 1))
	newEndTime := dateutil.AddMonths(*permit.EndTime, 1)

	renewed := *permit
	renewed.EndTime = &newEndTime

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	querier.EXPECT().UpdatePermitPeriod(ctx, permit.ID, newEndTime, 1).Return(&renewed, nil)
	querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)

	result, err := service.RenewOpenEndedPermit(ctx, permit.ID)
	require.NoError(t, err)
	assert.Equal(t, newEndTime, *result.EndTime)
}

func TestRenewOpenEndedPermit_FixedRejected(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service, _ := newPermitService(t, querier)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)

	querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)

	_, err := service.RenewOpenEndedPermit(ctx, permit.ID)
	assert.Error(t, err)
}
