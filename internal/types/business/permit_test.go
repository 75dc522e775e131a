package business_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/pkg/dateutil"
	"github.com/citypermits/permits-api/internal/types/business"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixedPermit(start time.Time, months int) *business.Permit {
	end := dateutil.PeriodEndTime(start, months)
	return &business.Permit{
		ContractType: constants.ContractTypeFixedPeriod,
		Status:       constants.PermitStatusValid,
		StartTime:    start,
		EndTime:      &end,
		MonthCount:   months,
	}
}

func openEndedPermit(start time.Time) *business.Permit {
	end := dateutil.PeriodEndTime(start, 1)
	return &business.Permit{
		ContractType: constants.ContractTypeOpenEnded,
		Status:       constants.PermitStatusValid,
		StartTime:    start,
		EndTime:      &end,
		MonthCount:   1,
	}
}

func TestPermitMonthsUsed(t *testing.T) {
	permit := fixedPermit(date(2025, time.January, 15), 6)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"first day", date(2025, time.January, 15), 1},
		{"mid first month", date(2025, time.February, 10), 1},
		{"second month started", date(2025, time.February, 15), 2},
		{"last month", date(2025, time.July, 1), 6},
		{"capped at month count", date(2026, time.January, 1), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permit.MonthsUsed(tt.now))
		})
	}
}

func TestPermitMonthsLeft(t *testing.T) {
	permit := fixedPermit(date(2025, time.January, 15), 6)

	assert.Equal(t, 5, permit.MonthsLeft(date(2025, time.February, 10)))
	assert.Equal(t, 0, permit.MonthsLeft(date(2025, time.July, 1)))
	assert.Equal(t, 0, permit.MonthsLeft(date(2026, time.January, 1)))

	openEnded := openEndedPermit(date(2025, time.March, 1))
	assert.Equal(t, 1, openEnded.MonthsLeft(date(2025, time.February, 20)))
	assert.Equal(t, 0, openEnded.MonthsLeft(date(2025, time.March, 10)))
}

func TestPermitCurrentPeriod(t *testing.T) {
	permit := fixedPermit(date(2025, time.January, 15), 6)

	now := date(2025, time.March, 20)
	assert.Equal(t, date(2025, time.March, 15), permit.CurrentPeriodStartTime(now))

	periodEnd := permit.CurrentPeriodEndTime(now)
	assert.NotNil(t, periodEnd)
	assert.Equal(t, time.Date(2025, time.April, 14, 23, 59, 59, 999999000, time.UTC), *periodEnd)

	assert.Equal(t, date(2025, time.April, 15), permit.NextPeriodStartTime(now))
}

func TestPermitCurrentPeriodOpenEnded(t *testing.T) {
	permit := openEndedPermit(date(2025, time.March, 1))
	now := date(2025, time.March, 10)

	assert.Equal(t, date(2025, time.March, 1), permit.CurrentPeriodStartTime(now))

	periodEnd := permit.CurrentPeriodEndTime(now)
	assert.NotNil(t, periodEnd)
	assert.Equal(t, *permit.EndTime, *periodEnd)

	// already renewed for the next period: the current period ends a
	// month before the paid end
	renewedEnd := dateutil.AddMonths(*permit.EndTime, 1)
	permit.EndTime = &renewedEnd
	periodEnd = permit.CurrentPeriodEndTime(now)
	assert.NotNil(t, periodEnd)
	assert.Equal(t, dateutil.AddMonths(renewedEnd, -1), *periodEnd)
}

func TestPermitCanEndImmediately(t *testing.T) {
	permit := fixedPermit(date(2025, time.January, 15), 6)

	assert.True(t, permit.CanEndImmediately(date(2025, time.March, 1)))
	assert.False(t, permit.CanEndImmediately(date(2025, time.August, 1)))

	permit.Status = constants.PermitStatusDraft
	assert.False(t, permit.CanEndImmediately(date(2025, time.March, 1)))
}

func TestPermitCanEndAfterCurrentPeriod(t *testing.T) {
	permit := fixedPermit(date(2025, time.January, 15), 6)

	assert.True(t, permit.CanEndAfterCurrentPeriod(date(2025, time.March, 1)))

	// in the last period the current period end equals the permit end
	assert.True(t, permit.CanEndAfterCurrentPeriod(date(2025, time.July, 1)))

	permit.Status = constants.PermitStatusClosed
	assert.False(t, permit.CanEndAfterCurrentPeriod(date(2025, time.March, 1)))
}

func TestPermitCanBeRefunded(t *testing.T) {
	fixed := fixedPermit(date(2025, time.January, 15), 6)
	assert.True(t, fixed.CanBeRefunded(date(2025, time.March, 1)))

	fixed.Status = constants.PermitStatusClosed
	assert.False(t, fixed.CanBeRefunded(date(2025, time.March, 1)))

	// a started open-ended permit with only the current month paid has
	// nothing to refund
	openEnded := openEndedPermit(date(2025, time.March, 1))
	assert.False(t, openEnded.CanBeRefunded(date(2025, time.March, 10)))

	// not started yet
	assert.True(t, openEnded.CanBeRefunded(date(2025, time.February, 20)))

	// renewed ahead by the payment platform
	renewedEnd := dateutil.AddMonths(*openEnded.EndTime, 1)
	openEnded.EndTime = &renewedEnd
	assert.True(t, openEnded.CanBeRefunded(date(2025, time.March, 10)))
}

func TestPermitIsSecondary(t *testing.T) {
	permit := &business.Permit{PrimaryVehicle: true}
	assert.False(t, permit.IsSecondary())
	permit.PrimaryVehicle = false
	assert.True(t, permit.IsSecondary())
}
