package business

import (
	"time"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/pkg/dateutil"
	"github.com/google/uuid"
)

// Permit is one resident parking permit. Fixed-period permits carry an
// end time and a month count; open-ended permits are renewed one month
// at a time and may momentarily carry more than one paid month when the
// payment platform has already renewed them.
type Permit struct {
	ID             uuid.UUID  `json:"id"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	VehicleID      uuid.UUID  `json:"vehicle_id"`
	ZoneID         uuid.UUID  `json:"zone_id"`
	ZoneName       string     `json:"zone_name"`
	ContractType   string     `json:"contract_type"`
	Status         string     `json:"status"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	MonthCount     int        `json:"month_count"`
	PrimaryVehicle bool       `json:"primary_vehicle"`

	VehicleRegistration  string `json:"vehicle_registration"`
	VehicleIsLowEmission bool   `json:"vehicle_is_low_emission"`
}

// IsOpenEnded reports whether the permit has no fixed end.
func (p *Permit) IsOpenEnded() bool {
	return p.ContractType == constants.ContractTypeOpenEnded
}

// IsFixedPeriod reports whether the permit has a fixed end date.
func (p *Permit) IsFixedPeriod() bool {
	return p.ContractType == constants.ContractTypeFixedPeriod
}

// IsValid reports whether the permit is currently in force.
func (p *Permit) IsValid() bool {
	return p.Status == constants.PermitStatusValid
}

// ProductType returns the product type the permit is priced against.
// Company permits are not sold yet, so this is always RESIDENT.
func (p *Permit) ProductType() string {
	return constants.ProductTypeResident
}

// IsSecondary reports whether this is the customer's secondary vehicle
// permit, which carries a price surcharge.
func (p *Permit) IsSecondary() bool {
	return !p.PrimaryVehicle
}

// MonthsUsed returns the number of started months as of now. For
// fixed-period permits the month count acts as an upper bound, which
// keeps MonthsLeft non-negative.
func (p *Permit) MonthsUsed(now time.Time) int {
	diff := dateutil.DiffMonthsCeil(p.StartTime, now)
	if p.IsFixedPeriod() && diff > p.MonthCount {
		return p.MonthCount
	}
	return diff
}

// MonthsLeft returns the number of unused months for a fixed-period
// permit. For an open-ended permit it returns 1 if the permit has not
// started yet and 0 otherwise.
func (p *Permit) MonthsLeft(now time.Time) int {
	if p.IsOpenEnded() {
		if p.StartTime.After(now) {
			return 1
		}
		return 0
	}
	return p.MonthCount - p.MonthsUsed(now)
}

// CurrentPeriodStartTime returns the start of the billing period that
// contains now.
func (p *Permit) CurrentPeriodStartTime(now time.Time) time.Time {
	if p.IsOpenEnded() {
		return p.StartTime
	}
	return dateutil.AddMonths(p.StartTime, p.MonthsUsed(now)-1)
}

// CurrentPeriodEndTime returns the end of the billing period that
// contains now, or nil for an open-ended permit without an end time. If
// an open-ended permit has already been renewed for the next period the
// previous period's end time is returned.
func (p *Permit) CurrentPeriodEndTime(now time.Time) *time.Time {
	if p.IsOpenEnded() {
		if p.EndTime != nil {
			prev := dateutil.AddMonths(*p.EndTime, -1)
			if prev.After(now) {
				return &prev
			}
		}
		return p.EndTime
	}
	end := dateutil.MaxTime(p.StartTime, dateutil.PeriodEndTime(p.StartTime, p.MonthsUsed(now)))
	return &end
}

// NextPeriodStartTime returns the start of the first unbilled period.
func (p *Permit) NextPeriodStartTime(now time.Time) time.Time {
	return dateutil.AddMonths(p.StartTime, p.MonthsUsed(now))
}

// CanEndImmediately reports whether the permit can be closed right away.
func (p *Permit) CanEndImmediately(now time.Time) bool {
	return p.IsValid() && (p.EndTime == nil || now.Before(*p.EndTime))
}

// CanEndAfterCurrentPeriod reports whether the permit can be scheduled
// to close once the current billing period runs out.
func (p *Permit) CanEndAfterCurrentPeriod(now time.Time) bool {
	if !p.IsValid() || p.EndTime == nil {
		return false
	}
	periodEnd := p.CurrentPeriodEndTime(now)
	if periodEnd == nil {
		return false
	}
	return !dateutil.DateOf(*periodEnd).After(dateutil.DateOf(*p.EndTime))
}

// CanBeRefunded determines if a permit is refundable in principle. The
// exact amounts refunded may still be zero depending on individual
// refundable order amounts.
func (p *Permit) CanBeRefunded(now time.Time) bool {
	if !p.IsValid() {
		return false
	}
	if p.IsFixedPeriod() {
		return true
	}
	// open ended permit that has not started yet
	if p.CurrentPeriodStartTime(now).After(now) {
		return true
	}
	// the paid period extends more than one month out: this can happen
	// when the payment platform has already renewed the permit
	if p.EndTime != nil && dateutil.AddMonths(*p.EndTime, -1).After(now) {
		return true
	}
	return false
}
