package business

import "errors"

// ErrProductCatalog signals broken price catalog data: product windows
// that gap, overlap or fail to cover a permit's span, or an ambiguous
// single-product lookup. It is a data-entry problem for an administrator
// to fix, never something the pricing logic works around.
var ErrProductCatalog = errors.New("product catalog error, please report to admin")

// ErrPermitCanNotBeEnded is returned when ending a primary vehicle permit
// would leave an active secondary vehicle permit behind.
var ErrPermitCanNotBeEnded = errors.New("cannot close primary vehicle permit if an active secondary vehicle permit exists")

// ErrDuplicatePermit is returned when a customer already holds an active
// permit for the same vehicle.
var ErrDuplicatePermit = errors.New("permit for a given vehicle already exists")

// ErrMaxPermits is returned when a customer already holds the maximum
// of two active permits.
var ErrMaxPermits = errors.New("customer can not have more than two permits")

// ErrInvalidMonthCount is returned when a fixed-period permit is bought
// or extended outside the one to twelve month range.
var ErrInvalidMonthCount = errors.New("month count must be between 1 and 12")

// ErrRefundNotOpen is returned when settling a refund that has already
// been accepted or rejected.
var ErrRefundNotOpen = errors.New("refund has already been settled")
