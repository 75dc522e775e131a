package constants

// Contract types
const (
	ContractTypeFixedPeriod = "FIXED_PERIOD"
	ContractTypeOpenEnded   = "OPEN_ENDED"
)

// Permit statuses
const (
	PermitStatusDraft             = "DRAFT"
	PermitStatusPreliminary       = "PRELIMINARY"
	PermitStatusPaymentInProgress = "PAYMENT_IN_PROGRESS"
	PermitStatusValid             = "VALID"
	PermitStatusCancelled         = "CANCELLED"
	PermitStatusClosed            = "CLOSED"
)

// Permit end types
const (
	PermitEndImmediately        = "IMMEDIATELY"
	PermitEndPreviousDayEnd     = "PREVIOUS_DAY_END"
	PermitEndAfterCurrentPeriod = "AFTER_CURRENT_PERIOD"
)

// Product types
const (
	ProductTypeResident = "RESIDENT"
	ProductTypeCompany  = "COMPANY"
)

// Order statuses
const (
	OrderStatusDraft     = "DRAFT"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusCancelled = "CANCELLED"
)

// Refund statuses
const (
	RefundStatusOpen     = "OPEN"
	RefundStatusAccepted = "ACCEPTED"
	RefundStatusRejected = "REJECTED"
)

// MaxPermitMonths is the longest period a fixed-period permit can be
// bought or extended for in one go.
const MaxPermitMonths = 12
