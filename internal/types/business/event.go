package business

import (
	"time"

	"github.com/google/uuid"
)

// Permit event types
const (
	EventTypeCreated = "CREATED"
	EventTypeUpdated = "UPDATED"
	EventTypeRenewed = "RENEWED"
	EventTypeEnded   = "ENDED"
)

// Permit event keys
const (
	EventKeyCreatePermit = "create_permit"
	EventKeyUpdatePermit = "update_permit"
	EventKeyExtendPermit = "extend_permit"
	EventKeyEndPermit    = "end_permit"
	EventKeyCreateOrder  = "create_order"
	EventKeyRenewOrder   = "renew_order"
	EventKeyCreateRefund = "create_refund"
)

// PermitEvent is one audit log row for a permit: who did what and when,
// with free-form context for the admin UI.
type PermitEvent struct {
	ID        uuid.UUID              `json:"id"`
	PermitID  uuid.UUID              `json:"permit_id"`
	Type      string                 `json:"type"`
	Key       string                 `json:"key"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context,omitempty"`
	CreatedBy string                 `json:"created_by,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
