package business

import "github.com/google/uuid"

// Zone is a geographic permit pricing area.
type Zone struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
}
