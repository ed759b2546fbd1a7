package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog records one storefront write action (review, cart, listing,
// account form). Entries only live in memory.
type ActivityLog struct {
	ID           uuid.UUID `json:"id"`
	SessionID    string    `json:"session_id,omitempty"`
	Action       string    `json:"action"`        // submitted_review, added_cart, ...
	ResourceType string    `json:"resource_type"` // review, cart, listing, account
	ResourceID   string    `json:"resource_id,omitempty"`
	Status       string    `json:"status"` // success, failed
	StatusCode   int       `json:"status_code"`
	ErrorMessage string    `json:"error_message,omitempty"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	DeviceType   string    `json:"device_type"`
	Browser      string    `json:"browser"`
	OS           string    `json:"os"`
	CreatedAt    time.Time `json:"created_at"`
}

// ════════════════════════════════════════════════════════════
// Constants
// ════════════════════════════════════════════════════════════

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

const (
	ResourceTypeReview  = "review"
	ResourceTypeCart    = "cart"
	ResourceTypeListing = "listing"
	ResourceTypeAccount = "account"
)
