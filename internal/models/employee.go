package models

import (
	"strings"
	"time"
)

// StatusActive marks employees that are visible in the employee listing.
const StatusActive = "active"

// WebIDPrefix prefixes synthesized identifiers of users who authenticated
// through the web login instead of Telegram. Such users never receive
// bot notifications.
const WebIDPrefix = "web_"

// Employee represents a registered operator of the system.
// The identifier is either a numeric Telegram ID or a synthesized
// web-session ID of the form "web_<unix_timestamp>".
type Employee struct {
	TelegramID string    `json:"tg_id"`    // TelegramID is the external identifier of the employee.
	Name       string    `json:"name"`     // Name is the display name of the employee.
	Role       string    `json:"role"`     // Role is one of the fixed restaurant roles.
	Location   string    `json:"location"` // Location is the restaurant location.
	Status     string    `json:"status"`   // Status is "active" or another lifecycle state.
	CreatedAt  time.Time `json:"-"`        // CreatedAt is when the employee record was created.
}

// IsWebSession reports whether the given identifier was synthesized by the
// web login rather than issued by Telegram.
func IsWebSession(id string) bool {
	return strings.HasPrefix(id, WebIDPrefix)
}
