package notifications

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Type controls how a notification is styled by the host UI.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
)

// Notification is a system-generated alert. Entries are never persisted and
// never marked read by any current operation.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// DisplayTime renders the creation instant relative to now, e.g.
// "30 minutes ago".
func (n Notification) DisplayTime(now time.Time) string {
	return humanize.RelTime(n.CreatedAt, now, "ago", "from now")
}
