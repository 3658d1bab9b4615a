package security

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

const (
	EventTypeAuthFailure          = "auth_failure"
	EventTypeAuthLockout          = "auth_lockout"
	EventTypeIPBlacklisted        = "ip_blacklisted"
	EventTypeBlacklistedIPAttempt = "blacklisted_ip_attempt"
	EventTypeGuardStoreFailure    = "guard_store_failure"
	EventTypeAdminUnlock          = "admin_unlock"
	EventTypeAdminBlacklist       = "admin_blacklist"
	EventTypeAdminUnblacklist     = "admin_unblacklist"
)

type Event struct {
	ID         uuid.UUID      `json:"id"`
	EventType  string         `json:"event_type"`
	Severity   Severity       `json:"severity"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	Category   string         `json:"category,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func NewEvent(eventType string, severity Severity) Event {
	return Event{
		ID:         uuid.New(),
		EventType:  eventType,
		Severity:   severity,
		Details:    make(map[string]any),
		OccurredAt: time.Now().UTC(),
	}
}

// Emitter is fire-and-forget: implementations must never block the caller on
// delivery.
//
//go:generate mockery --name=Emitter --dir=. --output=../../../mocks --filename=emitter_mock.go --case=underscore --with-expecter
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// Sink delivers one event to a backend. Sinks are driven by a dispatcher and
// may block.
type Sink interface {
	Name() string
	Handle(ctx context.Context, event Event) error
	Close() error
}
