package auditlogs

import (
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/database/types"
	"github.com/google/uuid"
)

// Record is the security_events row.
type Record struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	EventType  string        `gorm:"column:event_type"`
	Severity   string        `gorm:"column:severity"`
	IPAddress  string        `gorm:"column:ip_address"`
	UserID     string        `gorm:"column:user_id"`
	Category   string        `gorm:"column:category"`
	UserAgent  string        `gorm:"column:user_agent"`
	Details    types.JSONMap `gorm:"column:details;type:jsonb"`
	OccurredAt time.Time     `gorm:"column:occurred_at"`
}

func (Record) TableName() string {
	return "security_events"
}

func NewRecord(event security.Event) Record {
	return Record{
		ID:         event.ID,
		EventType:  event.EventType,
		Severity:   string(event.Severity),
		IPAddress:  event.IPAddress,
		UserID:     event.UserID,
		Category:   event.Category,
		UserAgent:  event.UserAgent,
		Details:    types.JSONMap(event.Details),
		OccurredAt: event.OccurredAt,
	}
}
