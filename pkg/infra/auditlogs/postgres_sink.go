package auditlogs

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postgresSink struct {
	db *gorm.DB
}

func NewPostgresSink(db *gorm.DB) security.Sink {
	return &postgresSink{db: db}
}

func (s *postgresSink) Name() string {
	return SinkNamePostgres
}

func (s *postgresSink) Handle(ctx context.Context, event security.Event) error {
	record := NewRecord(event)
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert security event: %w", err)
	}
	return nil
}

// Close is a no-op: the connection is owned by the container.
func (s *postgresSink) Close() error {
	return nil
}
