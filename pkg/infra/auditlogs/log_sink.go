package auditlogs

import (
	"context"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/sirupsen/logrus"
)

type logSink struct {
	logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) security.Sink {
	return &logSink{logger: logger}
}

func (s *logSink) Name() string {
	return SinkNameLog
}

func (s *logSink) Handle(_ context.Context, event security.Event) error {
	entry := s.logger.WithFields(logrus.Fields{
		"security_event": event.EventType,
		"event_id":       event.ID.String(),
		"severity":       event.Severity,
		"ip_address":     event.IPAddress,
		"category":       event.Category,
		"details":        event.Details,
	})
	if event.UserID != "" {
		entry = entry.WithField("user_id", event.UserID)
	}
	switch event.Severity {
	case security.SeverityCritical:
		entry.Error("security event")
	case security.SeverityHigh:
		entry.Warn("security event")
	default:
		entry.Info("security event")
	}
	return nil
}

func (s *logSink) Close() error {
	return nil
}
