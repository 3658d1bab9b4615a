package auditlogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
)

type multiSink struct {
	sinks []security.Sink
}

// NewMultiSink delivers every event to all sinks. One failing sink does not
// stop the others.
func NewMultiSink(sinks ...security.Sink) security.Sink {
	return &multiSink{sinks: sinks}
}

func (m *multiSink) Name() string {
	return SinkNameMulti
}

func (m *multiSink) Handle(ctx context.Context, event security.Event) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.Handle(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (m *multiSink) Close() error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
		}
	}
	return errors.Join(errs...)
}
