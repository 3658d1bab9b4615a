package auditlogs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

// Service fans security events out to a sink on background workers. Emit
// never blocks: events are dropped when the buffer is full.
type Service interface {
	security.Emitter
	Start()
	Close() error
}

type ServiceOpts struct {
	BufferSize int
	Workers    int
}

type service struct {
	logger  *logrus.Logger
	sink    security.Sink
	events  chan security.Event
	workers int
	wg      sync.WaitGroup
	closed  atomic.Bool
	once    sync.Once
	mu      sync.RWMutex
}

func NewService(logger *logrus.Logger, sink security.Sink, opts *ServiceOpts) Service {
	bufferSize, workers := defaultBufferSize, defaultWorkers
	if opts != nil {
		if opts.BufferSize > 0 {
			bufferSize = opts.BufferSize
		}
		if opts.Workers > 0 {
			workers = opts.Workers
		}
	}
	return &service{
		logger:  logger,
		sink:    sink,
		events:  make(chan security.Event, bufferSize),
		workers: workers,
	}
}

func (s *service) Start() {
	s.logger.WithFields(logrus.Fields{
		"sink":    s.sink.Name(),
		"workers": s.workers,
	}).Info("starting security event workers")
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for event := range s.events {
				s.deliver(event)
			}
		}()
	}
}

func (s *service) Emit(_ context.Context, event security.Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed.Load() {
		return
	}
	select {
	case s.events <- event:
	default:
		prometheus.SecurityEventsDroppedTotal.Inc()
		s.logger.WithFields(logrus.Fields{
			"event_type": event.EventType,
			"severity":   event.Severity,
		}).Warn("security event buffer is full, dropping event")
	}
}

func (s *service) deliver(event security.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()
	if err := s.sink.Handle(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"sink":       s.sink.Name(),
			"event_type": event.EventType,
			"event_id":   event.ID,
		}).Error("failed to deliver security event")
	}
}

// Close stops accepting events, drains the buffer and closes the sink.
func (s *service) Close() error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		s.closed.Store(true)
		close(s.events)
		s.mu.Unlock()

		s.wg.Wait()
		err = s.sink.Close()
		s.logger.Info("security event workers stopped")
	})
	return err
}
