package auditlogs_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/auditlogs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	name    string
	events  []security.Event
	err     error
	closed  bool
	release chan struct{}
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Handle(_ context.Context, event security.Event) error {
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestService_DeliversAndDrainsOnClose(t *testing.T) {
	sink := &recordingSink{name: "recording"}
	svc := auditlogs.NewService(logrus.New(), sink, &auditlogs.ServiceOpts{BufferSize: 16, Workers: 2})
	svc.Start()

	for i := 0; i < 10; i++ {
		svc.Emit(context.Background(), security.NewEvent(security.EventTypeAuthFailure, security.SeverityMedium))
	}
	require.NoError(t, svc.Close())

	assert.Equal(t, 10, sink.count())
	assert.True(t, sink.closed)
}

func TestService_DropsWhenFull(t *testing.T) {
	sink := &recordingSink{name: "blocked", release: make(chan struct{})}
	svc := auditlogs.NewService(logrus.New(), sink, &auditlogs.ServiceOpts{BufferSize: 1, Workers: 1})
	svc.Start()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			svc.Emit(context.Background(), security.NewEvent(security.EventTypeAuthFailure, security.SeverityMedium))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}

	close(sink.release)
	require.NoError(t, svc.Close())
	assert.Less(t, sink.count(), 50)
}

func TestService_EmitAfterCloseIsIgnored(t *testing.T) {
	sink := &recordingSink{name: "recording"}
	svc := auditlogs.NewService(logrus.New(), sink, nil)
	svc.Start()
	require.NoError(t, svc.Close())
	require.NoError(t, svc.Close())

	assert.NotPanics(t, func() {
		svc.Emit(context.Background(), security.NewEvent(security.EventTypeAuthLockout, security.SeverityHigh))
	})
	assert.Zero(t, sink.count())
}

func TestService_SinkErrorsAreLoggedOnly(t *testing.T) {
	sink := &recordingSink{name: "failing", err: errors.New("unreachable")}
	svc := auditlogs.NewService(logrus.New(), sink, nil)
	svc.Start()

	svc.Emit(context.Background(), security.NewEvent(security.EventTypeIPBlacklisted, security.SeverityCritical))
	require.NoError(t, svc.Close())

	assert.Equal(t, 1, sink.count())
}

func TestMultiSink(t *testing.T) {
	ok := &recordingSink{name: "ok"}
	failing := &recordingSink{name: "failing", err: errors.New("down")}
	multi := auditlogs.NewMultiSink(failing, ok)

	err := multi.Handle(context.Background(), security.NewEvent(security.EventTypeAuthFailure, security.SeverityMedium))

	assert.ErrorContains(t, err, "failing: down")
	assert.Equal(t, 1, ok.count())
	assert.Equal(t, 1, failing.count())
	assert.Equal(t, auditlogs.SinkNameMulti, multi.Name())

	require.NoError(t, multi.Close())
	assert.True(t, ok.closed)
	assert.True(t, failing.closed)
}

func TestLogSink(t *testing.T) {
	sink := auditlogs.NewLogSink(logrus.New())
	for _, sev := range []security.Severity{security.SeverityMedium, security.SeverityHigh, security.SeverityCritical} {
		event := security.NewEvent(security.EventTypeAuthLockout, sev)
		event.UserID = "alice@example.com"
		assert.NoError(t, sink.Handle(context.Background(), event))
	}
	assert.NoError(t, sink.Close())
}
