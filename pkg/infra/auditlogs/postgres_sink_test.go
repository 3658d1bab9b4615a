package auditlogs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/auditlogs"
	"github.com/NeuralTrust/AuthGuard/pkg/infra/database"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

func newPostgresSink(t *testing.T) (security.Sink, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := database.Open(logrus.New(), postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)

	return auditlogs.NewPostgresSink(db.DB), mock
}

func TestPostgresSink_Handle(t *testing.T) {
	sink, mock := newPostgresSink(t)
	event := security.NewEvent(security.EventTypeAuthLockout, security.SeverityHigh)
	event.IPAddress = "203.0.113.5"
	event.Details["violation_count"] = 2

	mock.ExpectExec(`INSERT INTO "security_events"`).WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, sink.Handle(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_HandleError(t *testing.T) {
	sink, mock := newPostgresSink(t)
	mock.ExpectExec(`INSERT INTO "security_events"`).WillReturnError(errors.New("relation does not exist"))

	err := sink.Handle(context.Background(), security.NewEvent(security.EventTypeAuthFailure, security.SeverityMedium))

	assert.ErrorContains(t, err, "failed to insert security event")
}

func TestNewRecord(t *testing.T) {
	event := security.NewEvent(security.EventTypeIPBlacklisted, security.SeverityCritical)
	event.UserID = "alice@example.com"
	event.Details["reason"] = "repeated login violations"

	record := auditlogs.NewRecord(event)

	assert.Equal(t, event.ID, record.ID)
	assert.Equal(t, "critical", record.Severity)
	assert.Equal(t, "alice@example.com", record.UserID)
	assert.Equal(t, "repeated login violations", record.Details["reason"])
	assert.Equal(t, "security_events", record.TableName())
}
