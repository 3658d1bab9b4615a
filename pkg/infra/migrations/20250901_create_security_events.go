package migrations

import (
	"github.com/NeuralTrust/AuthGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250901_create_security_events",
		Name: "Create security_events table for guard audit events",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS security_events (
					id          UUID PRIMARY KEY,
					event_type  TEXT NOT NULL,
					severity    TEXT NOT NULL,
					ip_address  TEXT,
					user_id     TEXT,
					category    TEXT,
					user_agent  TEXT,
					details     JSONB NOT NULL DEFAULT '{}'::jsonb,
					occurred_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_security_events_ip_occurred
				ON security_events (ip_address, occurred_at DESC);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_security_events_type_occurred
				ON security_events (event_type, occurred_at DESC);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS security_events;`).Error
		},
	})
}
