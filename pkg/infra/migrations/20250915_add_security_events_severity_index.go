package migrations

import (
	"github.com/NeuralTrust/AuthGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250915_add_security_events_severity_index",
		Name: "Index critical and high severity security events",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_security_events_severe
				ON security_events (occurred_at DESC)
				WHERE severity IN ('high', 'critical');
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP INDEX IF EXISTS idx_security_events_severe;`).Error
		},
	})
}
