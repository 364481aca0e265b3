package migrations

import (
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAppointmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating appointments table...")
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		configslog.Log.Error("Failed to migrate appointments table", zap.Error(err))
		return err
	}

	// Partial unique index: at most one confirmed appointment per
	// (barber, date, time). Backstops the locked check-then-insert in the
	// repository against anything that bypasses it.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_confirmed_slot
		ON appointments (barber_id, date, time)
		WHERE status = 'confirmed'
	`).Error
	if err != nil {
		configslog.Log.Error("Failed to create confirmed-slot unique index", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Appointments table migrated successfully")
	return nil
}
