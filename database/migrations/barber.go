package migrations

import (
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateBarbersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating barbers table...")
	if err := db.AutoMigrate(&models.Barber{}); err != nil {
		configslog.Log.Error("Failed to migrate barbers table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Barbers table migrated successfully")
	return nil
}
