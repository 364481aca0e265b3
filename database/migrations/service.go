package migrations

import (
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateServicesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating services table...")
	if err := db.AutoMigrate(&models.Service{}); err != nil {
		configslog.Log.Error("Failed to migrate services table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Services table migrated successfully")
	return nil
}
