package database

import (
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/database/migrations"
	"mkbarber.pl/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside one transaction, so a
// half-applied schema never survives a failure.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Could not begin database transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization panicked", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrations failed, rolling back", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migrations completed.")
	}

	if seed {
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding failed, rolling back", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seeders completed.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization finished successfully.")
}

// RunMigrationsInOrder migrates the four collections. Catalog tables come
// first because appointments reference them.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateServicesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateBarbersTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateAppointmentsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateContactMessagesTable(db); err != nil {
		return err
	}
	return nil
}

// CheckAndRunSeeders loads the catalog and, on an empty install, the sample
// appointments. Every seeder is idempotent.
func CheckAndRunSeeders(db *gorm.DB) error {
	if err := seeders.SeedServices(db); err != nil {
		return err
	}
	if err := seeders.SeedBarbers(db); err != nil {
		return err
	}
	if err := seeders.SeedSampleAppointments(db); err != nil {
		return err
	}
	return nil
}
