package main

import (
	"flag"

	"mkbarber.pl/configs/configsdatabase"
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run database seeders (catalog and sample data)")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()
	if db == nil {
		configslog.SLog.Fatal("Migrations require a configured database (DATABASE_URL or DB_HOST).")
	}

	configslog.SLog.Info("Running database initialization...")
	database.Initialize(db, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Database initialization done.")
}
