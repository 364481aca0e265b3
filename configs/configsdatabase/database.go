package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"mkbarber.pl/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB connects to Postgres using DATABASE_URL or the DB_* variables.
// When neither is configured the connection stays nil and the repositories
// fall back to their in-memory backend, so the site can run without a
// database in local development.
func InitDB() {
	_ = godotenv.Load()

	dsn := buildDSN()
	if dsn == "" {
		configslog.SLog.Warn("Brak konfiguracji bazy danych, używany będzie magazyn w pamięci.")
		return
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		configslog.Log.Fatal("Nie udało się połączyć z bazą danych", zap.Error(err))
		return
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Nie udało się pobrać uchwytu sql.DB", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Info("Połączono z bazą danych.")
}

// GetDB returns the shared connection, nil when running without a database.
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the underlying pool. No-op in memory mode.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("CloseDB: nie udało się pobrać uchwytu sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("CloseDB: błąd przy zamykaniu połączenia", zap.Error(err))
	}
}

func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD")
	name := envOr("DB_NAME", "mkbarber")
	ssl := envOr("DB_SSLMODE", "disable")
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, ssl)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
