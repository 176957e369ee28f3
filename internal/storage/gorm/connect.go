package gorm

import (
	"fmt"
	"sharexconnect/internal/config"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB(envConf *config.Config) (*gorm.DB, error) {
	logLevel := logger.Info
	switch envConf.ProductionType {
	case "prod":
		logLevel = logger.Error
	case "test":
		logLevel = logger.Silent
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	switch envConf.Database.Driver {
	case "sqlite":
		return connectSQLite(envConf, gormConfig)
	case "postgres", "":
		return connectPostgres(envConf, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", envConf.Database.Driver)
	}
}

func connectPostgres(envConf *config.Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	connectionString := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		envConf.Database.Host,
		envConf.Database.User,
		envConf.Database.Password,
		envConf.Database.Name,
		envConf.Database.Port,
		envConf.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(connectionString), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm DB: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Настройка connection pool для production
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	log.Info().Msg("connected to the database successfully")

	if err := runMigrations(envConf); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("migrations applied successfully")

	return db, nil
}

// connectSQLite открывает встроенную базу для локального запуска и тестов.
// Схема создаётся через AutoMigrate, а не через SQL-миграции postgres.
func connectSQLite(envConf *config.Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	dsn := envConf.Database.Path
	if dsn == ":memory:" {
		dsn = "file::memory:"
	}
	dsn += "?_foreign_keys=on&_busy_timeout=5000"

	gormConfig.DisableForeignKeyConstraintWhenMigrating = true

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm DB: %w", err)
	}

	// Одно соединение: in-memory база живёт ровно столько, сколько соединение
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := db.AutoMigrate(allModels...); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	log.Info().Str("path", envConf.Database.Path).Msg("sqlite database ready")

	return db, nil
}

func runMigrations(cfg *config.Config) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	m, err := migrate.New(
		"file://"+cfg.Database.MigrationsPath,
		dsn,
	)
	if err != nil {
		return fmt.Errorf("migration init error: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration up error: %w", err)
	}

	return nil
}
