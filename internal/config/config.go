package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	ProductionType string
	LogPath        string
	MaxUploadMB    int64
	CORSOrigins    []string

	JWT      JWT
	Database Database
}

type JWT struct {
	Secret   string
	TTLHours int
}

type Database struct {
	Driver         string // postgres | sqlite
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	Path           string // файл базы для sqlite, ":memory:" для тестов
	MigrationsPath string
}

func NewEnvConfig() *Config {
	return &Config{
		Port:           getEnv("APP_PORT", "8080"),
		ProductionType: os.Getenv("APP_PRODUCTION_TYPE"),
		LogPath:        os.Getenv("APP_LOG_PATH"),
		MaxUploadMB:    int64(getEnvInt("APP_MAX_UPLOAD_MB", 25)),
		CORSOrigins:    splitList(getEnv("APP_CORS_ORIGINS", "*")),

		JWT: JWT{
			Secret:   os.Getenv("JWT_SECRET"),
			TTLHours: getEnvInt("JWT_TTL_HOURS", 168),
		},

		Database: Database{
			Driver:         getEnv("DB_DRIVER", "postgres"),
			Host:           os.Getenv("DB_HOST"),
			Port:           os.Getenv("DB_PORT"),
			User:           os.Getenv("DB_USER"),
			Password:       os.Getenv("DB_PASSWORD"),
			Name:           os.Getenv("DB_NAME"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			Path:           getEnv("DB_PATH", "sharexconnect.db"),
			MigrationsPath: getEnv("DB_MIGRATIONS_PATH", "migrations"),
		},
	}
}

// Validate проверяет обязательные параметры
func (config *Config) Validate() error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch config.Database.Driver {
	case "postgres":
		if config.Database.Host == "" || config.Database.Name == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for postgres")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.Database.Driver)
	}
	return nil
}

func (config *Config) PrintConfigWithHiddenSecrets() {
	// Функция для маскировки секретов
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return strings.Repeat("*", len(s))
	}

	fmt.Println("========== Configuration ==========")

	fmt.Println("\nApp Configuration:")
	fmt.Printf("\tPort: %s\n", config.Port)
	fmt.Printf("\tProductionType: %s\n", config.ProductionType)
	fmt.Printf("\tLogPath: %s\n", config.LogPath)
	fmt.Printf("\tMaxUploadMB: %d\n", config.MaxUploadMB)
	fmt.Printf("\tCORSOrigins: %s\n", strings.Join(config.CORSOrigins, ","))

	fmt.Println("\nJWT Configuration:")
	fmt.Printf("\tSecret: %s\n", mask(config.JWT.Secret))
	fmt.Printf("\tTTLHours: %d\n", config.JWT.TTLHours)

	fmt.Println("\nDatabase Configuration:")
	fmt.Printf("\tDriver: %s\n", config.Database.Driver)
	if config.Database.Driver == "sqlite" {
		fmt.Printf("\tPath: %s\n", config.Database.Path)
	} else {
		fmt.Printf("\tHost: %s\n", config.Database.Host)
		fmt.Printf("\tPort: %s\n", config.Database.Port)
		fmt.Printf("\tUser: %s\n", config.Database.User)
		fmt.Printf("\tPassword: %s\n", mask(config.Database.Password))
		fmt.Printf("\tName: %s\n", config.Database.Name)
		fmt.Printf("\tSSLMode: %s\n", config.Database.SSLMode)
		fmt.Printf("\tMigrationsPath: %s\n", config.Database.MigrationsPath)
	}

	fmt.Println("\n===================================")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
