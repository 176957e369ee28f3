package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/config"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup инициализирует и настраивает логгер zerolog в зависимости от окружения.
// В режиме debug логи выводятся в stdout, в prod - в файл, в test отбрасываются.
// Возвращает настроенный экземпляр логгера.
func Setup(envConf *config.Config) *zerolog.Logger {
	// Установка уровня логирования в зависимости от окружения
	if envConf.ProductionType == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Формат времени в логах: часы:минуты:секунды день.месяц.год
	zerolog.TimeFieldFormat = "15:04:05 02.01.2006"

	// Показываем только последние 2 части пути к файлу для краткости
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		if len(parts) > 2 {
			file = strings.Join(parts[len(parts)-2:], "/")
		}
		return fmt.Sprintf("%s:%d", file, line)
	}

	var writer io.Writer

	switch envConf.ProductionType {
	case "prod":
		logPath := envConf.LogPath

		// Создание директории для логов, если она не существует
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			log.Fatal().Err(err).Msg("failed to create logger directory")
		}

		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open logger file")
		}
		writer = logFile
	case "test":
		writer = io.Discard
	default:
		writer = os.Stdout
	}

	loggerContext := zerolog.New(writer).
		With().
		Caller().
		Timestamp().
		Logger()

	// Устанавливаем глобальный логгер, чтобы все вызовы log.Info() использовали его
	log.Logger = loggerContext

	log.Info().Msg("logger setup complete")
	return &loggerContext
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(middleware.RequestIDKey).(string); ok {
		return requestID
	}
	return "unknown"
}
