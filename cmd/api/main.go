package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api/handlers"
	"sharexconnect/internal/api/server"
	"sharexconnect/internal/auth"
	"sharexconnect/internal/config"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/service"
	storageGorm "sharexconnect/internal/storage/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found")
	}
	envConfig := config.NewEnvConfig()
	envConfig.PrintConfigWithHiddenSecrets()

	logger.Setup(envConfig)

	if err := envConfig.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	txManager, err := storageGorm.NewTxManager(envConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := txManager.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	tokens := auth.NewTokenManager(envConfig.JWT.Secret, time.Duration(envConfig.JWT.TTLHours)*time.Hour)

	appService := service.New(txManager)
	appHandler := handlers.NewHandler(appService, tokens, handlers.Options{
		CORSOrigins: envConfig.CORSOrigins,
		MaxUploadMB: envConfig.MaxUploadMB,
	})
	apiServer := server.NewServer(envConfig, appHandler)

	go apiServer.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Msg(fmt.Sprintf("signal received: %s, starting graceful shutdown", s))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	apiServer.Shutdown(ctx)

	log.Info().Msg("service shutdown gracefully")
}
