// issue-token создаёт или обновляет пользователя и печатает JWT для него.
//
//	go run ./cmd/issue-token -id 5f0c... -username alice -role FACULTY -institution "MIT"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/auth"
	"sharexconnect/internal/config"
	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/storage"
	storageGorm "sharexconnect/internal/storage/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	id := flag.String("id", "", "user id (generated when empty)")
	username := flag.String("username", "", "username")
	email := flag.String("email", "", "email")
	fullName := flag.String("name", "", "full name")
	role := flag.String("role", string(domain.RoleStudent), "STUDENT | FACULTY | ADMIN | GUEST")
	institution := flag.String("institution", "", "institution name")
	department := flag.String("department", "", "department, faculty only")
	flag.Parse()

	envConfig := config.NewEnvConfig()
	logger.Setup(envConfig)

	if err := envConfig.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	user := &domain.User{
		ID:          *id,
		Username:    *username,
		Email:       *email,
		FullName:    *fullName,
		Role:        domain.Role(strings.ToUpper(*role)),
		Institution: *institution,
		Department:  *department,
		IsVerified:  true,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Username == "" {
		fmt.Fprintln(os.Stderr, "-username is required")
		os.Exit(2)
	}
	if !user.Role.Valid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(2)
	}

	token, err := run(envConfig, user)
	if err != nil {
		log.Fatal().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
	}

	fmt.Printf("user_id: %s\nrole:    %s\ntoken:   %s\n", user.ID, user.Role, token)
}

// run сохраняет пользователя и выпускает для него токен. Соединение с БД закрывается до выхода из main
func run(envConfig *config.Config, user *domain.User) (string, error) {
	txManager, err := storageGorm.NewTxManager(envConfig)
	if err != nil {
		return "", fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := txManager.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = txManager.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		return tx.UserRepo().Upsert(ctx, user)
	})
	if err != nil {
		return "", fmt.Errorf("save user: %w", err)
	}

	tokens := auth.NewTokenManager(envConfig.JWT.Secret, time.Duration(envConfig.JWT.TTLHours)*time.Hour)
	token, err := tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
