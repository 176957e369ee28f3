package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"sharexconnect/internal/config"
	"sharexconnect/internal/domain"
	"sharexconnect/internal/storage"
	storageGorm "sharexconnect/internal/storage/gorm"
)

// fixture - сервис поверх настоящего GORM хранилища в in-memory sqlite
type fixture struct {
	svc   *Service
	txmgr storage.TxManager
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{
		ProductionType: "test",
		Database: config.Database{
			Driver: "sqlite",
			Path:   ":memory:",
		},
	}

	txmgr, err := storageGorm.NewTxManager(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = txmgr.Close() })

	return &fixture{svc: New(txmgr), txmgr: txmgr, ctx: context.Background()}
}

func (f *fixture) user(t *testing.T, id string, role domain.Role, institution string) *domain.User {
	t.Helper()

	u := &domain.User{
		ID:          id,
		Username:    id,
		Email:       id + "@example.edu",
		FullName:    "User " + id,
		Role:        role,
		Institution: institution,
	}
	err := f.txmgr.Do(f.ctx, func(ctx context.Context, tx storage.Tx) error {
		return tx.UserRepo().Upsert(ctx, u)
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) project(t *testing.T, ownerID string, visibility domain.Visibility) *domain.Project {
	t.Helper()

	p, err := f.svc.CreateProject(f.ctx, &domain.CreateProjectInput{
		OwnerID:    ownerID,
		Title:      "Capstone",
		Visibility: visibility,
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) addCollaborator(t *testing.T, projectID, ownerID, userID string) {
	t.Helper()

	_, err := f.svc.AddCollaborator(f.ctx, projectID, userID, ownerID)
	require.NoError(t, err)
}

// requireCode проверяет код доменной ошибки
func requireCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()

	require.Error(t, err)
	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr), "expected domain error, got %v", err)
	require.Equal(t, code, domainErr.Code, "unexpected error: %v", err)
}

func TestFormatError_StorageErrors(t *testing.T) {
	s := &Service{}
	ctx := context.Background()

	tests := []struct {
		name string
		op   string
		err  error
		code domain.ErrorCode
	}{
		{name: "not found", op: "service.GetProject", err: storage.ErrNotFound, code: domain.ErrorCodeNotFound},
		{name: "dangling reference", op: "service.CreateChangeRequest", err: fmt.Errorf("insert: %w", storage.ErrInvalidReference), code: domain.ErrorCodeNotFound},
		{name: "duplicate", op: "service.CreateProject", err: storage.ErrAlreadyExists, code: domain.ErrorCodeConflict},
		{name: "unknown", op: "service.CreateProject", err: errors.New("boom"), code: domain.ErrorCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCode(t, s.formatError(ctx, tt.op, tt.err), tt.code)
		})
	}
}
