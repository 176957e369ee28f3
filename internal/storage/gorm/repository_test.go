package gorm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharexconnect/internal/config"
	"sharexconnect/internal/domain"
	"sharexconnect/internal/storage"
)

func newTestTxManager(t *testing.T) storage.TxManager {
	t.Helper()

	cfg := &config.Config{
		ProductionType: "test",
		Database: config.Database{
			Driver: "sqlite",
			Path:   ":memory:",
		},
	}

	txm, err := NewTxManager(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = txm.Close() })
	return txm
}

func seedProject(t *testing.T, txm storage.TxManager, projectID, ownerID string) {
	t.Helper()

	err := txm.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		if err := tx.UserRepo().Upsert(ctx, &domain.User{ID: ownerID, Username: ownerID, Email: ownerID + "@uni.edu", Role: domain.RoleStudent}); err != nil {
			return err
		}
		return tx.ProjectRepo().Create(ctx, &domain.Project{
			ID:         projectID,
			Title:      "Project " + projectID,
			OwnerID:    ownerID,
			Visibility: domain.VisibilityPrivate,
			Status:     domain.ProjectStatusDraft,
		})
	})
	require.NoError(t, err)
}

func TestCollaboratorRepository_AddIsIdempotent(t *testing.T) {
	txm := newTestTxManager(t)
	seedProject(t, txm, "p1", "owner")

	err := txm.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		require.NoError(t, tx.UserRepo().Upsert(ctx, &domain.User{ID: "u1", Username: "alice", Email: "a@uni.edu", FullName: "Alice", Role: domain.RoleStudent}))
		require.NoError(t, tx.CollaboratorRepo().Add(ctx, "p1", "u1"))
		require.NoError(t, tx.CollaboratorRepo().Add(ctx, "p1", "u1"))

		list, err := tx.CollaboratorRepo().ListByProject(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "alice", list[0].Username)
		assert.Equal(t, "Alice", list[0].FullName)

		ok, err := tx.CollaboratorRepo().IsCollaborator(ctx, "p1", "u1")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, tx.CollaboratorRepo().Remove(ctx, "p1", "u1"))
		assert.ErrorIs(t, tx.CollaboratorRepo().Remove(ctx, "p1", "u1"), storage.ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestCollaborationRequestRepository_ResolveOnlyOnce(t *testing.T) {
	txm := newTestTxManager(t)
	seedProject(t, txm, "p1", "owner")

	err := txm.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		repo := tx.CollaborationRequestRepo()
		req := &domain.CollaborationRequest{
			ID:        "r1",
			ProjectID: "p1",
			Type:      domain.CollaborationTypeRequest,
			PartyID:   "u1",
			SenderID:  "u1",
			Status:    domain.CollaborationStatusPending,
		}
		require.NoError(t, repo.Create(ctx, req))

		pending, err := repo.HasPending(ctx, "p1", "u1", domain.CollaborationTypeRequest)
		require.NoError(t, err)
		assert.True(t, pending)

		now := time.Now().UTC()
		require.NoError(t, repo.Resolve(ctx, "r1", domain.CollaborationStatusApproved, "owner", now))
		assert.ErrorIs(t, repo.Resolve(ctx, "r1", domain.CollaborationStatusRejected, "owner", now), storage.ErrConflict)

		got, err := repo.GetByID(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, domain.CollaborationStatusApproved, got.Status)
		require.NotNil(t, got.ResponderID)
		assert.Equal(t, "owner", *got.ResponderID)
		assert.NotNil(t, got.RespondedAt)

		pending, err = repo.HasPending(ctx, "p1", "u1", domain.CollaborationTypeRequest)
		require.NoError(t, err)
		assert.False(t, pending)
		return nil
	})
	require.NoError(t, err)
}

func TestRepositoryItemRepository_DeleteSubtree(t *testing.T) {
	txm := newTestTxManager(t)
	seedProject(t, txm, "p1", "owner")

	err := txm.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		repo := tx.RepositoryItemRepo()
		src := "src"
		pkg := "pkg"
		items := []*domain.RepositoryItem{
			{ID: "src", ProjectID: "p1", Path: "src", Name: "src", Type: domain.RepositoryItemFolder},
			{ID: "main", ProjectID: "p1", ParentID: &src, Path: "src/main.go", Name: "main.go", Type: domain.RepositoryItemFile, Content: "package main"},
			{ID: "pkg", ProjectID: "p1", ParentID: &src, Path: "src/pkg", Name: "pkg", Type: domain.RepositoryItemFolder},
			{ID: "util", ProjectID: "p1", ParentID: &pkg, Path: "src/pkg/util.go", Name: "util.go", Type: domain.RepositoryItemFile},
			{ID: "readme", ProjectID: "p1", Path: "README.md", Name: "README.md", Type: domain.RepositoryItemFile},
		}
		for _, item := range items {
			require.NoError(t, repo.Create(ctx, item))
		}

		deleted, err := repo.DeleteSubtree(ctx, "p1", "src")
		require.NoError(t, err)
		assert.Equal(t, 4, deleted)

		left, err := repo.ListByProject(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, "README.md", left[0].Path)

		_, err = repo.DeleteSubtree(ctx, "p1", "src")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestRepositoryItemRepository_DeleteSubtreeDetachesChangeRequests(t *testing.T) {
	txm := newTestTxManager(t)
	seedProject(t, txm, "p1", "owner")

	err := txm.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		docs := "docs"
		require.NoError(t, tx.RepositoryItemRepo().Create(ctx, &domain.RepositoryItem{
			ID: "docs", ProjectID: "p1", Path: "docs", Name: "docs", Type: domain.RepositoryItemFolder,
		}))
		require.NoError(t, tx.RepositoryItemRepo().Create(ctx, &domain.RepositoryItem{
			ID: "intro", ProjectID: "p1", ParentID: &docs, Path: "docs/intro.md", Name: "intro.md", Type: domain.RepositoryItemFile,
		}))

		fileID := "intro"
		require.NoError(t, tx.ChangeRequestRepo().Create(ctx, &domain.ChangeRequest{
			ID:          "cr1",
			ProjectID:   "p1",
			RequesterID: "owner",
			Title:       "Fix typo",
			ChangeType:  domain.ChangeTypeModify,
			FileID:      &fileID,
			Status:      domain.ChangeRequestStatusOpen,
		}))

		deleted, err := tx.RepositoryItemRepo().DeleteSubtree(ctx, "p1", "docs")
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)

		cr, err := tx.ChangeRequestRepo().GetByID(ctx, "cr1")
		require.NoError(t, err)
		assert.Nil(t, cr.FileID)
		assert.Equal(t, domain.ChangeRequestStatusOpen, cr.Status)
		return nil
	})
	require.NoError(t, err)
}

func TestRepositoryItemRepository_DuplicatePath(t *testing.T) {
	txm := newTestTxManager(t)
	seedProject(t, txm, "p1", "owner")

	err := txm.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		repo := tx.RepositoryItemRepo()
		require.NoError(t, repo.Create(ctx, &domain.RepositoryItem{ID: "a", ProjectID: "p1", Path: "a.go", Name: "a.go", Type: domain.RepositoryItemFile}))
		return repo.Create(ctx, &domain.RepositoryItem{ID: "b", ProjectID: "p1", Path: "a.go", Name: "a.go", Type: domain.RepositoryItemFile})
	})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestPullRequestRepository_ConditionalStatusUpdate(t *testing.T) {
	txm := newTestTxManager(t)
	seedProject(t, txm, "p1", "owner")

	err := txm.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		require.NoError(t, tx.UserRepo().Upsert(ctx, &domain.User{ID: "author", Username: "bob", Email: "b@uni.edu", Role: domain.RoleStudent}))

		repo := tx.PullRequestRepo()
		pr := &domain.PullRequest{
			ID:           "pr1",
			ProjectID:    "p1",
			AuthorID:     "author",
			Title:        "Add docs",
			BranchName:   "docs",
			FilesChanged: []string{"README.md"},
			Status:       domain.PullRequestStatusOpen,
		}
		require.NoError(t, repo.Create(ctx, pr))
		require.NoError(t, repo.AddFile(ctx, &domain.PullRequestFile{
			ID: "f1", PullRequestID: "pr1", FileName: "README.md", FilePath: "README.md", FileSize: 5, Content: []byte("hello"),
		}))

		files, err := repo.ListFiles(ctx, "pr1", false)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Empty(t, files[0].Content)
		assert.Equal(t, int64(5), files[0].FileSize)

		now := time.Now().UTC()
		require.NoError(t, repo.UpdateStatus(ctx, "pr1", domain.PullRequestSourceStates(domain.PullRequestStatusMerged), domain.PullRequestStatusMerged, "owner", now))
		err = repo.UpdateStatus(ctx, "pr1", domain.PullRequestSourceStates(domain.PullRequestStatusRejected), domain.PullRequestStatusRejected, "owner", now)
		assert.ErrorIs(t, err, storage.ErrConflict)

		got, err := repo.GetByID(ctx, "pr1")
		require.NoError(t, err)
		assert.Equal(t, domain.PullRequestStatusMerged, got.Status)
		assert.NotNil(t, got.MergedAt)
		require.NotNil(t, got.Author)
		assert.Equal(t, "bob", got.Author.Username)
		assert.Equal(t, []string{"README.md"}, got.FilesChanged)

		n, err := repo.DeleteFiles(ctx, "pr1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		return nil
	})
	require.NoError(t, err)
}

func TestProjectRepository_DeleteRemovesDependents(t *testing.T) {
	txm := newTestTxManager(t)
	seedProject(t, txm, "p1", "owner")

	ctx := context.Background()
	err := txm.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		require.NoError(t, tx.CollaboratorRepo().Add(ctx, "p1", "owner"))
		require.NoError(t, tx.ProjectFileRepo().Create(ctx, &domain.ProjectFile{
			ID: "f1", ProjectID: "p1", FileName: "a.txt", FilePath: "a.txt", Content: []byte("a"), FileSize: 1, UploadedBy: "owner",
		}))
		return tx.ProjectRepo().Delete(ctx, "p1")
	})
	require.NoError(t, err)

	err = txm.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		_, err := tx.ProjectRepo().GetByID(ctx, "p1")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		files, err := tx.ProjectFileRepo().ListByProject(ctx, "p1")
		require.NoError(t, err)
		assert.Empty(t, files)
		return nil
	})
	require.NoError(t, err)
}

func TestTxManager_RollbackOnError(t *testing.T) {
	txm := newTestTxManager(t)
	seedProject(t, txm, "p1", "owner")

	ctx := context.Background()
	err := txm.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		require.NoError(t, tx.ProjectRepo().UpdateStatus(ctx, "p1", []domain.ProjectStatus{domain.ProjectStatusDraft}, domain.ProjectStatusSubmitted))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	err = txm.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		p, err := tx.ProjectRepo().GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, domain.ProjectStatusDraft, p.Status)
		return nil
	})
	require.NoError(t, err)
}
