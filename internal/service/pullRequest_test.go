package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/storage"
)

func TestCreatePullRequest_OwnerCannotOpen(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPrivate)

	// Владелец записан и как участник: проверка владельца всё равно срабатывает первой
	err := f.txmgr.Do(f.ctx, func(ctx context.Context, tx storage.Tx) error {
		return tx.CollaboratorRepo().Add(ctx, p.ID, "owner")
	})
	require.NoError(t, err)

	// Act
	_, err = f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{
		ProjectID: p.ID, AuthorID: "owner", Title: "Owner change",
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrOwnerCannotOpenPullRequest)
	requireCode(t, err, domain.ErrorCodePermissionDenied)
}

func TestCreatePullRequest_NonCollaborator(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "outsider", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPublic)

	_, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{
		ProjectID: p.ID, AuthorID: "outsider", Title: "Drive-by",
	})

	assert.ErrorIs(t, err, domain.ErrNotCollaborator)
	requireCode(t, err, domain.ErrorCodePermissionDenied)
}

func TestCreatePullRequest_Defaults(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "member", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPrivate)
	f.addCollaborator(t, p.ID, "owner", "member")

	pr, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{
		ProjectID: p.ID,
		AuthorID:  "member",
		Title:     "Add files",
		Draft:     true,
		Files: []domain.FileUpload{
			{FileName: "main.go", Content: []byte("package main\n")},
			{FileName: "bundle.zip", Content: []byte("PK\x03\x04")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PullRequestStatusDraft, pr.Status)
	assert.Contains(t, pr.BranchName, "feature/")
	assert.Equal(t, []string{"main.go", "bundle.zip"}, pr.FilesChanged)
	require.Len(t, pr.Files, 2)
	assert.False(t, pr.Files[0].IsArchive)
	assert.True(t, pr.Files[1].IsArchive)
	assert.Nil(t, pr.Files[0].Content)

	_, err = f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{ProjectID: p.ID, AuthorID: "member", Title: "  "})
	requireCode(t, err, domain.ErrorCodeValidation)
}

func TestUpdatePullRequestStatus_MergeTransfersFiles(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "member", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPrivate)
	f.addCollaborator(t, p.ID, "owner", "member")

	uploads := []domain.FileUpload{
		{FileName: "a.txt", Content: []byte("alpha")},
		{FileName: "b.txt", FilePath: "docs/b.txt", Content: []byte("bravo")},
		{FileName: "c.tar", Content: []byte("charlie")},
	}
	pr, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{
		ProjectID: p.ID, AuthorID: "member", Title: "Three files", Files: uploads,
	})
	require.NoError(t, err)

	// Act
	merged, err := f.svc.UpdatePullRequestStatus(f.ctx, &domain.UpdatePullRequestStatusInput{
		ProjectID: p.ID, PullRequestID: pr.ID, Status: domain.PullRequestStatusMerged, ReviewerID: "owner",
	})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, domain.PullRequestStatusMerged, merged.Status)
	assert.NotNil(t, merged.MergedAt)
	assert.Empty(t, merged.Files)

	files, err := f.svc.GetProjectFiles(f.ctx, p.ID, "owner")
	require.NoError(t, err)
	require.Len(t, files, len(uploads))

	byName := make(map[string]domain.ProjectFile, len(files))
	for _, file := range files {
		byName[file.FileName] = file
	}
	for _, u := range uploads {
		file, ok := byName[u.FileName]
		require.True(t, ok, "missing %s", u.FileName)
		assert.Equal(t, int64(len(u.Content)), file.FileSize)
		assert.Equal(t, "member", file.UploadedBy)

		full, err := f.svc.GetProjectFile(f.ctx, p.ID, file.ID, "owner")
		require.NoError(t, err)
		assert.Equal(t, u.Content, full.Content)
	}
	assert.Equal(t, "docs/b.txt", byName["b.txt"].FilePath)
	assert.True(t, byName["c.tar"].IsArchive)

	err = f.txmgr.Do(f.ctx, func(ctx context.Context, tx storage.Tx) error {
		staged, err := tx.PullRequestRepo().ListFiles(ctx, pr.ID, false)
		require.NoError(t, err)
		assert.Empty(t, staged)
		return nil
	})
	require.NoError(t, err)
}

// failingTxManager подменяет репозиторий файлов проекта так, что n-я запись падает
type failingTxManager struct {
	storage.TxManager
	failOn int
	calls  int
}

func (m *failingTxManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	return m.TxManager.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		return fn(ctx, &failingTx{Tx: tx, m: m})
	})
}

type failingTx struct {
	storage.Tx
	m *failingTxManager
}

func (tx *failingTx) ProjectFileRepo() storage.ProjectFileRepository {
	return &failingFileRepo{ProjectFileRepository: tx.Tx.ProjectFileRepo(), m: tx.m}
}

type failingFileRepo struct {
	storage.ProjectFileRepository
	m *failingTxManager
}

func (r *failingFileRepo) Create(ctx context.Context, file *domain.ProjectFile) error {
	r.m.calls++
	if r.m.calls == r.m.failOn {
		return errors.New("disk full")
	}
	return r.ProjectFileRepository.Create(ctx, file)
}

func TestUpdatePullRequestStatus_MergeFailureRollsBack(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "member", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPrivate)
	f.addCollaborator(t, p.ID, "owner", "member")

	pr, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{
		ProjectID: p.ID,
		AuthorID:  "member",
		Title:     "Two files",
		Files: []domain.FileUpload{
			{FileName: "a.txt", Content: []byte("alpha")},
			{FileName: "b.txt", Content: []byte("bravo")},
		},
	})
	require.NoError(t, err)

	broken := New(&failingTxManager{TxManager: f.txmgr, failOn: 2})
	mergeInput := &domain.UpdatePullRequestStatusInput{
		ProjectID: p.ID, PullRequestID: pr.ID, Status: domain.PullRequestStatusMerged, ReviewerID: "owner",
	}

	// Act
	_, err = broken.UpdatePullRequestStatus(f.ctx, mergeInput)

	// Assert
	requireCode(t, err, domain.ErrorCodeInternalError)

	got, err := f.svc.GetPullRequest(f.ctx, p.ID, pr.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.PullRequestStatusOpen, got.Status)
	assert.Nil(t, got.MergedAt)

	err = f.txmgr.Do(f.ctx, func(ctx context.Context, tx storage.Tx) error {
		staged, err := tx.PullRequestRepo().ListFiles(ctx, pr.ID, false)
		require.NoError(t, err)
		assert.Len(t, staged, 2)

		files, err := tx.ProjectFileRepo().ListByProject(ctx, p.ID)
		require.NoError(t, err)
		assert.Empty(t, files)
		return nil
	})
	require.NoError(t, err)

	// Повторный merge проходит после отката
	merged, err := f.svc.UpdatePullRequestStatus(f.ctx, mergeInput)
	require.NoError(t, err)
	assert.Equal(t, domain.PullRequestStatusMerged, merged.Status)

	files, err := f.svc.GetProjectFiles(f.ctx, p.ID, "owner")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestUpdatePullRequestStatus_TerminalStatesImmutable(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "member", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPrivate)
	f.addCollaborator(t, p.ID, "owner", "member")

	terminal := []domain.PullRequestStatus{domain.PullRequestStatusMerged, domain.PullRequestStatusRejected}
	targets := []domain.PullRequestStatus{domain.PullRequestStatusApproved, domain.PullRequestStatusRejected, domain.PullRequestStatusMerged}

	for _, final := range terminal {
		t.Run(string(final), func(t *testing.T) {
			pr, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{
				ProjectID: p.ID, AuthorID: "member", Title: "PR " + string(final),
			})
			require.NoError(t, err)

			_, err = f.svc.UpdatePullRequestStatus(f.ctx, &domain.UpdatePullRequestStatusInput{
				ProjectID: p.ID, PullRequestID: pr.ID, Status: final, ReviewerID: "owner",
			})
			require.NoError(t, err)

			for _, target := range targets {
				_, err := f.svc.UpdatePullRequestStatus(f.ctx, &domain.UpdatePullRequestStatusInput{
					ProjectID: p.ID, PullRequestID: pr.ID, Status: target, ReviewerID: "owner",
				})
				requireCode(t, err, domain.ErrorCodeInvalidState)
			}

			got, err := f.svc.GetPullRequest(f.ctx, p.ID, pr.ID, "owner")
			require.NoError(t, err)
			assert.Equal(t, final, got.Status)
		})
	}
}

func TestUpdatePullRequestStatus_Transitions(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "member", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPrivate)
	f.addCollaborator(t, p.ID, "owner", "member")

	pr, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{ProjectID: p.ID, AuthorID: "member", Title: "Flow"})
	require.NoError(t, err)

	update := func(status domain.PullRequestStatus, reviewer string) (*domain.PullRequest, error) {
		return f.svc.UpdatePullRequestStatus(f.ctx, &domain.UpdatePullRequestStatusInput{
			ProjectID: p.ID, PullRequestID: pr.ID, Status: status, ReviewerID: reviewer,
		})
	}

	_, err = update(domain.PullRequestStatusApproved, "member")
	assert.ErrorIs(t, err, domain.ErrNotProjectOwner)

	_, err = update(domain.PullRequestStatusOpen, "owner")
	requireCode(t, err, domain.ErrorCodeValidation)

	approved, err := update(domain.PullRequestStatusApproved, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.PullRequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewerID)
	assert.Equal(t, "owner", *approved.ReviewerID)

	_, err = update(domain.PullRequestStatusRejected, "owner")
	assert.ErrorIs(t, err, domain.ErrPullRequestTransition)

	merged, err := update(domain.PullRequestStatusMerged, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.PullRequestStatusMerged, merged.Status)
}

func TestGetProjectPullRequests_Access(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "member", domain.RoleStudent, "MIT")
	f.user(t, "outsider", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPublic)
	f.addCollaborator(t, p.ID, "owner", "member")

	first, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{ProjectID: p.ID, AuthorID: "member", Title: "First"})
	require.NoError(t, err)
	second, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{ProjectID: p.ID, AuthorID: "member", Title: "Second"})
	require.NoError(t, err)

	prs, err := f.svc.GetProjectPullRequests(f.ctx, p.ID, "owner")
	require.NoError(t, err)
	require.Len(t, prs, 2)
	ids := []string{prs[0].ID, prs[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
	require.NotNil(t, prs[0].Author)
	assert.Equal(t, "member", prs[0].Author.Username)

	_, err = f.svc.GetProjectPullRequests(f.ctx, p.ID, "member")
	require.NoError(t, err)

	_, err = f.svc.GetProjectPullRequests(f.ctx, p.ID, "outsider")
	assert.ErrorIs(t, err, domain.ErrNoProjectAccess)
}

func TestCollaborationToMergeScenario(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.user(t, "U1", domain.RoleStudent, "State University")
	f.user(t, "U2", domain.RoleStudent, "State University")
	p := f.project(t, "U1", domain.VisibilityInstitution)

	// Act + Assert: заявка
	req, err := f.svc.RequestCollaboration(f.ctx, &domain.RequestCollaborationInput{
		ProjectID: p.ID, RequesterID: "U2", Message: "let me help",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CollaborationTypeRequest, req.Type)
	assert.Equal(t, domain.CollaborationStatusPending, req.Status)

	// одобрение владельцем
	resp, err := f.svc.RespondToCollaborationRequest(f.ctx, &domain.RespondCollaborationInput{
		RequestID: req.ID, Status: domain.CollaborationStatusApproved, ResponderID: "U1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CollaborationStatusApproved, resp.Status)

	collaborators, err := f.svc.GetProjectCollaborators(f.ctx, p.ID, "U2")
	require.NoError(t, err)
	require.Len(t, collaborators, 1)
	assert.Equal(t, "U2", collaborators[0].UserID)

	// PR участника
	pr, err := f.svc.CreatePullRequest(f.ctx, &domain.CreatePullRequestInput{
		ProjectID: p.ID,
		AuthorID:  "U2",
		Title:     "Add README",
		Files:     []domain.FileUpload{{FileName: "readme.md", Content: []byte("# Capstone\n")}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PullRequestStatusOpen, pr.Status)

	// merge напрямую из OPEN
	merged, err := f.svc.UpdatePullRequestStatus(f.ctx, &domain.UpdatePullRequestStatusInput{
		ProjectID: p.ID, PullRequestID: pr.ID, Status: domain.PullRequestStatusMerged, ReviewerID: "U1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PullRequestStatusMerged, merged.Status)

	files, err := f.svc.GetProjectFiles(f.ctx, p.ID, "U1")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "readme.md", files[0].FileName)
}
