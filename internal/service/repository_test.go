package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharexconnect/internal/domain"
)

func TestRepositoryItems_TreeLifecycle(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "member", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPrivate)
	f.addCollaborator(t, p.ID, "owner", "member")

	// Act
	src, err := f.svc.CreateRepositoryItem(f.ctx, &domain.CreateRepositoryItemInput{
		ProjectID: p.ID, CallerID: "owner", Name: "src", Type: domain.RepositoryItemFolder,
	})
	require.NoError(t, err)

	mainFile, err := f.svc.CreateRepositoryItem(f.ctx, &domain.CreateRepositoryItemInput{
		ProjectID: p.ID, CallerID: "member", Name: "main.py", Type: domain.RepositoryItemFile,
		ParentID: &src.ID, Content: "print('hi')",
	})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "src/main.py", mainFile.Path)
	assert.Equal(t, "python", mainFile.Language)
	assert.Equal(t, int64(len("print('hi')")), mainFile.Size)
	assert.Equal(t, "member", mainFile.LastModifiedBy)

	updated, err := f.svc.UpdateRepositoryItem(f.ctx, &domain.UpdateRepositoryItemInput{
		ProjectID: p.ID, ItemID: mainFile.ID, CallerID: "owner", Content: "print('hello world')",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(len("print('hello world')")), updated.Size)
	assert.Equal(t, "owner", updated.LastModifiedBy)

	got, err := f.svc.GetRepositoryItem(f.ctx, p.ID, mainFile.ID, "member")
	require.NoError(t, err)
	assert.Equal(t, "print('hello world')", got.Content)

	deleted, err := f.svc.DeleteRepositoryItem(f.ctx, p.ID, src.ID, "member")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	items, err := f.svc.ListRepositoryItems(f.ctx, p.ID, "owner")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepositoryItems_Validation(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "outsider", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPublic)

	readme, err := f.svc.CreateRepositoryItem(f.ctx, &domain.CreateRepositoryItemInput{
		ProjectID: p.ID, CallerID: "owner", Name: "README.md", Type: domain.RepositoryItemFile, Content: "# hi",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input domain.CreateRepositoryItemInput
		code  domain.ErrorCode
	}{
		{
			name:  "duplicate path",
			input: domain.CreateRepositoryItemInput{ProjectID: p.ID, CallerID: "owner", Name: "README.md", Type: domain.RepositoryItemFile},
			code:  domain.ErrorCodeConflict,
		},
		{
			name:  "parent is a file",
			input: domain.CreateRepositoryItemInput{ProjectID: p.ID, CallerID: "owner", Name: "x.go", Type: domain.RepositoryItemFile, ParentID: &readme.ID},
			code:  domain.ErrorCodeValidation,
		},
		{
			name:  "folder with content",
			input: domain.CreateRepositoryItemInput{ProjectID: p.ID, CallerID: "owner", Name: "docs", Type: domain.RepositoryItemFolder, Content: "x"},
			code:  domain.ErrorCodeValidation,
		},
		{
			name:  "slash in name",
			input: domain.CreateRepositoryItemInput{ProjectID: p.ID, CallerID: "owner", Name: "a/b", Type: domain.RepositoryItemFile},
			code:  domain.ErrorCodeValidation,
		},
		{
			name:  "outsider cannot write",
			input: domain.CreateRepositoryItemInput{ProjectID: p.ID, CallerID: "outsider", Name: "hack.sh", Type: domain.RepositoryItemFile},
			code:  domain.ErrorCodePermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := f.svc.CreateRepositoryItem(f.ctx, &input)
			requireCode(t, err, tt.code)
		})
	}

	// Публичный проект читать может любой
	items, err := f.svc.ListRepositoryItems(f.ctx, p.ID, "outsider")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestChangeRequests_ReviewOnce(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "reader", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPublic)

	file, err := f.svc.CreateRepositoryItem(f.ctx, &domain.CreateRepositoryItemInput{
		ProjectID: p.ID, CallerID: "owner", Name: "app.js", Type: domain.RepositoryItemFile, Content: "let a = 1",
	})
	require.NoError(t, err)

	// Act
	cr, err := f.svc.CreateChangeRequest(f.ctx, &domain.CreateChangeRequestInput{
		ProjectID:       p.ID,
		RequesterID:     "reader",
		Title:           "Use const",
		ChangeType:      domain.ChangeTypeModify,
		FileID:          &file.ID,
		ProposedChanges: "const a = 1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ChangeRequestStatusOpen, cr.Status)

	_, err = f.svc.ReviewChangeRequest(f.ctx, &domain.ReviewChangeRequestInput{
		RequestID: cr.ID, Status: domain.ChangeRequestStatusApproved, ReviewerID: "reader",
	})
	assert.ErrorIs(t, err, domain.ErrNotProjectOwner)

	reviewed, err := f.svc.ReviewChangeRequest(f.ctx, &domain.ReviewChangeRequestInput{
		RequestID: cr.ID, Status: domain.ChangeRequestStatusMerged, ReviewerID: "owner",
	})
	require.NoError(t, err)

	_, err = f.svc.ReviewChangeRequest(f.ctx, &domain.ReviewChangeRequestInput{
		RequestID: cr.ID, Status: domain.ChangeRequestStatusRejected, ReviewerID: "owner",
	})

	// Assert
	assert.Equal(t, domain.ChangeRequestStatusMerged, reviewed.Status)
	require.NotNil(t, reviewed.ReviewerID)
	assert.Equal(t, "owner", *reviewed.ReviewerID)
	assert.NotNil(t, reviewed.ReviewedAt)
	requireCode(t, err, domain.ErrorCodeInvalidState)

	// Предложение к файлу не применяется
	item, err := f.svc.GetRepositoryItem(f.ctx, p.ID, file.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, "let a = 1", item.Content)

	list, err := f.svc.ListChangeRequests(f.ctx, p.ID, "reader")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestChangeRequests_Validation(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "other", domain.RoleStudent, "Harvard")
	p := f.project(t, "owner", domain.VisibilityInstitution)
	missing := "missing"

	_, err := f.svc.CreateChangeRequest(f.ctx, &domain.CreateChangeRequestInput{
		ProjectID: p.ID, RequesterID: "owner", Title: "", ChangeType: "RENAME",
	})
	requireCode(t, err, domain.ErrorCodeValidation)

	_, err = f.svc.CreateChangeRequest(f.ctx, &domain.CreateChangeRequestInput{
		ProjectID: p.ID, RequesterID: "owner", Title: "Fix", ChangeType: domain.ChangeTypeSuggest, FileID: &missing,
	})
	requireCode(t, err, domain.ErrorCodeValidation)

	_, err = f.svc.CreateChangeRequest(f.ctx, &domain.CreateChangeRequestInput{
		ProjectID: p.ID, RequesterID: "other", Title: "Fix", ChangeType: domain.ChangeTypeSuggest,
	})
	assert.ErrorIs(t, err, domain.ErrNoProjectAccess)
}

func TestChangeRequests_UnknownRequester(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPublic)

	_, err := f.svc.CreateChangeRequest(f.ctx, &domain.CreateChangeRequestInput{
		ProjectID: p.ID, RequesterID: "ghost", Title: "Fix", ChangeType: domain.ChangeTypeSuggest,
	})
	requireCode(t, err, domain.ErrorCodeNotFound)

	list, err := f.svc.ListChangeRequests(f.ctx, p.ID, "owner")
	require.NoError(t, err)
	assert.Empty(t, list)
}
