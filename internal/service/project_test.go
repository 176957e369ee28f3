package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharexconnect/internal/domain"
)

func TestGetProject_Visibility(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "classmate", domain.RoleStudent, "MIT")
	f.user(t, "rival", domain.RoleStudent, "Stanford")
	f.user(t, "admin", domain.RoleAdmin, "")
	f.user(t, "member", domain.RoleStudent, "Stanford")

	private := f.project(t, "owner", domain.VisibilityPrivate)
	institution := f.project(t, "owner", domain.VisibilityInstitution)
	public := f.project(t, "owner", domain.VisibilityPublic)
	f.addCollaborator(t, private.ID, "owner", "member")

	tests := []struct {
		name      string
		projectID string
		callerID  string
		visible   bool
	}{
		{"owner sees private", private.ID, "owner", true},
		{"collaborator sees private", private.ID, "member", true},
		{"admin sees private", private.ID, "admin", true},
		{"classmate does not see private", private.ID, "classmate", false},
		{"classmate sees institution", institution.ID, "classmate", true},
		{"rival does not see institution", institution.ID, "rival", false},
		{"unknown caller does not see institution", institution.ID, "ghost", false},
		{"rival sees public", public.ID, "rival", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := f.svc.GetProject(f.ctx, tt.projectID, tt.callerID)
			if tt.visible {
				require.NoError(t, err)
				assert.Equal(t, tt.projectID, p.ID)
				return
			}
			assert.ErrorIs(t, err, domain.ErrNoProjectAccess)
		})
	}
}

func TestProjectLifecycle_ApprovedOnlyByFinalFacultyReview(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "prof", domain.RoleFaculty, "MIT")
	p := f.project(t, "owner", domain.VisibilityPublic)
	assert.Equal(t, domain.ProjectStatusDraft, p.Status)

	// Рецензия черновика невозможна
	_, err := f.svc.ReviewProject(f.ctx, &domain.ReviewProjectInput{ProjectID: p.ID, ReviewerID: "prof", Final: true})
	assert.ErrorIs(t, err, domain.ErrProjectTransition)

	_, err = f.svc.SubmitProject(f.ctx, p.ID, "prof")
	assert.ErrorIs(t, err, domain.ErrNotProjectOwner)

	submitted, err := f.svc.SubmitProject(f.ctx, p.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusSubmitted, submitted.Status)

	_, err = f.svc.ReviewProject(f.ctx, &domain.ReviewProjectInput{ProjectID: p.ID, ReviewerID: "owner"})
	assert.ErrorIs(t, err, domain.ErrFacultyOnly)

	underReview, err := f.svc.ReviewProject(f.ctx, &domain.ReviewProjectInput{ProjectID: p.ID, ReviewerID: "prof"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusUnderReview, underReview.Status)

	approved, err := f.svc.ReviewProject(f.ctx, &domain.ReviewProjectInput{ProjectID: p.ID, ReviewerID: "prof", Final: true})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusApproved, approved.Status)
}

func TestCreateProject_Validation(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "guest", domain.RoleGuest, "")

	_, err := f.svc.CreateProject(f.ctx, &domain.CreateProjectInput{OwnerID: "owner", Title: " "})
	requireCode(t, err, domain.ErrorCodeValidation)

	_, err = f.svc.CreateProject(f.ctx, &domain.CreateProjectInput{OwnerID: "owner", Title: "X", Visibility: "SECRET"})
	requireCode(t, err, domain.ErrorCodeValidation)

	_, err = f.svc.CreateProject(f.ctx, &domain.CreateProjectInput{OwnerID: "guest", Title: "X"})
	requireCode(t, err, domain.ErrorCodePermissionDenied)

	_, err = f.svc.CreateProject(f.ctx, &domain.CreateProjectInput{OwnerID: "ghost", Title: "X"})
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)

	p, err := f.svc.CreateProject(f.ctx, &domain.CreateProjectInput{OwnerID: "owner", Title: "X"})
	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityPrivate, p.Visibility)
}

func TestUploadProjectFile_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	f.user(t, "owner", domain.RoleStudent, "MIT")
	f.user(t, "member", domain.RoleStudent, "MIT")
	p := f.project(t, "owner", domain.VisibilityPrivate)
	f.addCollaborator(t, p.ID, "owner", "member")

	_, err := f.svc.UploadProjectFile(f.ctx, &domain.UploadProjectFileInput{
		ProjectID: p.ID, UploaderID: "member", File: domain.FileUpload{FileName: "x.txt", Content: []byte("x")},
	})
	assert.ErrorIs(t, err, domain.ErrNotProjectOwner)

	file, err := f.svc.UploadProjectFile(f.ctx, &domain.UploadProjectFileInput{
		ProjectID: p.ID, UploaderID: "owner", File: domain.FileUpload{FileName: "notes.txt", Content: []byte("hello")},
	})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", file.FilePath)
	assert.Equal(t, int64(5), file.FileSize)
	assert.Contains(t, file.FileType, "text/plain")
	assert.False(t, file.IsArchive)

	err = f.svc.DeleteProject(f.ctx, p.ID, "member")
	assert.ErrorIs(t, err, domain.ErrNotProjectOwner)

	require.NoError(t, f.svc.DeleteProject(f.ctx, p.ID, "owner"))
	_, err = f.svc.GetProject(f.ctx, p.ID, "owner")
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}
