package domain

import "time"

// PullRequestStatus - статус pull request
type PullRequestStatus string

const (
	PullRequestStatusDraft    PullRequestStatus = "DRAFT"
	PullRequestStatusOpen     PullRequestStatus = "OPEN"
	PullRequestStatusApproved PullRequestStatus = "APPROVED"
	PullRequestStatusRejected PullRequestStatus = "REJECTED"
	PullRequestStatusMerged   PullRequestStatus = "MERGED"
)

// Terminal возвращает true для статусов, из которых переходов нет
func (s PullRequestStatus) Terminal() bool {
	return s == PullRequestStatusRejected || s == PullRequestStatusMerged
}

// pullRequestTransitions - допустимые исходные статусы для каждого целевого
var pullRequestTransitions = map[PullRequestStatus][]PullRequestStatus{
	PullRequestStatusApproved: {PullRequestStatusOpen, PullRequestStatusDraft},
	PullRequestStatusRejected: {PullRequestStatusOpen, PullRequestStatusDraft},
	PullRequestStatusMerged:   {PullRequestStatusOpen, PullRequestStatusDraft, PullRequestStatusApproved},
}

// PullRequestSourceStates возвращает статусы, из которых разрешён переход в target.
// Пустой результат означает, что target не может быть выставлен рецензентом.
func PullRequestSourceStates(target PullRequestStatus) []PullRequestStatus {
	return pullRequestTransitions[target]
}

// CanTransitionTo проверяет допустимость перехода
func (s PullRequestStatus) CanTransitionTo(target PullRequestStatus) bool {
	for _, from := range pullRequestTransitions[target] {
		if from == s {
			return true
		}
	}
	return false
}

// PullRequest - domain модель pull request
type PullRequest struct {
	ID             string
	ProjectID      string
	AuthorID       string
	Author         *User
	Title          string
	Description    string
	BranchName     string
	FilesChanged   []string
	ChangesPreview string
	Status         PullRequestStatus
	ReviewerID     *string
	ReviewedAt     *time.Time
	MergedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Files          []PullRequestFile
}

// PullRequestFile - файл, прикреплённый к PR до merge
type PullRequestFile struct {
	ID            string
	PullRequestID string
	FileName      string
	FilePath      string
	FileType      string
	FileSize      int64
	Content       []byte
	IsArchive     bool
	CreatedAt     time.Time
}

// CreatePullRequestInput - входные данные для создания PR
type CreatePullRequestInput struct {
	ProjectID      string
	AuthorID       string
	Title          string
	Description    string
	BranchName     string
	FilesChanged   []string
	ChangesPreview string
	Draft          bool
	Files          []FileUpload
}

// UpdatePullRequestStatusInput - входные данные для смены статуса PR
type UpdatePullRequestStatusInput struct {
	ProjectID     string
	PullRequestID string
	Status        PullRequestStatus
	ReviewerID    string
}
