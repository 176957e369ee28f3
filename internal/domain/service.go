package domain

import "context"

// ProjectService - операции над проектами и их постоянными файлами
type ProjectService interface {
	// CreateProject создаёт проект в статусе DRAFT
	CreateProject(ctx context.Context, input *CreateProjectInput) (*Project, error)

	// GetProject возвращает проект с учётом видимости
	GetProject(ctx context.Context, projectID, callerID string) (*Project, error)

	// DeleteProject удаляет проект (только владелец)
	DeleteProject(ctx context.Context, projectID, callerID string) error

	// SubmitProject отправляет проект на рецензию
	SubmitProject(ctx context.Context, projectID, callerID string) (*Project, error)

	// ReviewProject переводит проект в UNDER_REVIEW или APPROVED (финальная рецензия)
	ReviewProject(ctx context.Context, input *ReviewProjectInput) (*Project, error)

	// UploadProjectFile сохраняет файл напрямую в постоянное хранилище
	UploadProjectFile(ctx context.Context, input *UploadProjectFileInput) (*ProjectFile, error)

	// GetProjectFiles возвращает метаданные файлов проекта
	GetProjectFiles(ctx context.Context, projectID, callerID string) ([]ProjectFile, error)

	// GetProjectFile возвращает файл проекта вместе с содержимым
	GetProjectFile(ctx context.Context, projectID, fileID, callerID string) (*ProjectFile, error)
}

// CollaborationService - заявки, приглашения и участники проекта
type CollaborationService interface {
	// RequestCollaboration создаёт заявку типа REQUEST
	RequestCollaboration(ctx context.Context, input *RequestCollaborationInput) (*CollaborationRequest, error)

	// InviteCollaborator создаёт приглашение типа INVITATION
	InviteCollaborator(ctx context.Context, input *InviteCollaboratorInput) (*CollaborationRequest, error)

	// RespondToCollaborationRequest одобряет или отклоняет заявку ровно один раз
	RespondToCollaborationRequest(ctx context.Context, input *RespondCollaborationInput) (*CollaborationRequest, error)

	// GetCollaborationRequestsForUser возвращает заявки, видимые вызывающему
	GetCollaborationRequestsForUser(ctx context.Context, projectID, callerID string) ([]CollaborationRequest, error)

	// GetProjectCollaborators возвращает участников проекта
	GetProjectCollaborators(ctx context.Context, projectID, callerID string) ([]Collaborator, error)

	// AddCollaborator добавляет участника напрямую (только владелец)
	AddCollaborator(ctx context.Context, projectID, userID, ownerID string) (*Collaborator, error)

	// RemoveCollaborator удаляет участника (только владелец)
	RemoveCollaborator(ctx context.Context, projectID, userID, ownerID string) error
}

// RepositoryService - дерево файлов проекта
type RepositoryService interface {
	ListRepositoryItems(ctx context.Context, projectID, callerID string) ([]RepositoryItem, error)
	GetRepositoryItem(ctx context.Context, projectID, itemID, callerID string) (*RepositoryItem, error)
	CreateRepositoryItem(ctx context.Context, input *CreateRepositoryItemInput) (*RepositoryItem, error)
	UpdateRepositoryItem(ctx context.Context, input *UpdateRepositoryItemInput) (*RepositoryItem, error)

	// DeleteRepositoryItem удаляет узел вместе со всем поддеревом
	DeleteRepositoryItem(ctx context.Context, projectID, itemID, callerID string) (int, error)
}

// ChangeRequestService - предложения изменений отдельных файлов
type ChangeRequestService interface {
	CreateChangeRequest(ctx context.Context, input *CreateChangeRequestInput) (*ChangeRequest, error)
	ReviewChangeRequest(ctx context.Context, input *ReviewChangeRequestInput) (*ChangeRequest, error)
	ListChangeRequests(ctx context.Context, projectID, callerID string) ([]ChangeRequest, error)
}

// PullRequestService - pull request'ы участников и их merge
type PullRequestService interface {
	// CreatePullRequest создаёт PR и сохраняет приложенные файлы во временное хранилище
	CreatePullRequest(ctx context.Context, input *CreatePullRequestInput) (*PullRequest, error)

	// UpdatePullRequestStatus меняет статус PR; MERGED переносит файлы в проект
	UpdatePullRequestStatus(ctx context.Context, input *UpdatePullRequestStatusInput) (*PullRequest, error)

	// GetProjectPullRequests возвращает PR проекта в порядке создания
	GetProjectPullRequests(ctx context.Context, projectID, callerID string) ([]PullRequest, error)

	// GetPullRequest возвращает PR с метаданными прикреплённых файлов
	GetPullRequest(ctx context.Context, projectID, pullRequestID, callerID string) (*PullRequest, error)
}

// SharingService - полный набор бизнес-операций приложения
//
//go:generate mockery --name=SharingService --output=../mocks --outpkg=mocks --filename=sharing_service_mock.go
type SharingService interface {
	ProjectService
	CollaborationService
	RepositoryService
	ChangeRequestService
	PullRequestService
}
