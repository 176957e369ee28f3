package storage

import (
	"context"
	"time"

	"sharexconnect/internal/domain"
)

// TxManager управляет транзакциями базы данных и владеет пулом соединений
type TxManager interface {
	// Do выполняет функцию fn внутри транзакции
	// Если fn возвращает ошибку, транзакция откатывается
	// Иначе транзакция коммитится
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// Close останавливает фоновые сборщики и закрывает пул соединений
	Close() error
}

// Tx представляет транзакцию с доступом к репозиториям
type Tx interface {
	UserRepo() UserRepository
	ProjectRepo() ProjectRepository
	CollaboratorRepo() CollaboratorRepository
	CollaborationRequestRepo() CollaborationRequestRepository
	RepositoryItemRepo() RepositoryItemRepository
	ChangeRequestRepo() ChangeRequestRepository
	PullRequestRepo() PullRequestRepository
	ProjectFileRepo() ProjectFileRepository
}

// UserRepository определяет операции с пользователями
type UserRepository interface {
	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// Upsert создаёт пользователя или обновляет его профиль
	Upsert(ctx context.Context, user *domain.User) error
}

// ProjectRepository определяет операции с проектами
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, projectID string) (*domain.Project, error)
	Delete(ctx context.Context, projectID string) error

	// UpdateStatus меняет статус только если текущий входит в from
	UpdateStatus(ctx context.Context, projectID string, from []domain.ProjectStatus, to domain.ProjectStatus) error

	// Touch обновляет updated_at проекта
	Touch(ctx context.Context, projectID string, at time.Time) error
}

// CollaboratorRepository определяет операции с участниками проекта
type CollaboratorRepository interface {
	// Add добавляет участника, повторное добавление ничего не делает
	Add(ctx context.Context, projectID, userID string) error
	Remove(ctx context.Context, projectID, userID string) error
	IsCollaborator(ctx context.Context, projectID, userID string) (bool, error)
	Get(ctx context.Context, projectID, userID string) (*domain.Collaborator, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Collaborator, error)
}

// CollaborationRequestRepository определяет операции с заявками на участие
type CollaborationRequestRepository interface {
	Create(ctx context.Context, req *domain.CollaborationRequest) error
	GetByID(ctx context.Context, requestID string) (*domain.CollaborationRequest, error)

	// HasPending проверяет наличие заявки в ожидании для пары проект/сторона
	HasPending(ctx context.Context, projectID, partyID string, reqType domain.CollaborationRequestType) (bool, error)

	// Resolve атомарно переводит заявку из PENDING в status.
	// Возвращает ErrConflict если заявка уже не в PENDING.
	Resolve(ctx context.Context, requestID string, status domain.CollaborationStatus, responderID string, at time.Time) error

	// ListPendingRequests возвращает заявки типа REQUEST в ожидании для проекта
	ListPendingRequests(ctx context.Context, projectID string) ([]domain.CollaborationRequest, error)

	// ListInvitationsFor возвращает приглашения проекта, адресованные пользователю
	ListInvitationsFor(ctx context.Context, projectID, inviteeID string) ([]domain.CollaborationRequest, error)
}

// RepositoryItemRepository определяет операции с деревом файлов проекта
type RepositoryItemRepository interface {
	Create(ctx context.Context, item *domain.RepositoryItem) error
	GetByID(ctx context.Context, projectID, itemID string) (*domain.RepositoryItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.RepositoryItem, error)
	UpdateContent(ctx context.Context, item *domain.RepositoryItem) error

	// DeleteSubtree удаляет узел и всех потомков, возвращает число удалённых узлов
	DeleteSubtree(ctx context.Context, projectID, itemID string) (int, error)
}

// ChangeRequestRepository определяет операции с предложениями изменений
type ChangeRequestRepository interface {
	Create(ctx context.Context, cr *domain.ChangeRequest) error
	GetByID(ctx context.Context, requestID string) (*domain.ChangeRequest, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.ChangeRequest, error)

	// Review атомарно переводит предложение из OPEN в status.
	// Возвращает ErrConflict если предложение уже рассмотрено.
	Review(ctx context.Context, requestID string, status domain.ChangeRequestStatus, reviewerID string, at time.Time) error
}

// PullRequestRepository определяет операции с pull requests и их временными файлами
type PullRequestRepository interface {
	Create(ctx context.Context, pr *domain.PullRequest) error

	// GetByID возвращает PR с автором, без прикреплённых файлов
	GetByID(ctx context.Context, pullRequestID string) (*domain.PullRequest, error)

	// ListByProject возвращает PR проекта по возрастанию created_at
	ListByProject(ctx context.Context, projectID string) ([]domain.PullRequest, error)

	// UpdateStatus атомарно меняет статус, если текущий входит в from.
	// Возвращает ErrConflict если ни одна строка не изменилась.
	UpdateStatus(ctx context.Context, pullRequestID string, from []domain.PullRequestStatus, to domain.PullRequestStatus, reviewerID string, at time.Time) error

	AddFile(ctx context.Context, file *domain.PullRequestFile) error

	// ListFiles возвращает файлы PR; withContent=false не загружает содержимое
	ListFiles(ctx context.Context, pullRequestID string, withContent bool) ([]domain.PullRequestFile, error)

	// DeleteFiles удаляет все временные файлы PR
	DeleteFiles(ctx context.Context, pullRequestID string) (int, error)
}

// ProjectFileRepository определяет операции с постоянными файлами проекта
type ProjectFileRepository interface {
	Create(ctx context.Context, file *domain.ProjectFile) error
	GetByID(ctx context.Context, projectID, fileID string) (*domain.ProjectFile, error)

	// ListByProject возвращает метаданные без содержимого
	ListByProject(ctx context.Context, projectID string) ([]domain.ProjectFile, error)
}
