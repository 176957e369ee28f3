package gorm

import (
	"time"

	"gorm.io/datatypes"

	"sharexconnect/internal/domain"
)

// User - модель БД для пользователя
type User struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Username      string    `gorm:"column:username;not null;uniqueIndex"`
	Email         string    `gorm:"column:email;not null"`
	FullName      string    `gorm:"column:full_name"`
	Role          string    `gorm:"column:role;not null;default:STUDENT"`
	Institution   string    `gorm:"column:institution"`
	CollegeDomain string    `gorm:"column:college_domain"`
	Department    string    `gorm:"column:department"`
	TechExpertise string    `gorm:"column:tech_expertise"`
	IsVerified    bool      `gorm:"column:is_verified;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) toDomain() *domain.User {
	return &domain.User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		Role:          domain.Role(u.Role),
		Institution:   u.Institution,
		CollegeDomain: u.CollegeDomain,
		Department:    u.Department,
		TechExpertise: u.TechExpertise,
		IsVerified:    u.IsVerified,
	}
}

// Project - модель БД для проекта
type Project struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	Category    string    `gorm:"column:category"`
	OwnerID     string    `gorm:"column:owner_id;not null;index"`
	Visibility  string    `gorm:"column:visibility;not null;default:PRIVATE"`
	Status      string    `gorm:"column:status;not null;default:DRAFT"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) toDomain() *domain.Project {
	return &domain.Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		OwnerID:     p.OwnerID,
		Visibility:  domain.Visibility(p.Visibility),
		Status:      domain.ProjectStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectCollaborator - модель БД для связи проекта и участника
type ProjectCollaborator struct {
	ProjectID string    `gorm:"column:project_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;primaryKey;index"`
	AddedAt   time.Time `gorm:"column:added_at;autoCreateTime"`
}

func (ProjectCollaborator) TableName() string {
	return "project_collaborators"
}

// CollaborationRequest - модель БД для заявки/приглашения
type CollaborationRequest struct {
	ID          string     `gorm:"column:id;primaryKey"`
	ProjectID   string     `gorm:"column:project_id;not null;index"`
	Type        string     `gorm:"column:type;not null"`
	PartyID     string     `gorm:"column:party_id;not null;index"`
	SenderID    string     `gorm:"column:sender_id;not null"`
	Message     string     `gorm:"column:message"`
	Status      string     `gorm:"column:status;not null;default:PENDING"`
	ResponderID *string    `gorm:"column:responder_id"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	RespondedAt *time.Time `gorm:"column:responded_at"`
}

func (CollaborationRequest) TableName() string {
	return "collaboration_requests"
}

func (r *CollaborationRequest) toDomain() domain.CollaborationRequest {
	return domain.CollaborationRequest{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Type:        domain.CollaborationRequestType(r.Type),
		PartyID:     r.PartyID,
		SenderID:    r.SenderID,
		Message:     r.Message,
		Status:      domain.CollaborationStatus(r.Status),
		ResponderID: r.ResponderID,
		CreatedAt:   r.CreatedAt,
		RespondedAt: r.RespondedAt,
	}
}

// RepositoryItem - модель БД для узла дерева репозитория
type RepositoryItem struct {
	ID             string    `gorm:"column:id;primaryKey"`
	ProjectID      string    `gorm:"column:project_id;not null;uniqueIndex:uq_repository_item_path"`
	Path           string    `gorm:"column:path;not null;uniqueIndex:uq_repository_item_path"`
	ParentID       *string   `gorm:"column:parent_id;index"`
	Name           string    `gorm:"column:name;not null"`
	Type           string    `gorm:"column:type;not null"`
	Content        string    `gorm:"column:content;type:text"`
	Size           int64     `gorm:"column:size;not null;default:0"`
	Language       string    `gorm:"column:language"`
	LastModifiedBy string    `gorm:"column:last_modified_by"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (RepositoryItem) TableName() string {
	return "project_repository_items"
}

func (i *RepositoryItem) toDomain() domain.RepositoryItem {
	return domain.RepositoryItem{
		ID:             i.ID,
		ProjectID:      i.ProjectID,
		ParentID:       i.ParentID,
		Path:           i.Path,
		Name:           i.Name,
		Type:           domain.RepositoryItemType(i.Type),
		Content:        i.Content,
		Size:           i.Size,
		Language:       i.Language,
		LastModifiedBy: i.LastModifiedBy,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// ChangeRequest - модель БД для предложения изменения
type ChangeRequest struct {
	ID              string     `gorm:"column:id;primaryKey"`
	ProjectID       string     `gorm:"column:project_id;not null;index"`
	RequesterID     string     `gorm:"column:requester_id;not null"`
	Title           string     `gorm:"column:title;not null"`
	Description     string     `gorm:"column:description"`
	ChangeType      string     `gorm:"column:change_type;not null"`
	FileID          *string    `gorm:"column:file_id"`
	ProposedChanges string     `gorm:"column:proposed_changes;type:text"`
	Status          string     `gorm:"column:status;not null;default:OPEN"`
	ReviewerID      *string    `gorm:"column:reviewer_id"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (ChangeRequest) TableName() string {
	return "project_change_requests"
}

func (c *ChangeRequest) toDomain() domain.ChangeRequest {
	return domain.ChangeRequest{
		ID:              c.ID,
		ProjectID:       c.ProjectID,
		RequesterID:     c.RequesterID,
		Title:           c.Title,
		Description:     c.Description,
		ChangeType:      domain.ChangeType(c.ChangeType),
		FileID:          c.FileID,
		ProposedChanges: c.ProposedChanges,
		Status:          domain.ChangeRequestStatus(c.Status),
		ReviewerID:      c.ReviewerID,
		ReviewedAt:      c.ReviewedAt,
		CreatedAt:       c.CreatedAt,
	}
}

// PullRequest - модель БД для pull request
type PullRequest struct {
	ID             string                      `gorm:"column:id;primaryKey"`
	ProjectID      string                      `gorm:"column:project_id;not null;index"`
	AuthorID       string                      `gorm:"column:author_id;not null"`
	Author         *User                       `gorm:"foreignKey:AuthorID;references:ID"`
	Title          string                      `gorm:"column:title;not null"`
	Description    string                      `gorm:"column:description"`
	BranchName     string                      `gorm:"column:branch_name;not null"`
	FilesChanged   datatypes.JSONSlice[string] `gorm:"column:files_changed"`
	ChangesPreview string                      `gorm:"column:changes_preview;type:text"`
	Status         string                      `gorm:"column:status;not null;default:OPEN"`
	ReviewerID     *string                     `gorm:"column:reviewer_id"`
	ReviewedAt     *time.Time                  `gorm:"column:reviewed_at"`
	MergedAt       *time.Time                  `gorm:"column:merged_at"`
	CreatedAt      time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}

func (PullRequest) TableName() string {
	return "project_pull_requests"
}

func (p *PullRequest) toDomain() domain.PullRequest {
	pr := domain.PullRequest{
		ID:             p.ID,
		ProjectID:      p.ProjectID,
		AuthorID:       p.AuthorID,
		Title:          p.Title,
		Description:    p.Description,
		BranchName:     p.BranchName,
		FilesChanged:   []string(p.FilesChanged),
		ChangesPreview: p.ChangesPreview,
		Status:         domain.PullRequestStatus(p.Status),
		ReviewerID:     p.ReviewerID,
		ReviewedAt:     p.ReviewedAt,
		MergedAt:       p.MergedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Author != nil {
		pr.Author = p.Author.toDomain()
	}
	if pr.FilesChanged == nil {
		pr.FilesChanged = []string{}
	}
	return pr
}

// PullRequestFile - модель БД для временного файла PR
type PullRequestFile struct {
	ID            string    `gorm:"column:id;primaryKey"`
	PullRequestID string    `gorm:"column:pull_request_id;not null;index"`
	FileName      string    `gorm:"column:file_name;not null"`
	FilePath      string    `gorm:"column:file_path;not null"`
	FileType      string    `gorm:"column:file_type"`
	FileSize      int64     `gorm:"column:file_size;not null;default:0"`
	Content       []byte    `gorm:"column:content"`
	IsArchive     bool      `gorm:"column:is_archive;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PullRequestFile) TableName() string {
	return "pull_request_files"
}

func (f *PullRequestFile) toDomain() domain.PullRequestFile {
	return domain.PullRequestFile{
		ID:            f.ID,
		PullRequestID: f.PullRequestID,
		FileName:      f.FileName,
		FilePath:      f.FilePath,
		FileType:      f.FileType,
		FileSize:      f.FileSize,
		Content:       f.Content,
		IsArchive:     f.IsArchive,
		CreatedAt:     f.CreatedAt,
	}
}

// ProjectFile - модель БД для постоянного файла проекта
type ProjectFile struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ProjectID  string    `gorm:"column:project_id;not null;index"`
	FileName   string    `gorm:"column:file_name;not null"`
	FilePath   string    `gorm:"column:file_path;not null"`
	FileType   string    `gorm:"column:file_type"`
	FileSize   int64     `gorm:"column:file_size;not null;default:0"`
	Content    []byte    `gorm:"column:content"`
	IsArchive  bool      `gorm:"column:is_archive;not null;default:false"`
	UploadedBy string    `gorm:"column:uploaded_by;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProjectFile) TableName() string {
	return "project_files"
}

func (f *ProjectFile) toDomain() domain.ProjectFile {
	return domain.ProjectFile{
		ID:         f.ID,
		ProjectID:  f.ProjectID,
		FileName:   f.FileName,
		FilePath:   f.FilePath,
		FileType:   f.FileType,
		FileSize:   f.FileSize,
		Content:    f.Content,
		IsArchive:  f.IsArchive,
		UploadedBy: f.UploadedBy,
		CreatedAt:  f.CreatedAt,
	}
}

// allModels - модели для AutoMigrate в режиме sqlite
var allModels = []interface{}{
	&User{},
	&Project{},
	&ProjectCollaborator{},
	&CollaborationRequest{},
	&RepositoryItem{},
	&ChangeRequest{},
	&PullRequest{},
	&PullRequestFile{},
	&ProjectFile{},
}
