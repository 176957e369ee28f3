package domain

import "time"

// Role - роль пользователя в системе
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
	RoleAdmin   Role = "ADMIN"
	RoleGuest   Role = "GUEST"
)

// Valid проверяет что роль входит в допустимый набор
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin, RoleGuest:
		return true
	}
	return false
}

// Visibility - видимость проекта
type Visibility string

const (
	VisibilityPrivate     Visibility = "PRIVATE"
	VisibilityInstitution Visibility = "INSTITUTION"
	VisibilityPublic      Visibility = "PUBLIC"
)

// ProjectStatus - статус проекта в процессе рецензирования
type ProjectStatus string

const (
	ProjectStatusDraft       ProjectStatus = "DRAFT"
	ProjectStatusSubmitted   ProjectStatus = "SUBMITTED"
	ProjectStatusUnderReview ProjectStatus = "UNDER_REVIEW"
	ProjectStatusApproved    ProjectStatus = "APPROVED"
)

// User - domain модель пользователя
type User struct {
	ID            string
	Username      string
	Email         string
	FullName      string
	Role          Role
	Institution   string
	CollegeDomain string
	Department    string // только для FACULTY
	TechExpertise string // только для FACULTY
	IsVerified    bool
}

// Project - domain модель проекта
type Project struct {
	ID          string
	Title       string
	Description string
	Category    string
	OwnerID     string
	Visibility  Visibility
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Collaborator - участник проекта с правом записи
type Collaborator struct {
	ProjectID string
	UserID    string
	Username  string
	FullName  string
	Role      Role
	AddedAt   time.Time
}

// ProjectFile - постоянный файл проекта
type ProjectFile struct {
	ID         string
	ProjectID  string
	FileName   string
	FilePath   string
	FileType   string
	FileSize   int64
	Content    []byte
	IsArchive  bool
	UploadedBy string
	CreatedAt  time.Time
}

// Input/Output DTOs для методов сервиса

// CreateProjectInput - входные данные для создания проекта
type CreateProjectInput struct {
	OwnerID     string
	Title       string
	Description string
	Category    string
	Visibility  Visibility
}

// ReviewProjectInput - входные данные для рецензии проекта преподавателем
type ReviewProjectInput struct {
	ProjectID  string
	ReviewerID string
	Final      bool
}

// UploadProjectFileInput - входные данные для прямой загрузки файла владельцем
type UploadProjectFileInput struct {
	ProjectID  string
	UploaderID string
	File       FileUpload
}

// FileUpload - загруженный файл до сохранения
type FileUpload struct {
	FileName string
	FilePath string
	FileType string
	Content  []byte
}
