package domain

import (
	"path"
	"strings"
	"time"
)

// RepositoryItemType - тип узла дерева репозитория
type RepositoryItemType string

const (
	RepositoryItemFile   RepositoryItemType = "FILE"
	RepositoryItemFolder RepositoryItemType = "FOLDER"
)

// RepositoryItem - узел дерева файлов проекта
type RepositoryItem struct {
	ID             string
	ProjectID      string
	ParentID       *string
	Path           string
	Name           string
	Type           RepositoryItemType
	Content        string
	Size           int64
	Language       string
	LastModifiedBy string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateRepositoryItemInput - входные данные для создания узла
type CreateRepositoryItemInput struct {
	ProjectID string
	CallerID  string
	Name      string
	Type      RepositoryItemType
	ParentID  *string
	Content   string
	Language  string
}

// UpdateRepositoryItemInput - входные данные для обновления содержимого файла
type UpdateRepositoryItemInput struct {
	ProjectID string
	ItemID    string
	CallerID  string
	Content   string
	Language  string
}

var languageByExt = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".rb":    "ruby",
	".rs":    "rust",
	".php":   "php",
	".kt":    "kotlin",
	".swift": "swift",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".md":    "markdown",
	".sh":    "shell",
}

// DetectLanguage определяет язык по расширению файла, "text" если не удалось
func DetectLanguage(name string) string {
	if lang, ok := languageByExt[strings.ToLower(path.Ext(name))]; ok {
		return lang
	}
	return "text"
}

// JoinItemPath строит путь узла относительно корня репозитория
func JoinItemPath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + "/" + name
}
