package service

import (
	"context"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/storage"
)

var archiveExtensions = map[string]bool{
	".zip": true,
	".tar": true,
	".gz":  true,
	".tgz": true,
	".bz2": true,
	".xz":  true,
	".rar": true,
	".7z":  true,
}

var archiveMIMEs = map[string]bool{
	"application/zip":              true,
	"application/x-tar":            true,
	"application/gzip":             true,
	"application/x-bzip2":          true,
	"application/x-xz":             true,
	"application/x-rar-compressed": true,
	"application/x-7z-compressed":  true,
}

// detectFileType возвращает MIME тип по содержимому, если клиент прислал общий тип
func detectFileType(declared string, content []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(content).String()
}

// isArchive определяет архив по расширению или по MIME типу
func isArchive(fileName, fileType string) bool {
	if archiveExtensions[strings.ToLower(path.Ext(fileName))] {
		return true
	}
	mediaType, _, _ := strings.Cut(fileType, ";")
	return archiveMIMEs[strings.TrimSpace(mediaType)]
}

// validateUpload проверяет имя загруженного файла
func validateUpload(field string, f domain.FileUpload) error {
	if strings.TrimSpace(f.FileName) == "" {
		return domain.NewValidationError("file name is required",
			domain.FieldError{Field: field, Message: "file name is required"})
	}
	return nil
}

// stagedFile собирает временный файл PR из загрузки
func stagedFile(pullRequestID string, f domain.FileUpload) *domain.PullRequestFile {
	fileType := detectFileType(f.FileType, f.Content)
	filePath := f.FilePath
	if filePath == "" {
		filePath = f.FileName
	}
	return &domain.PullRequestFile{
		ID:            uuid.NewString(),
		PullRequestID: pullRequestID,
		FileName:      f.FileName,
		FilePath:      filePath,
		FileType:      fileType,
		FileSize:      int64(len(f.Content)),
		Content:       f.Content,
		IsArchive:     isArchive(f.FileName, fileType),
	}
}

// persistProjectFile сохраняет файл в постоянное хранилище проекта.
// Используется и прямой загрузкой владельца, и merge PR.
func persistProjectFile(ctx context.Context, tx storage.Tx, file *domain.ProjectFile) error {
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	if file.FilePath == "" {
		file.FilePath = file.FileName
	}
	return tx.ProjectFileRepo().Create(ctx, file)
}
