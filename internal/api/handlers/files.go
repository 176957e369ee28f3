package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api"
	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/domain"
)

// limitBody ограничивает размер тела запроса настроенным лимитом загрузки
func (h *Handler) limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
}

// readUpload читает часть multipart формы в память
func readUpload(fh *multipart.FileHeader, filePath string) (domain.FileUpload, error) {
	src, err := fh.Open()
	if err != nil {
		return domain.FileUpload{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return domain.FileUpload{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}

	return domain.FileUpload{
		FileName: fh.Filename,
		FilePath: filePath,
		FileType: fh.Header.Get("Content-Type"),
		Content:  content,
	}, nil
}

func (h *Handler) GetProjectFiles(c *gin.Context) {
	files, err := h.service.GetProjectFiles(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	resp := make([]map[string]interface{}, len(files))
	for i := range files {
		resp[i] = mapProjectFileToAPI(&files[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"files": resp,
	})
}

// UploadProjectFile - прямая загрузка файла владельцем (multipart поле "file")
func (h *Handler) UploadProjectFile(c *gin.Context) {
	h.limitBody(c)

	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    api.ErrCodeInvalidRequest,
				Message: "request validation failed",
				Errors:  []api.FieldError{{Field: "file", Message: "is required"}},
			})
			return
		}
		handleBindError(c, err)
		return
	}

	upload, err := readUpload(fh, c.PostForm("filePath"))
	if err != nil {
		handleBindError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", c.Param("id")).
		Str("file_name", upload.FileName).
		Int("size", len(upload.Content)).
		Msg("uploading project file")

	file, err := h.service.UploadProjectFile(c.Request.Context(), &domain.UploadProjectFileInput{
		ProjectID:  c.Param("id"),
		UploaderID: middleware.GetUserID(c),
		File:       upload,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"file": mapProjectFileToAPI(file),
	})
}

// DownloadProjectFile отдаёт содержимое файла как вложение
func (h *Handler) DownloadProjectFile(c *gin.Context) {
	file, err := h.service.GetProjectFile(c.Request.Context(), c.Param("id"), c.Param("fileId"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	contentType := file.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	c.Header("Content-Length", strconv.Itoa(len(file.Content)))
	c.Data(http.StatusOK, contentType, file.Content)
}
