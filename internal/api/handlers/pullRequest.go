package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/domain"
)

// createPullRequestRequest принимается как JSON (файлы в base64) или как multipart форма
type createPullRequestRequest struct {
	Title          string                   `json:"title" form:"title" binding:"required,max=200"`
	Description    string                   `json:"description" form:"description"`
	BranchName     string                   `json:"branchName" form:"branchName" binding:"max=100"`
	FilesChanged   []string                 `json:"filesChanged" form:"filesChanged"`
	ChangesPreview string                   `json:"changesPreview" form:"changesPreview"`
	Draft          bool                     `json:"draft" form:"draft"`
	Files          []pullRequestFileRequest `json:"files" form:"-" binding:"omitempty,dive"`
}

type pullRequestFileRequest struct {
	FileName string `json:"fileName" binding:"required"`
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
	Content  []byte `json:"content"`
}

// CreatePullRequest создаёт PR участника вместе с приложенными файлами
func (h *Handler) CreatePullRequest(c *gin.Context) {
	h.limitBody(c)

	var req createPullRequestRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, err)
		return
	}

	files := make([]domain.FileUpload, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, domain.FileUpload{
			FileName: f.FileName,
			FilePath: f.FilePath,
			FileType: f.FileType,
			Content:  f.Content,
		})
	}

	if strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		form, err := c.MultipartForm()
		if err != nil {
			handleBindError(c, err)
			return
		}
		for _, fh := range form.File["files"] {
			upload, err := readUpload(fh, "")
			if err != nil {
				handleBindError(c, err)
				return
			}
			files = append(files, upload)
		}
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", c.Param("id")).
		Str("author_id", middleware.GetUserID(c)).
		Int("files", len(files)).
		Msg("creating pull request")

	input := &domain.CreatePullRequestInput{
		ProjectID:      c.Param("id"),
		AuthorID:       middleware.GetUserID(c),
		Title:          req.Title,
		Description:    req.Description,
		BranchName:     req.BranchName,
		FilesChanged:   req.FilesChanged,
		ChangesPreview: req.ChangesPreview,
		Draft:          req.Draft,
		Files:          files,
	}

	pr, err := h.service.CreatePullRequest(c.Request.Context(), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("pull_request_id", pr.ID).
		Str("status", string(pr.Status)).
		Msg("successfully created pull request")

	c.JSON(http.StatusCreated, map[string]interface{}{
		"pullRequest": mapPullRequestToAPI(pr),
	})
}

// UpdatePullRequestStatus - рецензия PR владельцем; MERGED переносит файлы в проект
func (h *Handler) UpdatePullRequestStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=APPROVED REJECTED MERGED"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("pull_request_id", c.Param("prId")).
		Str("status", req.Status).
		Msg("updating pull request status")

	pr, err := h.service.UpdatePullRequestStatus(c.Request.Context(), &domain.UpdatePullRequestStatusInput{
		ProjectID:     c.Param("id"),
		PullRequestID: c.Param("prId"),
		Status:        domain.PullRequestStatus(req.Status),
		ReviewerID:    middleware.GetUserID(c),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("pull_request_id", pr.ID).
		Str("status", string(pr.Status)).
		Msg("successfully updated pull request status")

	c.JSON(http.StatusOK, map[string]interface{}{
		"pullRequest": mapPullRequestToAPI(pr),
	})
}

func (h *Handler) GetProjectPullRequests(c *gin.Context) {
	prs, err := h.service.GetProjectPullRequests(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	resp := make([]map[string]interface{}, len(prs))
	for i := range prs {
		resp[i] = mapPullRequestToAPI(&prs[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"pullRequests": resp,
	})
}

func (h *Handler) GetPullRequest(c *gin.Context) {
	pr, err := h.service.GetPullRequest(c.Request.Context(), c.Param("id"), c.Param("prId"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"pullRequest": mapPullRequestToAPI(pr),
	})
}
