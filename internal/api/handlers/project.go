package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/domain"
)

// CreateProject создаёт проект от имени вызывающего пользователя
func (h *Handler) CreateProject(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,max=200"`
		Description string `json:"description"`
		Category    string `json:"category" binding:"max=100"`
		Visibility  string `json:"visibility" binding:"omitempty,oneof=PRIVATE INSTITUTION PUBLIC"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("owner_id", middleware.GetUserID(c)).
		Msg("creating project")

	project, err := h.service.CreateProject(c.Request.Context(), &domain.CreateProjectInput{
		OwnerID:     middleware.GetUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Visibility:  domain.Visibility(req.Visibility),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"project": mapProjectToAPI(project),
	})
}

func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.service.GetProject(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"project": mapProjectToAPI(project),
	})
}

func (h *Handler) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")

	if err := h.service.DeleteProject(c.Request.Context(), projectID, middleware.GetUserID(c)); err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", projectID).
		Msg("project deleted")

	c.Status(http.StatusNoContent)
}

// SubmitProject отправляет проект на рецензию
func (h *Handler) SubmitProject(c *gin.Context) {
	project, err := h.service.SubmitProject(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"project": mapProjectToAPI(project),
	})
}

// ReviewProject - рецензия преподавателя; final=true одобряет проект
func (h *Handler) ReviewProject(c *gin.Context) {
	var req struct {
		Final bool `json:"final"`
	}

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			handleBindError(c, err)
			return
		}
	}

	project, err := h.service.ReviewProject(c.Request.Context(), &domain.ReviewProjectInput{
		ProjectID:  c.Param("id"),
		ReviewerID: middleware.GetUserID(c),
		Final:      req.Final,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", project.ID).
		Str("status", string(project.Status)).
		Msg("project reviewed")

	c.JSON(http.StatusOK, map[string]interface{}{
		"project": mapProjectToAPI(project),
	})
}
