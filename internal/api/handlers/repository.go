package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/domain"
)

func (h *Handler) ListRepositoryItems(c *gin.Context) {
	items, err := h.service.ListRepositoryItems(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	resp := make([]map[string]interface{}, len(items))
	for i := range items {
		resp[i] = mapRepositoryItemToAPI(&items[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"items": resp,
	})
}

func (h *Handler) GetRepositoryItem(c *gin.Context) {
	item, err := h.service.GetRepositoryItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"item": mapRepositoryItemToAPI(item),
	})
}

// CreateRepositoryItem создаёт файл или папку в дереве проекта
func (h *Handler) CreateRepositoryItem(c *gin.Context) {
	h.limitBody(c)

	var req struct {
		Name     string  `json:"name" binding:"required,max=255"`
		Type     string  `json:"type" binding:"required,oneof=FILE FOLDER"`
		ParentID *string `json:"parentId"`
		Content  string  `json:"content"`
		Language string  `json:"language"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", c.Param("id")).
		Str("name", req.Name).
		Str("type", req.Type).
		Msg("creating repository item")

	item, err := h.service.CreateRepositoryItem(c.Request.Context(), &domain.CreateRepositoryItemInput{
		ProjectID: c.Param("id"),
		CallerID:  middleware.GetUserID(c),
		Name:      req.Name,
		Type:      domain.RepositoryItemType(req.Type),
		ParentID:  req.ParentID,
		Content:   req.Content,
		Language:  req.Language,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"item": mapRepositoryItemToAPI(item),
	})
}

// UpdateRepositoryItem заменяет содержимое файла
func (h *Handler) UpdateRepositoryItem(c *gin.Context) {
	h.limitBody(c)

	var req struct {
		Content  *string `json:"content" binding:"required"`
		Language string  `json:"language"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	item, err := h.service.UpdateRepositoryItem(c.Request.Context(), &domain.UpdateRepositoryItemInput{
		ProjectID: c.Param("id"),
		ItemID:    c.Param("itemId"),
		CallerID:  middleware.GetUserID(c),
		Content:   *req.Content,
		Language:  req.Language,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"item": mapRepositoryItemToAPI(item),
	})
}

// DeleteRepositoryItem удаляет узел вместе с поддеревом
func (h *Handler) DeleteRepositoryItem(c *gin.Context) {
	itemID := c.Param("itemId")

	deleted, err := h.service.DeleteRepositoryItem(c.Request.Context(), c.Param("id"), itemID, middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("item_id", itemID).
		Int("deleted", deleted).
		Msg("repository item deleted")

	c.JSON(http.StatusOK, map[string]interface{}{
		"deleted": deleted,
	})
}
