package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/domain"
)

func (h *Handler) ListChangeRequests(c *gin.Context) {
	requests, err := h.service.ListChangeRequests(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	resp := make([]map[string]interface{}, len(requests))
	for i := range requests {
		resp[i] = mapChangeRequestToAPI(&requests[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"changeRequests": resp,
	})
}

// CreateChangeRequest предлагает изменение файла; содержимое файла не меняется
func (h *Handler) CreateChangeRequest(c *gin.Context) {
	var req struct {
		Title           string  `json:"title" binding:"required,max=200"`
		Description     string  `json:"description"`
		ChangeType      string  `json:"changeType" binding:"required,oneof=ADD MODIFY DELETE SUGGEST"`
		FileID          *string `json:"fileId"`
		ProposedChanges string  `json:"proposedChanges"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", c.Param("id")).
		Str("change_type", req.ChangeType).
		Msg("creating change request")

	cr, err := h.service.CreateChangeRequest(c.Request.Context(), &domain.CreateChangeRequestInput{
		ProjectID:       c.Param("id"),
		RequesterID:     middleware.GetUserID(c),
		Title:           req.Title,
		Description:     req.Description,
		ChangeType:      domain.ChangeType(req.ChangeType),
		FileID:          req.FileID,
		ProposedChanges: req.ProposedChanges,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"changeRequest": mapChangeRequestToAPI(cr),
	})
}

// ReviewChangeRequest закрывает предложение один раз
func (h *Handler) ReviewChangeRequest(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=APPROVED REJECTED MERGED"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	cr, err := h.service.ReviewChangeRequest(c.Request.Context(), &domain.ReviewChangeRequestInput{
		RequestID:  c.Param("id"),
		Status:     domain.ChangeRequestStatus(req.Status),
		ReviewerID: middleware.GetUserID(c),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("change_request_id", cr.ID).
		Str("status", string(cr.Status)).
		Msg("change request reviewed")

	c.JSON(http.StatusOK, map[string]interface{}{
		"changeRequest": mapChangeRequestToAPI(cr),
	})
}
