package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/domain"
)

// RequestCollaboration - пользователь просит владельца о доступе к проекту
func (h *Handler) RequestCollaboration(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"max=2000"`
	}

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			handleBindError(c, err)
			return
		}
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", c.Param("id")).
		Str("requester_id", middleware.GetUserID(c)).
		Msg("requesting collaboration")

	request, err := h.service.RequestCollaboration(c.Request.Context(), &domain.RequestCollaborationInput{
		ProjectID:   c.Param("id"),
		RequesterID: middleware.GetUserID(c),
		Message:     req.Message,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"request": mapCollaborationRequestToAPI(request),
	})
}

// InviteCollaborator - владелец приглашает пользователя в проект
func (h *Handler) InviteCollaborator(c *gin.Context) {
	var req struct {
		InviteeID string `json:"inviteeId" binding:"required"`
		Message   string `json:"message" binding:"max=2000"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", c.Param("id")).
		Str("invitee_id", req.InviteeID).
		Msg("inviting collaborator")

	request, err := h.service.InviteCollaborator(c.Request.Context(), &domain.InviteCollaboratorInput{
		ProjectID: c.Param("id"),
		InviteeID: req.InviteeID,
		SenderID:  middleware.GetUserID(c),
		Message:   req.Message,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"request": mapCollaborationRequestToAPI(request),
	})
}

// RespondToCollaborationRequest одобряет или отклоняет заявку
func (h *Handler) RespondToCollaborationRequest(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	request, err := h.service.RespondToCollaborationRequest(c.Request.Context(), &domain.RespondCollaborationInput{
		RequestID:   c.Param("requestId"),
		Status:      domain.CollaborationStatus(req.Status),
		ResponderID: middleware.GetUserID(c),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("collaboration_request_id", request.ID).
		Str("status", string(request.Status)).
		Msg("collaboration request resolved")

	c.JSON(http.StatusOK, map[string]interface{}{
		"request": mapCollaborationRequestToAPI(request),
	})
}

func (h *Handler) GetCollaborationRequests(c *gin.Context) {
	requests, err := h.service.GetCollaborationRequestsForUser(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	resp := make([]map[string]interface{}, len(requests))
	for i := range requests {
		resp[i] = mapCollaborationRequestToAPI(&requests[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"requests": resp,
	})
}

func (h *Handler) GetProjectCollaborators(c *gin.Context) {
	collaborators, err := h.service.GetProjectCollaborators(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	resp := make([]map[string]interface{}, len(collaborators))
	for i := range collaborators {
		resp[i] = mapCollaboratorToAPI(&collaborators[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"collaborators": resp,
	})
}

// AddCollaborator - прямое добавление участника владельцем
func (h *Handler) AddCollaborator(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	collaborator, err := h.service.AddCollaborator(c.Request.Context(), c.Param("id"), req.UserID, middleware.GetUserID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"collaborator": mapCollaboratorToAPI(collaborator),
	})
}

func (h *Handler) RemoveCollaborator(c *gin.Context) {
	projectID, userID := c.Param("id"), c.Param("userId")

	if err := h.service.RemoveCollaborator(c.Request.Context(), projectID, userID, middleware.GetUserID(c)); err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Str("project_id", projectID).
		Str("user_id", userID).
		Msg("collaborator removed")

	c.Status(http.StatusNoContent)
}
