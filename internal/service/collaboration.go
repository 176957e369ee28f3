package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/metrics"
	"sharexconnect/internal/storage"
)

// RequestCollaboration создаёт заявку пользователя на участие в проекте
func (s *Service) RequestCollaboration(outerCtx context.Context, input *domain.RequestCollaborationInput) (*domain.CollaborationRequest, error) {
	const op = "service.RequestCollaboration"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("request_collaboration", time.Now())

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", input.ProjectID).
		Str("requester_id", input.RequesterID).
		Msg("creating collaboration request")

	req := &domain.CollaborationRequest{
		ID:        uuid.NewString(),
		ProjectID: input.ProjectID,
		Type:      domain.CollaborationTypeRequest,
		PartyID:   input.RequesterID,
		SenderID:  input.RequesterID,
		Message:   input.Message,
		Status:    domain.CollaborationStatusPending,
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := tx.UserRepo().GetByID(ctx, input.RequesterID); err != nil {
			return err
		}

		project, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if err != nil {
			return err
		}

		if project.OwnerID == input.RequesterID {
			return domain.NewValidationError("project owner cannot request collaboration on their own project")
		}

		isCollaborator, err := tx.CollaboratorRepo().IsCollaborator(ctx, input.ProjectID, input.RequesterID)
		if err != nil {
			return err
		}
		if isCollaborator {
			return domain.ErrAlreadyCollaborator
		}

		pending, err := tx.CollaborationRequestRepo().HasPending(ctx, input.ProjectID, input.RequesterID, domain.CollaborationTypeRequest)
		if err != nil {
			return err
		}
		if pending {
			return domain.ErrDuplicatePendingRequest
		}

		return tx.CollaborationRequestRepo().Create(ctx, req)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.CollaborationRequestsTotal.WithLabelValues(string(req.Type)).Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("collaboration_request_id", req.ID).
		Msg("successfully created collaboration request")

	return req, nil
}

// InviteCollaborator создаёт приглашение от владельца проекта
func (s *Service) InviteCollaborator(outerCtx context.Context, input *domain.InviteCollaboratorInput) (*domain.CollaborationRequest, error) {
	const op = "service.InviteCollaborator"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("invite_collaborator", time.Now())

	req := &domain.CollaborationRequest{
		ID:        uuid.NewString(),
		ProjectID: input.ProjectID,
		Type:      domain.CollaborationTypeInvitation,
		PartyID:   input.InviteeID,
		SenderID:  input.SenderID,
		Message:   input.Message,
		Status:    domain.CollaborationStatusPending,
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		if project.OwnerID != input.SenderID {
			return domain.ErrNotProjectOwner
		}

		if _, err := tx.UserRepo().GetByID(ctx, input.InviteeID); err != nil {
			return err
		}
		if input.InviteeID == project.OwnerID {
			return domain.NewValidationError("project owner cannot be invited",
				domain.FieldError{Field: "inviteeId", Message: "must not be the project owner"})
		}

		isCollaborator, err := tx.CollaboratorRepo().IsCollaborator(ctx, input.ProjectID, input.InviteeID)
		if err != nil {
			return err
		}
		if isCollaborator {
			return domain.ErrAlreadyCollaborator
		}

		pending, err := tx.CollaborationRequestRepo().HasPending(ctx, input.ProjectID, input.InviteeID, domain.CollaborationTypeInvitation)
		if err != nil {
			return err
		}
		if pending {
			return domain.ErrDuplicatePendingRequest
		}

		return tx.CollaborationRequestRepo().Create(ctx, req)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.CollaborationRequestsTotal.WithLabelValues(string(req.Type)).Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("collaboration_request_id", req.ID).
		Str("invitee_id", input.InviteeID).
		Msg("successfully created invitation")

	return req, nil
}

// RespondToCollaborationRequest одобряет или отклоняет заявку.
// Переход из PENDING выполняется один раз условным UPDATE,
// при одобрении участник добавляется в той же транзакции.
func (s *Service) RespondToCollaborationRequest(outerCtx context.Context, input *domain.RespondCollaborationInput) (*domain.CollaborationRequest, error) {
	const op = "service.RespondToCollaborationRequest"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("respond_collaboration_request", time.Now())

	if input.Status != domain.CollaborationStatusApproved && input.Status != domain.CollaborationStatusRejected {
		return nil, domain.NewValidationError("invalid status",
			domain.FieldError{Field: "status", Message: "must be APPROVED or REJECTED"})
	}

	var req *domain.CollaborationRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.CollaborationRequestRepo().GetByID(ctx, input.RequestID)
		if err != nil {
			return err
		}
		if existing.Status != domain.CollaborationStatusPending {
			return domain.ErrRequestAlreadyResolved
		}

		project, err := tx.ProjectRepo().GetByID(ctx, existing.ProjectID)
		if err != nil {
			return err
		}
		if !existing.CanRespond(input.ResponderID, project.OwnerID) {
			return domain.ErrCannotRespond
		}

		if err := tx.CollaborationRequestRepo().Resolve(ctx, existing.ID, input.Status, input.ResponderID, now()); err != nil {
			return err
		}

		if input.Status == domain.CollaborationStatusApproved {
			if err := tx.CollaboratorRepo().Add(ctx, existing.ProjectID, existing.Subject()); err != nil {
				return err
			}
			log.Info().
				Str("request_id", requestID).
				Str("layer", "service").
				Str("project_id", existing.ProjectID).
				Str("user_id", existing.Subject()).
				Msg("collaborator added")
		}

		req, err = tx.CollaborationRequestRepo().GetByID(ctx, existing.ID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.CollaborationResponsesTotal.WithLabelValues(string(req.Status)).Inc()
	if req.Status == domain.CollaborationStatusApproved {
		metrics.CollaboratorsAddedTotal.Inc()
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("collaboration_request_id", req.ID).
		Str("status", string(req.Status)).
		Msg("successfully responded to collaboration request")

	return req, nil
}

// GetCollaborationRequestsForUser возвращает заявки с учётом роли вызывающего:
// владелец видит ожидающие REQUEST, остальные - адресованные им INVITATION
func (s *Service) GetCollaborationRequestsForUser(outerCtx context.Context, projectID, callerID string) ([]domain.CollaborationRequest, error) {
	const op = "service.GetCollaborationRequestsForUser"
	var reqs []domain.CollaborationRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, projectID)
		if err != nil {
			return err
		}

		if project.OwnerID == callerID {
			reqs, err = tx.CollaborationRequestRepo().ListPendingRequests(ctx, projectID)
		} else {
			reqs, err = tx.CollaborationRequestRepo().ListInvitationsFor(ctx, projectID, callerID)
		}
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return reqs, nil
}

// GetProjectCollaborators возвращает участников проекта
func (s *Service) GetProjectCollaborators(outerCtx context.Context, projectID, callerID string) ([]domain.Collaborator, error) {
	const op = "service.GetProjectCollaborators"
	var collaborators []domain.Collaborator

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireView(); err != nil {
			return err
		}

		collaborators, err = tx.CollaboratorRepo().ListByProject(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return collaborators, nil
}

// AddCollaborator добавляет участника напрямую, минуя заявку
func (s *Service) AddCollaborator(outerCtx context.Context, projectID, userID, ownerID string) (*domain.Collaborator, error) {
	const op = "service.AddCollaborator"
	requestID := logger.GetRequestID(outerCtx)
	var collaborator *domain.Collaborator

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, ownerID)
		if err != nil {
			return err
		}
		if err := access.requireOwner(); err != nil {
			return err
		}

		if _, err := tx.UserRepo().GetByID(ctx, userID); err != nil {
			return err
		}
		if userID == access.project.OwnerID {
			return domain.NewValidationError("project owner cannot be added as a collaborator",
				domain.FieldError{Field: "userId", Message: "must not be the project owner"})
		}

		exists, err := tx.CollaboratorRepo().IsCollaborator(ctx, projectID, userID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyCollaborator
		}

		if err := tx.CollaboratorRepo().Add(ctx, projectID, userID); err != nil {
			return err
		}

		collaborator, err = tx.CollaboratorRepo().Get(ctx, projectID, userID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.CollaboratorsAddedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", projectID).
		Str("user_id", userID).
		Msg("collaborator added by owner")

	return collaborator, nil
}

// RemoveCollaborator удаляет участника проекта
func (s *Service) RemoveCollaborator(outerCtx context.Context, projectID, userID, ownerID string) error {
	const op = "service.RemoveCollaborator"
	requestID := logger.GetRequestID(outerCtx)

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, ownerID)
		if err != nil {
			return err
		}
		if err := access.requireOwner(); err != nil {
			return err
		}
		return tx.CollaboratorRepo().Remove(ctx, projectID, userID)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", projectID).
		Str("user_id", userID).
		Msg("collaborator removed")

	return nil
}
