package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/metrics"
	"sharexconnect/internal/storage"
)

// CreateChangeRequest создаёт предложение изменения в статусе OPEN
func (s *Service) CreateChangeRequest(outerCtx context.Context, input *domain.CreateChangeRequestInput) (*domain.ChangeRequest, error) {
	const op = "service.CreateChangeRequest"
	requestID := logger.GetRequestID(outerCtx)
	defer observeDuration("create_change_request", time.Now())

	var details []domain.FieldError
	if strings.TrimSpace(input.Title) == "" {
		details = append(details, domain.FieldError{Field: "title", Message: "is required"})
	}
	if !input.ChangeType.Valid() {
		details = append(details, domain.FieldError{Field: "changeType", Message: "must be one of ADD, MODIFY, DELETE, SUGGEST"})
	}
	if len(details) > 0 {
		return nil, domain.NewValidationError("invalid change request", details...)
	}

	cr := &domain.ChangeRequest{
		ID:              uuid.NewString(),
		ProjectID:       input.ProjectID,
		RequesterID:     input.RequesterID,
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		ChangeType:      input.ChangeType,
		FileID:          input.FileID,
		ProposedChanges: input.ProposedChanges,
		Status:          domain.ChangeRequestStatusOpen,
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, input.ProjectID, input.RequesterID)
		if err != nil {
			return err
		}
		if access.caller == nil {
			return storage.ErrNotFound
		}
		if err := access.requireView(); err != nil {
			return err
		}

		if input.FileID != nil {
			_, err := tx.RepositoryItemRepo().GetByID(ctx, input.ProjectID, *input.FileID)
			if errors.Is(err, storage.ErrNotFound) {
				return domain.NewValidationError("file does not belong to this project",
					domain.FieldError{Field: "fileId", Message: "must reference an item of this project"})
			}
			if err != nil {
				return err
			}
		}

		return tx.ChangeRequestRepo().Create(ctx, cr)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.ChangeRequestsTotal.WithLabelValues(string(cr.ChangeType)).Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("change_request_id", cr.ID).
		Str("change_type", string(cr.ChangeType)).
		Msg("successfully created change request")

	return cr, nil
}

// ReviewChangeRequest выполняет единственный переход из OPEN.
// proposedChanges к файлу не применяются.
func (s *Service) ReviewChangeRequest(outerCtx context.Context, input *domain.ReviewChangeRequestInput) (*domain.ChangeRequest, error) {
	const op = "service.ReviewChangeRequest"
	requestID := logger.GetRequestID(outerCtx)

	switch input.Status {
	case domain.ChangeRequestStatusApproved, domain.ChangeRequestStatusRejected, domain.ChangeRequestStatusMerged:
	default:
		return nil, domain.NewValidationError("invalid status",
			domain.FieldError{Field: "status", Message: "must be APPROVED, REJECTED or MERGED"})
	}

	var cr *domain.ChangeRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.ChangeRequestRepo().GetByID(ctx, input.RequestID)
		if err != nil {
			return err
		}

		project, err := tx.ProjectRepo().GetByID(ctx, existing.ProjectID)
		if err != nil {
			return err
		}
		if project.OwnerID != input.ReviewerID {
			return domain.ErrNotProjectOwner
		}
		if existing.Status != domain.ChangeRequestStatusOpen {
			return domain.ErrChangeRequestClosed
		}

		if err := tx.ChangeRequestRepo().Review(ctx, existing.ID, input.Status, input.ReviewerID, now()); err != nil {
			return err
		}

		cr, err = tx.ChangeRequestRepo().GetByID(ctx, existing.ID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.ChangeRequestReviewsTotal.WithLabelValues(string(cr.Status)).Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("change_request_id", cr.ID).
		Str("status", string(cr.Status)).
		Msg("successfully reviewed change request")

	return cr, nil
}

// ListChangeRequests возвращает предложения изменений проекта
func (s *Service) ListChangeRequests(outerCtx context.Context, projectID, callerID string) ([]domain.ChangeRequest, error) {
	const op = "service.ListChangeRequests"
	var crs []domain.ChangeRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		access, err := loadAccess(ctx, tx, projectID, callerID)
		if err != nil {
			return err
		}
		if err := access.requireView(); err != nil {
			return err
		}

		crs, err = tx.ChangeRequestRepo().ListByProject(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return crs, nil
}
