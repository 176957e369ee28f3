package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/logger"
	"sharexconnect/internal/metrics"
	"sharexconnect/internal/storage"
)

// Service реализует domain.SharingService используя storage.TxManager
type Service struct {
	txmgr storage.TxManager
}

// Проверка что Service реализует интерфейс domain.SharingService
var _ domain.SharingService = (*Service)(nil)

// New создаёт новый Service с TxManager
func New(txmgr storage.TxManager) *Service {
	return &Service{
		txmgr: txmgr,
	}
}

// formatError преобразует ошибки storage слоя в доменные ошибки с правильными HTTP кодами
func (s *Service) formatError(ctx context.Context, op string, err error) error {
	switch {
	case domain.IsDomainError(err):
		return err
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrInvalidReference):
		return domain.ErrResourceNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		// Уточняем сообщение по имени операции
		switch op {
		case "service.CreateRepositoryItem":
			return domain.NewConflict("an item already exists at this path")
		case "service.AddCollaborator":
			return domain.ErrAlreadyCollaborator
		}
		return domain.ErrAlreadyExists
	case errors.Is(err, storage.ErrConflict):
		// Условный UPDATE не затронул ни одной строки: статус уже сменился
		switch op {
		case "service.RespondToCollaborationRequest":
			return domain.ErrRequestAlreadyResolved
		case "service.ReviewChangeRequest":
			return domain.ErrChangeRequestClosed
		case "service.UpdatePullRequestStatus":
			return domain.ErrPullRequestClosed
		case "service.SubmitProject", "service.ReviewProject":
			return domain.ErrProjectTransition
		}
		return domain.NewInvalidState("resource state changed concurrently")
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return ctx.Err()
	default:
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "service").
			Str("operation", op).
			Msg("operation failed")
		metrics.ErrorsTotal.WithLabelValues("internal", "service").Inc()
		return domain.ErrInternal
	}
}

// observeDuration записывает длительность операции сервиса
func observeDuration(operation string, start time.Time) {
	metrics.ServiceOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func now() time.Time {
	return time.Now().UTC()
}
