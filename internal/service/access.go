package service

import (
	"context"
	"errors"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/storage"
)

// projectAccess - права вызывающего на конкретный проект
type projectAccess struct {
	project        *domain.Project
	caller         *domain.User // nil если пользователя нет в базе
	isOwner        bool
	isCollaborator bool

	// ownerInstitution заполняется только для проектов с видимостью INSTITUTION
	ownerInstitution string
}

// loadAccess загружает проект и вычисляет права вызывающего
func loadAccess(ctx context.Context, tx storage.Tx, projectID, callerID string) (*projectAccess, error) {
	project, err := tx.ProjectRepo().GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	access := &projectAccess{
		project: project,
		isOwner: project.OwnerID == callerID,
	}

	caller, err := tx.UserRepo().GetByID(ctx, callerID)
	switch {
	case err == nil:
		access.caller = caller
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	if !access.isOwner {
		access.isCollaborator, err = tx.CollaboratorRepo().IsCollaborator(ctx, projectID, callerID)
		if err != nil {
			return nil, err
		}
	}

	if !access.member() && project.Visibility == domain.VisibilityInstitution && access.caller != nil {
		owner, err := tx.UserRepo().GetByID(ctx, project.OwnerID)
		switch {
		case err == nil:
			access.ownerInstitution = owner.Institution
		case !errors.Is(err, storage.ErrNotFound):
			return nil, err
		}
	}

	return access, nil
}

// member - владелец или участник
func (a *projectAccess) member() bool {
	return a.isOwner || a.isCollaborator
}

// canView применяет правила видимости проекта
func (a *projectAccess) canView() bool {
	if a.member() {
		return true
	}
	if a.caller != nil && a.caller.Role == domain.RoleAdmin {
		return true
	}

	switch a.project.Visibility {
	case domain.VisibilityPublic:
		return true
	case domain.VisibilityInstitution:
		return a.caller != nil && a.caller.Institution != "" && a.caller.Institution == a.ownerInstitution
	default:
		return false
	}
}

func (a *projectAccess) requireView() error {
	if !a.canView() {
		return domain.ErrNoProjectAccess
	}
	return nil
}

func (a *projectAccess) requireWrite() error {
	if !a.member() {
		return domain.ErrNoWriteAccess
	}
	return nil
}

func (a *projectAccess) requireOwner() error {
	if !a.isOwner {
		return domain.ErrNotProjectOwner
	}
	return nil
}
