package domain

import "time"

// CollaborationRequestType - дискриминант заявки на участие
type CollaborationRequestType string

const (
	// CollaborationTypeRequest - пользователь сам просит доступ у владельца
	CollaborationTypeRequest CollaborationRequestType = "REQUEST"
	// CollaborationTypeInvitation - владелец приглашает пользователя
	CollaborationTypeInvitation CollaborationRequestType = "INVITATION"
)

// CollaborationStatus - статус заявки
type CollaborationStatus string

const (
	CollaborationStatusPending  CollaborationStatus = "PENDING"
	CollaborationStatusApproved CollaborationStatus = "APPROVED"
	CollaborationStatusRejected CollaborationStatus = "REJECTED"
)

// CollaborationRequest - заявка или приглашение на участие в проекте.
//
// PartyID всегда указывает на сторону, не являющуюся владельцем:
// для REQUEST это автор заявки, для INVITATION - приглашённый.
type CollaborationRequest struct {
	ID          string
	ProjectID   string
	Type        CollaborationRequestType
	PartyID     string
	SenderID    string
	Message     string
	Status      CollaborationStatus
	ResponderID *string
	CreatedAt   time.Time
	RespondedAt *time.Time
}

// Subject возвращает пользователя, который станет участником при одобрении
func (r *CollaborationRequest) Subject() string {
	return r.PartyID
}

// CanRespond проверяет, может ли responderID ответить на заявку
func (r *CollaborationRequest) CanRespond(responderID, projectOwnerID string) bool {
	switch r.Type {
	case CollaborationTypeRequest:
		return responderID == projectOwnerID
	case CollaborationTypeInvitation:
		return responderID == r.PartyID
	default:
		return false
	}
}

// RequestCollaborationInput - входные данные для заявки на участие
type RequestCollaborationInput struct {
	ProjectID   string
	RequesterID string
	Message     string
}

// InviteCollaboratorInput - входные данные для приглашения
type InviteCollaboratorInput struct {
	ProjectID string
	InviteeID string
	SenderID  string
	Message   string
}

// RespondCollaborationInput - входные данные для ответа на заявку
type RespondCollaborationInput struct {
	RequestID   string
	Status      CollaborationStatus
	ResponderID string
}
