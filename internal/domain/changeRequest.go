package domain

import "time"

// ChangeType - вид предлагаемого изменения
type ChangeType string

const (
	ChangeTypeAdd     ChangeType = "ADD"
	ChangeTypeModify  ChangeType = "MODIFY"
	ChangeTypeDelete  ChangeType = "DELETE"
	ChangeTypeSuggest ChangeType = "SUGGEST"
)

// Valid проверяет вид изменения
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeTypeAdd, ChangeTypeModify, ChangeTypeDelete, ChangeTypeSuggest:
		return true
	}
	return false
}

// ChangeRequestStatus - статус предложения изменения
type ChangeRequestStatus string

const (
	ChangeRequestStatusOpen     ChangeRequestStatus = "OPEN"
	ChangeRequestStatusApproved ChangeRequestStatus = "APPROVED"
	ChangeRequestStatusRejected ChangeRequestStatus = "REJECTED"
	ChangeRequestStatusMerged   ChangeRequestStatus = "MERGED"
)

// ChangeRequest - предложение изменения одного файла
type ChangeRequest struct {
	ID              string
	ProjectID       string
	RequesterID     string
	Title           string
	Description     string
	ChangeType      ChangeType
	FileID          *string
	ProposedChanges string
	Status          ChangeRequestStatus
	ReviewerID      *string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
}

// CreateChangeRequestInput - входные данные для создания предложения
type CreateChangeRequestInput struct {
	ProjectID       string
	RequesterID     string
	Title           string
	Description     string
	ChangeType      ChangeType
	FileID          *string
	ProposedChanges string
}

// ReviewChangeRequestInput - входные данные для рецензии предложения
type ReviewChangeRequestInput struct {
	RequestID  string
	Status     ChangeRequestStatus
	ReviewerID string
}
