package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sharexconnect/internal/domain"
	"sharexconnect/internal/storage"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создаёт новый репозиторий пользователей
func NewUserRepository(db *gorm.DB) storage.UserRepository {
	return &userRepository{db: db}
}

// GetByID получает пользователя по ID
func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var dbUser User
	if err := r.db.WithContext(ctx).First(&dbUser, "id = ?", userID).Error; err != nil {
		return nil, notFound(err)
	}
	return dbUser.toDomain(), nil
}

// Upsert создаёт пользователя или перезаписывает поля профиля существующего
func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	dbUser := &User{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          string(user.Role),
		Institution:   user.Institution,
		CollegeDomain: user.CollegeDomain,
		Department:    user.Department,
		TechExpertise: user.TechExpertise,
		IsVerified:    user.IsVerified,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "email", "full_name", "role", "institution",
				"college_domain", "department", "tech_expertise", "is_verified",
			}),
		}).
		Create(dbUser).Error
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return err
	}
	return nil
}
