package surveys

import (
	"context"

	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates survey persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a survey repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUserID loads the single survey owned by the user.
func (r *Repository) FindByUserID(ctx context.Context, userID uint) (*models.Survey, error) {
	var survey models.Survey
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&survey).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

// Save inserts when the survey has no id yet, otherwise replaces every mapped
// column.
func (r *Repository) Save(ctx context.Context, survey *models.Survey) error {
	if survey.ID == 0 {
		return r.db.WithContext(ctx).Create(survey).Error
	}
	return r.db.WithContext(ctx).Save(survey).Error
}
