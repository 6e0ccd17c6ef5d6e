package surveys

import (
	"context"
	"errors"

	"github.com/kmorales-dev/closetwish-backend/internal/users"
	"github.com/kmorales-dev/closetwish-backend/pkg/db"
	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes survey reads and the replace-on-resubmit upsert.
type Service interface {
	GetByUserID(ctx context.Context, userID uint) (*SurveyDTO, error)
	Upsert(ctx context.Context, req UpsertSurveyRequest) (*SurveyDTO, error)
}

type service struct {
	db *db.Client
}

// ServiceParams groups dependencies for the survey service.
type ServiceParams struct {
	DB *db.Client
}

// NewService builds a survey service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &service{db: params.DB}, nil
}

// GetByUserID returns the user's survey or a not-found error.
func (s *service) GetByUserID(ctx context.Context, userID uint) (*SurveyDTO, error) {
	survey, err := NewRepository(s.db.DB()).FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "survey not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load survey")
	}
	return FromModel(survey), nil
}

// Upsert stores the submitted answers, replacing any prior document for the
// same user. The fetch-then-save pair runs in one transaction so concurrent
// submissions cannot fork into two rows.
func (s *service) Upsert(ctx context.Context, req UpsertSurveyRequest) (*SurveyDTO, error) {
	var saved *models.Survey
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)
		if _, err := userRepo.FindByID(ctx, req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "user not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
		}

		surveyRepo := NewRepository(tx)
		survey, err := surveyRepo.FindByUserID(ctx, req.UserID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load survey")
			}
			survey = &models.Survey{UserID: req.UserID}
		}

		survey.Answers = req.Answers
		if err := surveyRepo.Save(ctx, survey); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save survey")
		}
		saved = survey
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(saved), nil
}
