package surveys

import (
	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	"gorm.io/datatypes"
)

// OwnerRef identifies the survey's owning user on the wire.
type OwnerRef struct {
	ID uint `json:"id"`
}

// SurveyDTO is the transport shape for a saved survey. Answers pass through
// verbatim; the server never inspects them.
type SurveyDTO struct {
	ID      uint           `json:"id"`
	Answers datatypes.JSON `json:"answers"`
	User    OwnerRef       `json:"user"`
}

// UpsertSurveyRequest is the submission payload. Repeat submissions for the
// same user replace the stored answers wholesale.
type UpsertSurveyRequest struct {
	UserID  uint           `json:"userId"`
	Answers datatypes.JSON `json:"answers"`
}

func FromModel(s *models.Survey) *SurveyDTO {
	if s == nil {
		return nil
	}
	return &SurveyDTO{
		ID:      s.ID,
		Answers: s.Answers,
		User:    OwnerRef{ID: s.UserID},
	}
}
