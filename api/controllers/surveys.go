package controllers

import (
	"net/http"

	"github.com/kmorales-dev/closetwish-backend/api/responses"
	"github.com/kmorales-dev/closetwish-backend/api/validators"
	"github.com/kmorales-dev/closetwish-backend/internal/surveys"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
)

// SurveyGetByUser returns the user's saved survey.
func SurveyGetByUser(svc surveys.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "survey service unavailable"))
			return
		}

		userID, err := validators.UintPathParam(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		survey, err := svc.GetByUserID(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, survey)
	}
}

// SurveyUpsert stores the submitted answers. Resubmitting replaces the
// previous document, and the response is 200 for both paths.
func SurveyUpsert(svc surveys.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "survey service unavailable"))
			return
		}

		var payload surveys.UpsertSurveyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		saved, err := svc.Upsert(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, saved)
	}
}
