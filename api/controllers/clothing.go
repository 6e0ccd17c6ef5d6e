package controllers

import (
	"net/http"

	"github.com/kmorales-dev/closetwish-backend/api/responses"
	"github.com/kmorales-dev/closetwish-backend/internal/clothing"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
)

// ClothingItemList returns the whole catalog in its read projection.
func ClothingItemList(repo *clothing.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if repo == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		items, err := repo.FindAllProjected(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list catalog"))
			return
		}
		responses.WriteSuccess(w, items)
	}
}
