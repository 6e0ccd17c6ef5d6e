package controllers

import (
	"net/http"

	"github.com/kmorales-dev/closetwish-backend/api/responses"
	"github.com/kmorales-dev/closetwish-backend/api/validators"
	"github.com/kmorales-dev/closetwish-backend/internal/wishlists"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
)

// WishlistList returns every wishlist owned by the path user.
func WishlistList(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, err := validators.UintPathParam(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		lists, err := svc.List(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, lists)
	}
}

// WishlistGet returns one wishlist when the path user owns it.
func WishlistGet(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, err := validators.UintPathParam(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		wishlistID, err := validators.UintPathParam(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		wishlist, err := svc.Get(ctx, userID, wishlistID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, wishlist)
	}
}

// WishlistCreate stores a new wishlist under the path user.
func WishlistCreate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, err := validators.UintPathParam(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload wishlists.UpsertWishlistRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.Create(ctx, userID, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// WishlistUpdate replaces the wishlist's fields, keeping id and owner.
func WishlistUpdate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, err := validators.UintPathParam(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		wishlistID, err := validators.UintPathParam(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload wishlists.UpsertWishlistRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		updated, err := svc.Update(ctx, userID, wishlistID, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// WishlistDelete removes the wishlist when the path user owns it.
func WishlistDelete(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, err := validators.UintPathParam(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		wishlistID, err := validators.UintPathParam(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, userID, wishlistID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
