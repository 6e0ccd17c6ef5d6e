package controllers

import (
	"net/http"

	"github.com/kmorales-dev/closetwish-backend/api/responses"
	"github.com/kmorales-dev/closetwish-backend/api/validators"
	"github.com/kmorales-dev/closetwish-backend/internal/wishlists"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
)

// WishlistItemList returns the items of an owned wishlist.
func WishlistItemList(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, wishlistID, err := wishlistPathParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.ListItems(ctx, userID, wishlistID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// WishlistItemGet returns a single item when the ownership chain matches.
func WishlistItemGet(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, wishlistID, err := wishlistPathParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		itemID, err := validators.UintPathParam(r, "itemId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.GetItem(ctx, userID, wishlistID, itemID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// WishlistItemCreate adds a catalog entry to an owned wishlist.
func WishlistItemCreate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, wishlistID, err := wishlistPathParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload wishlists.CreateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.CreateItem(ctx, userID, wishlistID, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// WishlistItemDelete removes an item when the ownership chain matches.
func WishlistItemDelete(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, wishlistID, err := wishlistPathParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		itemID, err := validators.UintPathParam(r, "itemId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteItem(ctx, userID, wishlistID, itemID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func wishlistPathParams(r *http.Request) (uint, uint, error) {
	userID, err := validators.UintPathParam(r, "userId")
	if err != nil {
		return 0, 0, err
	}
	wishlistID, err := validators.UintPathParam(r, "wishlistId")
	if err != nil {
		return 0, 0, err
	}
	return userID, wishlistID, nil
}
