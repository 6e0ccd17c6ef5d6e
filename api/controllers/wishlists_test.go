package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kmorales-dev/closetwish-backend/internal/users"
	"github.com/kmorales-dev/closetwish-backend/internal/wishlists"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
)

type stubWishlistService struct {
	lists []wishlists.WishlistDTO
	list  *wishlists.WishlistDTO
	items []wishlists.WishlistItemDTO
	item  *wishlists.WishlistItemDTO
	err   error
}

func (s *stubWishlistService) List(ctx context.Context, userID uint) ([]wishlists.WishlistDTO, error) {
	return s.lists, s.err
}

func (s *stubWishlistService) Get(ctx context.Context, userID, wishlistID uint) (*wishlists.WishlistDTO, error) {
	return s.list, s.err
}

func (s *stubWishlistService) Create(ctx context.Context, userID uint, req wishlists.UpsertWishlistRequest) (*wishlists.WishlistDTO, error) {
	return s.list, s.err
}

func (s *stubWishlistService) Update(ctx context.Context, userID, wishlistID uint, req wishlists.UpsertWishlistRequest) (*wishlists.WishlistDTO, error) {
	return s.list, s.err
}

func (s *stubWishlistService) Delete(ctx context.Context, userID, wishlistID uint) error {
	return s.err
}

func (s *stubWishlistService) ListItems(ctx context.Context, userID, wishlistID uint) ([]wishlists.WishlistItemDTO, error) {
	return s.items, s.err
}

func (s *stubWishlistService) GetItem(ctx context.Context, userID, wishlistID, itemID uint) (*wishlists.WishlistItemDTO, error) {
	return s.item, s.err
}

func (s *stubWishlistService) CreateItem(ctx context.Context, userID, wishlistID uint, req wishlists.CreateItemRequest) (*wishlists.WishlistItemDTO, error) {
	return s.item, s.err
}

func (s *stubWishlistService) DeleteItem(ctx context.Context, userID, wishlistID, itemID uint) error {
	return s.err
}

func TestWishlistCreateReturns201(t *testing.T) {
	svc := &stubWishlistService{list: &wishlists.WishlistDTO{
		ID:   7,
		Name: "Winter",
		User: users.UserDTO{ID: 3, Email: "alice@example.com"},
	}}
	handler := WishlistCreate(svc, nil)

	body := []byte(`{"name":"Winter"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/3/wishlists", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParams(req, map[string]string{"userId": "3"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	var resp struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 7 || resp.Name != "Winter" || resp.User.ID != 3 {
		t.Fatalf("unexpected payload %+v", resp)
	}
}

func TestWishlistGetForeignReadsAsAbsent(t *testing.T) {
	svc := &stubWishlistService{err: pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found")}
	handler := WishlistGet(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/2/wishlists/7", nil)
	req = withURLParams(req, map[string]string{"userId": "2", "wishlistId": "7"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestWishlistDeleteReturns204(t *testing.T) {
	svc := &stubWishlistService{}
	handler := WishlistDelete(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/3/wishlists/7", nil)
	req = withURLParams(req, map[string]string{"userId": "3", "wishlistId": "7"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestWishlistItemCreateReturns201(t *testing.T) {
	svc := &stubWishlistService{item: &wishlists.WishlistItemDTO{
		ID:             11,
		WishlistID:     7,
		ClothingItemID: 42,
	}}
	handler := WishlistItemCreate(svc, nil)

	body := []byte(`{"clothingItemId":42}`)
	req := httptest.NewRequest(http.MethodPost, "/users/3/wishlists/7/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParams(req, map[string]string{"userId": "3", "wishlistId": "7"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	var resp struct {
		ID             uint `json:"id"`
		WishlistID     uint `json:"wishlistId"`
		ClothingItemID uint `json:"clothingItemId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.WishlistID != 7 || resp.ClothingItemID != 42 {
		t.Fatalf("unexpected payload %+v", resp)
	}
}

func TestWishlistItemCreateDuplicatePair(t *testing.T) {
	svc := &stubWishlistService{err: pkgerrors.New(pkgerrors.CodeConflict, "clothing item already in wishlist")}
	handler := WishlistItemCreate(svc, nil)

	body := []byte(`{"clothingItemId":42}`)
	req := httptest.NewRequest(http.MethodPost, "/users/3/wishlists/7/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParams(req, map[string]string{"userId": "3", "wishlistId": "7"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestWishlistItemGetRejectsBadWishlistID(t *testing.T) {
	svc := &stubWishlistService{}
	handler := WishlistItemGet(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/3/wishlists/x/items/1", nil)
	req = withURLParams(req, map[string]string{"userId": "3", "wishlistId": "x", "itemId": "1"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
