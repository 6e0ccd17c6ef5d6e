package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kmorales-dev/closetwish-backend/internal/auth"
	"github.com/kmorales-dev/closetwish-backend/internal/users"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
)

type stubAuthService struct {
	resp      *auth.AuthResponse
	user      *users.UserDTO
	err       error
	lastToken string
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	s.lastToken = token
	return s.err
}

func (s *stubAuthService) DeleteByEmail(ctx context.Context, email string) error {
	return s.err
}

func (s *stubAuthService) GetUser(ctx context.Context, id uint) (*users.UserDTO, error) {
	return s.user, s.err
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAuthRegisterSuccess(t *testing.T) {
	svc := &stubAuthService{resp: &auth.AuthResponse{
		Token: "jwt-token",
		User:  users.UserDTO{ID: 1, Email: "alice@example.com"},
	}}
	handler := AuthRegister(svc, nil)

	body := []byte(`{"email":"alice@example.com","password":"Secret123!"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "jwt-token" {
		t.Fatalf("expected token at top level, got %q", resp.Token)
	}
	if resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user email %q", resp.User.Email)
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "Email already exists.")}
	handler := AuthRegister(svc, nil)

	body := []byte(`{"email":"alice@example.com","password":"Secret123!"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Message != "Email already exists." {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")}
	handler := AuthLogin(svc, nil)

	body := []byte(`{"email":"alice@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthLogoutStripsBearerPrefix(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthLogout(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastToken != "abc.def.ghi" {
		t.Fatalf("expected raw token, got %q", svc.lastToken)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Session invalidated. Logged out." {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestAuthDeleteUserUnknownEmail(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeNotFound, "User not found")}
	handler := AuthDeleteUser(svc, nil)

	body := []byte(`{"email":"ghost@example.com"}`)
	req := httptest.NewRequest(http.MethodDelete, "/auth/delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestAuthGetUserRejectsBadID(t *testing.T) {
	svc := &stubAuthService{user: &users.UserDTO{ID: 1, Email: "alice@example.com"}}
	handler := AuthGetUser(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/user/abc", nil)
	req = withURLParams(req, map[string]string{"userId": "abc"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
