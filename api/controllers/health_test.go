package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kmorales-dev/closetwish-backend/pkg/config"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealthReadyWithDatabaseOnly(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	handler := HealthReady(cfg, nil, fakePinger{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if got := rec.Header().Get("X-ClosetWish-Env"); got != "test" {
		t.Fatalf("unexpected env header %q", got)
	}
	var checks map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&checks); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if checks["db"] != "ok" || checks["status"] != "ready" {
		t.Fatalf("unexpected checks %v", checks)
	}
	if _, present := checks["redis"]; present {
		t.Fatal("redis check must be absent when redis is not configured")
	}
}

func TestHealthReadyDatabaseDown(t *testing.T) {
	cfg := &config.Config{}
	handler := HealthReady(cfg, nil, fakePinger{err: errors.New("connection refused")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}

func TestHealthLive(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "production"
	handler := HealthLive(cfg)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}
