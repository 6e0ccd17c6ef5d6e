package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/kmorales-dev/closetwish-backend/api/responses"
	"github.com/kmorales-dev/closetwish-backend/pkg/config"
	"github.com/kmorales-dev/closetwish-backend/pkg/db"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
	"github.com/kmorales-dev/closetwish-backend/pkg/redis"
	"go.uber.org/multierr"
)

const readinessTimeout = 2 * time.Second

// HealthLive reports process liveness without touching dependencies.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ClosetWish-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, Redis.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbPinger db.Pinger, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ClosetWish-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if dbPinger == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database not wired"))
			return
		}

		// Probe every dependency before reporting so one failure does not
		// hide another.
		var errs []error
		checks := map[string]string{"db": "ok"}
		if err := dbPinger.Ping(ctx); err != nil {
			checks["db"] = "unavailable"
			errs = append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "database not ready"))
		}
		if redisClient != nil {
			checks["redis"] = "ok"
			if err := redisClient.Ping(ctx); err != nil {
				checks["redis"] = "unavailable"
				errs = append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "redis not ready"))
			}
		}

		if combined := multierr.Combine(errs...); combined != nil {
			responses.WriteError(ctx, logg, w, combined)
			return
		}

		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}
