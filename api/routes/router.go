package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kmorales-dev/closetwish-backend/api/controllers"
	"github.com/kmorales-dev/closetwish-backend/api/middleware"
	"github.com/kmorales-dev/closetwish-backend/internal/auth"
	"github.com/kmorales-dev/closetwish-backend/internal/clothing"
	"github.com/kmorales-dev/closetwish-backend/internal/surveys"
	"github.com/kmorales-dev/closetwish-backend/internal/wishlists"
	"github.com/kmorales-dev/closetwish-backend/pkg/config"
	"github.com/kmorales-dev/closetwish-backend/pkg/db"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
	"github.com/kmorales-dev/closetwish-backend/pkg/metrics"
	"github.com/kmorales-dev/closetwish-backend/pkg/redis"
)

// RouterParams gathers everything the HTTP surface needs.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        db.Pinger
	RedisClient     *redis.Client
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsRegistry *prometheus.Registry
	AuthService     auth.Service
	SurveyService   surveys.Service
	WishlistService wishlists.Service
	ClothingRepo    *clothing.Repository
}

// NewRouter wires every endpoint behind the shared middleware stack.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.DBPinger, p.RedisClient))
	})

	if p.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(p.AuthService, p.Logger))
		r.Post("/login", controllers.AuthLogin(p.AuthService, p.Logger))
		r.Post("/logout", controllers.AuthLogout(p.AuthService, p.Logger))
		r.Delete("/delete", controllers.AuthDeleteUser(p.AuthService, p.Logger))
		r.Get("/user/{userId}", controllers.AuthGetUser(p.AuthService, p.Logger))
	})

	r.Get("/api/clothing-items", controllers.ClothingItemList(p.ClothingRepo, p.Logger))

	r.Route("/api/surveys", func(r chi.Router) {
		r.Post("/", controllers.SurveyUpsert(p.SurveyService, p.Logger))
		r.Get("/user/{userId}", controllers.SurveyGetByUser(p.SurveyService, p.Logger))
	})

	r.Route("/users/{userId}/wishlists", func(r chi.Router) {
		r.Get("/", controllers.WishlistList(p.WishlistService, p.Logger))
		r.Post("/", controllers.WishlistCreate(p.WishlistService, p.Logger))
		r.Route("/{wishlistId}", func(r chi.Router) {
			r.Get("/", controllers.WishlistGet(p.WishlistService, p.Logger))
			r.Put("/", controllers.WishlistUpdate(p.WishlistService, p.Logger))
			r.Delete("/", controllers.WishlistDelete(p.WishlistService, p.Logger))
			r.Route("/items", func(r chi.Router) {
				r.Get("/", controllers.WishlistItemList(p.WishlistService, p.Logger))
				r.Post("/", controllers.WishlistItemCreate(p.WishlistService, p.Logger))
				r.Get("/{itemId}", controllers.WishlistItemGet(p.WishlistService, p.Logger))
				r.Delete("/{itemId}", controllers.WishlistItemDelete(p.WishlistService, p.Logger))
			})
		})
	})

	return r
}
