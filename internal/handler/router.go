package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/MovieApp/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RouterConfig: зависимости и настройки HTTP-маршрутизатора
type RouterConfig struct {
	Identity  *IdentityHandler
	MovieList *MovieListHandler
	Health    *HealthHandler
	// Metrics может быть nil, тогда /metrics не регистрируется
	Metrics *metrics.Metrics

	AllowedOrigins []string
	// AuthRateLimit: запросов в минуту с одного IP на /signup и /login, 0 отключает
	AuthRateLimit  int
	RequestTimeout time.Duration

	Logger *slog.Logger
}

// NewRouter собирает chi-роутер со всеми маршрутами сервиса.
// Статические префиксы (/name, /signup, ...) chi проверяет раньше {userId}.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.Health != nil {
		r.Get("/healthz", cfg.Health.Health)
	}
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	id := cfg.Identity
	r.Get("/name/{email}", id.GetName)
	r.Get("/lastName/{email}", id.GetLastName)
	r.Get("/id/{email}", id.GetID)

	r.Group(func(r chi.Router) {
		if cfg.AuthRateLimit > 0 {
			r.Use(httprate.Limit(
				cfg.AuthRateLimit,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					respondWithDetail(w, http.StatusTooManyRequests, "Too many requests", cfg.Logger)
				}),
			))
		}
		r.Post("/signup", id.SignUp)
		r.Post("/login", id.Login)
	})

	lists := cfg.MovieList
	r.Route("/{userId}", func(r chi.Router) {
		r.Get("/favorites", lists.ListFavorites)
		r.Get("/favorites/{movieId}", lists.IsFavorite)
		r.Post("/favorites/{movieId}", lists.AddFavorite)
		r.Delete("/favorites/{movieId}", lists.RemoveFavorite)

		r.Get("/watchlist", lists.ListWatchlist)
		r.Get("/watchlist/{movieId}", lists.IsInWatchlist)
		r.Post("/watchlist/{movieId}", lists.AddToWatchlist)
		r.Delete("/watchlist/{movieId}", lists.RemoveFromWatchlist)
		r.Post("/watched/{movieId}", lists.SetWatched)

		r.Get("/rate/{movieId}", lists.GetRating)
		r.Post("/rate/{movieId}", lists.SetRating)
		r.Get("/rating", lists.ListRatings)
		r.Delete("/rating/{movieId}", lists.RemoveRating)
	})

	return r
}
