package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"namedup-service/internal/address"
	"namedup-service/internal/config"
	dedupHnd "namedup-service/internal/dedup/handler"
	"namedup-service/internal/middleware"
	"namedup-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Post("/dedupe", dedupHnd.Detect(cfg, logger))
	r.Post("/address/validate", address.ValidateHandler(cfg, logger))

	return r
}
