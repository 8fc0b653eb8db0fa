package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hifz-backend/internal/transport/middleware"
)

// NewRouter wires all REST routes. Health endpoints are public; the /api/v1
// surface requires a learner identity from the gateway.
func NewRouter(hifzHandler *HifzHandler, health *HealthHandler, logger *slog.Logger) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/v1/verses", hifzHandler.AddVerse)
	api.HandleFunc("POST /api/v1/verses/range", hifzHandler.AddRange)
	api.HandleFunc("GET /api/v1/verses/{key}/history", hifzHandler.GetHistory)
	api.HandleFunc("POST /api/v1/reviews", hifzHandler.RecordReview)
	api.HandleFunc("GET /api/v1/reviews/due", hifzHandler.GetDue)
	api.HandleFunc("GET /api/v1/progress", hifzHandler.GetProgress)
	api.HandleFunc("GET /api/v1/progress/chapters/{chapter}", hifzHandler.GetChapterProgress)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", health.Health)
	root.HandleFunc("GET /health/live", health.Live)
	root.HandleFunc("GET /health/ready", health.Ready)
	root.Handle("/api/v1/", middleware.Learner(api))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
	)(root)
}
