package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/fridgewatch/fridgewatch/internal/http/handlers"
)

// NewRouter wires the service routes. Authentication is deliberately
// absent: the service sits behind the home gateway.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Post("/detections", handlers.PostDetectionsHandler)
	r.Post("/upload", handlers.UploadImageHandler)

	r.Get("/inventory", handlers.GetInventoryHandler)
	r.Get("/inventory/{type}/rsl-log", handlers.GetRSLLogHandler)

	r.Get("/sensor", handlers.GetSensorHandler)
	r.Put("/sensor", handlers.UpdateSensorHandler)

	r.Post("/register-token", handlers.RegisterTokenHandler)
	r.Delete("/register-token", handlers.RemoveTokenHandler)

	r.Post("/profiles/import", handlers.ImportProfilesHandler)
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
