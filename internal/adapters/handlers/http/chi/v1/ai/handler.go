package ai

import (
	"log/slog"
	"somon-ai/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 ai routes
type HandlerV1 struct {
	generatorService port.GeneratorService
	logger           *slog.Logger
}

// NewAIHandlerV1 creates HandlerV1
func NewAIHandlerV1(service port.GeneratorService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		generatorService: service,
		logger:           logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/generate", h.GenerateV1)

	return router
}
