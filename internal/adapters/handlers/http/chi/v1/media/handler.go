package media

import (
	"log/slog"
	"somon-ai/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 files routes
type HandlerV1 struct {
	mediaService port.MediaService
	logger       *slog.Logger
}

// NewMediaHandlerV1 creates HandlerV1
func NewMediaHandlerV1(service port.MediaService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		mediaService: service,
		logger:       logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.UploadFileV1)
	router.Post("/images", h.UploadImageV1)
	router.Post("/videos", h.UploadVideoV1)
	router.Post("/batch", h.UploadFilesV1)
	router.Delete("/", h.DeleteFileV1)
	router.Get("/exists", h.FileExistsV1)

	return router
}
