package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"somon-ai/internal/adapters/handlers/http/chi/v1/ai"
	"somon-ai/internal/adapters/handlers/http/chi/v1/category"
	"somon-ai/internal/adapters/handlers/http/chi/v1/media"
	"somon-ai/internal/adapters/handlers/http/chi/v1/product"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options tunes the router
type Options struct {
	Env             string
	MaxRequestBytes int64
	RequestTimeout  time.Duration
	// UploadPath is the first segment of public file urls
	UploadPath string
}

func (o Options) withDefaults() Options {
	if o.MaxRequestBytes <= 0 {
		o.MaxRequestBytes = 500 << 20
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 120 * time.Second
	}
	o.UploadPath = strings.Trim(o.UploadPath, "/")
	if o.UploadPath == "" {
		o.UploadPath = "uploads"
	}
	return o
}

// NewRouter builds http.Handler with chi
func NewRouter(
	logger *slog.Logger,
	categoryHandler *category.HandlerV1,
	productHandler *product.HandlerV1,
	mediaHandler *media.HandlerV1,
	aiHandler *ai.HandlerV1,
	opts Options,
) http.Handler {
	opts = opts.withDefaults()
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.RequestSize(opts.MaxRequestBytes))
	r.Use(httpx.Language)

	if opts.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-Request-ID", httpx.LanguageHeader},
			ExposedHeaders:   []string{"Link", "Content-Language"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/categories", categoryHandler.Routes())
		r.Mount("/products", productHandler.Routes())
		r.Mount("/files", mediaHandler.Routes())
		r.Mount("/ai", aiHandler.Routes())
	})

	r.Get("/"+opts.UploadPath+"/*", mediaHandler.ServeFileV1)
	r.Head("/"+opts.UploadPath+"/*", mediaHandler.ServeFileV1)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
