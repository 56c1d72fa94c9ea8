package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"somon-ai/internal/adapters/eventbroker/nats"
	"somon-ai/internal/adapters/gemini"
	"somon-ai/internal/adapters/handlers/http/chi"
	"somon-ai/internal/adapters/handlers/http/chi/v1/ai"
	category2 "somon-ai/internal/adapters/handlers/http/chi/v1/category"
	media2 "somon-ai/internal/adapters/handlers/http/chi/v1/media"
	product2 "somon-ai/internal/adapters/handlers/http/chi/v1/product"
	"somon-ai/internal/adapters/repository/mongodb"
	"somon-ai/internal/adapters/storage/local"
	"somon-ai/internal/adapters/storage/minio"
	"somon-ai/internal/config"
	"somon-ai/internal/core/port"
	"somon-ai/internal/core/service/category"
	"somon-ai/internal/core/service/generator"
	"somon-ai/internal/core/service/media"
	"somon-ai/internal/core/service/product"
	"sync"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	// prices are written as json numbers
	decimal.MarshalJSONWithoutQuotes = true

	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("failed to init mongo", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect mongo", "error", err)
		}
	}()
	logger.Info("mongo connection established", "database", cfg.Mongo.Database)

	//storage
	store, err := initStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	//events
	events, err := initEvents(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := events.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	templates, err := generator.DefaultTemplates()
	if err != nil {
		logger.Error("failed to load prompt templates", "error", err)
		os.Exit(1)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, generation requests will be rejected upstream")
	}

	//repositories
	db := client.Database(cfg.Mongo.Database)
	categoryRepo := mongodb.NewCategoryRepository(db.Collection(cfg.Mongo.CategoriesCollection))
	productRepo := mongodb.NewProductRepository(db.Collection(cfg.Mongo.ProductsCollection))

	//services
	policy := cfg.Storage.MediaPolicy()
	mediaService, err := media.NewMediaService(ctx, store, policy, logger)
	if err != nil {
		logger.Error("failed to init media service", "error", err)
		os.Exit(1)
	}
	categoryService := category.NewCategoryService(categoryRepo, logger)
	productService := product.NewProductService(productRepo, categoryRepo, mediaService, events, cfg.Mongo.ViewCountTimeout, logger)
	generatorService := generator.NewGeneratorService(gemini.NewClient(cfg.Gemini, logger), policy, templates, logger)

	//http
	router := chi.NewRouter(
		logger,
		category2.NewCategoryHandlerV1(categoryService, logger),
		product2.NewProductHandlerV1(productService, logger),
		media2.NewMediaHandlerV1(mediaService, logger),
		ai.NewAIHandlerV1(generatorService, logger),
		chi.Options{
			Env:             cfg.Env.Env,
			MaxRequestBytes: cfg.Server.MaxRequestBytes,
			RequestTimeout:  cfg.Server.RequestTimeout,
			UploadPath:      policy.UploadPath,
		},
	)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProd() {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func initStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.MediaStore, error) {
	if cfg.Storage.Driver == config.StorageDriverMinio {
		adapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("minio storage initialized", "bucket", cfg.Minio.BucketName)
		return adapter, nil
	}

	store, err := local.NewStore(cfg.Storage.Root, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("local storage initialized", "root", cfg.Storage.Root)
	return store, nil
}

func initEvents(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (port.EventPublisher, error) {
	if cfg.URL == "" {
		logger.Info("NATS_URL is not set, product events are disabled")
		return nats.NoopPublisher{}, nil
	}
	publisher, err := nats.NewPublisher(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("nats publisher initialized", "stream", cfg.StreamName)
	return publisher, nil
}
