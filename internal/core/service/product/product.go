package product

import (
	"context"
	"errors"
	"log/slog"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/port"
	"time"
)

type productService struct {
	products         port.ProductRepository
	categories       port.CategoryRepository
	media            port.MediaService
	events           port.EventPublisher
	logger           *slog.Logger
	viewCountTimeout time.Duration
	now              func() time.Time
}

// NewProductService creates a new product service.
// viewCountTimeout bounds the detached view counter update.
func NewProductService(
	products port.ProductRepository,
	categories port.CategoryRepository,
	media port.MediaService,
	events port.EventPublisher,
	viewCountTimeout time.Duration,
	logger *slog.Logger,
) port.ProductService {
	return &productService{
		products:         products,
		categories:       categories,
		media:            media,
		events:           events,
		logger:           logger,
		viewCountTimeout: viewCountTimeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// categoryName returns the localized name of a category, empty when it cannot be read
func (s *productService) categoryName(ctx context.Context, categoryID string, lang domain.Language) string {
	c, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			s.logger.Warn("failed to get category name", "category_id", categoryID, "error", err)
		}
		return ""
	}
	return c.Name.Get(lang)
}

func (s *productService) publish(ctx context.Context, eventType domain.EventType, p *domain.Product) {
	event := domain.ProductEvent{
		Type:       eventType,
		ProductID:  p.ID,
		CategoryID: p.CategoryID,
		Title:      p.Title,
		FileCount:  len(p.Files),
		OccurredAt: s.now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish product event", "type", eventType, "product_id", p.ID, "error", err)
	}
}
