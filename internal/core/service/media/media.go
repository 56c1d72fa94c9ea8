package media

import (
	"context"
	"fmt"
	"log/slog"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/port"
	"strings"
	"time"
)

type mediaService struct {
	store  port.MediaStore
	policy domain.MediaPolicy
	logger *slog.Logger
	now    func() time.Time
}

// NewMediaService creates a new media service.
// The image and video directories are created before it is returned.
func NewMediaService(ctx context.Context, store port.MediaStore, policy domain.MediaPolicy, logger *slog.Logger) (port.MediaService, error) {
	for _, kind := range []domain.MediaKind{domain.MediaKindImage, domain.MediaKindVideo} {
		dir := policy.Dir(kind)
		if err := store.EnsureDir(ctx, dir); err != nil {
			return nil, fmt.Errorf("failed to prepare %s directory %s: %w", kind, dir, err)
		}
	}

	return &mediaService{
		store:  store,
		policy: policy,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// resolve validates a relative path received from a client
func (s *mediaService) resolve(relativePath string) (string, domain.ResultError, bool) {
	if strings.TrimSpace(relativePath) == "" {
		return "", domain.BadRequest("File path cannot be empty"), false
	}
	cleaned, ok := s.policy.Contains(relativePath)
	if !ok {
		return "", domain.BadRequest(fmt.Sprintf("Invalid file path: %s", relativePath)), false
	}
	return cleaned, domain.NoError(), true
}
