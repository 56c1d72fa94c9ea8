package port

import (
	"context"
	"somon-ai/internal/core/domain"
)

// GenerativeClient is an interface to define generative model api interactions.
// A non success answer is returned as *domain.UpstreamError.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, prompt string, media []domain.InlineMedia) (string, error)
}

// GeneratorService is an interface to define listing generation service
type GeneratorService interface {
	Generate(ctx context.Context, req domain.GenerateRequest, lang domain.Language) domain.Result[domain.GenerateResponse]
}
