package generator

import (
	"log/slog"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/port"
)

type generatorService struct {
	client    port.GenerativeClient
	policy    domain.MediaPolicy
	templates domain.PromptTemplates
	logger    *slog.Logger
}

// NewGeneratorService creates a new listing generation service
func NewGeneratorService(client port.GenerativeClient, policy domain.MediaPolicy, templates domain.PromptTemplates, logger *slog.Logger) port.GeneratorService {
	return &generatorService{
		client:    client,
		policy:    policy,
		templates: templates,
		logger:    logger,
	}
}
