package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
	"strings"
)

// Generate asks the generative model to draft a listing from the prompt and media
func (s *generatorService) Generate(ctx context.Context, req domain.GenerateRequest, lang domain.Language) domain.Result[domain.GenerateResponse] {
	op := service.Start(s.logger, "Generate", "files", len(req.Files), "language", lang.Code())

	if res := s.validate(req.Files); !res.IsSuccess() {
		return domain.Failure[domain.GenerateResponse](op.Fail(res.Err(), nil))
	}

	media := make([]domain.InlineMedia, 0, len(req.Files))
	names := make([]string, 0, len(req.Files))
	for _, f := range req.Files {
		data, err := io.ReadAll(f.Content)
		if err != nil {
			return domain.Failure[domain.GenerateResponse](op.Fail(domain.InternalServerError(fmt.Sprintf("Failed to read file: %s", f.FileName)), err))
		}
		media = append(media, domain.InlineMedia{MimeType: domain.MimeType(f.FileName, f.ContentType), Data: data})
		names = append(names, f.FileName)
	}

	mediaList := noMedia
	if len(names) > 0 {
		mediaList = strings.Join(names, ", ")
	}
	prompt := BuildPrompt(s.templates, lang.DisplayName(), req.Prompt, mediaList)

	raw, err := s.client.GenerateContent(ctx, prompt, media)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			kind := domain.KindFromStatus(upstream.StatusCode)
			if kind == domain.KindNone {
				kind = domain.KindInternalServerError
			}
			message := upstream.Body + "\n" + statusText(upstream)
			return domain.Failure[domain.GenerateResponse](op.Fail(domain.NewResultError(kind, message), err))
		}
		return domain.Failure[domain.GenerateResponse](op.Fail(domain.InternalServerError("Failed to call generative api"), err))
	}

	op.Done("response_bytes", len(raw))
	return domain.Success(domain.GenerateResponse{RawResponse: raw})
}

func statusText(e *domain.UpstreamError) string {
	if e.Status != "" {
		return e.Status
	}
	return http.StatusText(e.StatusCode)
}

// validate checks extension then size of every file, the first failure wins
func (s *generatorService) validate(files []*domain.FileUpload) domain.BaseResult {
	for _, f := range files {
		if f == nil {
			return domain.Fail(domain.BadRequest("File is empty"))
		}
		ext := domain.Extension(f.FileName)
		kind := s.policy.Detect(f.FileName)
		if kind == domain.MediaKindUnknown {
			return domain.Fail(domain.UnsupportedMediaType(fmt.Sprintf("Extension not allowed: %s", ext)))
		}

		if f.Size > s.policy.MaxBytes(kind) {
			label := "Image"
			if kind == domain.MediaKindVideo {
				label = "Video"
			}
			return domain.Fail(domain.BadRequest(fmt.Sprintf("%s too large: %s (%.1f MB)", label, f.FileName, float64(f.Size)/1024/1024)))
		}
	}
	return domain.Ok()
}
