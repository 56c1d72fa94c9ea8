package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"somon-ai/internal/core/domain"
)

// Response is the envelope of every api answer
type Response[T any] struct {
	IsSuccess bool               `json:"isSuccess"`
	Error     domain.ResultError `json:"error"`
	Data      *T                 `json:"data"`
}

// Write maps a result to its status and envelope.
// A failure carries data only when it was built with a value.
func Write[T any](w http.ResponseWriter, logger *slog.Logger, result domain.Result[T]) {
	resp := Response[T]{IsSuccess: result.IsSuccess(), Error: result.Err()}
	if result.IsSuccess() || result.HasValue() {
		v := result.Value()
		resp.Data = &v
	}
	write(w, logger, resp.Error.Kind, resp)
}

// WriteBase maps a result without value, data is always null
func WriteBase(w http.ResponseWriter, logger *slog.Logger, result domain.BaseResult) {
	resp := Response[struct{}]{IsSuccess: result.IsSuccess(), Error: result.Err()}
	write(w, logger, resp.Error.Kind, resp)
}

// WriteError answers with a failure envelope built from err
func WriteError(w http.ResponseWriter, logger *slog.Logger, err domain.ResultError) {
	WriteBase(w, logger, domain.Fail(err))
}

func write(w http.ResponseWriter, logger *slog.Logger, kind domain.ErrorKind, body any) {
	// unsupported media type answers with the status only
	if kind == domain.KindUnsupportedMediaType {
		w.WriteHeader(kind.Status())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(kind.Status())
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("error encoding response", "error", err)
	}
}
