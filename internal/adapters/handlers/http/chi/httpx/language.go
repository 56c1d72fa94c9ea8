package httpx

import (
	"net/http"
	"somon-ai/internal/core/domain"
	"strings"
)

// LanguageHeader is the custom header a client names its language with
const LanguageHeader = "X-Language"

// Language stores the request language in the context.
// Lookup order is ?lang=, X-Language, the first Accept-Language tag, then Russian.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := DetectLanguage(r)
		w.Header().Set("Content-Language", lang.Code())
		next.ServeHTTP(w, r.WithContext(domain.WithLanguage(r.Context(), lang)))
	})
}

// DetectLanguage resolves the language of a request
func DetectLanguage(r *http.Request) domain.Language {
	query := r.URL.Query()
	if query.Has("lang") {
		return domain.LanguageFromCode(query.Get("lang"))
	}

	if values, ok := r.Header[LanguageHeader]; ok && len(values) > 0 {
		return domain.LanguageFromCode(values[0])
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tag := strings.TrimSpace(strings.Split(strings.Split(accept, ",")[0], ";")[0])
		if tag != "" {
			primary, _, _ := strings.Cut(tag, "-")
			return domain.LanguageFromCode(primary)
		}
	}

	return domain.DefaultLanguage
}
