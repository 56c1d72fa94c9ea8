package domain

import (
	"context"
	"strings"
)

// Language is a supported content language
type Language int

const (
	LanguageRussian Language = iota + 1
	LanguageTajik
	LanguageEnglish
)

// DefaultLanguage is used when a request names no known language
const DefaultLanguage = LanguageRussian

// Languages lists every supported language
var Languages = []Language{LanguageRussian, LanguageTajik, LanguageEnglish}

// LanguageFromCode resolves a language code, unknown codes fall back to Russian
func LanguageFromCode(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "ru", "rus", "russian":
		return LanguageRussian
	case "tj", "tg", "tajik", "тоҷикӣ":
		return LanguageTajik
	case "en", "eng", "english":
		return LanguageEnglish
	default:
		return DefaultLanguage
	}
}

// Code returns the short code of the language
func (l Language) Code() string {
	switch l {
	case LanguageTajik:
		return "tj"
	case LanguageEnglish:
		return "en"
	default:
		return "ru"
	}
}

// DisplayName returns the native name of the language
func (l Language) DisplayName() string {
	switch l {
	case LanguageTajik:
		return "Тоҷикӣ"
	case LanguageEnglish:
		return "English"
	default:
		return "Русский"
	}
}

func (l Language) String() string { return l.Code() }

// LocalizedString holds one text in every supported language
type LocalizedString struct {
	Ru string `json:"ru"`
	Tj string `json:"tj"`
	En string `json:"en"`
}

// NewLocalizedString creates a LocalizedString
func NewLocalizedString(ru, tj, en string) LocalizedString {
	return LocalizedString{Ru: ru, Tj: tj, En: en}
}

// Get returns the text for the language, Russian for anything unknown
func (s LocalizedString) Get(lang Language) string {
	switch lang {
	case LanguageTajik:
		return s.Tj
	case LanguageEnglish:
		return s.En
	default:
		return s.Ru
	}
}

type languageKey struct{}

// WithLanguage stores the request language in ctx
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// LanguageFromContext returns the request language or the default one
func LanguageFromContext(ctx context.Context) Language {
	if lang, ok := ctx.Value(languageKey{}).(Language); ok {
		return lang
	}
	return DefaultLanguage
}
