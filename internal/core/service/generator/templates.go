package generator

import (
	"embed"
	"fmt"
	"io/fs"
	"somon-ai/internal/core/domain"
	"strings"
)

//go:embed templates/*.json
var embedded embed.FS

// DefaultTemplates loads the templates shipped with the binary
func DefaultTemplates() (domain.PromptTemplates, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return domain.PromptTemplates{}, err
	}
	return LoadTemplates(sub)
}

// LoadTemplates reads auto.json, rwa.json and general.json from fsys
func LoadTemplates(fsys fs.FS) (domain.PromptTemplates, error) {
	read := func(name string) (string, error) {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", fmt.Errorf("failed to read template %s: %w", name, err)
		}
		text := strings.TrimSpace(string(b))
		if text == "" {
			return "", fmt.Errorf("template %s is empty", name)
		}
		return text, nil
	}

	var t domain.PromptTemplates
	var err error
	if t.Auto, err = read("auto.json"); err != nil {
		return domain.PromptTemplates{}, err
	}
	if t.RWA, err = read("rwa.json"); err != nil {
		return domain.PromptTemplates{}, err
	}
	if t.General, err = read("general.json"); err != nil {
		return domain.PromptTemplates{}, err
	}
	return t, nil
}
