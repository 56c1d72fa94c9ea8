package httpx

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"somon-ai/internal/core/domain"
)

// maxMemory is the part of a multipart body kept in memory, the rest spills to temp files
const maxMemory = 32 << 20

// ErrNotMultipart is returned when the request is not multipart/form-data
var ErrNotMultipart = errors.New("request is not multipart/form-data")

// Form is a parsed multipart request, Close releases the opened files and temp files
type Form struct {
	form  *multipart.Form
	files []multipart.File
}

// ParseForm parses a multipart/form-data request body
func ParseForm(r *http.Request) (*Form, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, ErrNotMultipart
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	return &Form{form: r.MultipartForm}, nil
}

// Value returns the first value of a field
func (f *Form) Value(field string) string {
	if values := f.form.Value[field]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// Values returns every field of the form
func (f *Form) Values() map[string][]string {
	return f.form.Value
}

// File opens the first file of a field, nil when the field is absent
func (f *Form) File(field string) (*domain.FileUpload, error) {
	headers := f.form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	return f.open(headers[0])
}

// Files opens every file of a field
func (f *Form) Files(field string) ([]*domain.FileUpload, error) {
	headers := f.form.File[field]
	uploads := make([]*domain.FileUpload, 0, len(headers))
	for _, h := range headers {
		upload, err := f.open(h)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}

func (f *Form) open(h *multipart.FileHeader) (*domain.FileUpload, error) {
	file, err := h.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", h.Filename, err)
	}
	f.files = append(f.files, file)
	return &domain.FileUpload{
		FileName:    h.Filename,
		ContentType: h.Header.Get("Content-Type"),
		Size:        h.Size,
		Content:     file,
	}, nil
}

// Close closes opened files and removes temp files
func (f *Form) Close() error {
	var errs []error
	for _, file := range f.files {
		errs = append(errs, file.Close())
	}
	errs = append(errs, f.form.RemoveAll())
	return errors.Join(errs...)
}

// FormError translates a ParseForm error to a client error
func FormError(err error) domain.ResultError {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, ErrNotMultipart):
		return domain.BadRequest("Request must be multipart/form-data")
	case errors.As(err, &tooLarge):
		return domain.BadRequest(fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
	default:
		return domain.BadRequest("Invalid multipart form")
	}
}
