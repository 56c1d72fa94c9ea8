package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"somon-ai/internal/core/domain"
	"strings"
	"syscall"
)

// Store keeps media files on the local filesystem under a root directory
type Store struct {
	root   string
	logger *slog.Logger
}

// NewStore returns Store, root is created when missing
func NewStore(root string, logger *slog.Logger) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Store{root: abs, logger: logger}, nil
}

// Root returns the absolute storage root
func (s *Store) Root() string {
	return s.root
}

func (s *Store) resolve(key string) (string, error) {
	if key == "" || filepath.IsAbs(key) || strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidPath, key)
	}
	full := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidPath, key)
	}
	return full, nil
}

// EnsureDir creates dir and its parents
func (s *Store) EnsureDir(_ context.Context, dir string) error {
	full, err := s.resolve(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(full, 0o755); err != nil {
		return translate(err, dir)
	}
	return nil
}

// Save writes content to a temporary file then renames it to key,
// a failed save leaves nothing behind
func (s *Store) Save(ctx context.Context, key string, content io.Reader, size int64, _ string) error {
	full, err := s.resolve(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return translate(err, key)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return translate(err, key)
	}
	tmpName := tmp.Name()

	written, copyErr := io.Copy(tmp, &contextReader{ctx: ctx, r: content})
	closeErr := tmp.Close()

	switch {
	case copyErr != nil:
		err = fmt.Errorf("failed to write %s: %w", key, copyErr)
	case closeErr != nil:
		err = fmt.Errorf("failed to close %s: %w", key, closeErr)
	case size >= 0 && written != size:
		err = fmt.Errorf("short write for %s: wrote %d of %d bytes", key, written, size)
	}
	if err == nil {
		err = os.Rename(tmpName, full)
	}
	if err != nil {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			s.logger.Warn("failed to remove temporary file", "path", tmpName, "error", rmErr)
		}
		return err
	}
	return nil
}

// Open returns the content of key and its size
func (s *Store) Open(_ context.Context, key string) (io.ReadCloser, int64, error) {
	full, err := s.resolve(key)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, 0, translate(err, key)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, translate(err, key)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, key)
	}
	return f, info.Size(), nil
}

// Delete removes key
func (s *Store) Delete(_ context.Context, key string) error {
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	info, err := os.Stat(full)
	if err != nil {
		return translate(err, key)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrObjectNotFound, key)
	}
	if err := os.Remove(full); err != nil {
		return translate(err, key)
	}
	return nil
}

// Exists reports whether key is a regular file
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	full, err := s.resolve(key)
	if err != nil {
		return false, nil
	}
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, translate(err, key)
	}
	return info.Mode().IsRegular(), nil
}

func translate(err error, key string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", domain.ErrObjectNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", domain.ErrObjectForbidden, err)
	case errors.Is(err, syscall.EBUSY), errors.Is(err, syscall.ETXTBSY):
		return fmt.Errorf("%w: %w", domain.ErrObjectBusy, err)
	default:
		return fmt.Errorf("storage operation on %s failed: %w", key, err)
	}
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
