package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"somon-ai/internal/config"
	"somon-ai/internal/core/domain"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio, object keys are the relative media paths
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	a := &Adapter{client: client, config: cfg, logger: logger}
	if err := a.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Adapter) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.config.BucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.config.BucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		a.logger.Info("bucket created", "bucket", a.config.BucketName)
	}
	return nil
}

// EnsureDir only checks the bucket, object stores have no directories
func (a *Adapter) EnsureDir(ctx context.Context, _ string) error {
	return a.ensureBucket(ctx)
}

// Save uploads content in a single put, the object is visible only once complete
func (a *Adapter) Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	if err := validKey(key); err != nil {
		return err
	}
	_, err := a.client.PutObject(ctx, a.config.BucketName, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return translate(err, key)
	}
	return nil
}

// Open returns the object content and its size
func (a *Adapter) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	if err := validKey(key); err != nil {
		return nil, 0, err
	}
	info, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, 0, translate(err, key)
	}
	obj, err := a.client.GetObject(ctx, a.config.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, translate(err, key)
	}
	return obj, info.Size, nil
}

// Delete removes the object. RemoveObject succeeds on missing keys so the key is stat-ed first.
func (a *Adapter) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if _, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{}); err != nil {
		return translate(err, key)
	}
	if err := a.client.RemoveObject(ctx, a.config.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return translate(err, key)
	}
	return nil
}

func (a *Adapter) Exists(ctx context.Context, key string) (bool, error) {
	if validKey(key) != nil {
		return false, nil
	}
	_, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	translated := translate(err, key)
	if errors.Is(translated, domain.ErrObjectNotFound) {
		return false, nil
	}
	return false, translated
}

func validKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return fmt.Errorf("%w: %s", domain.ErrInvalidPath, key)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return fmt.Errorf("%w: %s", domain.ErrInvalidPath, key)
		}
	}
	return nil
}

func translate(err error, key string) error {
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s: %w", domain.ErrObjectNotFound, key, err)
	case resp.Code == "AccessDenied" || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s: %w", domain.ErrObjectForbidden, key, err)
	case resp.Code == "SlowDown" || resp.StatusCode == http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s: %w", domain.ErrObjectBusy, key, err)
	default:
		return fmt.Errorf("minio operation on %s failed: %w", key, err)
	}
}
