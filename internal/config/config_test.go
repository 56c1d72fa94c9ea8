package config_test

import (
	"os"
	"somon-ai/internal/config"
	"somon-ai/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Arrange
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	// Act
	cfg, err := config.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "somon_ai", cfg.Mongo.Database)
	assert.Equal(t, config.StorageDriverLocal, cfg.Storage.Driver)
	assert.Equal(t, int64(10), cfg.Storage.MaxImageSizeMB)
	assert.Equal(t, int64(100), cfg.Storage.MaxVideoSizeMB)
	assert.Contains(t, cfg.Storage.AllowedImageExtensions, ".heic")
	assert.Contains(t, cfg.Storage.AllowedVideoExtensions, ".wmv")
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 120*time.Second, cfg.Gemini.Timeout)
	assert.Empty(t, cfg.NATS.URL)
	assert.False(t, cfg.IsProd())
}

func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "unused")
	require.NoError(t, os.Unsetenv("MONGO_URI"))

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoad_MinioDriverRequiresCredentials(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("STORAGE_DRIVER", "minio")

	_, err := config.Load()

	assert.ErrorContains(t, err, "MINIO_ENDPOINT")
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := config.Load()

	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestStorageConfig_MediaPolicy(t *testing.T) {
	s := config.StorageConfig{
		UploadPath:             "/uploads/",
		MaxImageSizeMB:         5,
		MaxVideoSizeMB:         50,
		AllowedImageExtensions: []string{"JPG", " .png"},
		AllowedVideoExtensions: []string{".mp4"},
	}

	p := s.MediaPolicy()

	assert.Equal(t, "uploads", p.UploadPath)
	assert.Equal(t, []string{".jpg", ".png"}, p.ImageExtensions)
	assert.Equal(t, domain.MediaKindVideo, p.Detect("a.MP4"))
	assert.Equal(t, int64(5*1024*1024), p.MaxBytes(domain.MediaKindImage))
}
