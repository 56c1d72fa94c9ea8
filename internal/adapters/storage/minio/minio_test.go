package minio_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"somon-ai/internal/adapters/storage/minio"
	"somon-ai/internal/config"
	"somon-ai/internal/core/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "test-bucket"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return endpoint, cleanup
}

func createAdapter(t *testing.T, endpoint string, ctx context.Context) *minio.Adapter {
	t.Helper()
	cfg := config.MinioConfig{
		Endpoint:   endpoint,
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
		UseSSL:     false,
	}

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapter, err := minio.NewAdapter(ctx, cfg, discardLogger)

	require.NoError(t, err)
	require.NotNil(t, adapter)

	return adapter
}

func TestAdapter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	adapter := createAdapter(t, endpoint, ctx)

	t.Run("save open delete", func(t *testing.T) {
		// Arrange
		key := "uploads/images/" + fmt.Sprint(time.Now().UnixNano()) + ".png"
		content := "fake png content"
		require.NoError(t, adapter.EnsureDir(ctx, "uploads/images"))

		// Act
		err := adapter.Save(ctx, key, strings.NewReader(content), int64(len(content)), "image/png")
		require.NoError(t, err)
		exists, existsErr := adapter.Exists(ctx, key)
		rc, size, openErr := adapter.Open(ctx, key)
		require.NoError(t, openErr)
		data, readErr := io.ReadAll(rc)
		require.NoError(t, rc.Close())

		// Assert
		require.NoError(t, existsErr)
		require.NoError(t, readErr)
		assert.True(t, exists)
		assert.Equal(t, int64(len(content)), size)
		assert.Equal(t, content, string(data))

		require.NoError(t, adapter.Delete(ctx, key))
		exists, err = adapter.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing object", func(t *testing.T) {
		// Act
		deleteErr := adapter.Delete(ctx, "uploads/images/missing.png")
		_, _, openErr := adapter.Open(ctx, "uploads/images/missing.png")
		exists, existsErr := adapter.Exists(ctx, "uploads/images/missing.png")

		// Assert
		assert.ErrorIs(t, deleteErr, domain.ErrObjectNotFound)
		assert.ErrorIs(t, openErr, domain.ErrObjectNotFound)
		assert.NoError(t, existsErr)
		assert.False(t, exists)
	})

	t.Run("key escaping the bucket root", func(t *testing.T) {
		err := adapter.Save(ctx, "../escape.png", strings.NewReader("x"), 1, "image/png")

		assert.ErrorIs(t, err, domain.ErrInvalidPath)
	})
}
