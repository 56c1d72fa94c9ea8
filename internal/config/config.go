package config

import (
	"fmt"
	"somon-ai/internal/core/domain"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

type Config struct {
	Env     Env
	Server  ServerConfig
	Mongo   MongoConfig
	Storage StorageConfig
	Minio   MinioConfig
	NATS    NATSConfig
	Gemini  GeminiConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	MaxRequestBytes int64         `envconfig:"SERVER_MAX_REQUEST_BYTES" default:"524288000"` // 500MB
	RequestTimeout  time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"120s"`
}

type MongoConfig struct {
	URI                  string        `envconfig:"MONGO_URI" required:"true"`
	Database             string        `envconfig:"MONGO_DATABASE" default:"somon_ai"`
	CategoriesCollection string        `envconfig:"MONGO_CATEGORIES_COLLECTION" default:"categories"`
	ProductsCollection   string        `envconfig:"MONGO_PRODUCTS_COLLECTION" default:"products"`
	ConnectTimeout       time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
	ViewCountTimeout     time.Duration `envconfig:"MONGO_VIEW_COUNT_TIMEOUT" default:"5s"`
}

type StorageConfig struct {
	Driver                 string   `envconfig:"STORAGE_DRIVER" default:"local"`
	Root                   string   `envconfig:"STORAGE_ROOT" default:"wwwroot"`
	UploadPath             string   `envconfig:"STORAGE_UPLOAD_PATH" default:"uploads"`
	MaxImageSizeMB         int64    `envconfig:"STORAGE_MAX_IMAGE_SIZE_MB" default:"10"`
	MaxVideoSizeMB         int64    `envconfig:"STORAGE_MAX_VIDEO_SIZE_MB" default:"100"`
	AllowedImageExtensions []string `envconfig:"STORAGE_ALLOWED_IMAGE_EXTENSIONS" default:".jpg,.jpeg,.png,.webp,.heic,.heif,.gif,.bmp"`
	AllowedVideoExtensions []string `envconfig:"STORAGE_ALLOWED_VIDEO_EXTENSIONS" default:".mp4,.mov,.avi,.webm,.mkv,.flv,.wmv"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" default:"somon-media"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// NATSConfig is optional, an empty URL disables event publishing
type NATSConfig struct {
	URL           string        `envconfig:"NATS_URL"`
	StreamName    string        `envconfig:"NATS_STREAM_NAME" default:"PRODUCTS"`
	SubjectPrefix string        `envconfig:"NATS_SUBJECT_PREFIX" default:"somon"`
	PublishWait   time.Duration `envconfig:"NATS_PUBLISH_TIMEOUT" default:"5s"`
}

type GeminiConfig struct {
	APIKey   string        `envconfig:"GEMINI_API_KEY"`
	Model    string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	Endpoint string        `envconfig:"GEMINI_ENDPOINT" default:"https://generativelanguage.googleapis.com"`
	Timeout  time.Duration `envconfig:"GEMINI_TIMEOUT" default:"120s"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings envconfig cannot express
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverLocal:
	case StorageDriverMinio:
		if c.Minio.Endpoint == "" || c.Minio.AccessKey == "" || c.Minio.SecretKey == "" {
			return fmt.Errorf("minio storage driver requires MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Storage.MaxImageSizeMB <= 0 || c.Storage.MaxVideoSizeMB <= 0 {
		return fmt.Errorf("maximum media sizes must be positive")
	}

	return nil
}

// IsProd reports whether the service runs in production
func (c *Config) IsProd() bool {
	return c.Env.Env == "prod"
}

// MediaPolicy builds the upload rules from the storage settings
func (s StorageConfig) MediaPolicy() domain.MediaPolicy {
	return domain.NewMediaPolicy(s.UploadPath, s.MaxImageSizeMB, s.MaxVideoSizeMB, s.AllowedImageExtensions, s.AllowedVideoExtensions)
}
