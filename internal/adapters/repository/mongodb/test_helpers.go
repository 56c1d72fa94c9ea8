package mongodb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"somon-ai/internal/core/domain"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testDatabase = "somon_test"

// getProjectRoot finds the project root by searching upwards for the go.mod file.
func getProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		_, err := os.Stat(filepath.Join(wd, "go.mod"))
		if err == nil {
			return wd, nil
		}
		if wd == filepath.Dir(wd) {
			return "", errors.New("go.mod not found in any parent directory")
		}
		wd = filepath.Dir(wd)
	}
}

// NewTestDB starts mongo in a container and applies the migrations.
// It returns the database, a cleanup func and a func emptying every collection.
func NewTestDB(t *testing.T) (*mongo.Database, func(), func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Could not start mongo container: %v", err)
	}

	host, _ := mongoContainer.Host(ctx)
	p, _ := mongoContainer.MappedPort(ctx, "27017")
	baseURI := fmt.Sprintf("mongodb://%s:%s", host, p.Port())

	projectRoot, err := getProjectRoot()
	if err != nil {
		t.Fatalf("Could not find project root: %v", err)
	}
	migrationsPath := filepath.Join(projectRoot, "db", "migrations")

	u := &url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(migrationsPath),
	}

	m, err := migrate.New(u.String(), baseURI+"/"+testDatabase)
	if err != nil {
		t.Fatalf("failed to init migrate with URL %s: %v", u.String(), err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to run up migrations: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(baseURI))
	if err != nil {
		t.Fatalf("failed to connect to mongo: %v", err)
	}
	db := client.Database(testDatabase)

	cleanup := func() {
		_ = client.Disconnect(ctx)
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate mongo container: %v", err)
		}
	}

	truncateAll := func() {
		for _, name := range []string{"categories", "products"} {
			if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
				t.Fatalf("failed to truncate %s: %v", name, err)
			}
		}
	}
	return db, cleanup, truncateAll
}

// InsertTestCategory stores c and returns its generated ID
func InsertTestCategory(t *testing.T, db *mongo.Database, c domain.Category) string {
	t.Helper()
	doc, err := newCategoryDocument(c)
	if err != nil {
		t.Fatalf("invalid category: %v", err)
	}
	res, err := db.Collection("categories").InsertOne(context.Background(), doc)
	if err != nil {
		t.Fatalf("failed to insert category: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex()
}
