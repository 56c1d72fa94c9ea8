package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type flags struct {
	uri      string
	database string
	source   string
}

func main() {
	f := &flags{}

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or roll back the document store migrations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&f.uri, "uri", os.Getenv("MONGO_URI"), "Mongo connection URI (ex: mongodb://localhost:27017)")
	root.PersistentFlags().StringVar(&f.database, "database", envOr("MONGO_DATABASE", "somon_ai"), "Database name")
	root.PersistentFlags().StringVar(&f.source, "source", "db/migrations", "Path to migrations directory")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Run every pending up migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), f, func(m *migrate.Migrate) error { return m.Up() })
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every applied migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), f, func(m *migrate.Migrate) error { return m.Down() })
			},
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, f *flags, step func(m *migrate.Migrate) error) error {
	if f.uri == "" {
		return errors.New("--uri flag or MONGO_URI is required")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(f.uri))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	driver, err := mongodb.WithInstance(client, &mongodb.Config{DatabaseName: f.database})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", f.source),
		"mongodb",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := step(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("migrations completed successfully")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
