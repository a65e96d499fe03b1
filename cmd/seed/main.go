package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/HJantango/wild-octave-august-sub004/internal/repository/postgres"
	"github.com/HJantango/wild-octave-august-sub004/pkg/logger"
)

type contextKey string

const dbKey contextKey = "db"

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func importFlags() []cli.Flag {
	return []cli.Flag{
		newDBURLFlag(),
		&cli.StringFlag{
			Name:    "default-vendor",
			Usage:   "Vendor applied to rows without a vendor column value",
			EnvVars: []string{"SEED_DEFAULT_VENDOR"},
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Number of files parsed concurrently",
			Value: 4,
		},
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "Records buffered before each database flush",
			Value: 1000,
		},
	}
}

func initDB(c *cli.Context) error {
	db, err := sqlx.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(c.Context); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, postgres.Wrap(db))
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*postgres.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFrom(c *cli.Context) (*postgres.DB, error) {
	db, ok := c.Context.Value(dbKey).(*postgres.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("database connection not initialised")
	}
	return db, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}
	logger.Configure(os.Getenv("SERVER_MODE"), os.Stdout)

	app := &cli.App{
		Name:  "seed",
		Usage: "Manage the schema, import POS sales exports and seed ordering defaults",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Apply SQL migrations in filename order",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:    "migrations-dir",
						Usage:   "Directory containing *.sql migrations",
						Value:   "./scripts/migrations",
						EnvVars: []string{"MIGRATIONS_DIR"},
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runMigrate,
			},
			{
				Name:  "sales",
				Usage: "Import CSV sales exports from a local directory",
				Flags: append(importFlags(),
					&cli.StringFlag{
						Name:    "dir",
						Usage:   "Directory containing CSV exports",
						Value:   "./data/seeds/sales",
						EnvVars: []string{"SALES_DIR"},
					},
				),
				Before: initDB,
				After:  closeDB,
				Action: runSalesImport,
			},
			{
				Name:  "drive-sales",
				Usage: "Download CSV sales exports from Google Drive, then import them",
				Flags: append(importFlags(),
					&cli.StringFlag{
						Name:     "credentials-json",
						Usage:    "Service account credentials JSON",
						EnvVars:  []string{"DRIVE_CREDENTIALS_JSON"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "folder-id",
						Usage:   "Drive folder holding the exports",
						EnvVars: []string{"DRIVE_FOLDER_ID"},
					},
					&cli.StringFlag{
						Name:  "folder-path",
						Usage: "Slash separated folder path, used when --folder-id is empty",
					},
					&cli.StringFlag{
						Name:  "name-contains",
						Usage: "Only download files whose name contains this text",
					},
					&cli.StringFlag{
						Name:  "download-dir",
						Usage: "Local directory for downloaded exports",
						Value: "./data/tmp/drive",
					},
				),
				Before: initDB,
				After:  closeDB,
				Action: runDriveSalesImport,
			},
			{
				Name:  "storage-sales",
				Usage: "Download CSV sales exports from object storage, then import them",
				Flags: append(importFlags(), storageFlags()...),
				Before: initDB,
				After:  closeDB,
				Action: runStorageSalesImport,
			},
			{
				Name:   "defaults",
				Usage:  "Replace vendor schedules and pack sizes with the built-in defaults",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runSeedDefaults,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
