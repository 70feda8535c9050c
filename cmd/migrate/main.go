// Command migrate applies goose migrations against the configured database.
//
// Usage:
//
//	migrate [--dir migrations] <up|down|status|version>
//
// The database DSN comes from the application config (DATABASE_DSN or
// CONFIG_PATH YAML). Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/tdhoang/vocadict-backend/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: migrate [--dir migrations] <up|down|status|version>")
	}
	command := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dir))
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	switch command {
	case "up":
		_, err = provider.Up(ctx)
	case "down":
		_, err = provider.Down(ctx)
	case "status":
		err = printStatus(ctx, provider)
	case "version":
		var v int64
		v, err = provider.GetDBVersion(ctx)
		if err == nil {
			log.Printf("version: %d", v)
		}
	default:
		log.Fatalf("unknown command %q", command)
	}
	if err != nil {
		log.Fatalf("migrate %s: %v", command, err)
	}
}

func printStatus(ctx context.Context, provider *goose.Provider) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		state := "pending"
		if s.State == goose.StateApplied {
			state = "applied"
		}
		log.Printf("%-8s %s", state, s.Source.Path)
	}
	return nil
}
