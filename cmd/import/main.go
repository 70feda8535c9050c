// Command import bulk-loads dictionary entries from a JSON-lines file.
// Each line is one entry payload in the same shape as POST /api/admin/import.
// Lines are processed in chunks, entries within a chunk concurrently.
// Failed lines are logged and skipped; the run continues.
//
// Usage:
//
//	import --file entries.jsonl
//
// Exit codes: 0 = all lines imported, 1 = error or any line failed.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tdhoang/vocadict-backend/internal/adapter/postgres"
	entryrepo "github.com/tdhoang/vocadict-backend/internal/adapter/postgres/entry"
	"github.com/tdhoang/vocadict-backend/internal/app"
	"github.com/tdhoang/vocadict-backend/internal/config"
	"github.com/tdhoang/vocadict-backend/internal/service/importer"
)

func main() {
	file := flag.String("file", "", "path to JSON-lines entry file")
	flag.Parse()

	if *file == "" {
		log.Fatal("usage: import --file entries.jsonl")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := importer.NewService(logger, entryrepo.New(pool), postgres.NewTxManager(pool))

	imported, failed, err := run(ctx, svc, *file, cfg.Dictionary.ImportChunkSize, logger)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int64("imported", imported),
		slog.Int64("failed", failed),
	)
	if failed > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *importer.Service, path string, chunkSize int, logger *slog.Logger) (int64, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	if chunkSize <= 0 {
		chunkSize = 50
	}

	var imported, failed atomic.Int64

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	chunk := make([]importer.Input, 0, chunkSize)
	lineNo := 0

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		var g errgroup.Group
		for _, in := range chunk {
			g.Go(func() error {
				if _, err := svc.Import(ctx, in); err != nil {
					logger.Error("import entry",
						slog.String("word", in.Word),
						slog.String("error", err.Error()),
					)
					failed.Add(1)
					return nil
				}
				imported.Add(1)
				return nil
			})
		}
		chunk = chunk[:0]
		return g.Wait()
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var in importer.Input
		if err := json.Unmarshal(line, &in); err != nil {
			logger.Error("parse line", slog.Int("line", lineNo), slog.String("error", err.Error()))
			failed.Add(1)
			continue
		}

		chunk = append(chunk, in)
		if len(chunk) == chunkSize {
			if err := flush(); err != nil {
				return imported.Load(), failed.Load(), err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return imported.Load(), failed.Load(), err
	}
	if err := flush(); err != nil {
		return imported.Load(), failed.Load(), err
	}

	return imported.Load(), failed.Load(), nil
}
