package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"regboard-be/internal/config"
	"regboard-be/internal/repository/contract"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/internal/service"
	"regboard-be/pkg/database"
	"regboard-be/pkg/embedding"
	pktNats "regboard-be/pkg/nats"
	"regboard-be/pkg/realtime"

	"github.com/fatih/color"
)

// Loads plain-text corpus files into the documents table. Each file becomes
// one source whose chunks are embedded and stored in a single transaction.
//
// Usage:
//
//	go run ./cmd/ingest file1.txt file2.txt
//	go run ./cmd/ingest -dir ./corpus -glob "*.md"
func main() {
	dir := flag.String("dir", "", "Directory of corpus files to ingest")
	pattern := flag.String("glob", "*.txt", "Filename pattern matched inside -dir")
	flag.Parse()

	files := flag.Args()
	if *dir != "" {
		matches, err := filepath.Glob(filepath.Join(*dir, *pattern))
		if err != nil {
			log.Fatalf("Error: Bad -glob pattern: %v", err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		log.Fatal("Error: Nothing to ingest, pass file paths or -dir")
	}

	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	broker := realtime.NewBroker()
	uowFactory := unitofwork.NewRepositoryFactory(db, broker)
	provider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)

	var publisher *pktNats.Publisher
	if p, err := pktNats.NewPublisher(cfg.App.NatsURL); err != nil {
		log.Printf("Warn: NATS unavailable, audit events disabled: %v", err)
	} else {
		publisher = p
		defer publisher.Close()
	}

	ingest := service.NewIngestService(uowFactory, provider, publisher)

	color.Cyan("Ingesting %d file(s) into the document corpus", len(files))

	ctx := context.Background()
	var loaded, skipped, failed int
	for _, path := range files {
		color.Yellow("\n%s", path)

		content, err := os.ReadFile(path)
		if err != nil {
			color.Red("Failed: %v", err)
			failed++
			continue
		}

		source := filepath.Base(path)
		metadata := map[string]any{"path": path, "bytes": len(content)}

		chunks, err := ingest.IngestDocument(ctx, source, string(content), metadata)
		switch {
		case errors.Is(err, contract.ErrDuplicateKey):
			color.Yellow("Already loaded, skipping")
			skipped++
		case err != nil:
			color.Red("Failed: %v", err)
			failed++
		default:
			color.Green("Stored %d chunks", chunks)
			loaded++
		}
	}

	color.Cyan("\nDone: %d loaded, %d skipped, %d failed", loaded, skipped, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
