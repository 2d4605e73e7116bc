package main

import (
	"log"
	"os"

	"regboard-be/internal/model"
	"regboard-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		// pgcrypto provides gen_random_uuid() on Postgres < 13
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate for Corpus Tables...")

	models := []interface{}{
		&model.Document{},
		&model.Regulation{},
	}

	// Migrate strictly
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Vector Indexes & Views
	log.Println("Step 3: Creating Vector Indexes and Views...")

	postMigrationSQL := []string{
		// ANN indexes for cosine search. ivfflat picks centroids from
		// existing rows, so lists stays small for a fresh database.
		`CREATE INDEX IF NOT EXISTS idx_documents_embedding ON documents
		 USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100);`,
		`CREATE INDEX IF NOT EXISTS idx_regulations_embedding ON regulations
		 USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100);`,

		// View: searchable_corpus (both corpora in one place for ad-hoc SQL)
		`CREATE OR REPLACE VIEW searchable_corpus AS
		 SELECT d.id, 'document' AS doc_type, d.source, d.chunk_index, NULL AS article_no, d.content, d.embedding, d.created_at
		 FROM documents d WHERE d.deleted_at IS NULL
		 UNION ALL
		 SELECT r.id, 'regulation' AS doc_type, r.source, 0 AS chunk_index, r.article_no, r.content, r.embedding, r.created_at
		 FROM regulations r WHERE r.deleted_at IS NULL;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
