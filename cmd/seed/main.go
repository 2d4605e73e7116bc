package main

import (
	"context"
	"errors"
	"log"

	"regboard-be/internal/config"
	"regboard-be/internal/repository/contract"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/internal/service"
	"regboard-be/pkg/database"
	"regboard-be/pkg/embedding"
	"regboard-be/pkg/realtime"
)

type regulationSeed struct {
	Source    string
	ArticleNo string
	Content   string
}

func main() {
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

	// Seeding is a local bootstrap step, no audit bus needed.
	ingest := service.NewIngestService(uowFactory, provider, nil)

	log.Println("Seeding Regulation Catalog...")

	// Starter articles so a fresh install has something to search
	seeds := []regulationSeed{
		{Source: "GDPR", ArticleNo: "5", Content: "Personal data shall be processed lawfully, fairly and in a transparent manner in relation to the data subject. It shall be collected for specified, explicit and legitimate purposes and not further processed in a manner that is incompatible with those purposes."},
		{Source: "GDPR", ArticleNo: "17", Content: "The data subject shall have the right to obtain from the controller the erasure of personal data concerning him or her without undue delay where the data are no longer necessary in relation to the purposes for which they were collected."},
		{Source: "GDPR", ArticleNo: "33", Content: "In the case of a personal data breach, the controller shall without undue delay and, where feasible, not later than 72 hours after having become aware of it, notify the breach to the supervisory authority, unless the breach is unlikely to result in a risk to the rights and freedoms of natural persons."},
		{Source: "AI-Act", ArticleNo: "5", Content: "The placing on the market, the putting into service or the use of an AI system that deploys subliminal techniques beyond a person's consciousness with the objective of materially distorting a person's behaviour in a manner that causes significant harm shall be prohibited."},
		{Source: "AI-Act", ArticleNo: "13", Content: "High-risk AI systems shall be designed and developed in such a way as to ensure that their operation is sufficiently transparent to enable deployers to interpret a system's output and use it appropriately."},
		{Source: "ePrivacy", ArticleNo: "5", Content: "Member States shall ensure the confidentiality of communications by means of a public communications network. The storing of information in the terminal equipment of a subscriber is only allowed on condition that the subscriber has given his or her consent."},
	}

	ctx := context.Background()
	for _, s := range seeds {
		err := ingest.IngestRegulation(ctx, s.Source, s.ArticleNo, s.Content)
		switch {
		case errors.Is(err, contract.ErrDuplicateKey):
			log.Printf("Regulation '%s art. %s' already exists, skipping...", s.Source, s.ArticleNo)
		case err != nil:
			log.Printf("Error seeding '%s art. %s': %v", s.Source, s.ArticleNo, err)
		default:
			log.Printf("Seeded regulation: %s art. %s", s.Source, s.ArticleNo)
		}
	}

	log.Println("Regulation seeding completed!")
}
