package bootstrap

import (
	"context"
	"log"
	"time"

	"regboard-be/internal/config"
	"regboard-be/internal/controller"
	"regboard-be/internal/handler"
	"regboard-be/internal/pkg/logger"
	"regboard-be/internal/repository/memory"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/internal/service"
	"regboard-be/internal/websocket"
	"regboard-be/pkg/embedding"
	pktNats "regboard-be/pkg/nats"
	"regboard-be/pkg/realtime"
	"regboard-be/pkg/tools"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController     controller.ISearchController
	DocumentController   controller.IDocumentController
	RegulationController controller.IRegulationController
	DashboardController  controller.IDashboardController
	UIController         controller.IUIController

	// WebSockets & live feed (exposed for main.go to start)
	LiveHandler  *handler.LiveHandler
	WebSocketHub *websocket.Hub

	// Change broker shared by repositories and dashboard stores
	Broker *realtime.Broker
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	broker := realtime.NewBroker()
	uowFactory := unitofwork.NewRepositoryFactory(db, broker)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaModel,
	)
	log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)

	// Initialize in-memory session storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.App.SessionTTLMinutes) * time.Minute)

	// 2. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/realtime.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Tool catalog
	catalog, err := tools.LoadCatalog(cfg.Tools.CatalogPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load tool catalog: %v", err)
	}
	registry := tools.NewRegistry(catalog)

	// 4. Services
	searchService := service.NewSearchService(uowFactory, embeddingProvider, natsPub)
	documentService := service.NewDocumentService(uowFactory, embeddingProvider, natsPub)
	regulationService := service.NewRegulationService(uowFactory)

	fetcher := service.NewCorpusFetcher(uowFactory)
	searcher := service.NewSearchAdapter(searchService)
	dashboardService := service.NewDashboardService(sessionRepo, fetcher, searcher, broker, sysLogger)

	if err := registerTools(registry, searchService, documentService, dashboardService); err != nil {
		log.Fatalf("[FATAL] Failed to bind tools: %v", err)
	}
	uiService := service.NewUIService(registry)

	// 5. Live activity worker
	if natsSub != nil {
		activityService := service.NewActivityService(natsSub, wsHub, wsLogger)
		go activityService.Start()
	}

	liveHandler := handler.NewLiveHandler(wsHub, broker, wsLogger)

	// 6. Controllers
	return &Container{
		SearchController:     controller.NewSearchController(searchService),
		DocumentController:   controller.NewDocumentController(documentService),
		RegulationController: controller.NewRegulationController(regulationService),
		DashboardController:  controller.NewDashboardController(dashboardService),
		UIController:         controller.NewUIController(uiService),

		LiveHandler:  liveHandler,
		WebSocketHub: wsHub,
		Broker:       broker,
	}
}
