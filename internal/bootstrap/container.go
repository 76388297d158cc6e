package bootstrap

import (
	"context"
	"log"
	"net/http"
	"time"

	"medisearch-be/internal/config"
	"medisearch-be/internal/controller"
	"medisearch-be/internal/pkg/logger"
	"medisearch-be/internal/repository/unitofwork"
	"medisearch-be/internal/service"
	"medisearch-be/pkg/database"
	"medisearch-be/pkg/fedsearch"
	"medisearch-be/pkg/provider"
	"medisearch-be/pkg/store"

	pktNats "medisearch-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController     controller.ISearchController
	ConnectionController controller.IConnectionController
	HealthController     controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis, with in-memory fallback so a missing Redis never takes search down
	var cache store.CacheStore
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory cache", err)
		cache = store.NewMemoryStore()
	} else {
		cache = store.NewRedisStore(rdb)
	}

	// AACT mirror, optional fallback registry for trial searches
	var aactDB *gorm.DB
	if cfg.Database.AACTConnection != "" {
		aactDB, err = database.NewAACTGormDB(cfg.Database.AACTConnection)
		if err != nil {
			log.Printf("[WARN] Failed to connect to AACT mirror: %v", err)
			aactDB = nil
		}
	}

	// 3. Sources
	httpClient := &http.Client{Timeout: 15 * time.Second}

	var registry fedsearch.Source[fedsearch.Trial] = provider.NewClinicalTrialsSource(httpClient)
	if aactDB != nil {
		registry = fedsearch.NewFailoverSource[fedsearch.Trial](registry, provider.NewAACTSource(aactDB))
	}

	trialSources := []fedsearch.Source[fedsearch.Trial]{
		service.NewLocalTrialSource(uowFactory),
		registry,
	}
	pubSources := []fedsearch.Source[fedsearch.Publication]{
		service.NewLocalPublicationSource(uowFactory),
		provider.NewPubMedSource(httpClient, cfg.Search.PubMedAPIKey),
		provider.NewArxivSource(httpClient),
	}
	researcherSources := []fedsearch.Source[fedsearch.Researcher]{
		service.NewLocalResearcherSource(uowFactory),
		provider.NewOpenAlexSource(httpClient, cfg.Search.OpenAlexMailto),
		provider.NewSemanticScholarSource(httpClient, cfg.Search.SemanticScholarAPIKey),
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Search.SearchLogTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Search.SearchLogTopic,
		uowFactory,
	)

	searchService := service.NewSearchService(
		uowFactory,
		cache,
		sysLogger,
		trialSources,
		pubSources,
		researcherSources,
		time.Duration(cfg.Search.FanOutTimeoutSeconds)*time.Second,
		publisherService,
		natsPub,
	)

	connectionService := service.NewConnectionService(uowFactory, sysLogger)

	// 5. Controllers
	return &Container{
		SearchController:     controller.NewSearchController(searchService),
		ConnectionController: controller.NewConnectionController(connectionService),
		HealthController:     controller.NewHealthController(db, cache),

		ConsumerService: consumerService,
	}
}
