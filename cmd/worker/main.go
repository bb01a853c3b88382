package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/horeca-prospection/backend/config"
	"github.com/horeca-prospection/backend/pkg/ai/llm"
	"github.com/horeca-prospection/backend/pkg/cache"
	"github.com/horeca-prospection/backend/pkg/database"
	"github.com/horeca-prospection/backend/pkg/enrichment"
	"github.com/horeca-prospection/backend/pkg/logger"
	"github.com/horeca-prospection/backend/pkg/prospects"
)

func main() {
	cfg := config.Load()
	appLogger := logger.New(cfg.LogLevel, "service", "worker")

	if cfg.OpenAIAPIKey == "" {
		log.Fatalf("❌ OPENAI_API_KEY is required to run the enrichment worker")
	}

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	llmClient := llm.NewOpenAIClient(llm.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
	}, log.Default())

	prospectService := prospects.NewService(db.Ent, redisClient)
	processor := enrichment.NewProcessor(llmClient, prospectService, cfg.WorkerRequestsPerMinute, appLogger)

	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to parse Redis URL: %v", err)
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:    cfg.WorkerConcurrency,
		RetryDelayFunc: enrichment.RetryDelay,
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(enrichment.TypeEnrichProspect, processor.HandleEnrichProspect)

	log.Printf("🤖 Enrichment worker starting (concurrency: %d, model: %s, %d req/min)",
		cfg.WorkerConcurrency, cfg.OpenAIModel, cfg.WorkerRequestsPerMinute)

	if err := srv.Start(mux); err != nil {
		log.Fatalf("❌ Failed to start worker: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down worker...")
	srv.Shutdown()
	log.Println("✅ Worker stopped")
}
