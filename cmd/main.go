package main

import (
	"fmt"
	"os"

	"github.com/akanksha509/AI-Tutor-sub001/internal/cache"
	"github.com/akanksha509/AI-Tutor-sub001/internal/db"
	"github.com/akanksha509/AI-Tutor-sub001/internal/handlers"
	"github.com/akanksha509/AI-Tutor-sub001/internal/logger"
	"github.com/akanksha509/AI-Tutor-sub001/internal/repos"
	"github.com/akanksha509/AI-Tutor-sub001/internal/server"
	"github.com/akanksha509/AI-Tutor-sub001/internal/services"
	"github.com/akanksha509/AI-Tutor-sub001/internal/sse"
	"github.com/akanksha509/AI-Tutor-sub001/internal/utils"
	"github.com/akanksha509/AI-Tutor-sub001/internal/validation"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Validation config
	log.Info("Loading environment variables from main...")
	validationCfg := validation.DefaultConfig()
	validationCfg.MaxEventDurationMs = int64(utils.GetEnvAsInt("MAX_EVENT_DURATION_MS", int(validationCfg.MaxEventDurationMs), log))
	validationCfg.MinEventDurationMs = int64(utils.GetEnvAsInt("MIN_EVENT_DURATION_MS", int(validationCfg.MinEventDurationMs), log))
	validationCfg.MaxSimultaneousEvents = utils.GetEnvAsInt("MAX_SIMULTANEOUS_EVENTS", validationCfg.MaxSimultaneousEvents, log)
	validationCfg.MaxAudioTextLength = utils.GetEnvAsInt("MAX_AUDIO_TEXT_LENGTH", validationCfg.MaxAudioTextLength, log)
	validationCfg.StrictOrdering = utils.GetEnvAsBool("STRICT_ORDERING", validationCfg.StrictOrdering, log)
	validationCfg.LayoutFeasibility = utils.GetEnvAsBool("LAYOUT_FEASIBILITY", validationCfg.LayoutFeasibility, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	lessonRepo := repos.NewLessonRepo(thePG, log)
	runRepo := repos.NewValidationRunRepo(thePG, log)

	// Context cache
	contexts, err := cache.NewContextCache(log)
	if err != nil {
		log.Warn("Redis context cache unavailable; falling back to Postgres only", "error", err)
	}

	// SSE
	log.Info("Setting up SSE hub now...")
	sseHub := sse.NewHub(log)

	// Services
	log.Info("Setting up Services from main...")
	lessonService := services.NewLessonService(thePG, log, lessonRepo, contexts)
	validationService := services.NewChunkValidationService(
		thePG,
		log,
		validationCfg,
		services.DefaultAcceptancePolicy(),
		lessonRepo,
		runRepo,
		contexts,
		sseHub,
	)

	// Handlers
	log.Info("Setting up handlers from main...")
	lessonHandler := handlers.NewLessonHandler(log, lessonService)
	validationHandler := handlers.NewValidationHandler(log, validationService)
	sseHandler := handlers.NewSSEHandler(log, sseHub)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		LessonHandler:     lessonHandler,
		ValidationHandler: validationHandler,
		SSEHandler:        sseHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
