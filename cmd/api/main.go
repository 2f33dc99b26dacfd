package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nailsdg/salon-api/internal/cache"
	"github.com/nailsdg/salon-api/internal/config"
	dbpkg "github.com/nailsdg/salon-api/internal/db"
	infraRepo "github.com/nailsdg/salon-api/internal/infra/repository"
	"github.com/nailsdg/salon-api/internal/mail"
	"github.com/nailsdg/salon-api/internal/middleware"
	"github.com/nailsdg/salon-api/internal/notify"
	"github.com/nailsdg/salon-api/internal/routes"
	"github.com/nailsdg/salon-api/internal/storage"
	"github.com/nailsdg/salon-api/internal/stories"
)

func main() {

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	db := dbpkg.NewDB(cfg, &logger)

	store := storage.NewS3Store(cfg, logger)
	statsCache := cache.New(cfg.RedisAddr, logger)
	mailer := mail.NewMailer(cfg, logger)

	expo := notify.NewExpoClient(cfg.ExpoPushURL)
	notifier := notify.NewNotifier(db, expo, logger)
	push := notify.NewDispatcher(notifier, logger)

	storyRepo := infraRepo.NewStoryGormRepository(db)
	storyService := stories.NewService(storyRepo, store, logger)

	sweeper := stories.NewSweeper(storyService, cfg.StorySweepInterval, logger)
	go sweeper.Run(context.Background())

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:           db,
		Config:       cfg,
		Logger:       logger,
		Store:        store,
		Cache:        statsCache,
		Mailer:       mailer,
		Push:         push,
		StoryService: storyService,
	})

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
