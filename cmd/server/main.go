package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"spaceai/internal/config"
	"spaceai/internal/handler"
	"spaceai/internal/model"
	"spaceai/internal/observability"
	"spaceai/internal/provider"
	"spaceai/internal/repository"
	"spaceai/internal/seed"
	"spaceai/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("spaceai", cfg.Logging.Level, cfg.Logging.Format)
	log.Info().Str("version", Version).Str("build_time", BuildTime).Str("git_commit", GitCommit).Msg("SpaceAI rental search")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Vibe taxonomy: built-in defaults, optionally replaced from disk
	vibeOptions := service.DefaultVibes()
	if cfg.Search.VibesPath != "" {
		vibeOptions, err = service.LoadVibes(cfg.Search.VibesPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Search.VibesPath).Msg("failed to load vibe taxonomy")
		}
	}
	vibes := service.NewVibeTaxonomy(vibeOptions)

	// Fallback corpus: embedded seed data, or the listings table when a
	// database is configured
	corpus := seed.Corpus()
	var searchLogs service.SearchLogger
	if cfg.Postgres.Enabled() {
		repo, err := repository.NewPostgresRepository(
			cfg.Postgres.DSN,
			cfg.Postgres.MaxConnections,
			cfg.Postgres.MaxIdleConnections,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer repo.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		corpus, err = repo.LoadListings(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load listings from database")
		}
		searchLogs = repo
		log.Info().Int("listings", len(corpus)).Msg("loaded fallback corpus from PostgreSQL")
	} else {
		log.Info().Int("listings", len(corpus)).Msg("using embedded seed corpus")
	}

	// Core engine
	locations := service.NewLocationResolver()
	parser := service.NewConstraintParser(vibes)
	matcher := service.NewListingMatcher()

	// Remote provider (optional)
	var listingProvider service.ListingProvider
	if cfg.Provider.Enabled {
		listingProvider = provider.NewRentCastClient(provider.Config{
			APIKey:  cfg.Provider.APIKey,
			APIBase: cfg.Provider.APIBase,
			Limit:   cfg.Provider.Limit,
			Timeout: cfg.Provider.Timeout,
		}, func(query string) *model.Location {
			return locations.Resolve(query, nil)
		})
		log.Info().Str("api_base", cfg.Provider.APIBase).Msg("RentCast provider enabled")
	} else {
		log.Warn().Msg("RENTCAST_API_KEY not set, serving demo data only")
	}

	chatService := service.NewChatService(corpus, parser, locations, matcher, listingProvider, searchLogs, cfg.Provider.Timeout)
	filterService := service.NewFilterService(vibes)
	sessions := service.NewSessionStore(func() *service.Session {
		return &service.Session{Active: chatService.Corpus()}
	})

	// Handlers
	chatHandler := handler.NewChatHandler(chatService, sessions)
	filterHandler := handler.NewFilterHandler(filterService, sessions, vibes)

	// Setup Gin router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "spaceai-rental-search",
			"version": Version,
		})
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Send)
		apiV1.POST("/chat/reset", chatHandler.Reset)
		apiV1.POST("/filter", filterHandler.Apply)
		apiV1.GET("/vibes", filterHandler.Vibes)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting server")

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
}
