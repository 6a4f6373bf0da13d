// main.go
package main

import (
	"context"
	"log"
	"time"

	"skyyatra/cmd"
	"skyyatra/internal/data/repository"
	"skyyatra/internal/wire"
	"skyyatra/pkg/cache"
	"skyyatra/pkg/database"
	"skyyatra/pkg/messaging"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	loc, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		logger.Warn("Unknown timezone, using UTC", zap.String("timezone", config.App.Timezone), zap.Error(err))
		loc = time.UTC
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis is optional: without it checkouts and confirmations stay in memory
	rdb, err := cache.NewRedisClient(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory stores", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
	}

	// Initialize all repositories
	cacheTTL := time.Duration(config.Search.CacheTTLSeconds) * time.Second
	repos := repository.NewRepository(db, rdb, cacheTTL, logger)

	// Booking events
	ps, err := messaging.NewPubSub(config.Broker.AMQPURL, logger)
	if err != nil {
		logger.Fatal("Failed to init message broker", zap.Error(err))
	}
	defer ps.Close()

	router, err := messaging.NewRouter(ps, logger)
	if err != nil {
		logger.Fatal("Failed to init message router", zap.Error(err))
	}
	routerCtx, stopRouter := context.WithCancel(context.Background())
	defer stopRouter()
	go func() {
		if err := router.Run(routerCtx); err != nil {
			logger.Error("Message router stopped", zap.Error(err))
		}
	}()

	// Wire all dependencies
	app, err := wire.Wiring(repos, messaging.NewEventPublisher(ps.Publisher), config, loc, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
