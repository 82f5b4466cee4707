package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"esporte-social/internal/auth"
	"esporte-social/internal/cache"
	"esporte-social/internal/clients"
	"esporte-social/internal/config"
	"esporte-social/internal/db"
	"esporte-social/internal/handlers"
	"esporte-social/internal/middleware"
	"esporte-social/internal/observability"
	"esporte-social/internal/rabbitmq"
	"esporte-social/internal/repositories"
	"esporte-social/internal/telemetry"
	"esporte-social/internal/ws"
)

func main() {
	cfg := config.Load()
	cfg.ValidateAPIKeys()

	database, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer database.Close()

	auditPublisher := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AuditExchange)
	defer auditPublisher.Close()
	auditEmitter := telemetry.NewAuditEmitter(auditPublisher, "audit.logs", "esporte-social", cfg.Environment)

	if eventPublisher, err := observability.NewAMQPPublisher(cfg.AMQPURL, cfg.AuditExchange); err != nil {
		log.Printf("event publishing disabled: %v", err)
	} else {
		observability.SetPublisher(eventPublisher)
		defer eventPublisher.Close()
	}

	userRepo := repositories.NewUserRepo(database)
	messageRepo := repositories.NewChatMessageRepo(database)
	matchRepo := repositories.NewMatchRepo(database)
	interestRepo := repositories.NewInterestRepo(database)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher()
	directory := auth.NewDirectory(tokens, userRepo)

	apiCache := cache.New(cfg.CacheCapacity, cfg.CacheTTL)
	placesClient := clients.NewPlacesClient(cfg.GoogleMapsKey)
	footballClient := clients.NewFootballClient(cfg.FootballAPIKey)

	hub := ws.NewHub()
	relay := ws.NewRelay(hub, directory, messageRepo)

	authHandler := handlers.NewAuthHandler(userRepo, hasher, tokens, auditEmitter)
	userHandler := handlers.NewUserHandler(userRepo)
	establishmentHandler := handlers.NewEstablishmentHandler(userRepo, placesClient, apiCache)
	matchHandler := handlers.NewMatchHandler(footballClient, matchRepo, interestRepo, apiCache, auditEmitter)
	chatHandler := handlers.NewChatHistoryHandler(messageRepo)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(observability.HTTPMetricsMiddleware())

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/teams", authHandler.ListTeams)

	authMiddleware := middleware.AuthMiddleware(tokens)

	router.GET("/dashboard", authMiddleware, userHandler.Dashboard)
	router.POST("/location", authMiddleware, userHandler.UpdateLocation)
	router.GET("/nearby-establishments", authMiddleware, establishmentHandler.NearbyEstablishments)
	router.GET("/matches/today", authMiddleware, matchHandler.TodayMatches)
	router.POST("/match/interest", authMiddleware, matchHandler.MarkInterest)
	router.GET("/chat/:room_id/messages", authMiddleware, chatHandler.RoomMessages)

	router.GET("/ws", relay.Handle)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterDebugRoutes(router, auditEmitter, cfg.DebugRoutes)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
