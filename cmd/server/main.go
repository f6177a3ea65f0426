package main

import (
	"restaurant_panel/internal/config"
	"restaurant_panel/internal/database"
	"restaurant_panel/internal/handlers"
	"restaurant_panel/internal/migrations"
	"restaurant_panel/internal/redis"
	"restaurant_panel/internal/repository"
	"restaurant_panel/internal/services"
	"restaurant_panel/pkg/notify"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrations.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Messaging gateway for the new-order notification integration
	var notifier *notify.Client
	if cfg.WhatsAppAPIURL != "" {
		notifier = notify.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	orderService := services.NewOrderService(orderRepo, settingsRepo, redisClient, notifier, logger)
	productService := services.NewProductService(productRepo)
	groupService := services.NewGroupService(groupRepo)
	promotionService := services.NewPromotionService(promotionRepo, productRepo, groupRepo)
	financeService := services.NewFinanceService(orderRepo, redisClient, time.Duration(cfg.CacheTTL)*time.Second, logger)
	settingsService := services.NewSettingsService(settingsRepo)
	authService, err := services.NewAuthService(cfg.MockEmail, cfg.MockPassword, redisClient, time.Duration(cfg.SessionTTL)*time.Second)
	if err != nil {
		logger.Fatal("failed to initialize auth service", zap.Error(err))
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	boardHandler := handlers.NewBoardHandler(orderService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	groupHandler := handlers.NewGroupHandler(groupService, productService, logger)
	promotionHandler := handlers.NewPromotionHandler(promotionService, logger)
	financeHandler := handlers.NewFinanceHandler(financeService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)

	// Setup routes
	router := gin.Default()

	// Session cookie without MaxAge dies with the browser session, matching
	// the panel's tab-scoped sign-in.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 0, HttpOnly: true})
	router.Use(sessions.Sessions("painel_sess", store))

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)
	router.GET("/auth/session", authHandler.Session)

	api := router.Group("/api")
	api.Use(handlers.RequireSession(authService))
	{
		api.GET("/pedidos", boardHandler.ListOrders)
		api.GET("/pedidos/quadro", boardHandler.GetBoard)
		api.POST("/pedidos", boardHandler.CreateOrder)
		api.PATCH("/pedidos/:id/avancar", boardHandler.AdvanceOrder)
		api.DELETE("/pedidos/:id", boardHandler.DeclineOrder)

		api.GET("/produtos", productHandler.ListProducts)
		api.POST("/produtos", productHandler.CreateProduct)
		api.PUT("/produtos/:id", productHandler.UpdateProduct)
		api.PATCH("/produtos/:id/grupo", productHandler.SetProductGroup)
		api.DELETE("/produtos/:id", productHandler.DeleteProduct)

		api.GET("/grupos", groupHandler.ListGroups)
		api.GET("/grupos/:id/produtos", groupHandler.ListGroupProducts)
		api.POST("/grupos", groupHandler.CreateGroup)
		api.PUT("/grupos/:id", groupHandler.UpdateGroup)
		api.DELETE("/grupos/:id", groupHandler.DeleteGroup)

		api.GET("/promocoes", promotionHandler.ListPromotions)
		api.POST("/promocoes", promotionHandler.CreatePromotion)
		api.PUT("/promocoes/:id", promotionHandler.UpdatePromotion)
		api.DELETE("/promocoes/:id", promotionHandler.DeletePromotion)

		api.GET("/financas/transacoes", financeHandler.ListTransactions)
		api.GET("/financas/relatorio", financeHandler.ExportReport)

		api.GET("/configuracoes", settingsHandler.GetSettings)
		api.PUT("/configuracoes", settingsHandler.SaveSettings)
	}

	// Start server
	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
