// File: scholaris/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scholaris/config"
	"scholaris/database"
	"scholaris/database/repository"
	"scholaris/handlers"
	"scholaris/middleware"
	"scholaris/routes"
	"scholaris/services/chat"
	"scholaris/services/intelligence"
	"scholaris/services/knowledge"
	"scholaris/services/notification"
	"scholaris/utils"

	"github.com/gin-gonic/gin"
)

const sessionTTL = 30 * time.Minute

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db, err := database.Open(config.AppConfig.DatabasePath, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open database: %v", err)
	}
	defer db.Close()

	utils.InitSessionCache()

	ctx := context.Background()

	// A missing or rejected model key is fatal: no chat interaction can
	// proceed without the language-model capability.
	llm, err := intelligence.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	defer llm.Close()

	// repositories.
	bookingRepo := repository.NewSQLiteBookingRepo(db)
	knowledgeRepo := repository.NewSQLiteKnowledgeRepo(db)

	// services.
	knowledgeService := &knowledge.DefaultKnowledgeService{
		Repo: knowledgeRepo,
	}

	responder := &knowledge.DefaultQueryResponder{
		LLM:       llm,
		Knowledge: knowledgeService,
	}

	notifier := notification.NewSMTPNotificationService(notification.SMTPConfig{
		Host:        config.AppConfig.SMTPHost,
		Port:        config.AppConfig.SMTPPort,
		Sender:      config.AppConfig.SMTPSender,
		AppPassword: config.AppConfig.SMTPAppPassword,
	})

	sessionStore := chat.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	chatService := &chat.DefaultChatService{
		Sessions:  sessionStore,
		LLM:       llm,
		Bookings:  bookingRepo,
		Notifier:  notifier,
		Responder: responder,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Chat:      handlers.NewChatHandler(chatService),
		Knowledge: handlers.NewKnowledgeHandler(knowledgeService),
		Admin:     handlers.NewAdminHandler(bookingRepo),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
