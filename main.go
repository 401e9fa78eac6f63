package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"studio/config"
	"studio/handlers"
	"studio/middleware"
	"studio/routes"
	"studio/services/assistant"
	"studio/services/catalog"
	"studio/services/forms"
	"studio/services/lead"
	"studio/templates"
	"studio/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.SetHTMLTemplate(templates.Load())

	// The catalog is read-only after this point; every consumer gets the
	// same instance.
	registry := catalog.NewRegistry()
	schemas := forms.NewSchemaRegistry()
	renderer := forms.NewRenderer()

	apiBase := config.AppConfig.APIBaseURL
	leadController := lead.NewController(registry, apiBase, logger)
	assistantClient := assistant.NewClient(apiBase, assistant.NewMemoryStore(30*time.Minute), logger)

	pageHandler := handlers.NewPageHandler(registry, schemas, renderer)
	leadHandler := handlers.NewLeadHandler(leadController)
	assistantHandler := handlers.NewAssistantHandler(assistantClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HomeHandler:          pageHandler.HomeHandler,
		ServicesHandler:      pageHandler.ServicesHandler,
		OrderPageHandler:     pageHandler.OrderPageHandler,
		LegacyServiceHandler: pageHandler.LegacyServiceHandler,

		SubmitLeadHandler: leadHandler.SubmitLeadHandler,

		AssistantSendHandler:    assistantHandler.SendMessageHandler,
		AssistantHistoryHandler: assistantHandler.HistoryHandler,
	}

	// Register routes with the assembled handler bundle.
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

	logger.Sugar().Infof("Starting server on %s (backend: %s)...", srv.Addr, apiBase)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
