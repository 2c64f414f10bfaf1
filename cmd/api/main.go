package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adcopy-studio/backend/internal/config"
	apphttp "github.com/adcopy-studio/backend/internal/http"
	"github.com/adcopy-studio/backend/internal/http/handlers"
	"github.com/adcopy-studio/backend/internal/llm"
	"github.com/adcopy-studio/backend/internal/sentiment"
	"github.com/adcopy-studio/backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	// Core pipeline
	classifier := sentiment.NewClassifier()
	generator := llm.NewGenerator(cfg, log)
	copyService := services.NewCopyService(classifier, generator, log)

	// Handlers
	copyHandler := handlers.NewCopyHandler(copyService, log)
	formHandler := handlers.NewFormHandler(copyService, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, log, copyHandler, formHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
