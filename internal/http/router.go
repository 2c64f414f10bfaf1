package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/adcopy-studio/backend/internal/http/handlers"
	"github.com/adcopy-studio/backend/internal/middleware"
)

func SetupRouter(
	app *fiber.App,
	log *zap.Logger,
	copyHandler *handlers.CopyHandler,
	formHandler *handlers.FormHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Form front-end
	app.Get("/", formHandler.Show)
	app.Post("/", formHandler.Submit)
	app.Post("/download", formHandler.Download)

	// JSON API
	api := app.Group("/api/v1")
	api.Post("/copy", copyHandler.GenerateCopy)
	api.Post("/copy/download", copyHandler.DownloadCopy)
	api.Post("/tone", copyHandler.ClassifyTone)
}
