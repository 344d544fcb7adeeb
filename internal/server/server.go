package server

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/rs/zerolog/log"

	"github.com/SaveJKP/mini-project-backend/internal/database"
	"github.com/SaveJKP/mini-project-backend/internal/database/repositories"
)

type FiberServer struct {
	*fiber.App

	db        database.Service
	users     repositories.UserRepository
	notes     repositories.NoteRepository
	validate  *validator.Validate
	jwtSecret []byte
}

// New wires the server and its repositories around the given database
// service. All dependencies are constructed here, once.
func New(db database.Service) *FiberServer {
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: "notes",
			AppName:      "notes",
			ErrorHandler: errorHandler,
		}),
		db:        db,
		users:     repositories.NewUserRepository(db.DB()),
		notes:     repositories.NewNoteRepository(db.DB()),
		validate:  validator.New(),
		jwtSecret: []byte(getenv("JWT_SECRET", "secret")),
	}
	server.App.Use(favicon.New())
	server.App.Use(cors.New(cors.Config{
		AllowOrigins:     getenv("APP_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	server.App.Use(logger.New())
	server.App.Use(pprof.New(pprof.Config{
		Next: nil,
	}))
	return server
}

// errorHandler renders every error through the response envelope.
// fiber.Error values keep their status and message; anything else is a
// 500 whose details are logged server-side only.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error":   true,
			"message": fiberErr.Message,
		})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   true,
		"message": "Internal Server Error",
	})
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
