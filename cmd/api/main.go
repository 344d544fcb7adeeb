package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SaveJKP/mini-project-backend/internal/database"
	"github.com/SaveJKP/mini-project-backend/internal/server"
)

func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	db, err := database.New()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	if err := database.MigrateUp(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("cannot run migrations")
	}

	srv := server.New(db)
	srv.RegisterFiberRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Info().Str("port", port).Msg("listening")
	if err := srv.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
