package repositories_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/SaveJKP/mini-project-backend/internal/database"
	"github.com/SaveJKP/mini-project-backend/internal/database/models"
	"github.com/SaveJKP/mini-project-backend/internal/database/repositories"
	"github.com/SaveJKP/mini-project-backend/internal/utils"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("notes_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("could not get connection string: %v", err)
	}
	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	if err := database.MigrateUp(testDB); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	code := m.Run()

	testDB.Close()
	if err := container.Terminate(ctx); err != nil {
		log.Printf("could not terminate container: %v", err)
	}
	os.Exit(code)
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password")
	require.NoError(t, err)
	user := &models.User{
		FullName: "Test User",
		Email:    email,
		Password: hash,
	}
	require.NoError(t, repositories.NewUserRepository(testDB).Create(context.Background(), user))
	return user
}

func createTestNote(t *testing.T, owner uuid.UUID, note models.Note) *models.Note {
	t.Helper()
	note.UserID = owner
	require.NoError(t, repositories.NewNoteRepository(testDB).Create(context.Background(), &note))
	return &note
}

func noteIDs(notes []models.Note) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}
