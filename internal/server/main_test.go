package server_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/SaveJKP/mini-project-backend/internal/database"
	"github.com/SaveJKP/mini-project-backend/internal/server"
)

var app *server.FiberServer

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
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	if err := database.MigrateUp(db); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	app = server.New(database.NewFromDB(db))
	app.RegisterFiberRoutes()

	code := m.Run()

	db.Close()
	if err := container.Terminate(ctx); err != nil {
		log.Printf("could not terminate container: %v", err)
	}
	os.Exit(code)
}

// doRequest drives the app through fiber's in-process test transport and
// decodes the envelope.
func doRequest(t *testing.T, method, path string, body any, cookies ...*http.Cookie) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	envelope := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	}
	return resp, envelope
}

// registerAndLogin creates a fresh account and returns its id and
// session cookie.
func registerAndLogin(t *testing.T, email string) (string, *http.Cookie) {
	t.Helper()

	resp, envelope := doRequest(t, http.MethodPost, "/user/auth/register", map[string]any{
		"fullName": "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	userID := envelope["user"].(map[string]any)["id"].(string)

	resp, _ = doRequest(t, http.MethodPost, "/user/auth/cookie/login", map[string]any{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			return userID, cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return "", nil
}

func addNote(t *testing.T, cookie *http.Cookie, body map[string]any) map[string]any {
	t.Helper()
	resp, envelope := doRequest(t, http.MethodPost, "/note/add-note", body, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return envelope["note"].(map[string]any)
}
