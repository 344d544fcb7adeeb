package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/SaveJKP/mini-project-backend/internal/database/models"
)

const noteColumns = `id, title, content, tags, is_pinned, is_public, user_id, created_at, updated_at`

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Note, error)
	GetAll(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	Search(ctx context.Context, query string, userID uuid.UUID) ([]models.Note, error)
	Update(ctx context.Context, note *models.Note, userID uuid.UUID) error
	SetVisibility(ctx context.Context, id uuid.UUID, userID uuid.UUID, isPublic bool) (*models.Note, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	GetPublicByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	GetAllPublic(ctx context.Context) ([]models.Note, error)
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.Tags == nil {
		note.Tags = []string{}
	}
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("error encoding tags: %w", err)
	}
	query := `
		INSERT INTO notes (title, content, tags, is_pinned, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_public, created_at, updated_at`
	err = r.db.QueryRowContext(ctx, query, note.Title, note.Content, tags, note.IsPinned, note.UserID).
		Scan(&note.ID, &note.IsPublic, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating note: %w", err)
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting note: %w", err)
	}
	return note, nil
}

// GetAll returns the owner's notes with pinned ones first. Ties keep
// store order.
func (r *noteRepository) GetAll(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY is_pinned DESC`
	return r.queryNotes(ctx, query, userID)
}

// Search matches the query as a case-insensitive literal substring of
// the title, the content, or the tags array taken as a whole.
func (r *noteRepository) Search(ctx context.Context, query string, userID uuid.UUID) ([]models.Note, error) {
	pattern := "%" + escapeLike(query) + "%"
	stmt := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1
		  AND (title ILIKE $2 OR content ILIKE $2 OR tags::text ILIKE $2)`
	return r.queryNotes(ctx, stmt, userID, pattern)
}

func (r *noteRepository) Update(ctx context.Context, note *models.Note, userID uuid.UUID) error {
	if note.Tags == nil {
		note.Tags = []string{}
	}
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("error encoding tags: %w", err)
	}
	query := `
		UPDATE notes
		SET title = $1, content = $2, tags = $3, is_pinned = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at`
	err = r.db.QueryRowContext(ctx, query, note.Title, note.Content, tags, note.IsPinned, note.ID, userID).
		Scan(&note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("error updating note: %w", err)
	}
	return nil
}

func (r *noteRepository) SetVisibility(ctx context.Context, id uuid.UUID, userID uuid.UUID, isPublic bool) (*models.Note, error) {
	query := `
		UPDATE notes
		SET is_public = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND user_id = $3
		RETURNING ` + noteColumns
	note, err := scanNote(r.db.QueryRowContext(ctx, query, isPublic, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating note visibility: %w", err)
	}
	return note, nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *noteRepository) GetPublicByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 AND is_public ORDER BY created_at DESC`
	return r.queryNotes(ctx, query, userID)
}

func (r *noteRepository) GetAllPublic(ctx context.Context) ([]models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE is_public`
	return r.queryNotes(ctx, query)
}

func (r *noteRepository) queryNotes(ctx context.Context, query string, args ...any) ([]models.Note, error) {
	result, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer result.Close()

	notes := []models.Note{}
	for result.Next() {
		note, err := scanNote(result)
		if err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, *note)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}
	return notes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var note models.Note
	var tags []byte
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&tags,
		&note.IsPinned,
		&note.IsPublic,
		&note.UserID,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &note.Tags); err != nil {
		return nil, fmt.Errorf("error decoding tags: %w", err)
	}
	return &note, nil
}

// escapeLike neutralizes LIKE metacharacters so user input always
// matches as a literal substring.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
