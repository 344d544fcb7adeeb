package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SaveJKP/mini-project-backend/internal/database/dto"
	"github.com/SaveJKP/mini-project-backend/internal/database/models"
	"github.com/SaveJKP/mini-project-backend/internal/database/repositories"
)

func (s *FiberServer) addNote(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	req := dto.CreateNote{}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title is required")
	}
	if req.Content == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Content is required")
	}

	// Owner always comes from the session, never from the body.
	note := models.Note{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
		UserID:   userID,
	}
	if err := s.notes.Create(c.Context(), &note); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":   false,
		"note":    note,
		"message": "Note added successfully",
	})
}

func (s *FiberServer) getNote(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid note ID")
	}
	note, err := s.notes.GetByID(c.Context(), noteID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Note not found")
		}
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"note":    note,
		"message": "Note retrieved successfully",
	})
}

func (s *FiberServer) getAllNotes(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	notes, err := s.notes.GetAll(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"notes":   notes,
		"message": "All notes retrieved successfully",
	})
}

func (s *FiberServer) searchNotes(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	query := c.Query("query")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Search query is required")
	}
	notes, err := s.notes.Search(c.Context(), query, userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"notes":   notes,
		"message": "Notes matching the search query retrieved successfully",
	})
}

func (s *FiberServer) editNote(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid note ID")
	}
	patch := dto.NotePatch{}
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if patch.Empty() {
		return fiber.NewError(fiber.StatusBadRequest, "No changes provided")
	}

	// Find then save: two store calls, last write wins.
	note, err := s.notes.GetByID(c.Context(), noteID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Note not found")
		}
		return err
	}
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Tags != nil {
		note.Tags = *patch.Tags
	}
	if patch.IsPinned != nil {
		note.IsPinned = *patch.IsPinned
	}
	if err := s.notes.Update(c.Context(), note, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Note not found")
		}
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"note":    note,
		"message": "Note updated successfully",
	})
}

func (s *FiberServer) setNoteVisibility(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid note ID")
	}
	req := dto.VisibilityUpdate{}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "isPublic is required")
	}
	note, err := s.notes.SetVisibility(c.Context(), noteID, userID, *req.IsPublic)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Note not found or unauthorized")
		}
		return err
	}
	return c.JSON(fiber.Map{
		"error": false,
		"note":  note,
	})
}

func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid note ID")
	}
	if err := s.notes.Delete(c.Context(), noteID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Note not found")
		}
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Note deleted successfully",
	})
}

func (s *FiberServer) publicNotesByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}
	notes, err := s.notes.GetPublicByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"error": false,
		"notes": notes,
	})
}

func (s *FiberServer) allPublicNotes(c *fiber.Ctx) error {
	notes, err := s.notes.GetAllPublic(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"notes":   notes,
		"message": "All notes retrieved successfully",
	})
}
