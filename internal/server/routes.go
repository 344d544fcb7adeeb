package server

import "github.com/gofiber/fiber/v2"

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Get("/health", s.healthHandler)

	guard := s.authGuard()

	user := s.App.Group("/user")
	user.Post("/auth/register", s.register)
	user.Post("/auth/cookie/login", s.login)
	user.Post("/auth/logout", s.logout)
	user.Get("/public-profile/:userId", s.publicProfile)
	user.Get("/auth/profile", guard, s.profile)

	note := s.App.Group("/note")
	note.Post("/add-note", guard, s.addNote)
	note.Get("/public-notes/:userId", s.publicNotesByUser)
	note.Get("/get-note/:noteId", guard, s.getNote)
	note.Get("/get-all-notes", guard, s.getAllNotes)
	note.Get("/search-notes", guard, s.searchNotes)
	note.Put("/edit-note/:noteId", guard, s.editNote)
	note.Get("/get-all", s.allPublicNotes)
	note.Put("/note-ispublic/:noteId", guard, s.setNoteVisibility)
	note.Delete("/delete-note/:noteId", guard, s.deleteNote)
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	return c.JSON(s.db.Health())
}
