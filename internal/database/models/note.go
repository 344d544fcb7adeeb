package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	IsPublic  bool      `json:"isPublic"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdOn"`
	UpdatedAt time.Time `json:"updatedAt"`
}
