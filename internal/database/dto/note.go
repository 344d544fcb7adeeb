package dto

type CreateNote struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Tags     []string `json:"tags"`
	IsPinned bool     `json:"isPinned"`
}

// NotePatch carries a partial update. Pointer fields distinguish
// "set to zero value" from "not provided".
type NotePatch struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
}

// Empty reports whether the patch carries no recognized field.
func (p *NotePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil && p.IsPinned == nil
}

type VisibilityUpdate struct {
	IsPublic *bool `json:"isPublic" validate:"required"`
}
