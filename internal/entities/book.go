package entities

import "github.com/google/uuid"

type Book struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       BookName   `gorm:"type:varchar(64);not null" json:"name"`
	AuthorUUID uuid.UUID  `gorm:"column:author_uuid;type:uuid;not null;index" json:"author_uuid"`
	Editor     EditorName `gorm:"type:varchar(64);not null" json:"editor"`
	Release    Date       `gorm:"type:date;not null" json:"release"`
}

func (Book) TableName() string {
	return "books"
}

type BookPayload struct {
	Name       string    `json:"name"`
	AuthorUUID uuid.UUID `json:"author_uuid"`
	Editor     string    `json:"editor"`
	Release    Date      `json:"release"`
}

type BookUpdatePayload struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	AuthorUUID uuid.UUID `json:"author_uuid"`
	Editor     string    `json:"editor"`
	Release    Date      `json:"release"`
}

// NewBook validates p and mints a fresh identifier. Whether the author exists
// is checked by the store, not here.
func NewBook(p BookPayload) (Book, error) {
	return buildBook(uuid.New(), p.Name, p.AuthorUUID, p.Editor, p.Release)
}

func ParseBook(p BookUpdatePayload) (Book, error) {
	return buildBook(p.ID, p.Name, p.AuthorUUID, p.Editor, p.Release)
}

func buildBook(id uuid.UUID, rawName string, author uuid.UUID, rawEditor string, release Date) (Book, error) {
	name, err := NewBookName(rawName)
	if err != nil {
		return Book{}, withField("name", err)
	}
	editor, err := NewEditorName(rawEditor)
	if err != nil {
		return Book{}, withField("editor", err)
	}
	if release.IsZero() {
		return Book{}, &ValidationError{Field: "release", Err: ErrInvalidDate}
	}
	return Book{ID: id, Name: name, AuthorUUID: author, Editor: editor, Release: release}, nil
}
