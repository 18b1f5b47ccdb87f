package entities

import "github.com/google/uuid"

type Author struct {
	ID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name PersonName `gorm:"type:varchar(128);not null" json:"name"`
	Born Date       `gorm:"type:date;not null" json:"born"`
}

func (Author) TableName() string {
	return "authors"
}

// AuthorPayload carries the caller-supplied fields for a new author.
type AuthorPayload struct {
	Name string `json:"name"`
	Born Date   `json:"born"`
}

// AuthorUpdatePayload carries a full replacement of an existing author.
type AuthorUpdatePayload struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Born Date      `json:"born"`
}

// NewAuthor validates p and mints a fresh identifier.
func NewAuthor(p AuthorPayload) (Author, error) {
	return buildAuthor(uuid.New(), p.Name, p.Born)
}

// ParseAuthor validates an update payload, keeping the caller's identifier.
func ParseAuthor(p AuthorUpdatePayload) (Author, error) {
	return buildAuthor(p.ID, p.Name, p.Born)
}

func buildAuthor(id uuid.UUID, rawName string, born Date) (Author, error) {
	name, err := NewPersonName(rawName)
	if err != nil {
		return Author{}, withField("name", err)
	}
	if born.IsZero() {
		return Author{}, &ValidationError{Field: "born", Err: ErrInvalidDate}
	}
	return Author{ID: id, Name: name, Born: born}, nil
}
