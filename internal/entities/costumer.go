package entities

import "github.com/google/uuid"

// Costumer is a library patron. The spelling matches the persisted table and
// the API routes.
type Costumer struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name     PersonName     `gorm:"type:varchar(128);not null" json:"name"`
	Document PersonDocument `gorm:"type:char(11);not null" json:"document"`
	Born     Date           `gorm:"type:date;not null" json:"born"`
}

func (Costumer) TableName() string {
	return "costumers"
}

type CostumerPayload struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Born     Date   `json:"born"`
}

type CostumerUpdatePayload struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Document string    `json:"document"`
	Born     Date      `json:"born"`
}

func NewCostumer(p CostumerPayload) (Costumer, error) {
	return buildCostumer(uuid.New(), p.Name, p.Document, p.Born)
}

func ParseCostumer(p CostumerUpdatePayload) (Costumer, error) {
	return buildCostumer(p.ID, p.Name, p.Document, p.Born)
}

func buildCostumer(id uuid.UUID, rawName, rawDocument string, born Date) (Costumer, error) {
	name, err := NewPersonName(rawName)
	if err != nil {
		return Costumer{}, withField("name", err)
	}
	document, err := NewPersonDocument(rawDocument)
	if err != nil {
		return Costumer{}, withField("document", err)
	}
	if born.IsZero() {
		return Costumer{}, &ValidationError{Field: "born", Err: ErrInvalidDate}
	}
	return Costumer{ID: id, Name: name, Document: document, Born: born}, nil
}
