package entities

import "github.com/google/uuid"

// Rental records a book lent to a costumer. ReturnedAt stays nil until the
// book comes back; it is not checked against BorrowedAt.
type Rental struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CostumerUUID uuid.UUID `gorm:"column:costumer_uuid;type:uuid;not null;index" json:"costumer_uuid"`
	BookUUID     uuid.UUID `gorm:"column:book_uuid;type:uuid;not null;index" json:"book_uuid"`
	BorrowedAt   Date      `gorm:"type:date;not null" json:"borrowed_at"`
	DueDate      Date      `gorm:"type:date;not null" json:"due_date"`
	ReturnedAt   *Date     `gorm:"type:date" json:"returned_at"`
}

func (Rental) TableName() string {
	return "rentals"
}

// RentalView is the display projection of a rental: the foreign keys are
// replaced by the names they point at. It is read-only.
type RentalView struct {
	ID           uuid.UUID  `json:"id"`
	CostumerName PersonName `json:"costumer_name"`
	BookName     BookName   `json:"book_name"`
	BorrowedAt   Date       `json:"borrowed_at"`
	DueDate      Date       `json:"due_date"`
	ReturnedAt   *Date      `json:"returned_at"`
}

type RentalPayload struct {
	CostumerUUID uuid.UUID `json:"costumer_uuid"`
	BookUUID     uuid.UUID `json:"book_uuid"`
	BorrowedAt   Date      `json:"borrowed_at"`
	DueDate      Date      `json:"due_date"`
}

type RentalUpdatePayload struct {
	ID           uuid.UUID `json:"id"`
	CostumerUUID uuid.UUID `json:"costumer_uuid"`
	BookUUID     uuid.UUID `json:"book_uuid"`
	BorrowedAt   Date      `json:"borrowed_at"`
	DueDate      Date      `json:"due_date"`
	ReturnedAt   *Date     `json:"returned_at"`
}

// NewRental mints a fresh identifier; a new rental is never returned yet.
func NewRental(p RentalPayload) (Rental, error) {
	return buildRental(uuid.New(), p.CostumerUUID, p.BookUUID, p.BorrowedAt, p.DueDate, nil)
}

func ParseRental(p RentalUpdatePayload) (Rental, error) {
	return buildRental(p.ID, p.CostumerUUID, p.BookUUID, p.BorrowedAt, p.DueDate, p.ReturnedAt)
}

func buildRental(id, costumer, book uuid.UUID, borrowedAt, dueDate Date, returnedAt *Date) (Rental, error) {
	if borrowedAt.IsZero() {
		return Rental{}, &ValidationError{Field: "borrowed_at", Err: ErrInvalidDate}
	}
	if dueDate.IsZero() {
		return Rental{}, &ValidationError{Field: "due_date", Err: ErrInvalidDate}
	}
	if returnedAt != nil && returnedAt.IsZero() {
		returnedAt = nil
	}
	return Rental{
		ID:           id,
		CostumerUUID: costumer,
		BookUUID:     book,
		BorrowedAt:   borrowedAt,
		DueDate:      dueDate,
		ReturnedAt:   returnedAt,
	}, nil
}
