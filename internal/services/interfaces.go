package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mrlokans/bookery/internal/entities"
)

// Store is the persistence a Service needs for one table. The repositories
// under internal/database implement it.
type Store[E any] interface {
	Insert(ctx context.Context, e E) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (E, bool, error)
	GetID(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error)
	Search(ctx context.Context, term string) ([]E, error)
	Update(ctx context.Context, e E) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
}

// RentalViewReader reads the joined rental projection.
type RentalViewReader interface {
	GetView(ctx context.Context, id uuid.UUID) (entities.RentalView, bool, error)
	SearchViews(ctx context.Context, term string) ([]entities.RentalView, error)
}

// RentalStore is everything the rental service needs from its repository.
type RentalStore interface {
	Store[entities.Rental]
	RentalViewReader
}
