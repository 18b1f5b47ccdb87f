package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/mrlokans/bookery/internal/entities"
)

// This file consolidates the service interfaces the controllers depend on.
// internal/services provides the implementations.

// EntityService is the create/get/search/update/delete/count contract shared
// by every library resource. P is the creation payload and U the update payload.
type EntityService[E any, P any, U any] interface {
	Create(ctx context.Context, p P) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (E, bool, error)
	Search(ctx context.Context, term string) ([]E, error)
	Update(ctx context.Context, u U) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Name() string
}

// RentalViewer reads the joined rental projection.
type RentalViewer interface {
	GetView(ctx context.Context, id uuid.UUID) (entities.RentalView, bool, error)
	SearchViews(ctx context.Context, term string) ([]entities.RentalView, error)
}

type (
	AuthorService   = EntityService[entities.Author, entities.AuthorPayload, entities.AuthorUpdatePayload]
	BookService     = EntityService[entities.Book, entities.BookPayload, entities.BookUpdatePayload]
	CostumerService = EntityService[entities.Costumer, entities.CostumerPayload, entities.CostumerUpdatePayload]
)

// RentalService is the generic contract plus the joined views.
type RentalService interface {
	EntityService[entities.Rental, entities.RentalPayload, entities.RentalUpdatePayload]
	RentalViewer
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
