package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mrlokans/bookery/internal/entities"
)

type (
	AuthorService   = Service[entities.Author, entities.AuthorPayload, entities.AuthorUpdatePayload]
	BookService     = Service[entities.Book, entities.BookPayload, entities.BookUpdatePayload]
	CostumerService = Service[entities.Costumer, entities.CostumerPayload, entities.CostumerUpdatePayload]
)

func NewAuthorService(store Store[entities.Author]) *AuthorService {
	return newService("Author", store, entities.NewAuthor, entities.ParseAuthor,
		func(p entities.AuthorUpdatePayload) uuid.UUID { return p.ID })
}

func NewBookService(store Store[entities.Book]) *BookService {
	return newService("Book", store, entities.NewBook, entities.ParseBook,
		func(p entities.BookUpdatePayload) uuid.UUID { return p.ID })
}

func NewCostumerService(store Store[entities.Costumer]) *CostumerService {
	return newService("Costumer", store, entities.NewCostumer, entities.ParseCostumer,
		func(p entities.CostumerUpdatePayload) uuid.UUID { return p.ID })
}

// RentalService adds the joined views to the generic rental operations.
type RentalService struct {
	*Service[entities.Rental, entities.RentalPayload, entities.RentalUpdatePayload]
	views RentalViewReader
}

func NewRentalService(store RentalStore) *RentalService {
	return &RentalService{
		Service: newService("Rental", Store[entities.Rental](store), entities.NewRental, entities.ParseRental,
			func(p entities.RentalUpdatePayload) uuid.UUID { return p.ID }),
		views: store,
	}
}

// GetView returns the rental with costumer and book names. It is absent when
// either referenced row has been deleted.
func (s *RentalService) GetView(ctx context.Context, id uuid.UUID) (entities.RentalView, bool, error) {
	return s.views.GetView(ctx, id)
}

func (s *RentalService) SearchViews(ctx context.Context, term string) ([]entities.RentalView, error) {
	return s.views.SearchViews(ctx, term)
}
