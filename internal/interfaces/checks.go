package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookery/internal/database"
	"github.com/mrlokans/bookery/internal/database/authors"
	"github.com/mrlokans/bookery/internal/database/books"
	"github.com/mrlokans/bookery/internal/database/costumers"
	"github.com/mrlokans/bookery/internal/database/rentals"
	"github.com/mrlokans/bookery/internal/entities"
	"github.com/mrlokans/bookery/internal/http"
	"github.com/mrlokans/bookery/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.Store[entities.Author] = (*authors.Repository)(nil)
var _ services.Store[entities.Book] = (*books.Repository)(nil)
var _ services.Store[entities.Costumer] = (*costumers.Repository)(nil)
var _ services.RentalStore = (*rentals.Repository)(nil)

// =============================================================================
// Services consumed by the HTTP layer
// =============================================================================

var _ http.AuthorService = (*services.AuthorService)(nil)
var _ http.BookService = (*services.BookService)(nil)
var _ http.CostumerService = (*services.CostumerService)(nil)
var _ http.RentalService = (*services.RentalService)(nil)

// =============================================================================
// Health
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)
