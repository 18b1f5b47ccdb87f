package http

import "github.com/rs/zerolog"

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	Authors   AuthorService
	Books     BookService
	Costumers CostumerService
	Rentals   RentalService

	// Database is pinged by the health endpoint; nil reports "not configured".
	Database Pinger

	Logger  zerolog.Logger
	Version string
}
