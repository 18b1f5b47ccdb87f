// Package database provides the data access layer for the library records.
//
// # Architecture
//
// The database layer is organized into one sub-package per table:
//
//	database/
//	├── database.go      # Pool construction (postgres via pgx, sqlite), migrations
//	├── records.go       # Table[E]: keyed CRUD shared by every repository
//	├── errors.go        # StoreError and driver error classification
//	├── logger.go        # gorm logger backed by zerolog
//	├── authors/         # authors table
//	├── books/           # books table, checks the referenced author
//	├── costumers/       # costumers table
//	└── rentals/         # rentals table, joined RentalView queries
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database, logger)
//	authorsRepo := authors.NewRepository(db.DB)
//	id, err := authorsRepo.Insert(ctx, author)
//
// # Errors
//
// Every failing repository call returns a *StoreError whose Kind is one of
// ErrNotFound, ErrConstraint, ErrCorrupt or ErrBackend. Lookups of a missing
// row are not errors: they return ok == false.
//
// Rows are hydrated through the entities value types, which re-validate on
// Scan. A row that no longer validates surfaces as ErrCorrupt.
//
// # Referential integrity
//
// No foreign keys are declared. Books and rentals check that the rows they
// reference exist before insert and update; deleting a referenced row is
// allowed and leaves the referencing rows in place.
package database
