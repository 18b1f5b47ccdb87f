// Package interfaces holds the compile-time checks that tie the layers of
// bookery together.
//
// # Layers
//
//   - services.Store / services.RentalStore: persistence for one table,
//     implemented by the repositories under internal/database.
//   - http.EntityService / http.RentalService: what the controllers call,
//     implemented by internal/services.
//   - http.Pinger: database reachability for /health, implemented by
//     database.Database.
//
// # Adding a New Resource
//
//  1. Add the entity, its payloads and Parse constructors to internal/entities.
//
//  2. Create a repository sub-package under internal/database embedding
//     database.Table and register the model in database.Migrate.
//
//  3. Add a service constructor in internal/services/library.go.
//
//  4. Register a ResourceController for it in internal/http/router.go.
//
//  5. Add compile-time checks to checks.go:
//
//     var _ services.Store[entities.Shelf] = (*shelves.Repository)(nil)
package interfaces
