package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the existence probe before an update or
// delete finds no row. A row that disappears between the probe and the
// statement is reported by the store instead.
var ErrNotFound = errors.New("not found")

// Service turns untrusted payloads into entities and drives the store.
// P is the creation payload and U the update payload of entity E.
type Service[E any, P any, U any] struct {
	name   string
	store  Store[E]
	create func(P) (E, error)
	parse  func(U) (E, error)
	idOf   func(U) uuid.UUID
}

func newService[E any, P any, U any](
	name string,
	store Store[E],
	create func(P) (E, error),
	parse func(U) (E, error),
	idOf func(U) uuid.UUID,
) *Service[E, P, U] {
	return &Service[E, P, U]{name: name, store: store, create: create, parse: parse, idOf: idOf}
}

// Create validates p and inserts the new entity. Validation failures are
// returned unchanged as *entities.ValidationError.
func (s *Service[E, P, U]) Create(ctx context.Context, p P) (uuid.UUID, error) {
	e, err := s.create(p)
	if err != nil {
		return uuid.Nil, err
	}
	return s.store.Insert(ctx, e)
}

func (s *Service[E, P, U]) Get(ctx context.Context, id uuid.UUID) (E, bool, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service[E, P, U]) Search(ctx context.Context, term string) ([]E, error) {
	return s.store.Search(ctx, term)
}

// Update probes for the id first; a miss is ErrNotFound and nothing is
// validated or written.
func (s *Service[E, P, U]) Update(ctx context.Context, u U) (uuid.UUID, error) {
	id := s.idOf(u)
	if err := s.probe(ctx, id); err != nil {
		return uuid.Nil, err
	}
	e, err := s.parse(u)
	if err != nil {
		return uuid.Nil, err
	}
	return s.store.Update(ctx, e)
}

func (s *Service[E, P, U]) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.probe(ctx, id); err != nil {
		return uuid.Nil, err
	}
	return s.store.Delete(ctx, id)
}

func (s *Service[E, P, U]) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Name is the entity name used in messages, e.g. "Author".
func (s *Service[E, P, U]) Name() string {
	return s.name
}

// Exists reports whether a row with id is stored, without loading it.
func (s *Service[E, P, U]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok, err := s.store.GetID(ctx, id)
	return ok, err
}

func (s *Service[E, P, U]) probe(ctx context.Context, id uuid.UUID) error {
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", s.name, id, ErrNotFound)
	}
	return nil
}
