package person

import (
	"context"
	"io"

	"people/internal/person/demo"
	"people/internal/person/service"
	personstore "people/internal/person/store/person"
)

// Service exposes person record operations.
type Service = service.Service

// Store is the default in-memory person store.
type Store = personstore.InMemory

// NewInMemoryStore constructs an empty ordered in-memory store.
func NewInMemoryStore() *Store {
	return personstore.NewInMemory()
}

// NewService constructs the person service over the given store.
func NewService(store service.PersonStore, opts ...service.Option) *Service {
	return service.New(store, opts...)
}

// RunDemo drives the fixed walkthrough against s and writes the report to w.
func RunDemo(ctx context.Context, s *Service, w io.Writer) error {
	return demo.Run(ctx, s, w)
}
