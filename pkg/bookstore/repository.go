package bookstore

import (
	"context"

	"bookshelf/pkg/models"
)

// Repository stores book records in insertion order.
//
// Implementations must make Insert, Update and Delete atomic with respect to
// each other: the id lookup and the mutation happen under one lock or
// transaction.
type Repository interface {
	// Insert appends book. It returns ErrDuplicateID if book.ID is taken.
	Insert(ctx context.Context, book models.Book) error
	// List returns every book in insertion order.
	List(ctx context.Context) ([]models.Book, error)
	// Get returns the book with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (models.Book, error)
	// Update calls apply on the stored book and saves the result.
	// It returns ErrNotFound if id is unknown.
	Update(ctx context.Context, id string, apply func(*models.Book)) error
	// Delete removes the book with the given id or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
