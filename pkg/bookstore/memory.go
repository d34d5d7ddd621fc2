package bookstore

import (
	"context"
	"sync"

	"bookshelf/pkg/models"
)

// MemoryRepository keeps books in a slice for the lifetime of the process.
type MemoryRepository struct {
	items []models.Book
	mu    sync.Mutex
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make([]models.Book, 0),
	}
}

func (r *MemoryRepository) Insert(_ context.Context, book models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(book.ID) >= 0 {
		return ErrDuplicateID
	}
	r.items = append(r.items, book)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Book, len(r.items))
	copy(result, r.items)
	return result, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Book{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, apply func(*models.Book)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	book := r.items[i]
	apply(&book)
	r.items[i] = book
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *MemoryRepository) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// indexOf must be called with r.mu held.
func (r *MemoryRepository) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
