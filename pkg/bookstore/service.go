package bookstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf/pkg/models"
)

const maxIDAttempts = 5

// Service implements the book operations on top of a Repository.
type Service struct {
	repo Repository
	ids  IDGenerator
	now  func() time.Time
}

type Option func(*Service)

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Service) {
		s.ids = g
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		ids:  NanoIDGenerator{Size: DefaultIDSize},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp returns the current time in UTC at millisecond precision.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Create validates in, stores a new book and returns its id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	now := s.timestamp()
	book := models.Book{InsertedAt: now}
	in.applyTo(&book, now)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := s.ids.NewID()
		if err != nil {
			return "", fmt.Errorf("generating book id: %w", err)
		}
		book.ID = id

		err = s.repo.Insert(ctx, book)
		if errors.Is(err, ErrDuplicateID) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInsertFailed, err)
		}

		if _, err := s.repo.Get(ctx, id); err != nil {
			return "", fmt.Errorf("%w: reading back %s: %w", ErrInsertFailed, id, err)
		}
		return id, nil
	}
	return "", fmt.Errorf("%w: no unused id after %d attempts", ErrInsertFailed, maxIDAttempts)
}

// List returns the books matching f in insertion order.
func (s *Service) List(ctx context.Context, f Filter) ([]models.BookListItem, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.BookListItem, 0, len(books))
	for _, b := range books {
		if f.Match(b) {
			items = append(items, b.ListItem())
		}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.Book, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces the mutable fields of the book with the given id.
// The payload is validated before the id is looked up.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	if err := in.Validate(); err != nil {
		return err
	}

	now := s.timestamp()
	return s.repo.Update(ctx, id, func(b *models.Book) {
		in.applyTo(b, now)
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
