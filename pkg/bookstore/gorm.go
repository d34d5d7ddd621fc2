package bookstore

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/pkg/models"

	"gorm.io/gorm"
)

// GormRepository stores books in a SQL table. Rows are ordered by their
// auto-increment sequence, which preserves insertion order.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Insert(ctx context.Context, book models.Book) error {
	book.Seq = 0
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Book{}).Where("id = ?", book.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("checking book id: %w", err)
		}
		if count > 0 {
			return ErrDuplicateID
		}
		if err := tx.Create(&book).Error; err != nil {
			return fmt.Errorf("creating book: %w", err)
		}
		return nil
	})
}

func (r *GormRepository) List(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).Order("seq").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return books, nil
}

func (r *GormRepository) Get(ctx context.Context, id string) (models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("getting book: %w", err)
	}
	return book, nil
}

func (r *GormRepository) Update(ctx context.Context, id string, apply func(*models.Book)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		err := tx.Where("id = ?", id).First(&book).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("getting book: %w", err)
		}

		seq := book.Seq
		apply(&book)
		book.Seq = seq
		if err := tx.Save(&book).Error; err != nil {
			return fmt.Errorf("saving book: %w", err)
		}
		return nil
	})
}

func (r *GormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Book{})
	if result.Error != nil {
		return fmt.Errorf("deleting book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
