package bookstore

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bookshelf/pkg/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Input is the client-supplied part of a book. Name is a pointer so that an
// absent name can be told apart from other values.
type Input struct {
	Name      *string `json:"name" yaml:"name"`
	Year      int     `json:"year" yaml:"year"`
	Author    string  `json:"author" yaml:"author"`
	Summary   string  `json:"summary" yaml:"summary"`
	Publisher string  `json:"publisher" yaml:"publisher"`
	PageCount int     `json:"pageCount" yaml:"pageCount" validate:"gte=0"`
	ReadPage  int     `json:"readPage" yaml:"readPage" validate:"ltefield=PageCount,gte=0"`
	Reading   bool    `json:"reading" yaml:"reading"`
}

// Validate checks the name first, then the page counts. The first failing
// rule wins so callers always see the same error for the same payload.
func (in Input) Validate() error {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return ErrMissingName
	}

	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating book: %w", err)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "ltefield" {
			return ErrReadPageExceedsPageCount
		}
	}
	return ErrNegativePages
}

// applyTo copies the mutable fields onto b and derives Finished.
// ID and InsertedAt are left untouched.
func (in Input) applyTo(b *models.Book, now time.Time) {
	if in.Name != nil {
		b.Name = *in.Name
	}
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.ReadPage == in.PageCount
	b.UpdatedAt = now
}
