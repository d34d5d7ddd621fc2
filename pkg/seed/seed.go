// Package seed loads initial books from a YAML file.
//
// The file holds a single "books" list whose entries use the same field
// names as the JSON payload of POST /books:
//
//	books:
//	  - name: Clean Code
//	    author: Robert C. Martin
//	    pageCount: 464
//	    readPage: 0
package seed

import (
	"context"
	"fmt"
	"log"
	"os"

	"bookshelf/pkg/bookstore"

	"gopkg.in/yaml.v3"
)

type file struct {
	Books []bookstore.Input `yaml:"books"`
}

// Parse decodes and validates a seed document.
func Parse(data []byte) ([]bookstore.Input, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}
	for i, in := range f.Books {
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("seed book %d: %w", i+1, err)
		}
	}
	return f.Books, nil
}

func Load(path string) ([]bookstore.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Apply creates every input through the service and returns the new ids in
// file order.
func Apply(ctx context.Context, books *bookstore.Service, inputs []bookstore.Input) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for i, in := range inputs {
		id, err := books.Create(ctx, in)
		if err != nil {
			return ids, fmt.Errorf("seeding book %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	log.Printf("Seeded %d books", len(ids))
	return ids, nil
}
