package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bookshelf/pkg/bookstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
books:
  - name: Clean Code
    year: 2008
    author: Robert C. Martin
    publisher: Prentice Hall
    pageCount: 464
    readPage: 464
  - name: The Go Programming Language
    year: 2015
    author: Alan A. A. Donovan
    publisher: Addison-Wesley
    pageCount: 380
    readPage: 120
    reading: true
`

func TestParse(t *testing.T) {
	inputs, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	require.NotNil(t, inputs[0].Name)
	assert.Equal(t, "Clean Code", *inputs[0].Name)
	assert.Equal(t, 464, inputs[0].PageCount)
	assert.True(t, inputs[1].Reading)
	assert.Equal(t, 120, inputs[1].ReadPage)
}

func TestParseRejectsInvalidBook(t *testing.T) {
	_, err := Parse([]byte("books:\n  - author: Nobody\n"))
	assert.ErrorIs(t, err, bookstore.ErrMissingName)

	_, err = Parse([]byte("books:\n  - name: Short\n    pageCount: 5\n    readPage: 6\n"))
	assert.ErrorIs(t, err, bookstore.ErrReadPageExceedsPageCount)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("books: [unterminated"))
	assert.Error(t, err)
}

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	inputs, err := Load(path)
	require.NoError(t, err)

	ctx := context.Background()
	books := bookstore.New(bookstore.NewMemoryRepository())
	ids, err := Apply(ctx, books, inputs)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	book, err := books.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Clean Code", book.Name)
	assert.True(t, book.Finished)

	items, err := books.List(ctx, bookstore.Filter{Reading: "1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ids[1], items[0].ID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
