package bookstore

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultIDSize = 16
)

// IDGenerator issues identifiers for new books.
type IDGenerator interface {
	NewID() (string, error)
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() (string, error)

func (f IDGeneratorFunc) NewID() (string, error) {
	return f()
}

// NanoIDGenerator returns random alphanumeric strings of Size characters.
type NanoIDGenerator struct {
	Size int
}

func (g NanoIDGenerator) NewID() (string, error) {
	size := g.Size
	if size <= 0 {
		size = DefaultIDSize
	}
	return gonanoid.Generate(alphanumeric, size)
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	return uuid.NewString(), nil
}

// NewIDGenerator resolves a generator by its configuration name.
func NewIDGenerator(name string) (IDGenerator, error) {
	switch name {
	case "", "nanoid":
		return NanoIDGenerator{Size: DefaultIDSize}, nil
	case "uuid":
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown id generator %q", name)
	}
}
