package id

import "github.com/google/uuid"

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// Short returns the first block of a generated id, used in file names.
func Short(value string) string {
	if len(value) > 8 {
		return value[:8]
	}
	return value
}
