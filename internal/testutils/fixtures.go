package testutils

import (
	"math/rand"

	"github.com/ahrav/go-tribunal/internal/ports"
)

// FixedNameSource implements NameSource with a deterministic rotation over
// a short list of names.
type FixedNameSource struct {
	First []string
	Last  []string
	calls int
}

var _ ports.NameSource = (*FixedNameSource)(nil)

// NewFixedNameSource returns a name source cycling through a few Spanish
// names.
func NewFixedNameSource() *FixedNameSource {
	return &FixedNameSource{
		First: []string{"Lucía", "Hugo", "Martina", "Pablo"},
		Last:  []string{"García", "Muñoz", "Navarro"},
	}
}

// Name implements ports.NameSource.
func (f *FixedNameSource) Name() (string, string) {
	first := f.First[f.calls%len(f.First)]
	last := f.Last[f.calls%len(f.Last)]
	f.calls++
	return first, last
}

// Locale implements ports.NameSource.
func (f *FixedNameSource) Locale() string { return "es-ES" }

// Calls returns how many names were handed out.
func (f *FixedNameSource) Calls() int { return f.calls }

// NewRand returns a deterministic random source for tests.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
