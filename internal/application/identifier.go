package application

import (
	"fmt"
	"math/rand"

	"github.com/ahrav/go-tribunal/internal/domain"
)

// IdentifierGenerator issues synthetic NIFs that are unique for its lifetime.
// It owns the issued set; create one per run. Not safe for concurrent use.
type IdentifierGenerator struct {
	rng         *rand.Rand
	issued      map[string]struct{}
	maxAttempts int
	collisions  int
}

// NewIdentifierGenerator returns a generator drawing digits from rng and
// retrying at most maxAttempts times per identifier on collision.
func NewIdentifierGenerator(rng *rand.Rand, maxAttempts int) *IdentifierGenerator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &IdentifierGenerator{
		rng:         rng,
		issued:      make(map[string]struct{}),
		maxAttempts: maxAttempts,
	}
}

// Generate returns a NIF not issued before by this generator: eight uniform
// random digits followed by their control letter.
func (g *IdentifierGenerator) Generate() (string, error) {
	var digits [domain.NIFDigits]byte
	for range g.maxAttempts {
		for i := range digits {
			digits[i] = byte('0' + g.rng.Intn(10))
		}
		letter, err := domain.ControlLetter(string(digits[:]))
		if err != nil {
			return "", err
		}
		nif := string(digits[:]) + string(letter)
		if _, dup := g.issued[nif]; dup {
			g.collisions++
			continue
		}
		g.issued[nif] = struct{}{}
		return nif, nil
	}
	return "", fmt.Errorf("%w after %d attempts", domain.ErrIdentifierSpaceExhausted, g.maxAttempts)
}

// Issued returns how many identifiers have been handed out.
func (g *IdentifierGenerator) Issued() int { return len(g.issued) }

// Collisions returns how many draws were rejected as duplicates.
func (g *IdentifierGenerator) Collisions() int { return g.collisions }
