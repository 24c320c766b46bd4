// Package names provides locale-aware fake personal names for generated
// students.
package names

import (
	"fmt"
	"math/rand"

	"golang.org/x/text/language"

	"github.com/ahrav/go-tribunal/internal/ports"
)

var _ ports.NameSource = (*Source)(nil)

// corpora lists the supported corpora; the first one is the default.
var corpora = []Corpus{Spanish, Valencian}

var matcher = language.NewMatcher(tags(corpora))

// Source draws names uniformly from one corpus. Not safe for concurrent use.
type Source struct {
	rng    *rand.Rand
	corpus Corpus
}

// NewSource returns a Source for the corpus best matching locale, a BCP 47
// tag. Regional variants resolve to their language ("es-MX" uses the es-ES
// corpus); unrelated languages return ports.ErrUnsupportedLocale.
func NewSource(locale string, rng *rand.Rand) (*Source, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ports.ErrUnsupportedLocale, locale, err)
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("%w: %q", ports.ErrUnsupportedLocale, locale)
	}

	return NewCorpusSource(corpora[idx], rng), nil
}

// NewCorpusSource returns a Source over an explicit corpus.
func NewCorpusSource(corpus Corpus, rng *rand.Rand) *Source {
	return &Source{rng: rng, corpus: corpus}
}

// Name returns a random first name and last name.
func (s *Source) Name() (string, string) {
	first := s.corpus.FirstNames[s.rng.Intn(len(s.corpus.FirstNames))]
	last := s.corpus.LastNames[s.rng.Intn(len(s.corpus.LastNames))]
	return first, last
}

// Locale returns the tag of the corpus in use.
func (s *Source) Locale() string { return s.corpus.Tag.String() }

func tags(cs []Corpus) []language.Tag {
	out := make([]language.Tag, len(cs))
	for i, c := range cs {
		out[i] = c.Tag
	}
	return out
}
