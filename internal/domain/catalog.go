package domain

import (
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Catalog is the immutable reference data a run draws from. The mandatory and
// optional partitions are computed once at construction.
type Catalog struct {
	subjects  []ExamSubject
	mandatory []ExamSubject
	optional  []ExamSubject
	centres   []string
	origins   []string
}

// NewCatalog builds a Catalog from the given reference data. It rejects empty
// lists, blank entries, and duplicate subject codes. Names are stored in
// Unicode NFC, the form worksheet cells are written in.
func NewCatalog(subjects []ExamSubject, centres, origins []string) (*Catalog, error) {
	verr := NewValidationError("Catalog")

	if len(subjects) == 0 {
		verr.AddError("at least one subject is required")
	}
	if len(centres) == 0 {
		verr.AddError("at least one centre is required")
	}
	if len(origins) == 0 {
		verr.AddError("at least one origin is required")
	}

	c := &Catalog{
		subjects: make([]ExamSubject, len(subjects)),
		centres:  normalizeAll(centres),
		origins:  normalizeAll(origins),
	}
	for i, s := range subjects {
		s.NamePrimary = norm.NFC.String(s.NamePrimary)
		s.NameSecondary = norm.NFC.String(s.NameSecondary)
		c.subjects[i] = s
	}

	seen := make(map[string]bool, len(subjects))
	for i, s := range c.subjects {
		if s.Code == "" {
			verr.AddErrorf("subject %d: code is required", i)
			continue
		}
		if seen[s.Code] {
			verr.AddErrorf("duplicate subject code: %s", s.Code)
			continue
		}
		seen[s.Code] = true

		if s.Mandatory {
			c.mandatory = append(c.mandatory, s)
		} else {
			c.optional = append(c.optional, s)
		}
	}
	for i, centre := range c.centres {
		if centre == "" {
			verr.AddErrorf("centre %d: name is required", i)
		}
	}
	for i, origin := range c.origins {
		if origin == "" {
			verr.AddErrorf("origin %d: code is required", i)
		}
	}

	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultSubjects(), DefaultCentres(), DefaultOrigins())
	if err != nil {
		panic(err)
	}
	return c
}

// Subjects returns every subject in catalog order.
func (c *Catalog) Subjects() []ExamSubject { return slices.Clone(c.subjects) }

// Mandatory returns the subjects every student sits, in catalog order.
func (c *Catalog) Mandatory() []ExamSubject { return slices.Clone(c.mandatory) }

// Optional returns the subjects used to pad a student's exam count.
func (c *Catalog) Optional() []ExamSubject { return slices.Clone(c.optional) }

// Centres returns the issuing centre names.
func (c *Catalog) Centres() []string { return slices.Clone(c.centres) }

// Origins returns the origin flag codes.
func (c *Catalog) Origins() []string { return slices.Clone(c.origins) }

// MandatoryCount returns the number of mandatory subjects.
func (c *Catalog) MandatoryCount() int { return len(c.mandatory) }

// OptionalCount returns the number of optional subjects.
func (c *Catalog) OptionalCount() int { return len(c.optional) }

// Subject looks up a subject by its primary name, in any normalization form.
func (c *Catalog) Subject(namePrimary string) (ExamSubject, bool) {
	namePrimary = norm.NFC.String(namePrimary)
	i := slices.IndexFunc(c.subjects, func(s ExamSubject) bool {
		return s.NamePrimary == namePrimary
	})
	if i < 0 {
		return ExamSubject{}, false
	}
	return c.subjects[i], true
}

func normalizeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = norm.NFC.String(v)
	}
	return out
}
