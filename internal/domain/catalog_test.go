package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Len(t, c.Subjects(), 24)
	assert.Equal(t, 4, c.MandatoryCount())
	assert.Equal(t, 20, c.OptionalCount())
	assert.Len(t, c.Centres(), 7)
	assert.Equal(t, []string{"B", "F"}, c.Origins())

	var mandatory []string
	for _, s := range c.Mandatory() {
		mandatory = append(mandatory, s.Code)
		assert.Equal(t, KindMandatory, s.KindLabel())
	}
	assert.Equal(t, []string{"ING", "CAS", "HES", "VAL"}, mandatory)

	for _, s := range c.Optional() {
		assert.False(t, s.Mandatory, "%s should be optional", s.Code)
		assert.Equal(t, KindOptional, s.KindLabel())
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := DefaultCatalog()

	subjects := c.Subjects()
	subjects[0].NamePrimary = "changed"
	centres := c.Centres()
	centres[0] = "changed"

	assert.Equal(t, "Alemán", c.Subjects()[0].NamePrimary)
	assert.Equal(t, "COL. CALASANCIO", c.Centres()[0])
}

func TestCatalog_Subject(t *testing.T) {
	c := DefaultCatalog()

	s, ok := c.Subject("Historia de España")
	require.True(t, ok)
	assert.Equal(t, "HES", s.Code)
	assert.True(t, s.Mandatory)

	_, ok = c.Subject("Astronomía")
	assert.False(t, ok)
}

func TestNewCatalog_NormalizesToNFC(t *testing.T) {
	// Decomposed forms: "e" and "a" followed by combining accents.
	c, err := NewCatalog([]ExamSubject{
		{Code: "ING", NamePrimary: "Ingle\u0301s", NameSecondary: "Angle\u0301s", Mandatory: true},
		{Code: "CAS", NamePrimary: "Castellano", NameSecondary: "Castella\u0300"},
	}, []string{"IES PLAYA DE SAN JUA\u0301N"}, []string{"B"})
	require.NoError(t, err)

	ing := c.Mandatory()[0]
	assert.Equal(t, "Ingl\u00e9s", ing.NamePrimary)
	assert.Equal(t, "Angl\u00e9s", ing.NameSecondary)
	assert.Equal(t, "Castell\u00e0", c.Optional()[0].NameSecondary)
	assert.Equal(t, []string{"IES PLAYA DE SAN JU\u00c1N"}, c.Centres())

	for _, name := range []string{"Ingl\u00e9s", "Ingle\u0301s"} {
		s, ok := c.Subject(name)
		require.True(t, ok, "lookup of %q", name)
		assert.Equal(t, "ING", s.Code)
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	subject := ExamSubject{Code: "ING", NamePrimary: "Inglés", NameSecondary: "Anglés", Mandatory: true}

	tests := []struct {
		name     string
		subjects []ExamSubject
		centres  []string
		origins  []string
		wantErrs []string
	}{
		{
			name:     "empty lists",
			wantErrs: []string{"at least one subject is required", "at least one centre is required", "at least one origin is required"},
		},
		{
			name:     "duplicate code",
			subjects: []ExamSubject{subject, subject},
			centres:  []string{"IES LA FOIA"},
			origins:  []string{"B"},
			wantErrs: []string{"duplicate subject code: ING"},
		},
		{
			name:     "blank entries",
			subjects: []ExamSubject{{NamePrimary: "Sin código"}},
			centres:  []string{""},
			origins:  []string{""},
			wantErrs: []string{"subject 0: code is required", "centre 0: name is required", "origin 0: code is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.subjects, tt.centres, tt.origins)
			require.Error(t, err)
			assert.Nil(t, c)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErrs, verr.Errors)
		})
	}
}
