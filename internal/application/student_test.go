package application

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tribunal/internal/domain"
	"github.com/ahrav/go-tribunal/internal/testutils"
)

func newTestBuilder(t *testing.T, seed int64, catalog *domain.Catalog, idAttempts int) (*StudentBuilder, *testutils.FixedNameSource) {
	t.Helper()
	rng := testutils.NewRand(seed)
	names := testutils.NewFixedNameSource()
	b := NewStudentBuilder(
		rng,
		names,
		NewIdentifierGenerator(rng, idAttempts),
		NewExamSelector(rng, catalog, DefaultMaxSelectionAttempts),
		catalog,
		domain.DefaultCourtNumber,
	)
	return b, names
}

func TestStudentBuilder_Build(t *testing.T) {
	catalog := domain.DefaultCatalog()
	b, names := newTestBuilder(t, 21, catalog, DefaultMaxIdentifierAttempts)

	rows, err := b.Build(7)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, 1, names.Calls(), "one name per student")
	assert.Equal(t, 1, b.Built())

	first := rows[0]
	assert.NoError(t, domain.ValidateNIF(first.Identifier))
	assert.Contains(t, catalog.Centres(), first.Centre)
	assert.Contains(t, catalog.Origins(), first.Origin)

	mandatory := 0
	for _, row := range rows {
		assert.Equal(t, domain.DefaultCourtNumber, row.Court)
		assert.Equal(t, first.Identifier, row.Identifier)
		assert.Equal(t, first.FirstName, row.FirstName)
		assert.Equal(t, first.LastName, row.LastName)
		assert.Equal(t, first.Origin, row.Origin)
		assert.Equal(t, first.Centre, row.Centre)

		subject, ok := catalog.Subject(row.SubjectPrimary)
		require.True(t, ok, "unknown subject %q", row.SubjectPrimary)
		assert.Equal(t, subject.NameSecondary, row.SubjectSecondary)
		assert.Equal(t, subject.KindLabel(), row.SubjectKind)
		if subject.Mandatory {
			mandatory++
		}
	}
	assert.Equal(t, catalog.MandatoryCount(), mandatory)

	assert.True(t, slices.IsSortedFunc(rows, func(a, b domain.StudentExamRow) int {
		return strings.Compare(a.SubjectPrimary, b.SubjectPrimary)
	}), "rows must be sorted by primary subject name")
}

func TestStudentBuilder_MandatoryFloor(t *testing.T) {
	catalog := domain.DefaultCatalog()
	b, _ := newTestBuilder(t, 4, catalog, DefaultMaxIdentifierAttempts)

	rows, err := b.Build(1)
	require.NoError(t, err)
	require.Len(t, rows, catalog.MandatoryCount())
	for _, row := range rows {
		assert.Equal(t, domain.KindMandatory, row.SubjectKind)
	}
}

func TestStudentBuilder_SortIsByteWise(t *testing.T) {
	catalog, err := domain.NewCatalog([]domain.ExamSubject{
		{Code: "FIS", NamePrimary: "Física", NameSecondary: "Física", Mandatory: true},
		{Code: "FRA", NamePrimary: "Francés", NameSecondary: "Francès", Mandatory: true},
		{Code: "ALE", NamePrimary: "Alemán", NameSecondary: "Alemany", Mandatory: true},
	}, []string{"IES SERPIS"}, []string{"F"})
	require.NoError(t, err)
	b, _ := newTestBuilder(t, 1, catalog, 10)

	rows, err := b.Build(3)
	require.NoError(t, err)

	got := []string{rows[0].SubjectPrimary, rows[1].SubjectPrimary, rows[2].SubjectPrimary}
	// "r" (0x72) sorts before the UTF-8 lead byte of "í" (0xC3).
	assert.Equal(t, []string{"Alemán", "Francés", "Física"}, got)
}

func TestStudentBuilder_DistinctStudents(t *testing.T) {
	b, _ := newTestBuilder(t, 8, domain.DefaultCatalog(), DefaultMaxIdentifierAttempts)

	ids := make(map[string]bool)
	for range 100 {
		rows, err := b.Build(5)
		require.NoError(t, err)
		require.False(t, ids[rows[0].Identifier])
		ids[rows[0].Identifier] = true
	}
	assert.Equal(t, 100, b.Built())
}

func TestStudentBuilder_Errors(t *testing.T) {
	t.Run("identifier", func(t *testing.T) {
		b, _ := newTestBuilder(t, 7, domain.DefaultCatalog(), 1)
		ref := NewIdentifierGenerator(testutils.NewRand(7), 1)
		taken, err := ref.Generate()
		require.NoError(t, err)
		b.ids.issued[taken] = struct{}{}

		_, err = b.Build(5)
		require.ErrorIs(t, err, domain.ErrIdentifierSpaceExhausted)

		var gerr *domain.GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, StepIdentifier, gerr.Step)
		assert.Equal(t, 0, gerr.Student)
		assert.Equal(t, 0, b.Built())
	})

	t.Run("exams", func(t *testing.T) {
		b, _ := newTestBuilder(t, 7, smallCatalog(t), 10)

		_, err := b.Build(9)
		require.ErrorIs(t, err, domain.ErrNotEnoughOptionalSubjects)

		var gerr *domain.GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, StepExams, gerr.Step)
	})
}
