package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tribunal/internal/domain"
	"github.com/ahrav/go-tribunal/internal/testutils"
)

// smallCatalog has one mandatory and two optional subjects.
func smallCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.ExamSubject{
		{Code: "VAL", NamePrimary: "Valenciano", NameSecondary: "Valencià", Mandatory: true},
		{Code: "MAT", NamePrimary: "Matemáticas", NameSecondary: "Matemàtiques"},
		{Code: "FIS", NamePrimary: "Física", NameSecondary: "Física"},
	}, []string{"IES SERPIS"}, []string{"B"})
	require.NoError(t, err)
	return catalog
}

func codes(subjects []domain.ExamSubject) []string {
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = s.Code
	}
	return out
}

func TestExamSelector_BuildExamList(t *testing.T) {
	catalog := domain.DefaultCatalog()
	mandatory := catalog.MandatoryCount()

	tests := []struct {
		name  string
		total int
		want  int
	}{
		{name: "below mandatory count", total: 2, want: mandatory},
		{name: "zero", total: 0, want: mandatory},
		{name: "exactly mandatory count", total: mandatory, want: mandatory},
		{name: "padded with optional", total: 8, want: 8},
		{name: "whole catalog", total: len(catalog.Subjects()), want: len(catalog.Subjects())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewExamSelector(testutils.NewRand(3), catalog, DefaultMaxSelectionAttempts)

			exams, err := sel.BuildExamList(tt.total)
			require.NoError(t, err)
			require.Len(t, exams, tt.want)

			got := codes(exams)
			assert.Equal(t, codes(catalog.Mandatory()), got[:mandatory], "mandatory subjects lead the list")
			for _, s := range exams[mandatory:] {
				assert.False(t, s.Mandatory, "padding must be optional: %s", s.Code)
			}

			unique := make(map[string]bool)
			for _, code := range got {
				assert.False(t, unique[code], "duplicate subject %s", code)
				unique[code] = true
			}
		})
	}
}

func TestExamSelector_ChooseOptional(t *testing.T) {
	catalog := smallCatalog(t)

	t.Run("all optional subjects", func(t *testing.T) {
		sel := NewExamSelector(testutils.NewRand(5), catalog, 1000)
		chosen, err := sel.ChooseOptional(2)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"MAT", "FIS"}, codes(chosen))
	})

	t.Run("none", func(t *testing.T) {
		sel := NewExamSelector(testutils.NewRand(5), catalog, 1000)
		chosen, err := sel.ChooseOptional(0)
		require.NoError(t, err)
		assert.Empty(t, chosen)
	})

	t.Run("more than available", func(t *testing.T) {
		sel := NewExamSelector(testutils.NewRand(5), catalog, 1000)
		_, err := sel.ChooseOptional(3)
		assert.ErrorIs(t, err, domain.ErrNotEnoughOptionalSubjects)
	})

	t.Run("negative", func(t *testing.T) {
		sel := NewExamSelector(testutils.NewRand(5), catalog, 1000)
		_, err := sel.ChooseOptional(-1)
		assert.ErrorIs(t, err, domain.ErrNotEnoughOptionalSubjects)
	})

	t.Run("attempt cap", func(t *testing.T) {
		sel := NewExamSelector(testutils.NewRand(5), catalog, 1)
		_, err := sel.ChooseOptional(2)
		assert.ErrorIs(t, err, domain.ErrSelectionExhausted)
	})
}

func TestExamSelector_RetriesCountRejectedDraws(t *testing.T) {
	sel := NewExamSelector(testutils.NewRand(11), smallCatalog(t), 1000)

	for range 50 {
		_, err := sel.ChooseOptional(2)
		require.NoError(t, err)
	}
	// Two draws over two subjects collide half the time.
	assert.Positive(t, sel.Retries())
}

func TestExamSelector_BuildExamListPropagatesShortage(t *testing.T) {
	sel := NewExamSelector(testutils.NewRand(5), smallCatalog(t), 1000)

	_, err := sel.BuildExamList(4)
	assert.ErrorIs(t, err, domain.ErrNotEnoughOptionalSubjects)
}
