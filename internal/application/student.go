package application

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/ahrav/go-tribunal/internal/domain"
	"github.com/ahrav/go-tribunal/internal/ports"
)

// Steps reported in domain.GenerationError.
const (
	StepIdentifier = "identifier"
	StepExams      = "exams"
)

// StudentBuilder turns one synthetic student into worksheet rows.
type StudentBuilder struct {
	rng      *rand.Rand
	names    ports.NameSource
	ids      *IdentifierGenerator
	selector *ExamSelector
	centres  []string
	origins  []string
	court    int
	built    int
}

// NewStudentBuilder wires a builder to its collaborators. The catalog
// supplies centres and origins; subjects come through selector.
func NewStudentBuilder(
	rng *rand.Rand,
	names ports.NameSource,
	ids *IdentifierGenerator,
	selector *ExamSelector,
	catalog *domain.Catalog,
	court int,
) *StudentBuilder {
	return &StudentBuilder{
		rng:      rng,
		names:    names,
		ids:      ids,
		selector: selector,
		centres:  catalog.Centres(),
		origins:  catalog.Origins(),
		court:    court,
	}
}

// Build generates one student with totalExams requested exams and returns
// one row per exam, sorted by primary subject name. Every row shares the
// student's name, identifier, origin, and centre.
func (b *StudentBuilder) Build(totalExams int) ([]domain.StudentExamRow, error) {
	first, last := b.names.Name()

	nif, err := b.ids.Generate()
	if err != nil {
		return nil, domain.NewGenerationError(b.built, StepIdentifier, err)
	}

	origin := b.origins[b.rng.Intn(len(b.origins))]
	centre := b.centres[b.rng.Intn(len(b.centres))]

	exams, err := b.selector.BuildExamList(totalExams)
	if err != nil {
		return nil, domain.NewGenerationError(b.built, StepExams, err)
	}

	rows := make([]domain.StudentExamRow, 0, len(exams))
	for _, exam := range exams {
		rows = append(rows, domain.StudentExamRow{
			Court:            b.court,
			SubjectPrimary:   exam.NamePrimary,
			LastName:         last,
			FirstName:        first,
			Identifier:       nif,
			SubjectSecondary: exam.NameSecondary,
			SubjectKind:      exam.KindLabel(),
			Origin:           origin,
			Centre:           centre,
		})
	}
	slices.SortStableFunc(rows, func(a, b domain.StudentExamRow) int {
		return strings.Compare(a.SubjectPrimary, b.SubjectPrimary)
	})

	b.built++
	return rows, nil
}

// Built returns the number of students generated so far.
func (b *StudentBuilder) Built() int { return b.built }
