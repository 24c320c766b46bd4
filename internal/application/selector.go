package application

import (
	"fmt"
	"math/rand"

	"github.com/ahrav/go-tribunal/internal/domain"
)

// ExamSelector picks the subjects a student sits.
type ExamSelector struct {
	rng         *rand.Rand
	mandatory   []domain.ExamSubject
	optional    []domain.ExamSubject
	maxAttempts int
	retries     int
}

// NewExamSelector returns a selector over the catalog partitions. maxAttempts
// caps the random draws spent on a single ChooseOptional call.
func NewExamSelector(rng *rand.Rand, catalog *domain.Catalog, maxAttempts int) *ExamSelector {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &ExamSelector{
		rng:         rng,
		mandatory:   catalog.Mandatory(),
		optional:    catalog.Optional(),
		maxAttempts: maxAttempts,
	}
}

// ChooseOptional returns n distinct optional subjects chosen uniformly at
// random. Draws that repeat an already chosen subject are rejected and
// redrawn.
func (s *ExamSelector) ChooseOptional(n int) ([]domain.ExamSubject, error) {
	if n < 0 || n > len(s.optional) {
		return nil, fmt.Errorf("%w: requested %d, catalog has %d",
			domain.ErrNotEnoughOptionalSubjects, n, len(s.optional))
	}

	chosen := make([]domain.ExamSubject, 0, n)
	seen := make(map[string]bool, n)
	for attempts := 0; len(chosen) < n; attempts++ {
		if attempts == s.maxAttempts {
			return nil, fmt.Errorf("%w: %d of %d subjects after %d draws",
				domain.ErrSelectionExhausted, len(chosen), n, attempts)
		}
		exam := s.optional[s.rng.Intn(len(s.optional))]
		if seen[exam.Code] {
			s.retries++
			continue
		}
		seen[exam.Code] = true
		chosen = append(chosen, exam)
	}
	return chosen, nil
}

// BuildExamList returns every mandatory subject, padded with optional ones
// up to total. When total does not exceed the mandatory count only the
// mandatory subjects are returned.
func (s *ExamSelector) BuildExamList(total int) ([]domain.ExamSubject, error) {
	exams := make([]domain.ExamSubject, len(s.mandatory), max(total, len(s.mandatory)))
	copy(exams, s.mandatory)

	if missing := total - len(s.mandatory); missing > 0 {
		optional, err := s.ChooseOptional(missing)
		if err != nil {
			return nil, err
		}
		exams = append(exams, optional...)
	}
	return exams, nil
}

// Retries returns how many draws were rejected as duplicates.
func (s *ExamSelector) Retries() int { return s.retries }
