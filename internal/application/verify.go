package application

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/ahrav/go-tribunal/internal/domain"
	"github.com/ahrav/go-tribunal/internal/ports"
)

// maxReportedProblems bounds the messages collected by VerifyDataset.
const maxReportedProblems = 50

// ImportedStudent is a student reassembled from worksheet rows.
type ImportedStudent struct {
	Identifier string
	FirstName  string
	LastName   string
	Origin     string
	Centre     string
	Rows       []domain.StudentExamRow
}

// VerificationReport is the result of reading a dataset back.
type VerificationReport struct {
	Sheet    string
	Students []ImportedStudent
	Rows     int
}

// ParseRows converts worksheet cells, header excluded, into rows.
func ParseRows(values [][]string) ([]domain.StudentExamRow, error) {
	rows := make([]domain.StudentExamRow, 0, len(values))
	for i, cells := range values {
		if len(cells) != domain.ColumnCount {
			return nil, fmt.Errorf("row %d: want %d cells, got %d", i+2, domain.ColumnCount, len(cells))
		}
		court, err := strconv.Atoi(cells[domain.ColCourt])
		if err != nil {
			return nil, fmt.Errorf("row %d: court number: %w", i+2, err)
		}
		rows = append(rows, domain.StudentExamRow{
			Court:            court,
			SubjectPrimary:   cells[domain.ColSubjectPrimary],
			LastName:         cells[domain.ColLastName],
			FirstName:        cells[domain.ColFirstName],
			Identifier:       cells[domain.ColIdentifier],
			SubjectSecondary: cells[domain.ColSubjectSecondary],
			SubjectKind:      cells[domain.ColSubjectKind],
			Origin:           cells[domain.ColOrigin],
			Centre:           cells[domain.ColCentre],
		})
	}
	return rows, nil
}

// GroupStudents groups consecutive rows sharing an identifier. It fails when
// a student's rows are not contiguous.
func GroupStudents(rows []domain.StudentExamRow) ([]ImportedStudent, error) {
	var students []ImportedStudent
	seen := make(map[string]bool)
	for _, row := range rows {
		if n := len(students); n > 0 && students[n-1].Identifier == row.Identifier {
			students[n-1].Rows = append(students[n-1].Rows, row)
			continue
		}
		if seen[row.Identifier] {
			return nil, fmt.Errorf("rows of student %s are not contiguous", row.Identifier)
		}
		seen[row.Identifier] = true
		students = append(students, ImportedStudent{
			Identifier: row.Identifier,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Origin:     row.Origin,
			Centre:     row.Centre,
			Rows:       []domain.StudentExamRow{row},
		})
	}
	return students, nil
}

// VerifyDataset checks a worksheet produced by DatasetGenerator against the
// catalog: literal header, valid identifiers, known subjects with matching
// type labels, each mandatory subject exactly once per student, no repeated
// subject, and rows sorted by primary subject name within each student.
func VerifyDataset(sheet ports.SheetData, catalog *domain.Catalog) (*VerificationReport, error) {
	verr := domain.NewValidationError("Dataset " + sheet.Name)

	if len(sheet.Values) == 0 {
		verr.AddError("sheet is empty")
		return nil, verr
	}
	if !slices.Equal(sheet.Values[0], domain.Header()) {
		verr.AddErrorf("unexpected header %q", sheet.Values[0])
		return nil, verr
	}

	rows, err := ParseRows(sheet.Values[1:])
	if err != nil {
		verr.AddError(err.Error())
		return nil, verr
	}
	students, err := GroupStudents(rows)
	if err != nil {
		verr.AddError(err.Error())
		return nil, verr
	}

	mandatory := catalog.Mandatory()
	for _, st := range students {
		for _, problem := range checkStudent(st, catalog, mandatory) {
			if len(verr.Errors) == maxReportedProblems {
				return nil, verr
			}
			verr.AddErrorf("student %s: %s", st.Identifier, problem)
		}
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &VerificationReport{Sheet: sheet.Name, Students: students, Rows: len(rows)}, nil
}

func checkStudent(st ImportedStudent, catalog *domain.Catalog, mandatory []domain.ExamSubject) []string {
	var problems []string

	if err := domain.ValidateNIF(st.Identifier); err != nil {
		problems = append(problems, err.Error())
	}

	counts := make(map[string]int, len(st.Rows))
	for i, row := range st.Rows {
		if row.FirstName != st.FirstName || row.LastName != st.LastName ||
			row.Origin != st.Origin || row.Centre != st.Centre {
			problems = append(problems, fmt.Sprintf("row %d disagrees on student fields", i))
		}
		if i > 0 && st.Rows[i-1].SubjectPrimary > row.SubjectPrimary {
			problems = append(problems, fmt.Sprintf("rows not sorted at %q", row.SubjectPrimary))
		}

		subject, ok := catalog.Subject(row.SubjectPrimary)
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown subject %q", row.SubjectPrimary))
			continue
		}
		if row.SubjectKind != subject.KindLabel() {
			problems = append(problems, fmt.Sprintf("subject %s labelled %q", subject.Code, row.SubjectKind))
		}
		if row.SubjectSecondary != subject.NameSecondary {
			problems = append(problems, fmt.Sprintf("subject %s has secondary name %q", subject.Code, row.SubjectSecondary))
		}
		counts[subject.Code]++
	}

	for code, n := range counts {
		if n > 1 {
			problems = append(problems, fmt.Sprintf("subject %s appears %d times", code, n))
		}
	}
	for _, s := range mandatory {
		if counts[s.Code] == 0 {
			problems = append(problems, fmt.Sprintf("missing mandatory subject %s", s.Code))
		}
	}
	return problems
}
