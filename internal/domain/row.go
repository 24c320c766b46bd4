package domain

// DefaultCourtNumber is the tribunal every generated row belongs to.
const DefaultCourtNumber = 6

// Column indexes of a StudentExamRow in the worksheet.
const (
	ColCourt = iota
	ColSubjectPrimary
	ColLastName
	ColFirstName
	ColIdentifier
	ColSubjectSecondary
	ColSubjectKind
	ColOrigin
	ColCentre
	ColumnCount
)

// Header returns the fixed worksheet header titles.
func Header() []string {
	return []string{
		"Num tribunal",
		"Descripción materia castellano",
		"Apellidos alumno",
		"Nombre alumno",
		"NIF alumno",
		"Descripción materia valenciano",
		"Tipo de materia",
		"Origen del alumno",
		"Nombre centro",
	}
}

// StudentExamRow is one (student, exam) assignment. Rows are built once and
// never mutated afterwards.
type StudentExamRow struct {
	Court            int
	SubjectPrimary   string
	LastName         string
	FirstName        string
	Identifier       string
	SubjectSecondary string
	SubjectKind      string
	Origin           string
	Centre           string
}

// Values returns the row cells in worksheet column order.
func (r StudentExamRow) Values() []any {
	return []any{
		r.Court,
		r.SubjectPrimary,
		r.LastName,
		r.FirstName,
		r.Identifier,
		r.SubjectSecondary,
		r.SubjectKind,
		r.Origin,
		r.Centre,
	}
}
