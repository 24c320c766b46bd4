package domain

// Labels written in the subject type column.
const (
	KindMandatory = "Obligatoria"
	KindOptional  = "Voluntaria"
)

// ExamSubject is one entry of the exam catalog. NamePrimary is the Castilian
// title and NameSecondary the Valencian one.
type ExamSubject struct {
	// Code is the short subject identifier (e.g. "ING").
	Code string `yaml:"code" validate:"required,subjectcode"`

	// NamePrimary is the subject title in the primary language.
	NamePrimary string `yaml:"name_primary" validate:"required,max=255"`

	// NameSecondary is the subject title in the secondary language.
	NameSecondary string `yaml:"name_secondary" validate:"required,max=255"`

	// Mandatory marks subjects every student sits.
	Mandatory bool `yaml:"mandatory"`
}

// KindLabel returns the label used in the subject type column.
func (s ExamSubject) KindLabel() string {
	if s.Mandatory {
		return KindMandatory
	}
	return KindOptional
}

// DefaultSubjects returns the built-in subject catalog.
func DefaultSubjects() []ExamSubject {
	return []ExamSubject{
		{Code: "ALE", NamePrimary: "Alemán", NameSecondary: "Alemany"},
		{Code: "ING", NamePrimary: "Inglés", NameSecondary: "Anglés", Mandatory: true},
		{Code: "ARE", NamePrimary: "Artes Escénicas", NameSecondary: "Arts Escèniques"},
		{Code: "BIO", NamePrimary: "Biología", NameSecondary: "Biologia"},
		{Code: "CAS", NamePrimary: "Castellano", NameSecondary: "Castellà", Mandatory: true},
		{Code: "CUA", NamePrimary: "Cultura Audiovisual", NameSecondary: "Cultura Audiovisual"},
		{Code: "DTE", NamePrimary: "Dibujo Técnico", NameSecondary: "Dibuix Tècnic"},
		{Code: "DIS", NamePrimary: "Diseño", NameSecondary: "Disseny"},
		{Code: "ECO", NamePrimary: "Economía de la Empresa", NameSecondary: "Economia de l’Empresa"},
		{Code: "FIS", NamePrimary: "Física", NameSecondary: "Física"},
		{Code: "FRA", NamePrimary: "Francés", NameSecondary: "Francés"},
		{Code: "FAR", NamePrimary: "Fundamentos del Arte II", NameSecondary: "Fonaments de l’Art II"},
		{Code: "GEO", NamePrimary: "Geografía", NameSecondary: "Geografia"},
		{Code: "GEL", NamePrimary: "Geología", NameSecondary: "Geologia"},
		{Code: "GRI", NamePrimary: "Griego", NameSecondary: "Grec"},
		{Code: "HES", NamePrimary: "Historia de España", NameSecondary: "Història d’Espanya", Mandatory: true},
		{Code: "HFI", NamePrimary: "Historia de la Filosofía", NameSecondary: "Història de la Filosofia"},
		{Code: "HAR", NamePrimary: "Historia del Arte", NameSecondary: "Història de l’Art"},
		{Code: "ITA", NamePrimary: "Italiano", NameSecondary: "Italià"},
		{Code: "LAT", NamePrimary: "Llatí II", NameSecondary: "Latín II"},
		{Code: "MCS", NamePrimary: "Matemáticas Aplicadas a las Ciencias Sociales II", NameSecondary: "Matemàtiques Aplicades a les Ciències Socials II"},
		{Code: "MAT", NamePrimary: "Matemáticas II", NameSecondary: "Matemàtiques II"},
		{Code: "QUI", NamePrimary: "Química", NameSecondary: "Química"},
		{Code: "VAL", NamePrimary: "Valenciano", NameSecondary: "Valencià", Mandatory: true},
	}
}

// DefaultCentres returns the built-in list of issuing centres.
func DefaultCentres() []string {
	return []string{
		"COL. CALASANCIO",
		"COL. EL VALLE",
		"COL. SAN AGUSTIN",
		"IES ENRIC VALOR (EL CAMPELLO)",
		"IES LA FOIA",
		"IES PLAYA DE SAN JUAN",
		"IES POETA PACO MOLLA",
	}
}

// DefaultOrigins returns the built-in origin flag codes.
func DefaultOrigins() []string {
	return []string{"B", "F"}
}
