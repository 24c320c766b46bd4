package application

import (
	"github.com/ahrav/go-tribunal/internal/domain"
)

// Defaults reproduce the behavior of a run with no configuration at all.
const (
	DefaultOutputPath            = "out.xlsx"
	DefaultSheetName             = "Sheet1"
	DefaultLocale                = "es-ES"
	DefaultMinStudents           = 280
	DefaultMaxStudents           = 370
	DefaultMinExams              = 4
	DefaultMaxExams              = 8
	DefaultMaxIdentifierAttempts = 1000
	DefaultMaxSelectionAttempts  = 10000
)

// GeneratorConfig holds every tunable of a dataset run. The zero value is not
// usable; start from DefaultConfig and override fields, or load a YAML file
// with ConfigLoader.
type GeneratorConfig struct {
	// OutputPath is where the workbook is saved.
	OutputPath string `yaml:"output_path" validate:"required,xlsxpath"`
	// SheetName names the single worksheet. Excel caps names at 31 runes.
	SheetName string `yaml:"sheet_name" validate:"required,max=31"`
	// CourtNumber is written to the first column of every row.
	CourtNumber int `yaml:"court_number" validate:"min=-32768,max=32767"`
	// Locale selects the name corpus, as a BCP 47 tag.
	Locale string `yaml:"locale" validate:"required,bcp47"`
	// Seed fixes the random source. Zero means a time-based seed.
	Seed int64 `yaml:"seed"`
	// Students is the inclusive range the student count is drawn from.
	Students Range `yaml:"students"`
	// ExamsPerStudent is the inclusive range each student's requested exam
	// count is drawn from. Mandatory subjects act as a floor.
	ExamsPerStudent Range `yaml:"exams_per_student"`
	// MaxIdentifierAttempts caps collision retries per identifier.
	MaxIdentifierAttempts int `yaml:"max_identifier_attempts" validate:"min=1,max=1000000"`
	// MaxSelectionAttempts caps rejection-sampling draws per student.
	MaxSelectionAttempts int `yaml:"max_selection_attempts" validate:"min=1,max=1000000"`
	// Subjects overrides the subject catalog.
	Subjects []domain.ExamSubject `yaml:"subjects" validate:"required,min=1,dive"`
	// Centres overrides the issuing centre list.
	Centres []string `yaml:"centres" validate:"required,min=1,dive,required,max=255"`
	// Origins overrides the origin flag codes.
	Origins []string `yaml:"origins" validate:"required,min=1,dive,required,max=8"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min" validate:"min=0,ltefield=Max"`
	Max int `yaml:"max" validate:"min=0"`
}

// Span returns the number of values in the range.
func (r Range) Span() int { return r.Max - r.Min + 1 }

// DefaultConfig returns the built-in configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputPath:            DefaultOutputPath,
		SheetName:             DefaultSheetName,
		CourtNumber:           domain.DefaultCourtNumber,
		Locale:                DefaultLocale,
		Students:              Range{Min: DefaultMinStudents, Max: DefaultMaxStudents},
		ExamsPerStudent:       Range{Min: DefaultMinExams, Max: DefaultMaxExams},
		MaxIdentifierAttempts: DefaultMaxIdentifierAttempts,
		MaxSelectionAttempts:  DefaultMaxSelectionAttempts,
		Subjects:              domain.DefaultSubjects(),
		Centres:               domain.DefaultCentres(),
		Origins:               domain.DefaultOrigins(),
	}
}

// Catalog builds the domain catalog described by the configuration.
func (c GeneratorConfig) Catalog() (*domain.Catalog, error) {
	return domain.NewCatalog(c.Subjects, c.Centres, c.Origins)
}
