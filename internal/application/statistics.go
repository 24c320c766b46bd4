package application

import (
	"github.com/ahrav/go-tribunal/internal/domain"
)

// DatasetStatistics provides summary statistics about a generated dataset.
type DatasetStatistics struct {
	// TotalStudents is the number of distinct identifiers.
	TotalStudents int

	// TotalRows is the number of (student, exam) rows.
	TotalRows int

	// SubjectsCount maps primary subject names to row counts.
	SubjectsCount map[string]int

	// CentresCount maps centre names to student counts.
	CentresCount map[string]int

	// OriginsCount maps origin codes to student counts.
	OriginsCount map[string]int

	// AvgExamsPerStudent is the average number of rows per student.
	AvgExamsPerStudent float64

	// MinExams is the minimum number of exams of any student.
	MinExams int

	// MaxExams is the maximum number of exams of any student.
	MaxExams int
}

// ComputeDatasetStatistics analyzes dataset rows and returns summary
// statistics. Students are told apart by identifier.
func ComputeDatasetStatistics(rows []domain.StudentExamRow) *DatasetStatistics {
	stats := &DatasetStatistics{
		TotalRows:     len(rows),
		SubjectsCount: make(map[string]int),
		CentresCount:  make(map[string]int),
		OriginsCount:  make(map[string]int),
	}

	exams := make(map[string]int)
	for _, row := range rows {
		stats.SubjectsCount[row.SubjectPrimary]++
		if exams[row.Identifier] == 0 {
			stats.CentresCount[row.Centre]++
			stats.OriginsCount[row.Origin]++
		}
		exams[row.Identifier]++
	}

	stats.TotalStudents = len(exams)
	if stats.TotalStudents == 0 {
		return stats
	}

	stats.MinExams = int(^uint(0) >> 1) // Max int
	for _, n := range exams {
		stats.MinExams = min(stats.MinExams, n)
		stats.MaxExams = max(stats.MaxExams, n)
	}
	stats.AvgExamsPerStudent = float64(stats.TotalRows) / float64(stats.TotalStudents)

	return stats
}
