// Package testutils provides utilities for testing, including in-memory
// collaborators and fixtures. These components are intended for internal use
// within the project's test suites and are not part of the public API.
package testutils

import (
	"context"
	"fmt"

	"github.com/ahrav/go-tribunal/internal/domain"
	"github.com/ahrav/go-tribunal/internal/ports"
)

var (
	_ ports.RowSink        = (*MemorySink)(nil)
	_ ports.MetadataWriter = (*MemorySink)(nil)
)

// MemorySink implements RowSink by keeping rows in memory. Failures can be
// injected to exercise error paths.
type MemorySink struct {
	// Header is the header row, nil until written.
	Header []string
	// Data holds the appended rows in order.
	Data [][]any
	// Meta is the last metadata set.
	Meta ports.DatasetMetadata
	// SaveCount counts successful saves.
	SaveCount int

	// SaveErr, when set, is returned by Save.
	SaveErr error
	// FailAfterRows makes AppendRow fail once this many data rows exist.
	// Zero disables the failure.
	FailAfterRows int
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink { return &MemorySink{} }

// SetMetadata implements ports.MetadataWriter.
func (m *MemorySink) SetMetadata(meta ports.DatasetMetadata) error {
	m.Meta = meta
	return nil
}

// WriteHeader implements ports.RowSink.
func (m *MemorySink) WriteHeader(titles []string) error {
	if m.Header != nil {
		return ports.ErrHeaderWritten
	}
	m.Header = append([]string{}, titles...)
	return nil
}

// AppendRow implements ports.RowSink.
func (m *MemorySink) AppendRow(values ...any) error {
	if m.Header == nil {
		return ports.ErrHeaderMissing
	}
	if m.SaveCount > 0 {
		return ports.ErrAlreadySaved
	}
	if m.FailAfterRows > 0 && len(m.Data) >= m.FailAfterRows {
		return ports.NewSinkError("memory", "AppendRow", len(m.Data)+2, fmt.Errorf("injected failure"))
	}
	m.Data = append(m.Data, append([]any{}, values...))
	return nil
}

// Rows implements ports.RowSink.
func (m *MemorySink) Rows() int {
	if m.Header == nil {
		return 0
	}
	return len(m.Data) + 1
}

// Save implements ports.RowSink.
func (m *MemorySink) Save(ctx context.Context) error {
	if m.SaveCount > 0 {
		return ports.ErrAlreadySaved
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCount++
	return nil
}

// StudentRows converts the stored data back into typed rows.
func (m *MemorySink) StudentRows() []domain.StudentExamRow {
	rows := make([]domain.StudentExamRow, 0, len(m.Data))
	for _, v := range m.Data {
		rows = append(rows, domain.StudentExamRow{
			Court:            v[domain.ColCourt].(int),
			SubjectPrimary:   v[domain.ColSubjectPrimary].(string),
			LastName:         v[domain.ColLastName].(string),
			FirstName:        v[domain.ColFirstName].(string),
			Identifier:       v[domain.ColIdentifier].(string),
			SubjectSecondary: v[domain.ColSubjectSecondary].(string),
			SubjectKind:      v[domain.ColSubjectKind].(string),
			Origin:           v[domain.ColOrigin].(string),
			Centre:           v[domain.ColCentre].(string),
		})
	}
	return rows
}

// Sheet returns the stored rows as a ports.SheetData grid, formatting
// values the way a spreadsheet reader would.
func (m *MemorySink) Sheet(name string) ports.SheetData {
	values := make([][]string, 0, len(m.Data)+1)
	if m.Header != nil {
		values = append(values, append([]string{}, m.Header...))
	}
	for _, row := range m.Data {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		values = append(values, cells)
	}
	return ports.SheetData{Name: name, Values: values}
}
