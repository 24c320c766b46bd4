// Package xlsx stores datasets as Excel workbooks with a single worksheet.
package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/ahrav/go-tribunal/internal/ports"
)

// defaultSheet is the worksheet excelize creates with a new file.
const defaultSheet = "Sheet1"

// Creator is recorded in the workbook properties.
const Creator = "go-tribunal"

var (
	_ ports.RowSink        = (*Writer)(nil)
	_ ports.MetadataWriter = (*Writer)(nil)
)

// Writer builds a workbook in memory and writes it to disk once on Save.
// Rows are append-only. String cells are stored in Unicode NFC.
type Writer struct {
	path  string
	sheet string
	file  *excelize.File
	rows  int
	saved bool
}

// NewWriter creates an empty workbook whose only worksheet is named sheet.
func NewWriter(path, sheet string) (*Writer, error) {
	f := excelize.NewFile()
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			_ = f.Close()
			return nil, ports.NewSinkError(path, "NewWriter", 0, err)
		}
	}
	return &Writer{path: path, sheet: sheet, file: f}, nil
}

// SetMetadata stores the dataset metadata as workbook document properties.
func (w *Writer) SetMetadata(meta ports.DatasetMetadata) error {
	err := w.file.SetDocProps(&excelize.DocProperties{
		Creator:    Creator,
		Title:      meta.Title,
		Identifier: meta.RunID,
		Language:   meta.Locale,
		Created:    meta.Created.Format(time.RFC3339),
	})
	if err != nil {
		return ports.NewSinkError(w.path, "SetMetadata", 0, err)
	}
	return nil
}

// WriteHeader writes titles to the first row in bold and freezes it.
func (w *Writer) WriteHeader(titles []string) error {
	if w.rows > 0 {
		return ports.NewSinkError(w.path, "WriteHeader", 1, ports.ErrHeaderWritten)
	}

	values := make([]any, len(titles))
	for i, title := range titles {
		values[i] = title
	}
	if err := w.setRow(1, values); err != nil {
		return ports.NewSinkError(w.path, "WriteHeader", 1, err)
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return ports.NewSinkError(w.path, "WriteHeader", 1, err)
	}
	if err := w.file.SetRowStyle(w.sheet, 1, 1, style); err != nil {
		return ports.NewSinkError(w.path, "WriteHeader", 1, err)
	}
	if err := w.file.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return ports.NewSinkError(w.path, "WriteHeader", 1, err)
	}

	w.rows = 1
	return nil
}

// AppendRow writes values to the row after the last written one.
func (w *Writer) AppendRow(values ...any) error {
	row := w.rows + 1
	if w.rows == 0 {
		return ports.NewSinkError(w.path, "AppendRow", row, ports.ErrHeaderMissing)
	}
	if w.saved {
		return ports.NewSinkError(w.path, "AppendRow", row, ports.ErrAlreadySaved)
	}

	cells := make([]any, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			v = norm.NFC.String(s)
		}
		cells[i] = v
	}
	if err := w.setRow(row, cells); err != nil {
		return ports.NewSinkError(w.path, "AppendRow", row, err)
	}

	w.rows = row
	return nil
}

// Rows returns the number of rows written, header included.
func (w *Writer) Rows() int { return w.rows }

// Save writes the workbook to its path, creating parent directories, and
// releases it. Only the first call writes.
func (w *Writer) Save(ctx context.Context) error {
	if w.saved {
		return ports.NewSinkError(w.path, "Save", 0, ports.ErrAlreadySaved)
	}
	if err := ctx.Err(); err != nil {
		return ports.NewSinkError(w.path, "Save", 0, err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ports.NewSinkError(w.path, "Save", 0, fmt.Errorf("failed to create directory: %w", err))
		}
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return ports.NewSinkError(w.path, "Save", 0, err)
	}

	w.saved = true
	return w.file.Close()
}

// Close releases the workbook without saving it. It is a no-op after Save.
func (w *Writer) Close() error {
	if w.saved {
		return nil
	}
	return w.file.Close()
}

func (w *Writer) setRow(row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.file.SetSheetRow(w.sheet, cell, &values)
}
