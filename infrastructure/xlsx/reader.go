package xlsx

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ahrav/go-tribunal/internal/ports"
)

// ReadSheets opens the workbook at path and returns every worksheet as a
// grid of formatted cell values. Trailing empty cells of a row are dropped.
func ReadSheets(path string) ([]ports.SheetData, error) {
	f, err := excelize.OpenFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	sheets := make([]ports.SheetData, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		sheets = append(sheets, ports.SheetData{Name: name, Values: rows})
	}
	return sheets, nil
}

// ReadSheet returns the named worksheet of the workbook at path.
func ReadSheet(path, name string) (ports.SheetData, error) {
	sheets, err := ReadSheets(path)
	if err != nil {
		return ports.SheetData{}, err
	}
	i := slices.IndexFunc(sheets, func(s ports.SheetData) bool { return s.Name == name })
	if i < 0 {
		return ports.SheetData{}, fmt.Errorf("%w: %q in %s", ports.ErrSheetNotFound, name, path)
	}
	return sheets[i], nil
}

// ReadMetadata returns the dataset metadata stored by Writer.SetMetadata.
func ReadMetadata(path string) (ports.DatasetMetadata, error) {
	f, err := excelize.OpenFile(filepath.Clean(path))
	if err != nil {
		return ports.DatasetMetadata{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	props, err := f.GetDocProps()
	if err != nil {
		return ports.DatasetMetadata{}, fmt.Errorf("failed to read document properties: %w", err)
	}

	meta := ports.DatasetMetadata{
		RunID:  props.Identifier,
		Title:  props.Title,
		Locale: props.Language,
	}
	if props.Created != "" {
		if created, err := time.Parse(time.RFC3339, props.Created); err == nil {
			meta.Created = created
		}
	}
	return meta, nil
}
