package ports

import (
	"errors"
	"fmt"
)

// Common infrastructure errors that can occur while writing or reading
// datasets.
var (
	// ErrAlreadySaved indicates that a sink was saved more than once.
	ErrAlreadySaved = errors.New("sink already saved")

	// ErrHeaderWritten indicates a second header write, or a header write
	// after data rows.
	ErrHeaderWritten = errors.New("header already written")

	// ErrHeaderMissing indicates a data row appended before the header.
	ErrHeaderMissing = errors.New("header not written")

	// ErrSheetNotFound indicates that a requested worksheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrUnsupportedLocale indicates that no name corpus matches a locale.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrConfigNotFound indicates that required configuration is missing.
	ErrConfigNotFound = errors.New("configuration not found")
)

// SinkError represents an error from a RowSink operation.
// It includes the output path and operation that failed.
type SinkError struct {
	// Path is the destination the sink writes to.
	Path string

	// Operation is the name of the sink operation that failed.
	Operation string

	// Row is the one-based worksheet row involved, or 0 when not applicable.
	Row int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for SinkError.
func (e *SinkError) Error() string {
	msg := fmt.Sprintf("sink error: operation=%s, path=%s", e.Operation, e.Path)
	if e.Row > 0 {
		msg += fmt.Sprintf(", row=%d", e.Row)
	}
	return msg + fmt.Sprintf(", err=%v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SinkError) Unwrap() error { return e.Err }

// NewSinkError creates a new SinkError with the given details.
func NewSinkError(path, operation string, row int, err error) *SinkError {
	return &SinkError{
		Path:      path,
		Operation: operation,
		Row:       row,
		Err:       err,
	}
}

// MetricsError reports a failure exporting the metrics of a run, such as
// writing the textfile-collector file.
type MetricsError struct {
	// Target is where the metrics were being exported to.
	Target string

	// Operation is the export operation that failed.
	Operation string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for MetricsError.
func (e *MetricsError) Error() string {
	return fmt.Sprintf("metrics error: operation=%s, target=%s, err=%v", e.Operation, e.Target, e.Err)
}

// Unwrap returns the underlying error.
func (e *MetricsError) Unwrap() error { return e.Err }

// NewMetricsError creates a new MetricsError with the given details.
func NewMetricsError(target, operation string, err error) *MetricsError {
	return &MetricsError{
		Target:    target,
		Operation: operation,
		Err:       err,
	}
}

// ConfigError represents an error from configuration operations.
type ConfigError struct {
	// ConfigKey is the configuration key that was involved in the failed
	// operation.
	ConfigKey string

	// Err is the underlying error that caused the configuration operation
	// to fail.
	Err error
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: key=%s, err=%v", e.ConfigKey, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError creates a new ConfigError with the given details.
func NewConfigError(key string, err error) *ConfigError {
	return &ConfigError{
		ConfigKey: key,
		Err:       err,
	}
}
