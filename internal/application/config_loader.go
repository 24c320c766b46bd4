package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-tribunal/internal/domain"
	"github.com/ahrav/go-tribunal/internal/ports"
)

var _ ports.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader reads GeneratorConfig overrides from YAML and validates the
// result. Keys absent from the file keep the values already present in the
// target, so callers usually start from DefaultConfig.
type ConfigLoader struct {
	// validator performs struct tag validation and the custom rules
	// registered in registerCustomValidators.
	validator *validator.Validate
	// path is the YAML file read by Load. Empty means no file; Load then
	// only validates the target.
	path string
}

// NewConfigLoader creates a loader for the YAML file at path.
// NewConfigLoader returns an error if validator registration fails.
func NewConfigLoader(path string) (*ConfigLoader, error) {
	v := validator.New()

	if err := registerCustomValidators(v); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	return &ConfigLoader{validator: v, path: path}, nil
}

// Load implements ports.ConfigLoader. config must be a *GeneratorConfig.
func (cl *ConfigLoader) Load(ctx context.Context, config any) error {
	cfg, ok := config.(*GeneratorConfig)
	if !ok || cfg == nil {
		return ports.NewConfigError("", fmt.Errorf("unsupported config type %T", config))
	}
	if cl.path == "" {
		return cl.Validate(cfg)
	}
	return cl.LoadFromFile(ctx, cl.path, cfg)
}

// LoadFromFile overlays the YAML file at path onto cfg and validates it.
func (cl *ConfigLoader) LoadFromFile(ctx context.Context, path string, cfg *GeneratorConfig) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ports.NewConfigError(path, ports.ErrConfigNotFound)
		}
		return ports.NewConfigError(path, fmt.Errorf("failed to read file: %w", err))
	}
	return cl.load(ctx, data, cfg)
}

// LoadFromReader overlays YAML read from r onto cfg and validates it.
func (cl *ConfigLoader) LoadFromReader(ctx context.Context, r io.Reader, cfg *GeneratorConfig) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return ports.NewConfigError("", fmt.Errorf("failed to read config: %w", err))
	}
	return cl.load(ctx, data, cfg)
}

func (cl *ConfigLoader) load(ctx context.Context, data []byte, cfg *GeneratorConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Strict mode - fail on unknown fields.
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return ports.NewConfigError("", fmt.Errorf("YAML decode failed: %w", err))
	}

	return cl.Validate(cfg)
}

// Validate checks struct tags first, then the rules that span several
// fields: the catalog must build, and the largest exam count must be
// reachable with the optional subjects available.
func (cl *ConfigLoader) Validate(cfg *GeneratorConfig) error {
	if err := cl.validator.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return ports.NewConfigError(configKey(verrs[0]), err)
		}
		return ports.NewConfigError("", fmt.Errorf("struct validation failed: %w", err))
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return ports.NewConfigError("subjects", err)
	}

	if err := checkExamRange(cfg.ExamsPerStudent, catalog.MandatoryCount(), catalog.OptionalCount()); err != nil {
		return ports.NewConfigError("exams_per_student.max", err)
	}

	return nil
}

// checkExamRange reports whether max exams can be served by mandatory
// subjects plus distinct optional ones.
func checkExamRange(exams Range, mandatory, optional int) error {
	if need := exams.Max - mandatory; need > optional {
		return fmt.Errorf("%w: %d exams need %d optional subjects, catalog has %d",
			domain.ErrNotEnoughOptionalSubjects, exams.Max, need, optional)
	}
	return nil
}

// configKey turns a validator namespace such as
// "GeneratorConfig.students.min" into "students.min".
func configKey(fe validator.FieldError) string {
	_, key, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return key
}
