package application

import (
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// subjectCodePattern matches short upper-case subject codes such as "ING".
var subjectCodePattern = regexp.MustCompile(`^[A-Z]{2,6}$`)

// registerCustomValidators registers the validation tags used by
// GeneratorConfig and its nested types, and reports field names by their
// YAML keys so errors point at the configuration file.
func registerCustomValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(yamlFieldName)

	validators := map[string]validator.Func{
		"subjectcode": validateSubjectCode,
		"bcp47":       validateLanguageTag,
		"xlsxpath":    validateXLSXPath,
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// yamlFieldName returns the YAML key of a struct field, falling back to the
// Go name for untagged fields.
func yamlFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func validateSubjectCode(fl validator.FieldLevel) bool {
	return subjectCodePattern.MatchString(fl.Field().String())
}

func validateLanguageTag(fl validator.FieldLevel) bool {
	_, err := language.Parse(fl.Field().String())
	return err == nil
}

func validateXLSXPath(fl validator.FieldLevel) bool {
	return strings.EqualFold(filepath.Ext(fl.Field().String()), ".xlsx")
}
