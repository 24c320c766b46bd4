package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationError(t *testing.T) {
	tests := []struct {
		name    string
		student int
		step    string
		err     error
		wantMsg string
	}{
		{
			name:    "identifier step",
			student: 3,
			step:    "identifier",
			err:     ErrIdentifierSpaceExhausted,
			wantMsg: "generation error: student=3, step=identifier, err=identifier space exhausted",
		},
		{
			name:    "exam selection step",
			student: 0,
			step:    "exams",
			err:     ErrSelectionExhausted,
			wantMsg: "generation error: student=0, step=exams, err=subject selection exhausted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewGenerationError(tt.student, tt.step, tt.err)

			assert.Equal(t, tt.wantMsg, err.Error(), "Error message mismatch")
			assert.Equal(t, tt.student, err.Student)
			assert.Equal(t, tt.step, err.Step)

			assert.True(t, errors.Is(err, tt.err), "Should unwrap to underlying error")
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		err := NewValidationError("Catalog")
		err.AddError("at least one centre is required")

		assert.Equal(t, "validation error for Catalog: at least one centre is required", err.Error())
		assert.True(t, err.HasErrors(), "Should have errors")
		assert.Len(t, err.Errors, 1, "Should have one error")
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := NewValidationError("Catalog")
		err.AddError("at least one centre is required")
		err.AddErrorf("duplicate subject code: %s", "ING")

		assert.Equal(t, "validation errors for Catalog: [at least one centre is required duplicate subject code: ING]", err.Error())
		assert.Len(t, err.Errors, 2)
	})

	t.Run("no errors", func(t *testing.T) {
		err := NewValidationError("Catalog")

		assert.False(t, err.HasErrors(), "Should not have errors")
		assert.NoError(t, err.ErrOrNil())
	})
}
