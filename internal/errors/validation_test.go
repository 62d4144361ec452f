package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("strength", "cannot be negative")
	ve.AddFieldError("name", "is required")

	s.Equal("validation failed: name: is required; strength: cannot be negative", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderWithoutErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidators() {
	testCases := []struct {
		name      string
		validate  func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Fay", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "  ", vb) }, true},
		{"non-negative zero", func(vb *errors.ValidationBuilder) { errors.ValidateNonNegative("mp", 0, vb) }, false},
		{"non-negative below zero", func(vb *errors.ValidationBuilder) { errors.ValidateNonNegative("mp", -3, vb) }, true},
		{"range inside", func(vb *errors.ValidationBuilder) { errors.ValidateRange("page_size", 25, 0, 100, vb) }, false},
		{"range outside", func(vb *errors.ValidationBuilder) { errors.ValidateRange("page_size", 101, 0, 100, vb) }, true},
		{"enum allowed", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("store", "redis", []string{"redis", "sqlite"}, vb) }, false},
		{"enum rejected", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("store", "mongo", []string{"redis", "sqlite"}, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.validate(vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Error(err)
				s.True(errors.IsInvalidArgument(err))
			} else {
				s.NoError(err)
			}
		})
	}
}
