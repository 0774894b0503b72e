package errors_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/opr-tts-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("listen_addr", "is required")
	ve.AddFieldError("base_url", "is invalid")
	ve.AddFieldError("listen_addr", "must include a port")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal([]string{"listen_addr", "base_url"}, ve.FieldNames())
	s.Assert().Equal("validation failed: listen_addr: is required, must include a port; base_url: is invalid", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("army_id", "is required").
		RequiredField("Store").
		InvalidField("game_system", "unknown system")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "army_id: is required; Store: is required; game_system: is invalid: unknown system")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "vMl2gUoSh9JN", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  abc  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("army_id", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("list_ttl", -time.Second, vb)
	errors.ValidateNonNegative("cache_ttl", 0, vb)
	errors.ValidateNonNegative("timeout", time.Minute, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal("must not be negative", validationErrors["list_ttl"][0])
	s.Assert().NotContains(validationErrors, "cache_ttl")
	s.Assert().NotContains(validationErrors, "timeout")
}

func (s *ValidationTestSuite) TestValidateAbsoluteURL() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"https host", "https://army-forge.onepagerules.com", false},
		{"local port", "http://127.0.0.1:8080", false},
		{"no scheme", "army-forge.onepagerules.com", true},
		{"empty", "", true},
		{"bad escape", "http://%zz", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateAbsoluteURL("base_url", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("port", 70000, 1, 65535, vb)
	errors.ValidateRange("db", 3, 0, 15, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["port"][0], "must be between 1 and 65535")
	s.Assert().NotContains(validationErrors, "db")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	levels := []string{"debug", "info", "warn", "error"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", "verbose", levels, vb)
	errors.ValidateEnum("other_level", "warn", levels, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["log_level"][0], "must be one of: debug, info, warn, error")
	s.Assert().NotContains(validationErrors, "other_level")
}
