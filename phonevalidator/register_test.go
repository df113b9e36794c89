package phonevalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/retailcrm/go-phonenumber/metadata"
)

type contact struct {
	E164  string `validate:"e164"`
	Local string `validate:"phonenumber=US"`
}

type ValidatorSuite struct {
	suite.Suite
	engine   *validator.Validate
	provider metadata.Provider
}

func Test_Validator(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupSuite() {
	s.provider = metadata.NewProvider(metadata.BundledRegions(), nil)
	s.engine = validator.New()
	require.NoError(s.T(), Register(s.engine, s.provider))
}

func (s *ValidatorSuite) Test_ValidationSuccess() {
	c := contact{E164: "+16502530000", Local: "6502530000"}
	require.NoError(s.T(), s.engine.Struct(c))
}

func (s *ValidatorSuite) Test_E164RejectsNationalFormat() {
	c := contact{E164: "650 253 0000", Local: "6502530000"}
	err := s.engine.Struct(c)
	require.Error(s.T(), err)
	require.IsType(s.T(), validator.ValidationErrors{}, err)
}

func (s *ValidatorSuite) Test_PhoneNumberRejectsGarbage() {
	c := contact{E164: "+16502530000", Local: "not a number"}
	err := s.engine.Struct(c)
	require.Error(s.T(), err)
}

func (s *ValidatorSuite) Test_InvalidStructType() {
	require.IsType(s.T(), &validator.InvalidValidationError{}, s.engine.Struct(nil))
}
