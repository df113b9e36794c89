package phonenumber

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorCode_String(t *testing.T) {
	assert.Equal(t, "INVALID_COUNTRY_CODE", ErrInvalidCountryCode.String())
	assert.Equal(t, "NOT_A_NUMBER", ErrNotANumber.String())
	assert.Equal(t, "TOO_SHORT_AFTER_IDD", ErrTooShortAfterIDD.String())
	assert.Equal(t, "TOO_SHORT_NSN", ErrTooShortNSN.String())
	assert.Equal(t, "TOO_LONG", ErrTooLong.String())
	assert.Equal(t, "UNKNOWN", ParseErrorCode(99).String())
}

func TestParseError_Error(t *testing.T) {
	bare := newParseError(ErrTooLong, "")
	assert.Equal(t, "phonenumber: TOO_LONG", bare.Error())

	withMsg := newParseError(ErrNotANumber, "no digits found")
	assert.Equal(t, "phonenumber: NOT_A_NUMBER: no digits found", withMsg.Error())
}

func TestParseError_Is(t *testing.T) {
	err := newParseError(ErrTooShortNSN, "nsn too short")
	assert.True(t, errors.Is(err, ErrTooShortNSNSentinel))
	assert.False(t, errors.Is(err, ErrTooLongSentinel))
	assert.False(t, errors.Is(errors.New("plain"), ErrTooLongSentinel))
}

func TestParse_ReturnsMatchingSentinel(t *testing.T) {
	p := testProvider()

	_, err := Parse(p, "not a number at all", "")
	assert.ErrorIs(t, err, ErrNotANumberSentinel)

	_, err = Parse(p, "+0123", "")
	assert.ErrorIs(t, err, ErrInvalidCountryCodeSentinel)
}
