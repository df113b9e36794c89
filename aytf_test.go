package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsYouTypeFormatter_USProgressiveReveal(t *testing.T) {
	p := testProvider()
	f := NewAsYouTypeFormatter(p, "US")

	digits := "6502532222"
	var last string
	for _, d := range digits {
		last = f.InputDigit(d)
	}
	assert.Equal(t, "650 253 2222", last)
}

func TestAsYouTypeFormatter_ArgentineMobileCountryCode(t *testing.T) {
	p := testProvider()
	f := NewAsYouTypeFormatter(p, "AR")

	input := "+5491123121234"
	var last string
	for _, d := range input {
		last = f.InputDigit(d)
	}
	assert.Equal(t, "+54 9 11 2312 1234", last)
}

func TestAsYouTypeFormatter_Clear(t *testing.T) {
	p := testProvider()
	f := NewAsYouTypeFormatter(p, "US")
	f.InputDigit('6')
	f.InputDigit('5')
	f.Clear()
	assert.Equal(t, "0", f.InputDigit('0'))
}

func TestAsYouTypeFormatter_RememberedPosition(t *testing.T) {
	p := testProvider()
	f := NewAsYouTypeFormatter(p, "US")
	for _, d := range "650" {
		f.InputDigit(d)
	}
	f.InputDigitAndRememberPosition('2')
	for _, d := range "530000" {
		f.InputDigit(d)
	}
	assert.Greater(t, f.GetRememberedPosition(), 0)
}

func TestAsYouTypeFormatter_WithLoggerOption(t *testing.T) {
	p := testProvider()
	f := NewAsYouTypeFormatter(p, "US", WithLogger(defaultOptions().logger))
	assert.NotPanics(t, func() {
		f.InputDigit('6')
	})
}
