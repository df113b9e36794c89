package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDigitsOnly_FoldsFullwidthAndArabicIndic(t *testing.T) {
	assert.Equal(t, "0123456789", NormalizeDigitsOnly("0123456789"))
	assert.Equal(t, "0123456789", NormalizeDigitsOnly("０１２３４５６７８９"))
	assert.Equal(t, "0123456789", NormalizeDigitsOnly("٠١٢٣٤٥٦٧٨٩"))
	assert.Equal(t, "", NormalizeDigitsOnly("abc"))
}

func TestNormalize_MapsThreeOrMoreLettersToKeypad(t *testing.T) {
	got := Normalize("1-800-FLOWERS")
	assert.Equal(t, "18003569377", got)
}

func TestNormalize_KeepsLeadingPlus(t *testing.T) {
	got := Normalize("+1 650 253 0000")
	assert.Equal(t, "+16502530000", got)
}

func TestNormalize_DropsFewerThanThreeLetters(t *testing.T) {
	got := Normalize("650-AB-0000")
	assert.Equal(t, "6500000", got)
}

func TestExtractPossibleNumber_TrimsLeadingAndTrailingJunk(t *testing.T) {
	assert.Equal(t, "+16502530000", ExtractPossibleNumber("Tel: +16502530000."))
	assert.Equal(t, "", ExtractPossibleNumber("no digits here"))
}

func TestMaybeStripExtension(t *testing.T) {
	rest, ext, ok := MaybeStripExtension("6502530000 ext. 123")
	assert.True(t, ok)
	assert.Equal(t, "123", ext)
	assert.Equal(t, "6502530000 ", rest)

	_, _, ok = MaybeStripExtension("6502530000")
	assert.False(t, ok)
}
