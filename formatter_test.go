package phonenumber

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailcrm/go-phonenumber/metadata"
)

func TestFormat_AllStyles(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "(650) 253-0000", "US")
	require.NoError(t, err)

	assert.Equal(t, "+16502530000", Format(p, n, FormatE164))
	assert.Equal(t, "+1 650 253 0000", Format(p, n, FormatInternational))
	assert.Equal(t, "650 253 0000", Format(p, n, FormatNational))
	assert.Equal(t, "tel:+1-650-253-0000", Format(p, n, FormatRFC3966))
}

func TestFormat_Extension(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "650 253 0000 ext. 123", "US")
	require.NoError(t, err)
	assert.Equal(t, "123", n.Extension)
	assert.Equal(t, "650 253 0000 ext. 123", Format(p, n, FormatNational))
}

func TestFormat_UnknownRegionFallsBackToNSN(t *testing.T) {
	n := &PhoneNumber{CountryCode: 999, NationalNumber: 1234567}
	p := testProvider()
	assert.Equal(t, "1234567", Format(p, n, FormatNational))
}

func TestFormat_ItalianLeadingZeroRoundTrips(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "+39 06 6982 1234", "IT")
	require.NoError(t, err)
	assert.Equal(t, "+390669821234", Format(p, n, FormatE164))
}

func TestFormatOutOfCountryCallingNumber(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "+44 20 8765 4321", "GB")
	require.NoError(t, err)
	got := FormatOutOfCountryCallingNumber(p, n, "US")
	assert.Contains(t, got, "44")
}

func TestFormatNumberForMobileDialing_SameRegionIsNational(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "650 253 0000", "US")
	require.NoError(t, err)
	assert.Equal(t, "650 253 0000", FormatNumberForMobileDialing(p, n, "US", true))
	assert.Equal(t, "6502530000", FormatNumberForMobileDialing(p, n, "US", false))
}

func TestFormatInOriginalFormat_PlusSignInputIsNotEmpty(t *testing.T) {
	p := testProvider()
	n, err := ParseAndKeepRawInput(p, "+1 650 253 0000", "US")
	require.NoError(t, err)
	got := FormatInOriginalFormat(p, n, "US")
	assert.NotEmpty(t, got)
}

func TestFormat_NationalPrefixFormattingRuleSubstitutesNP(t *testing.T) {
	region := &metadata.Region{
		ID:             "XT",
		CountryCode:    44,
		NationalPrefix: "0",
		GeneralDesc: &metadata.Desc{
			NationalNumberPattern: regexp.MustCompile(`^(?:\d{10})$`),
		},
		NumberFormats: []*metadata.NumberFormat{
			{
				Pattern:                      regexp.MustCompile(`^(?:(\d{2})(\d{4})(\d{4}))$`),
				Format:                       "$1 $2 $3",
				NationalPrefixFormattingRule: "($NP$1)",
			},
		},
	}
	p := metadata.NewProvider([]*metadata.Region{region}, nil)

	n := &PhoneNumber{CountryCode: 44, NationalNumber: 2087654321}
	assert.Equal(t, "(020) 8765 4321", Format(p, n, FormatNational))
}

func TestFormatByPattern(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "650 253 0000", "US")
	require.NoError(t, err)

	region, _ := p.RegionMetadata("US")
	got := FormatByPattern(n, FormatNational, region.NumberFormats)
	assert.Equal(t, "650 253 0000", got)
}
