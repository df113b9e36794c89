package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailcrm/go-phonenumber/metadata"
)

func testProvider() metadata.Provider {
	return metadata.NewProvider(metadata.BundledRegions(), nil)
}

func TestParse_USNationalFormat(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "(650) 253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
}

func TestParse_LeadingPlusIgnoresDefaultRegion(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "+44 20 8765 4321", "US")
	require.NoError(t, err)
	assert.Equal(t, 44, n.CountryCode)
	assert.Equal(t, uint64(2087654321), n.NationalNumber)
}

func TestParse_IDDStripped(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "011 44 20 8765 4321", "US")
	require.NoError(t, err)
	assert.Equal(t, 44, n.CountryCode)
	assert.Equal(t, uint64(2087654321), n.NationalNumber)
}

func TestParse_ItalianLeadingZeroPreserved(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "+39 06 6982 1234", "IT")
	require.NoError(t, err)
	assert.Equal(t, 39, n.CountryCode)
	assert.True(t, n.ItalianLeadingZero)
	assert.Equal(t, "0669821234", n.NationalSignificantNumber())
}

func TestParse_NationalPrefixStripped(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "020 8765 4321", "GB")
	require.NoError(t, err)
	assert.Equal(t, 44, n.CountryCode)
	assert.Equal(t, uint64(2087654321), n.NationalNumber)
}

func TestParse_NoDefaultRegionNoPlus(t *testing.T) {
	p := testProvider()
	_, err := Parse(p, "6502530000", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCountryCodeSentinel)
}

func TestParse_TooShortIsViable(t *testing.T) {
	p := testProvider()
	_, err := Parse(p, "12", "US")
	require.Error(t, err)
}

func TestParse_PhoneContextDomainAccepted(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "6502530000;phone-context=example.com", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
}

func TestParse_PhoneContextWithPlus(t *testing.T) {
	p := testProvider()
	n, err := Parse(p, "2087654321;phone-context=+44", "")
	require.NoError(t, err)
	assert.Equal(t, 44, n.CountryCode)
}

func TestParseAndKeepRawInput_PopulatesSource(t *testing.T) {
	p := testProvider()
	n, err := ParseAndKeepRawInput(p, "+44 20 8765 4321", "US")
	require.NoError(t, err)
	assert.Equal(t, "+44 20 8765 4321", n.RawInput)
	assert.Equal(t, CountryCodeSourceFromNumberWithPlusSign, n.CountryCodeSource)
}

func TestParse_UnrecognizedCountryCode(t *testing.T) {
	p := testProvider()
	_, err := Parse(p, "+0000000000", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCountryCodeSentinel)
}
