package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailcrm/go-phonenumber/metadata"
)

const fixtureYAML = `
regions:
  - id: XT
    country_code: 999
    international_prefix: "00"
    national_prefix: "0"
    general_desc:
      national_number_pattern: "\\d{7}"
      possible_lengths: [7]
    fixed_line:
      national_number_pattern: "\\d{7}"
      possible_lengths: [7]
      example_number: "1234567"
    number_formats:
      - pattern: "(\\d{3})(\\d{4})"
        format: "$1 $2"
`

func TestLoadYAMLRegions_CompilesPatterns(t *testing.T) {
	regions, err := metadata.LoadYAMLRegions([]byte(fixtureYAML))
	require.NoError(t, err)
	require.Len(t, regions, 1)

	r := regions[0]
	assert.Equal(t, "XT", r.ID)
	assert.Equal(t, 999, r.CountryCode)
	assert.True(t, r.GeneralDesc.Matches("1234567"))
	assert.False(t, r.GeneralDesc.Matches("12"))
	assert.Equal(t, "1234567", r.FixedLine.ExampleNumber)
	require.Len(t, r.NumberFormats, 1)
	assert.Equal(t, "$1 $2", r.NumberFormats[0].Format)
}

func TestLoadYAMLRegions_UsableWithProvider(t *testing.T) {
	regions, err := metadata.LoadYAMLRegions([]byte(fixtureYAML))
	require.NoError(t, err)

	p := metadata.NewProvider(regions, nil)
	r, ok := p.RegionMetadata("XT")
	require.True(t, ok)
	assert.Equal(t, 999, r.CountryCode)
}

func TestLoadYAMLRegions_InvalidPatternErrors(t *testing.T) {
	_, err := metadata.LoadYAMLRegions([]byte(`
regions:
  - id: BAD
    country_code: 1
    general_desc:
      national_number_pattern: "("
`))
	assert.Error(t, err)
}
