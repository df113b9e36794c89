package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumberMatch_ExactMatch(t *testing.T) {
	p := testProvider()
	assert.Equal(t, MatchExactMatch, IsNumberMatch(p, "+16502530000", "+16502530000"))
}

func TestIsNumberMatch_NSNMatchAcrossFormatting(t *testing.T) {
	p := testProvider()
	assert.Equal(t, MatchNSNMatch, IsNumberMatch(p, "+16502530000", "(650) 253-0000"))
}

func TestIsNumberMatch_ShortNSNMatch(t *testing.T) {
	p := testProvider()
	assert.Equal(t, MatchShortNSNMatch, IsNumberMatch(p, "+16502530000", "2530000"))
}

func TestIsNumberMatch_NoMatch(t *testing.T) {
	p := testProvider()
	assert.Equal(t, MatchNoMatch, IsNumberMatch(p, "+16502530000", "+16502531111"))
}

func TestIsNumberMatch_NotANumber(t *testing.T) {
	p := testProvider()
	assert.Equal(t, MatchNotANumber, IsNumberMatch(p, "not a number", "+16502530000"))
}

func TestIsNumberMatch_SymmetricRegionInheritance(t *testing.T) {
	p := testProvider()

	forward := IsNumberMatch(p, "+16502530000", "2530000")
	backward := IsNumberMatch(p, "2530000", "+16502530000")

	assert.Equal(t, MatchShortNSNMatch, forward)
	assert.Equal(t, forward, backward, "IsNumberMatch must be symmetric regardless of argument order")
}

func TestIsNumberMatch_AcceptsPhoneNumberStructs(t *testing.T) {
	p := testProvider()
	a, err := Parse(p, "+16502530000", "")
	assert.NoError(t, err)
	b, err := Parse(p, "+16502530000", "")
	assert.NoError(t, err)
	assert.Equal(t, MatchExactMatch, IsNumberMatch(p, a, b))
	assert.Equal(t, MatchExactMatch, IsNumberMatch(p, *a, *b))
}
