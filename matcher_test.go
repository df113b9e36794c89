package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_SimpleSentence(t *testing.T) {
	p := testProvider()
	matches := Find(p, "Call +44 20 8765 4321 today!", "GB", LeniencyValid, 10)
	require.Len(t, matches, 1)
	assert.Equal(t, "+44 20 8765 4321", matches[0].RawString)
	assert.Equal(t, 44, matches[0].Number.CountryCode)
}

func TestFind_RejectsSlashSeparatedDate(t *testing.T) {
	p := testProvider()
	matches := Find(p, "date 12/10/2015 not a phone", "US", LeniencyValid, 10)
	assert.Empty(t, matches)
}

func TestFind_MultipleCandidates(t *testing.T) {
	p := testProvider()
	text := "call 650 253 0000 or 212 555 0199"
	matches := Find(p, text, "US", LeniencyValid, 10)
	assert.Len(t, matches, 2)
}

func TestFind_MaxTriesBounds(t *testing.T) {
	p := testProvider()
	text := "650 253 0000, 212 555 0199, 415 555 0123"
	bounded := Find(p, text, "US", LeniencyValid, 1)
	assert.LessOrEqual(t, len(bounded), 1)
}

func TestFind_RejectsAbuttingLatinLetters(t *testing.T) {
	p := testProvider()
	matches := Find(p, "model X6502530000Z is unreleased", "US", LeniencyValid, 10)
	assert.Empty(t, matches)
}
