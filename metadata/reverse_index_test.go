package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailcrm/go-phonenumber/metadata"
)

func TestRegionForE164Digits_KnownNumber(t *testing.T) {
	region, ok := metadata.RegionForE164Digits("16502530000")
	assert.True(t, ok)
	assert.Equal(t, "US", region)
}

func TestRegionForE164Digits_Unknown(t *testing.T) {
	region, ok := metadata.RegionForE164Digits("0")
	assert.False(t, ok)
	assert.Empty(t, region)
}
