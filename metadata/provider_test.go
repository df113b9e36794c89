package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailcrm/go-phonenumber/metadata"
)

func TestNewProvider_RegionMetadata(t *testing.T) {
	p := metadata.NewProvider(metadata.BundledRegions(), nil)

	us, ok := p.RegionMetadata("US")
	require.True(t, ok)
	assert.Equal(t, 1, us.CountryCode)

	_, ok = p.RegionMetadata("ZZ")
	assert.False(t, ok)
}

func TestNewProvider_RegionCodesForCountryCode(t *testing.T) {
	p := metadata.NewProvider(metadata.BundledRegions(), nil)
	codes := p.RegionCodesForCountryCode(1)
	assert.Contains(t, codes, "US")
}

func TestNewProvider_CountryCodeForRegion(t *testing.T) {
	p := metadata.NewProvider(metadata.BundledRegions(), nil)
	assert.Equal(t, 44, p.CountryCodeForRegion("GB"))
	assert.Equal(t, 0, p.CountryCodeForRegion("ZZ"))
}

func TestNewProvider_SupportedRegions(t *testing.T) {
	p := metadata.NewProvider(metadata.BundledRegions(), nil)
	regions := p.SupportedRegions()
	assert.Contains(t, regions, "US")
	assert.Contains(t, regions, "GB")

	for i := 1; i < len(regions); i++ {
		assert.LessOrEqual(t, regions[i-1], regions[i], "SupportedRegions must be sorted")
	}
}

func TestNewProvider_NonGeographicalMetadata(t *testing.T) {
	nonGeo := &metadata.Region{ID: "001", CountryCode: 800}
	p := metadata.NewProvider(metadata.BundledRegions(), []*metadata.Region{nonGeo})

	r, ok := p.NonGeographicalMetadata(800)
	require.True(t, ok)
	assert.Equal(t, "001", r.ID)

	_, ok = p.NonGeographicalMetadata(999)
	assert.False(t, ok)
}

func TestMerge_OverridesWithoutMutatingBase(t *testing.T) {
	base := metadata.NewProvider(metadata.BundledRegions(), nil)
	baseUS, _ := base.RegionMetadata("US")

	override := &metadata.Region{ID: "US", CountryCode: 1}
	merged := metadata.Merge(base, override)

	mergedUS, ok := merged.RegionMetadata("US")
	require.True(t, ok)
	assert.Same(t, override, mergedUS)
	assert.NotSame(t, baseUS, mergedUS)

	stillOriginal, _ := base.RegionMetadata("US")
	assert.Same(t, baseUS, stillOriginal)
}

func TestMerge_KeepsUnrelatedBaseRegions(t *testing.T) {
	base := metadata.NewProvider(metadata.BundledRegions(), nil)
	override := &metadata.Region{ID: "XX", CountryCode: 999}
	merged := metadata.Merge(base, override)

	_, ok := merged.RegionMetadata("GB")
	assert.True(t, ok)
	_, ok = merged.RegionMetadata("XX")
	assert.True(t, ok)

	codes := merged.RegionCodesForCountryCode(999)
	assert.Equal(t, []string{"XX"}, codes)
}
