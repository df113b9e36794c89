// Package metadata defines the read-only, region-keyed data that drives the
// parser, validator, formatter and as-you-type formatter. It is consumed
// through Provider; the concrete payload (patterns for every region in the
// world) is an external collaborator per the toolkit's design — this
// package defines the seam and ships a small bundled data set sufficient to
// exercise every code path, not a complete copy of the CLDR-derived table a
// production deployment would load.
package metadata

import "regexp"

// Desc describes one category of numbers within a region (fixed line,
// mobile, toll free, ...). A zero-value Desc (nil NationalNumberPattern)
// means the region's metadata does not define that category.
type Desc struct {
	NationalNumberPattern    *regexp.Regexp
	PossibleNumberPattern    *regexp.Regexp
	PossibleLengths          []int
	PossibleLengthLocalOnly  []int
	ExampleNumber            string
}

// Matches reports whether the national significant number (digits only)
// matches this Desc's NationalNumberPattern. A nil Desc never matches.
func (d *Desc) Matches(nsn string) bool {
	if d == nil || d.NationalNumberPattern == nil {
		return false
	}
	return d.NationalNumberPattern.MatchString(nsn)
}

// HasPossibleLengths reports whether this Desc declares any possible
// lengths at all (general_desc does for every supported region; specific
// types may not, see §4.3 INVALID_LENGTH).
func (d *Desc) HasPossibleLengths() bool {
	return d != nil && (len(d.PossibleLengths) > 0 || len(d.PossibleLengthLocalOnly) > 0)
}

// NumberFormat is one candidate rendering rule selected by leading-digit
// and full-pattern match against the national significant number.
type NumberFormat struct {
	Pattern                           *regexp.Regexp
	Format                            string
	LeadingDigitsPatterns             []*regexp.Regexp
	NationalPrefixFormattingRule      string
	NationalPrefixOptionalWhenFormatting bool
	DomesticCarrierCodeFormattingRule string
}

// LeadingDigitsMatch reports whether the most specific (last)
// leading-digits pattern prefix-matches nsn. A format with no leading
// digits patterns always qualifies for this test.
func (f *NumberFormat) LeadingDigitsMatch(nsn string) bool {
	if len(f.LeadingDigitsPatterns) == 0 {
		return true
	}
	pattern := f.LeadingDigitsPatterns[len(f.LeadingDigitsPatterns)-1]
	loc := pattern.FindStringIndex(nsn)
	return loc != nil && loc[0] == 0
}

// Region is one supported territory's complete metadata, §3.2.
type Region struct {
	ID                            string
	CountryCode                   int
	InternationalPrefix           *regexp.Regexp
	PreferredInternationalPrefix  string
	NationalPrefix                string
	NationalPrefixForParsing      *regexp.Regexp
	NationalPrefixTransformRule   string
	PreferredExtnPrefix           string
	LeadingDigits                 *regexp.Regexp
	MainCountryForCode            bool

	GeneralDesc      *Desc
	FixedLine        *Desc
	Mobile           *Desc
	TollFree         *Desc
	PremiumRate      *Desc
	SharedCost       *Desc
	PersonalNumber   *Desc
	Voip             *Desc
	Pager            *Desc
	Uan              *Desc
	NoInternationalDialling *Desc
	Emergency        *Desc
	ShortCode        *Desc
	StandardRate     *Desc
	CarrierSpecific  *Desc
	SmsServices      *Desc

	NumberFormats    []*NumberFormat
	IntlNumberFormats []*NumberFormat
}

// FormatsForStyle returns the format list to iterate over for the given
// rendering intent, per §4.4's "iterate number_format[] (or
// intl_number_format[] if non-empty and style is INTERNATIONAL/RFC3966)".
func (r *Region) FormatsForStyle(wantIntl bool) []*NumberFormat {
	if wantIntl && len(r.IntlNumberFormats) > 0 {
		return r.IntlNumberFormats
	}
	return r.NumberFormats
}

// Region codes reserved by §6.4.
const (
	RegionUnknown        = "ZZ"
	RegionNonGeographical = "001"
)
