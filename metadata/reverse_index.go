package metadata

import phoneiso3166 "github.com/onlinecity/go-phone-iso3166"

// RegionForE164Digits looks up the ISO 3166-1 alpha-2 region for a string of
// E.164 digits (country code + national number, no leading '+') using the
// bundled reverse table from go-phone-iso3166. This backs
// GetRegionCodeForNumber (§6.1) for country codes this module's own bundled
// Region set does not carry fine-grained leading-digit disambiguation for,
// the same role this table plays in the teacher's own phone.go
// (getCountryCode / IsRussianNumberWith8Prefix / IsUSNumber).
func RegionForE164Digits(e164Digits string) (string, bool) {
	region := phoneiso3166.E164.LookupString(e164Digits)
	return region, region != ""
}
