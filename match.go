package phonenumber

import "github.com/retailcrm/go-phonenumber/metadata"

// IsNumberMatch compares two numbers, each given as either a *PhoneNumber
// or a string to be parsed, §4.6. A string operand with no recoverable
// country code of its own is retried using the other operand's country
// code as context, the same fallback the source applies before giving up.
// The retry is symmetric: either operand can donate its region to the
// other, so swapping the argument order never changes the result.
func IsNumberMatch(provider metadata.Provider, a, b any) MatchType {
	numA, okA := toPhoneNumber(provider, a, "")
	numB, okB := toPhoneNumber(provider, b, "")

	inheritedCountryCode := false

	if !okA && okB {
		if region := mainRegionCodeForCountryCode(provider, numB.CountryCode); region != "" {
			numA, okA = toPhoneNumber(provider, a, region)
			inheritedCountryCode = inheritedCountryCode || okA
		}
	}
	if !okB && okA {
		if region := mainRegionCodeForCountryCode(provider, numA.CountryCode); region != "" {
			numB, okB = toPhoneNumber(provider, b, region)
			inheritedCountryCode = inheritedCountryCode || okB
		}
	}

	if !okA || !okB {
		return MatchNotANumber
	}
	return compareNumbers(numA, numB, inheritedCountryCode)
}

func toPhoneNumber(provider metadata.Provider, v any, fallbackRegion string) (*PhoneNumber, bool) {
	switch t := v.(type) {
	case *PhoneNumber:
		return t, t != nil
	case PhoneNumber:
		return &t, true
	case string:
		n, err := ParseAndKeepRawInput(provider, t, fallbackRegion)
		if err != nil {
			return nil, false
		}
		return n, true
	default:
		return nil, false
	}
}

func mainRegionCodeForCountryCode(provider metadata.Provider, countryCode int) string {
	for _, code := range provider.RegionCodesForCountryCode(countryCode) {
		region, ok := provider.RegionMetadata(code)
		if ok && region.MainCountryForCode {
			return code
		}
	}
	codes := provider.RegionCodesForCountryCode(countryCode)
	if len(codes) > 0 {
		return codes[0]
	}
	return ""
}

// compareNumbers implements §4.6's cascade. inheritedCountryCode is true
// when one operand only has a country code because it was re-parsed using
// the other operand's — that case is capped at NSN_MATCH even when every
// other field lines up, per §4.6's "arises when one side originally lacked
// a country code and inherits one".
func compareNumbers(a, b *PhoneNumber, inheritedCountryCode bool) MatchType {
	nsnA, nsnB := a.NationalSignificantNumber(), b.NationalSignificantNumber()

	if a.CountryCode == b.CountryCode && a.CountryCode != 0 {
		if nsnA == nsnB {
			if a.ItalianLeadingZero != b.ItalianLeadingZero {
				return MatchNSNMatch
			}
			if !inheritedCountryCode && extensionsMatch(a, b) && extensionsExact(a, b) {
				return MatchExactMatch
			}
			return MatchNSNMatch
		}
	} else if nsnA == nsnB && extensionsMatch(a, b) {
		// One or both sides lack a country code (e.g. parsed with ZZ); equal
		// NSNs still count as an NSN-level match.
		if a.CountryCode == 0 || b.CountryCode == 0 {
			return MatchNSNMatch
		}
	}

	if isSuffixMatch(nsnA, nsnB) {
		if (a.CountryCode == 0 || b.CountryCode == 0) || a.CountryCode == b.CountryCode {
			return MatchShortNSNMatch
		}
	}

	return MatchNoMatch
}

func extensionsMatch(a, b *PhoneNumber) bool {
	return a.Extension == "" || b.Extension == "" || a.Extension == b.Extension
}

func extensionsExact(a, b *PhoneNumber) bool {
	if a.Extension == "" && b.Extension == "" {
		return true
	}
	return a.Extension == b.Extension
}

func isSuffixMatch(a, b string) bool {
	if a == "" || b == "" || a == b {
		return false
	}
	shorter, longer := a, b
	if len(a) > len(b) {
		shorter, longer = b, a
	}
	return len(shorter) > 0 && longer[len(longer)-len(shorter):] == shorter
}
