package phonenumber

import (
	"strconv"

	"github.com/retailcrm/go-phonenumber/metadata"
)

// numberTypeOrder is the classification order §4.3 specifies for
// GetNumberType: the first PhoneNumberDesc that matches wins.
var numberTypeOrder = []struct {
	typ  NumberType
	desc func(*metadata.Region) *metadata.Desc
}{
	{NumberTypePremiumRate, func(r *metadata.Region) *metadata.Desc { return r.PremiumRate }},
	{NumberTypeTollFree, func(r *metadata.Region) *metadata.Desc { return r.TollFree }},
	{NumberTypeSharedCost, func(r *metadata.Region) *metadata.Desc { return r.SharedCost }},
	{NumberTypeVoip, func(r *metadata.Region) *metadata.Desc { return r.Voip }},
	{NumberTypePersonalNumber, func(r *metadata.Region) *metadata.Desc { return r.PersonalNumber }},
	{NumberTypePager, func(r *metadata.Region) *metadata.Desc { return r.Pager }},
	{NumberTypeUan, func(r *metadata.Region) *metadata.Desc { return r.Uan }},
	{NumberTypeFixedLine, func(r *metadata.Region) *metadata.Desc { return r.FixedLine }},
	{NumberTypeMobile, func(r *metadata.Region) *metadata.Desc { return r.Mobile }},
}

// GetNumberType classifies n against region metadata, §4.3. It returns
// NumberTypeUnknown if general_desc does not even match.
func GetNumberType(provider metadata.Provider, n *PhoneNumber) NumberType {
	region := regionForNumber(provider, n)
	if region == nil {
		return NumberTypeUnknown
	}
	nsn := n.NationalSignificantNumber()
	if region.GeneralDesc != nil && !region.GeneralDesc.Matches(nsn) {
		return NumberTypeUnknown
	}

	fixedMatch := region.FixedLine.Matches(nsn)
	mobileMatch := region.Mobile.Matches(nsn)

	for _, entry := range numberTypeOrder {
		if entry.typ == NumberTypeFixedLine || entry.typ == NumberTypeMobile {
			continue
		}
		if entry.desc(region).Matches(nsn) {
			return entry.typ
		}
	}
	if fixedMatch && mobileMatch {
		return NumberTypeFixedLineOrMobile
	}
	if fixedMatch {
		return NumberTypeFixedLine
	}
	if mobileMatch {
		return NumberTypeMobile
	}
	return NumberTypeUnknown
}

// IsValidNumber reports whether general_desc matches and GetNumberType
// resolves to something other than UNKNOWN, §4.3.
func IsValidNumber(provider metadata.Provider, n *PhoneNumber) bool {
	return GetNumberType(provider, n) != NumberTypeUnknown
}

// IsValidNumberForRegion additionally requires n's country code to match
// regionCode's, resolving NANPA-style ambiguity, §4.3.
func IsValidNumberForRegion(provider metadata.Provider, n *PhoneNumber, regionCode string) bool {
	region, ok := provider.RegionMetadata(regionCode)
	if !ok || region.CountryCode != n.CountryCode {
		return false
	}
	nsn := n.NationalSignificantNumber()
	if region.GeneralDesc != nil && !region.GeneralDesc.Matches(nsn) {
		return false
	}
	return GetNumberType(provider, n) != NumberTypeUnknown
}

// IsPossibleNumberWithReason classifies n purely by length against
// general_desc's possible_lengths, §4.3.
func IsPossibleNumberWithReason(provider metadata.Provider, n *PhoneNumber) ValidationResult {
	region := regionForNumber(provider, n)
	if region == nil {
		return ValidationInvalidCountryCode
	}
	return possibleLengthResult(region.GeneralDesc, n.NationalSignificantNumber())
}

// IsPossibleNumberForTypeWithReason restricts the length check to one
// PhoneNumberDesc; FIXED_LINE_OR_MOBILE consults the union of both, §4.3.
func IsPossibleNumberForTypeWithReason(provider metadata.Provider, n *PhoneNumber, typ NumberType) ValidationResult {
	region := regionForNumber(provider, n)
	if region == nil {
		return ValidationInvalidCountryCode
	}
	nsn := n.NationalSignificantNumber()

	var desc *metadata.Desc
	switch typ {
	case NumberTypeFixedLine:
		desc = region.FixedLine
	case NumberTypeMobile:
		desc = region.Mobile
	case NumberTypeFixedLineOrMobile:
		if r := possibleLengthResultUnion(region.FixedLine, region.Mobile, nsn); r != ValidationInvalidLength {
			return r
		}
		return ValidationInvalidLength
	case NumberTypeTollFree:
		desc = region.TollFree
	case NumberTypePremiumRate:
		desc = region.PremiumRate
	case NumberTypeSharedCost:
		desc = region.SharedCost
	case NumberTypeVoip:
		desc = region.Voip
	case NumberTypePersonalNumber:
		desc = region.PersonalNumber
	case NumberTypePager:
		desc = region.Pager
	case NumberTypeUan:
		desc = region.Uan
	default:
		desc = region.GeneralDesc
	}

	if !desc.HasPossibleLengths() {
		return ValidationInvalidLength
	}
	return possibleLengthResult(desc, nsn)
}

func possibleLengthResultUnion(a, b *metadata.Desc, nsn string) ValidationResult {
	if !a.HasPossibleLengths() && !b.HasPossibleLengths() {
		return ValidationInvalidLength
	}
	ra := possibleLengthResult(a, nsn)
	if ra == ValidationIsPossible || ra == ValidationIsPossibleLocalOnly {
		return ra
	}
	return possibleLengthResult(b, nsn)
}

func possibleLengthResult(desc *metadata.Desc, nsn string) ValidationResult {
	if desc == nil || !desc.HasPossibleLengths() {
		return ValidationInvalidLength
	}
	length := len(nsn)
	for _, l := range desc.PossibleLengths {
		if l == length {
			return ValidationIsPossible
		}
	}
	for _, l := range desc.PossibleLengthLocalOnly {
		if l == length {
			return ValidationIsPossibleLocalOnly
		}
	}

	shortest, longest := lengthBounds(desc)
	switch {
	case length < shortest:
		return ValidationTooShort
	case length > longest:
		return ValidationTooLong
	default:
		return ValidationInvalidLength
	}
}

func lengthBounds(desc *metadata.Desc) (shortest, longest int) {
	shortest = 1 << 30
	for _, l := range desc.PossibleLengths {
		if l < shortest {
			shortest = l
		}
		if l > longest {
			longest = l
		}
	}
	for _, l := range desc.PossibleLengthLocalOnly {
		if l < shortest {
			shortest = l
		}
		if l > longest {
			longest = l
		}
	}
	return shortest, longest
}

// GetRegionCodeForNumber returns the region code owning n, or "" if none is
// known (use metadata.RegionUnknown as the caller-facing sentinel), §6.1.
func GetRegionCodeForNumber(provider metadata.Provider, n *PhoneNumber) string {
	region := regionForNumber(provider, n)
	if region == nil {
		return ""
	}
	return region.ID
}

func regionForNumber(provider metadata.Provider, n *PhoneNumber) *metadata.Region {
	region := selectRegionForCountryCode(provider, n.CountryCode, n.NationalSignificantNumber())
	if region != nil {
		return region
	}
	// The bundled metadata's own leading-digits tables don't disambiguate
	// every region sharing a country code; fall back to the external
	// reverse index before giving up.
	e164 := strconv.Itoa(n.CountryCode) + n.NationalSignificantNumber()
	if code, ok := metadata.RegionForE164Digits(e164); ok {
		if r, ok := provider.RegionMetadata(code); ok {
			return r
		}
	}
	region, _ = provider.NonGeographicalMetadata(n.CountryCode)
	return region
}

// TruncateTooLongNumber tries to shorten n in place by dropping trailing
// digits until it validates, returning whether it succeeded, §6.1.
func TruncateTooLongNumber(provider metadata.Provider, n *PhoneNumber) bool {
	for {
		if IsValidNumber(provider, n) {
			return true
		}
		if n.NationalNumber < 10 {
			return false
		}
		n.NationalNumber /= 10
	}
}

// GetExampleNumber returns a parsed PhoneNumber built from regionCode's
// fixed-line example number, or nil if unknown, SPEC_FULL §C.1.
func GetExampleNumber(provider metadata.Provider, regionCode string) *PhoneNumber {
	return GetExampleNumberForType(provider, regionCode, NumberTypeFixedLine)
}

// GetExampleNumberForType is GetExampleNumber restricted to one type.
func GetExampleNumberForType(provider metadata.Provider, regionCode string, typ NumberType) *PhoneNumber {
	region, ok := provider.RegionMetadata(regionCode)
	if !ok {
		return nil
	}

	var descFn func(*metadata.Region) *metadata.Desc
	for _, entry := range numberTypeOrder {
		if entry.typ == typ {
			descFn = entry.desc
			break
		}
	}
	if descFn == nil {
		descFn = func(r *metadata.Region) *metadata.Desc { return r.GeneralDesc }
	}

	desc := descFn(region)
	if desc == nil || desc.ExampleNumber == "" {
		return nil
	}

	n, err := Parse(provider, desc.ExampleNumber, regionCode)
	if err != nil {
		return nil
	}
	return n
}

// GetCountryCodeForRegion returns regionCode's country calling code, or 0,
// SPEC_FULL §C.2.
func GetCountryCodeForRegion(provider metadata.Provider, regionCode string) int {
	return provider.CountryCodeForRegion(regionCode)
}

// GetRegionCodesForCountryCode returns every region sharing countryCode,
// SPEC_FULL §C.2.
func GetRegionCodesForCountryCode(provider metadata.Provider, countryCode int) []string {
	return provider.RegionCodesForCountryCode(countryCode)
}
