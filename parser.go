package phonenumber

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/retailcrm/go-phonenumber/core/logger"
	"github.com/retailcrm/go-phonenumber/metadata"
)

// leadingZeroCountryCodes is the "leading zero set" of §4.2 step 10: country
// codes whose national significant numbers may carry one or more literal
// leading zeros (Italy is the canonical example).
var leadingZeroCountryCodes = map[int]bool{
	39: true,
}

const (
	minLengthForNSN = 2
	maxLengthForNSN = 17
	minLengthForViable = 3
)

// Parse consumes a raw string and a default region, producing a canonical
// PhoneNumber, §4.2. RawInput, CountryCodeSource and
// PreferredDomesticCarrierCode are left zero-valued; use
// ParseAndKeepRawInput to retain them. WithLogger attaches a diagnostic
// sink; absent one, parsing stays silent.
func Parse(provider metadata.Provider, text, defaultRegion string, opts ...Option) (*PhoneNumber, error) {
	return parse(provider, text, defaultRegion, false, resolveOptions(opts))
}

// ParseAndKeepRawInput is Parse but additionally populates RawInput,
// CountryCodeSource and PreferredDomesticCarrierCode.
func ParseAndKeepRawInput(provider metadata.Provider, text, defaultRegion string, opts ...Option) (*PhoneNumber, error) {
	return parse(provider, text, defaultRegion, true, resolveOptions(opts))
}

func parse(provider metadata.Provider, text, defaultRegion string, keepRaw bool, opts options) (*PhoneNumber, error) {
	log := opts.logger.ForOperation("Parse", defaultRegion)
	original := text

	candidate := ExtractPossibleNumber(text)
	if len(NormalizeDigitsOnly(candidate)) < minLengthForViable {
		return nil, newParseError(ErrNotANumber, "too few digits to be viable")
	}

	phoneContext, local, hadContext := parsePhoneContext(candidate)
	if hadContext {
		candidate = local
	}

	defaultMeta, haveDefaultRegion := provider.RegionMetadata(defaultRegion)

	if phoneContext != "" {
		if strings.HasPrefix(phoneContext, "+") {
			candidate = phoneContext + candidate
		} else if !isDomainName(phoneContext) {
			return nil, newParseError(ErrNotANumber, "invalid phone-context")
		}
	}

	if !strings.Contains(candidate, "+") && !haveDefaultRegion {
		return nil, newParseError(ErrInvalidCountryCode, "no default region and no leading +")
	}

	rest, extension, _ := MaybeStripExtension(candidate)
	buf := Normalize(rest)

	var idd *regexp.Regexp
	if haveDefaultRegion {
		idd = defaultMeta.InternationalPrefix
	}
	strippedBuf, source := MaybeStripInternationalPrefix(buf, idd)
	if strippedBuf != buf {
		log.Debug("stripped international prefix", logger.CandidateAttr, strippedBuf)
	}

	var (
		countryCode int
		region      *metadata.Region
	)

	if source != CountryCodeSourceFromDefaultCountry {
		cc, nsn, ok := extractCountryCode(provider, strippedBuf)
		if !ok {
			return nil, newParseError(ErrInvalidCountryCode, "unrecognized country calling code")
		}
		if len(nsn) < 2 {
			return nil, newParseError(ErrTooShortAfterIDD, "too short after IDD")
		}
		countryCode = cc
		buf = nsn
	} else {
		if !haveDefaultRegion {
			return nil, newParseError(ErrInvalidCountryCode, "unknown default region")
		}
		countryCode = defaultMeta.CountryCode
		buf = strippedBuf

		region = selectRegionForCountryCode(provider, countryCode, buf)
		if region == nil {
			region = defaultMeta
		}
		if region.GeneralDesc != nil && !region.GeneralDesc.Matches(buf) {
			if stripped := strings.TrimPrefix(buf, strconv.Itoa(countryCode)); stripped != buf {
				if region.GeneralDesc.Matches(stripped) {
					buf = stripped
					source = CountryCodeSourceFromNumberWithoutPlusSign
				}
			}
		}
	}

	if region == nil {
		region = selectRegionForCountryCode(provider, countryCode, buf)
	}
	if region == nil {
		region, _ = provider.NonGeographicalMetadata(countryCode)
	}
	carrierCode := ""
	if region != nil {
		if strippedPrefix, carrier, ok := MaybeStripNationalPrefixAndCarrierCode(buf, region); ok {
			buf = strippedPrefix
			carrierCode = carrier
		}
		log.Debug("resolved region", logger.RegionAttr, region.ID)
	}

	nsnDigits := NormalizeDigitsOnly(buf)
	if len(nsnDigits) < minLengthForNSN {
		return nil, newParseError(ErrTooShortNSN, "national number too short")
	}
	if len(nsnDigits) > maxLengthForNSN {
		return nil, newParseError(ErrTooLong, "national number too long")
	}

	italianLeadingZero := false
	leadingZeros := 0
	if strings.HasPrefix(nsnDigits, "0") && leadingZeroCountryCodes[countryCode] {
		italianLeadingZero = true
		for _, c := range nsnDigits {
			if c != '0' {
				break
			}
			leadingZeros++
		}
	} else {
		nsnDigits = strings.TrimLeft(nsnDigits, "0")
		if nsnDigits == "" {
			nsnDigits = "0"
		}
	}

	national, err := strconv.ParseUint(nsnDigits, 10, 64)
	if err != nil {
		return nil, newParseError(ErrNotANumber, "national number not numeric")
	}

	n := &PhoneNumber{
		CountryCode:          countryCode,
		NationalNumber:       national,
		Extension:            extension,
		ItalianLeadingZero:   italianLeadingZero,
		NumberOfLeadingZeros: leadingZeros,
	}
	if italianLeadingZero && leadingZeros == 0 {
		n.NumberOfLeadingZeros = 1
	}

	if keepRaw {
		n.RawInput = original
		n.CountryCodeSource = source
		n.PreferredDomesticCarrierCode = carrierCode
	}

	log.Debug("parsed number", "country_code", countryCode)
	return n, nil
}

// extractCountryCode reads 1-3 leading digits off buf and returns the first
// one recognized as a known country calling code, §4.2 step 6.
func extractCountryCode(provider metadata.Provider, buf string) (cc int, rest string, ok bool) {
	digits := NormalizeDigitsOnly(buf)
	if strings.HasPrefix(digits, "0") {
		return 0, buf, false
	}
	for length := 1; length <= 3 && length <= len(digits); length++ {
		candidate, err := strconv.Atoi(digits[:length])
		if err != nil {
			continue
		}
		if len(provider.RegionCodesForCountryCode(candidate)) > 0 {
			return candidate, digits[length:], true
		}
		if _, ok := provider.NonGeographicalMetadata(candidate); ok {
			return candidate, digits[length:], true
		}
	}
	return 0, buf, false
}

// selectRegionForCountryCode picks the best metadata among the regions
// sharing a country calling code, using leading_digits to disambiguate
// (§3.2), falling back to the region flagged main_country_for_code.
func selectRegionForCountryCode(provider metadata.Provider, countryCode int, nsn string) *metadata.Region {
	var main *metadata.Region
	for _, code := range provider.RegionCodesForCountryCode(countryCode) {
		region, ok := provider.RegionMetadata(code)
		if !ok {
			continue
		}
		if region.LeadingDigits != nil {
			if loc := region.LeadingDigits.FindStringIndex(nsn); loc != nil && loc[0] == 0 {
				return region
			}
			continue
		}
		if region.MainCountryForCode {
			main = region
		}
		if main == nil {
			main = region
		}
	}
	return main
}

// parsePhoneContext recognizes an RFC 3966 tel: URI and splits out its
// phone-context parameter, §4.2 step 2 and §6.3. Any other parameters
// (isub=, a=, ...) are discarded.
func parsePhoneContext(s string) (context, local string, hadContext bool) {
	body := s
	if strings.HasPrefix(strings.ToLower(body), "tel:") {
		body = body[len("tel:"):]
	} else if !strings.Contains(strings.ToLower(s), "phone-context=") {
		return "", s, false
	}

	parts := strings.Split(body, ";")
	local = parts[0]
	for _, p := range parts[1:] {
		if kv := strings.SplitN(p, "=", 2); len(kv) == 2 && strings.EqualFold(kv[0], "phone-context") {
			context = kv[1]
			hadContext = true
		}
	}
	return context, local, hadContext
}

func isDomainName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == '.' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return strings.Contains(s, ".")
}
