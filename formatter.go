package phonenumber

import (
	"strconv"
	"strings"

	"github.com/retailcrm/go-phonenumber/metadata"
)

// Format renders n in the given style, §4.4. Formatting never fails; when
// no per-region format rule matches, the raw national significant number is
// returned instead, per §7.
func Format(provider metadata.Provider, n *PhoneNumber, style PhoneNumberFormat) string {
	region := mainRegionForCountryCode(provider, n.CountryCode)
	nsn := n.NationalSignificantNumber()

	switch style {
	case FormatE164:
		return "+" + strconv.Itoa(n.CountryCode) + nsn
	case FormatRFC3966:
		formatted := strings.ReplaceAll(formatNSN(region, nsn, FormatInternational, ""), " ", "-")
		out := "tel:+" + strconv.Itoa(n.CountryCode) + "-" + formatted
		if n.Extension != "" {
			out += ";ext=" + n.Extension
		}
		return out
	case FormatInternational:
		formatted := formatNSN(region, nsn, FormatInternational, "")
		out := "+" + strconv.Itoa(n.CountryCode) + " " + formatted
		return out + formattedExtension(n.Extension)
	default: // FormatNational
		formatted := formatNSN(region, nsn, FormatNational, "")
		return formatted + formattedExtension(n.Extension)
	}
}

func formattedExtension(ext string) string {
	if ext == "" {
		return ""
	}
	return " ext. " + ext
}

// FormatByPattern bypasses metadata-driven format selection, rendering nsn
// against a caller-supplied list of NumberFormats, §6.1.
func FormatByPattern(n *PhoneNumber, style PhoneNumberFormat, formats []*metadata.NumberFormat) string {
	nsn := n.NationalSignificantNumber()
	formatted := applyFormats(formats, nsn, style == FormatNational || style == FormatRFC3966, "", "")
	if formatted == "" {
		formatted = nsn
	}
	switch style {
	case FormatE164:
		return "+" + strconv.Itoa(n.CountryCode) + nsn
	case FormatInternational:
		return "+" + strconv.Itoa(n.CountryCode) + " " + formatted + formattedExtension(n.Extension)
	case FormatRFC3966:
		return "tel:+" + strconv.Itoa(n.CountryCode) + "-" + strings.ReplaceAll(formatted, " ", "-")
	default:
		return formatted + formattedExtension(n.Extension)
	}
}

// FormatNationalWithCarrierCode renders n in NATIONAL style, applying the
// region's domestic_carrier_code_formatting_rule with the given carrier
// code, §4.4.
func FormatNationalWithCarrierCode(provider metadata.Provider, n *PhoneNumber, carrierCode string) string {
	region := mainRegionForCountryCode(provider, n.CountryCode)
	nsn := n.NationalSignificantNumber()
	return formatNSN(region, nsn, FormatNational, carrierCode) + formattedExtension(n.Extension)
}

// FormatOutOfCountryCallingNumber renders n as it would be dialed from
// fromRegion, §4.4.
func FormatOutOfCountryCallingNumber(provider metadata.Provider, n *PhoneNumber, fromRegion string) string {
	from, ok := provider.RegionMetadata(fromRegion)
	if !ok {
		return Format(provider, n, FormatInternational)
	}
	if from.CountryCode == n.CountryCode {
		return Format(provider, n, FormatNational)
	}

	region := mainRegionForCountryCode(provider, n.CountryCode)
	nsn := n.NationalSignificantNumber()
	formattedNSN := formatNSN(region, nsn, FormatInternational, "")

	idd := from.PreferredInternationalPrefix
	if idd == "" && from.InternationalPrefix != nil {
		idd = from.InternationalPrefix.String()
	}
	return idd + " " + strconv.Itoa(n.CountryCode) + " " + formattedNSN
}

// FormatInOriginalFormat dispatches on n.CountryCodeSource, §4.4. If the
// result would not round-trip through Parse, it falls back to RawInput.
func FormatInOriginalFormat(provider metadata.Provider, n *PhoneNumber, fromRegion string) string {
	var formatted string
	switch n.CountryCodeSource {
	case CountryCodeSourceFromNumberWithPlusSign:
		formatted = Format(provider, n, FormatInternational)
	case CountryCodeSourceFromNumberWithIDD:
		formatted = FormatOutOfCountryCallingNumber(provider, n, fromRegion)
	case CountryCodeSourceFromNumberWithoutPlusSign:
		formatted = strings.TrimPrefix(Format(provider, n, FormatInternational), "+")
	default:
		formatted = Format(provider, n, FormatNational)
	}

	reparsed, err := Parse(provider, formatted, fromRegion)
	if err != nil || !reparsed.Equal(n) {
		if n.RawInput != "" {
			return n.RawInput
		}
	}
	return formatted
}

// FormatOutOfCountryKeepingAlphaChars preserves alphabetic characters from
// RawInput in their original positions when it contains 3 or more letters,
// §4.4.
func FormatOutOfCountryKeepingAlphaChars(provider metadata.Provider, n *PhoneNumber, fromRegion string) string {
	if countLetters(n.RawInput) < 3 {
		return FormatOutOfCountryCallingNumber(provider, n, fromRegion)
	}

	from, ok := provider.RegionMetadata(fromRegion)
	rawDigitsAndAlpha := Normalize(n.RawInput)
	if ok && from.CountryCode != n.CountryCode {
		idd := from.PreferredInternationalPrefix
		if idd == "" && from.InternationalPrefix != nil {
			idd = from.InternationalPrefix.String()
		}
		return idd + " " + strconv.Itoa(n.CountryCode) + " " + rawDigitsAndAlpha
	}
	return rawDigitsAndAlpha
}

// FormatNumberForMobileDialing renders n for dialing from a mobile handset
// located in fromRegion, enforcing no_international_dialling, §4.4.
func FormatNumberForMobileDialing(provider metadata.Provider, n *PhoneNumber, fromRegion string, withFormatting bool) string {
	region := mainRegionForCountryCode(provider, n.CountryCode)
	if region != nil && region.NoInternationalDialling.Matches(n.NationalSignificantNumber()) {
		from, ok := provider.RegionMetadata(fromRegion)
		if ok && from.CountryCode != n.CountryCode {
			return ""
		}
	}

	var out string
	from, ok := provider.RegionMetadata(fromRegion)
	if ok && from.CountryCode == n.CountryCode {
		out = Format(provider, n, FormatNational)
	} else {
		out = Format(provider, n, FormatInternational)
	}
	if !withFormatting {
		out = stripFormattingPunctuation(out)
	}
	return out
}

func stripFormattingPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '-', '(', ')':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mainRegionForCountryCode(provider metadata.Provider, countryCode int) *metadata.Region {
	region := selectRegionForCountryCode(provider, countryCode, "")
	if region != nil {
		return region
	}
	region, _ = provider.NonGeographicalMetadata(countryCode)
	return region
}

// formatNSN selects a NumberFormat from region and renders nsn, falling
// back to the bare digit string if region is unknown or nothing matches.
func formatNSN(region *metadata.Region, nsn string, style PhoneNumberFormat, carrierCode string) string {
	if region == nil {
		return nsn
	}
	formats := region.FormatsForStyle(style == FormatInternational || style == FormatRFC3966)
	formatted := applyFormats(formats, nsn, style == FormatNational, region.NationalPrefix, carrierCode)
	if formatted == "" {
		return nsn
	}
	return formatted
}

// applyFormats picks the first NumberFormat whose leading-digits pattern
// and full pattern both match nsn, and renders the substitution template,
// §4.4's "Format selection" and "Template substitution".
func applyFormats(formats []*metadata.NumberFormat, nsn string, applyNationalPrefixRule bool, nationalPrefix, carrierCode string) string {
	for _, f := range formats {
		if !f.LeadingDigitsMatch(nsn) {
			continue
		}
		match := f.Pattern.FindStringSubmatchIndex(nsn)
		if match == nil {
			continue
		}

		template := f.Format
		if applyNationalPrefixRule && f.NationalPrefixFormattingRule != "" {
			group1 := captureGroup(nsn, match, 1)
			rewritten := substituteFormattingRule(f.NationalPrefixFormattingRule, nationalPrefix, group1)
			template = replaceGroupPlaceholder(template, 1, rewritten)
		}
		if carrierCode != "" && f.DomesticCarrierCodeFormattingRule != "" {
			group1 := captureGroup(nsn, match, 1)
			rewritten := substituteCarrierRule(f.DomesticCarrierCodeFormattingRule, carrierCode, group1)
			template = replaceGroupPlaceholder(template, 1, rewritten)
		}

		return expandTemplate(template, nsn, match)
	}
	return ""
}

func captureGroup(src string, match []int, group int) string {
	if group*2+1 >= len(match) || match[group*2] == -1 {
		return ""
	}
	return src[match[group*2]:match[group*2+1]]
}

// substituteFormattingRule expands a national_prefix_formatting_rule
// template, §3.2/§4.4: $NP means the region's national prefix, $FG and bare
// $1 both mean "the first capture group as originally matched".
func substituteFormattingRule(rule, nationalPrefix, group1 string) string {
	rule = strings.ReplaceAll(rule, "$NP", nationalPrefix)
	rule = strings.ReplaceAll(rule, "$FG", "$1")
	return strings.ReplaceAll(rule, "$1", group1)
}

func substituteCarrierRule(rule, carrierCode, group1 string) string {
	rule = strings.ReplaceAll(rule, "$FG", "$1")
	rule = strings.ReplaceAll(rule, "$CC", carrierCode)
	return strings.ReplaceAll(rule, "$1", group1)
}

// replaceGroupPlaceholder substitutes one literal "$<group>" token in
// template with value, without touching other placeholders.
func replaceGroupPlaceholder(template string, group int, value string) string {
	token := "$" + strconv.Itoa(group)
	return strings.Replace(template, token, value, 1)
}

// expandTemplate replaces $1..$9 in template with nsn's capture groups.
func expandTemplate(template, nsn string, match []int) string {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		if template[i] == '$' && i+1 < len(template) && template[i+1] >= '1' && template[i+1] <= '9' {
			b.WriteString(captureGroup(nsn, match, int(template[i+1]-'0')))
			i++
			continue
		}
		b.WriteByte(template[i])
	}
	return b.String()
}
