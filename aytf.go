package phonenumber

import (
	"strconv"
	"strings"

	"github.com/retailcrm/go-phonenumber/core/logger"
	"github.com/retailcrm/go-phonenumber/metadata"
)

// phase is the explicit enum of AYTF states §9 asks for in place of the
// source's fall-through switch on digit count.
type phase int

const (
	phaseLeading phase = iota
	phaseAwaitingCountryCode
	phaseFormatting
	phaseUnformattable
)

// placeholder marks an unfilled digit slot in a template. It must never
// collide with a literal character a NumberFormat's separator can produce
// (plain ASCII space included), so it uses U+2008 PUNCTUATION SPACE.
const placeholder = ' '

// AsYouTypeFormatter is a stateful, single-session incremental formatter,
// §4.5. Its methods are not safe for concurrent use on one instance.
type AsYouTypeFormatter struct {
	provider      metadata.Provider
	defaultRegion string

	phase phase

	accruedInput                  []rune
	accruedInputWithoutFormatting strings.Builder
	isInternationalFormatting     bool

	countryCode       int
	region            *metadata.Region
	countryCodeDigits string
	nationalDigits    string

	possibleFormats []*metadata.NumberFormat
	template        []rune
	lastMatchPos    int

	positionToRemember int

	log logger.Logger
}

// NewAsYouTypeFormatter constructs a formatter defaulting to defaultRegion
// until a '+' switches it to international mode. WithLogger attaches a
// diagnostic sink describing phase transitions.
func NewAsYouTypeFormatter(provider metadata.Provider, defaultRegion string, opts ...Option) *AsYouTypeFormatter {
	f := &AsYouTypeFormatter{
		provider:      provider,
		defaultRegion: defaultRegion,
		log:           resolveOptions(opts).logger.ForOperation("AsYouTypeFormatter", defaultRegion),
	}
	f.Clear()
	return f
}

// Clear resets all state, restoring the default region, §4.5.
func (f *AsYouTypeFormatter) Clear() {
	f.phase = phaseLeading
	f.accruedInput = nil
	f.accruedInputWithoutFormatting.Reset()
	f.isInternationalFormatting = false
	f.countryCodeDigits = ""
	f.nationalDigits = ""
	f.possibleFormats = nil
	f.template = nil
	f.lastMatchPos = 0
	f.positionToRemember = 0

	f.region = nil
	f.countryCode = 0
	if region, ok := f.provider.RegionMetadata(f.defaultRegion); ok {
		f.region = region
		f.countryCode = region.CountryCode
	}
}

// InputDigit feeds one character typed by the user and returns the current
// best-effort formatted string, §4.5's digit intake contract.
func (f *AsYouTypeFormatter) InputDigit(c rune) string {
	return f.inputDigit(c, false)
}

// InputDigitAndRememberPosition is InputDigit but also records where, in
// the returned formatted string, the caret sits right after c, for later
// retrieval via GetRememberedPosition.
func (f *AsYouTypeFormatter) InputDigitAndRememberPosition(c rune) string {
	return f.inputDigit(c, true)
}

// GetRememberedPosition returns the position recorded by the last call to
// InputDigitAndRememberPosition, §9.
func (f *AsYouTypeFormatter) GetRememberedPosition() int {
	return f.positionToRemember
}

func (f *AsYouTypeFormatter) inputDigit(c rune, remember bool) string {
	f.accruedInput = append(f.accruedInput, c)

	if f.phase == phaseUnformattable {
		return string(f.accruedInput)
	}

	isLeadingPlus := c == '+' && f.accruedInputWithoutFormatting.Len() == 0
	digit, isDigit := foldDigit(c)
	if !isDigit && !isLeadingPlus {
		f.phase = phaseUnformattable
		return string(f.accruedInput)
	}

	var out string
	if isLeadingPlus {
		f.accruedInputWithoutFormatting.WriteRune('+')
		f.isInternationalFormatting = true
		f.phase = phaseAwaitingCountryCode
		f.region = nil
		f.countryCode = 0
		f.countryCodeDigits = ""
		out = string(f.accruedInput)
	} else {
		f.accruedInputWithoutFormatting.WriteByte(digit)
		rawLen := f.accruedInputWithoutFormatting.Len()

		switch f.phase {
		case phaseAwaitingCountryCode:
			out = f.handleAwaitingCountryCode(digit)
		case phaseLeading:
			f.nationalDigits += string(digit)
			if rawLen <= 2 {
				out = string(f.accruedInput)
			} else {
				f.phase = phaseFormatting
				out = f.renderWithTemplate()
			}
		default: // phaseFormatting
			f.nationalDigits += string(digit)
			out = f.renderWithTemplate()
		}
	}

	if remember {
		f.positionToRemember = f.translatePosition(len(f.accruedInput), out)
	}
	return out
}

// handleAwaitingCountryCode buffers digits typed after a leading '+' until
// a known country calling code is recognized, §4.5 phases
// AWAITING_COUNTRY_CODE / COUNTRY_CODE_FOUND.
func (f *AsYouTypeFormatter) handleAwaitingCountryCode(digit byte) string {
	f.countryCodeDigits += string(digit)

	cc, rest, ok := extractCountryCode(f.provider, f.countryCodeDigits)
	if !ok {
		if len(f.countryCodeDigits) >= 3 {
			f.phase = phaseUnformattable
			f.log.Debug("unformattable: no country code matched", logger.CandidateAttr, f.countryCodeDigits)
		}
		return string(f.accruedInput)
	}

	f.countryCode = cc
	f.region = mainRegionForCountryCode(f.provider, cc)
	f.nationalDigits = rest
	f.phase = phaseFormatting
	f.log.Debug("resolved country code", "country_code", cc)
	if f.nationalDigits == "" {
		return strings.TrimSpace(f.prefix())
	}
	return f.renderWithTemplate()
}

// renderWithTemplate (re)builds the formatting template if needed and
// writes the newest digit of nationalDigits into the next placeholder,
// returning the formatted-so-far string, §4.5's "Template construction".
func (f *AsYouTypeFormatter) renderWithTemplate() string {
	if f.region == nil {
		f.phase = phaseUnformattable
		return string(f.accruedInput)
	}

	if f.template == nil {
		if !f.buildTemplate(f.nationalDigits) {
			f.phase = phaseUnformattable
			return string(f.accruedInput)
		}
		return f.prefix() + string(f.template[:f.lastMatchPos])
	}

	idx := nextPlaceholder(f.template, f.lastMatchPos)
	if idx == -1 {
		if !f.narrowFormats(f.nationalDigits) {
			f.phase = phaseUnformattable
			return string(f.accruedInput)
		}
		return f.prefix() + string(f.template[:f.lastMatchPos])
	}

	f.template[idx] = rune(f.nationalDigits[len(f.nationalDigits)-1])
	f.lastMatchPos = idx + 1
	return f.prefix() + string(f.template[:f.lastMatchPos])
}

// buildTemplate selects a candidate NumberFormat for nationalDigits and
// constructs its placeholder template by applying the pattern to a
// synthetic all-9s digit string, §4.5.
func (f *AsYouTypeFormatter) buildTemplate(nationalDigits string) bool {
	formats := f.region.FormatsForStyle(f.isInternationalFormatting)
	var candidates []*metadata.NumberFormat
	for _, c := range formats {
		if c.LeadingDigitsMatch(nationalDigits) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = formats
	}

	for _, candidate := range candidates {
		if f.tryTemplate(candidate, nationalDigits) {
			return true
		}
	}
	return false
}

// narrowFormats falls back through less-specific candidate formats when the
// current one runs out of placeholders before nationalDigits is exhausted,
// §4.5's "Multiple leading digit patterns" edge case.
func (f *AsYouTypeFormatter) narrowFormats(nationalDigits string) bool {
	formats := f.region.FormatsForStyle(f.isInternationalFormatting)
	var current *metadata.NumberFormat
	if len(f.possibleFormats) > 0 {
		current = f.possibleFormats[0]
	}
	for _, candidate := range formats {
		if candidate == current || !candidate.LeadingDigitsMatch(nationalDigits) {
			continue
		}
		if f.tryTemplate(candidate, nationalDigits) {
			return true
		}
	}
	return false
}

// tryTemplate attempts to build a usable template out of candidate long
// enough to hold nationalDigits, replaying every digit typed so far into
// it on success.
func (f *AsYouTypeFormatter) tryTemplate(candidate *metadata.NumberFormat, nationalDigits string) bool {
	if strings.Contains(candidate.Pattern.String(), "|") {
		return false
	}
	synthetic := syntheticDigitsFor(candidate.Pattern)
	if synthetic == "" || len(synthetic) < len(nationalDigits) {
		return false
	}
	rendered := applyFormats([]*metadata.NumberFormat{candidate}, synthetic, !f.isInternationalFormatting, f.region.NationalPrefix, "")
	if rendered == "" {
		return false
	}

	template := make([]rune, 0, len(rendered))
	for _, r := range rendered {
		if r == '9' {
			template = append(template, placeholder)
		} else {
			template = append(template, r)
		}
	}
	f.template = template
	f.possibleFormats = []*metadata.NumberFormat{candidate}
	f.lastMatchPos = 0
	for i := 0; i < len(nationalDigits); i++ {
		idx := nextPlaceholder(f.template, f.lastMatchPos)
		if idx == -1 {
			return false
		}
		f.template[idx] = rune(nationalDigits[i])
		f.lastMatchPos = idx + 1
	}
	return true
}

func (f *AsYouTypeFormatter) prefix() string {
	if !f.isInternationalFormatting || f.countryCode == 0 {
		return ""
	}
	return "+" + strconv.Itoa(f.countryCode) + " "
}

// translatePosition maps rawPos, an index into accruedInput, to the
// corresponding index in formatted by walking both in lockstep over
// matching digits, §9.
func (f *AsYouTypeFormatter) translatePosition(rawPos int, formatted string) int {
	limit := rawPos
	if limit > len(f.accruedInput) {
		limit = len(f.accruedInput)
	}
	rawDigits := f.accruedInput[:limit]
	out := []rune(formatted)

	ri, oi := 0, 0
	for ri < len(rawDigits) && oi < len(out) {
		want, ok := foldDigit(rawDigits[ri])
		if !ok && rawDigits[ri] != '+' {
			ri++
			continue
		}
		for oi < len(out) {
			if out[oi] == '+' || (ok && byte(out[oi]) == want) {
				oi++
				ri++
				break
			}
			oi++
		}
	}
	return oi
}

// syntheticDigitsFor probes increasing lengths of an all-9s digit string
// until one fully matches pattern, mirroring §4.5's "apply the pattern to
// 999999999999999" against patterns that are exact-length rather than
// open-ended.
func syntheticDigitsFor(pattern interface{ MatchString(string) bool }) string {
	const nines = "99999999999999999"
	for length := 1; length <= len(nines); length++ {
		if pattern.MatchString(nines[:length]) {
			return nines[:length]
		}
	}
	return ""
}

func nextPlaceholder(template []rune, from int) int {
	for i := from; i < len(template); i++ {
		if template[i] == placeholder {
			return i
		}
	}
	return -1
}
