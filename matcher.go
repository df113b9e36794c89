package phonenumber

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/retailcrm/go-phonenumber/core/logger"
	"github.com/retailcrm/go-phonenumber/metadata"
)

// Match is one (start, end, number) triple produced by the Matcher, §3.3.
// RawString is text[Start:End], the observed span, not the normalized form.
type Match struct {
	Start     int
	End       int
	RawString string
	Number    *PhoneNumber
}

// pattern is the bounded regex §4.7 describes: up to two leading
// bracket/plus characters, punctuation/digit-block runs, and an optional
// extension. It is compiled once at package init and reused, never
// recompiled per input, per §9.
var pattern = regexp.MustCompile(
	`(?i)[\[\(]{0,2}\+?[0-9０-９٠-٩۰-۹][\d０-９٠-٩۰-۹\s.\-/\\()\[\]~]{4,40}[0-9０-９٠-٩۰-۹](?:` + extensionPattern.String() + `)?`,
)

var matchingBrackets = regexp.MustCompile(`^[\(\[]?[^()\[\]]*(?:[\(\[][^()\[\]]*[\)\]][^()\[\]]*)*[\)\]]?$`)

var (
	slashSeparatedDates = regexp.MustCompile(`\b\d{1,4}/\d{1,4}/\d{2,4}\b`)
	timeStamps          = regexp.MustCompile(`[12]\d{3}[-/]\d{1,2}[-/]\d{1,2} \d{1,2}:\d{2}`)
	timeStampsSuffix    = regexp.MustCompile(`\d{1,2}:\d{2}(:\d{2})?\s*$`)
	pubPages            = regexp.MustCompile(`\d{1,5}\.\d{1,5}(?:\.\d{1,5})+`)
	secondNumberMarker  = regexp.MustCompile(`(?i)[/\\][x×]\d+`)
	latinLetter         = regexp.MustCompile(`\p{Latin}`)
	currencySymbol      = regexp.MustCompile(`[$€£¥₽₴]`)
	israeliFourDigit    = regexp.MustCompile(`^\d{4}$`)
)

var innerMatchDelimiters = []string{"/", "(", "-", "—", ".", " "}

// Find scans text for candidate phone numbers, applying the leniency
// cascade, bounded by maxTries, §4.7. Matches never error; an input with no
// valid candidates yields an empty slice. WithLogger attaches a diagnostic
// sink describing why each rejected candidate was discarded; accepted
// candidates are not logged.
func Find(provider metadata.Provider, text, defaultRegion string, leniency Leniency, maxTries int, opts ...Option) []Match {
	resolved := resolveOptions(opts)
	log := resolved.logger.ForOperation("Find", defaultRegion)
	if resolved.maxTries > 0 {
		maxTries = resolved.maxTries
	}

	var matches []Match
	tries := 0
	searchFrom := 0

	for tries < maxTries && searchFrom < len(text) {
		loc := pattern.FindStringIndex(text[searchFrom:])
		if loc == nil {
			break
		}
		start, end := searchFrom+loc[0], searchFrom+loc[1]
		candidate := text[start:end]
		tries++

		if m := secondNumberMarker.FindStringIndex(candidate); m != nil {
			candidate = candidate[:m[0]]
			end = start + len(candidate)
		}

		if !matchingBrackets.MatchString(candidate) ||
			isDateOrTimestampOrPage(candidate) {
			log.Debug("rejected candidate: brackets or date-like", logger.CandidateAttr, candidate)
			searchFrom = end
			continue
		}

		number, matchedEnd, ok := tryParseCandidate(provider, candidate, defaultRegion)
		if ok && passesLeniency(provider, number, text, start, start+matchedEnd, leniency) {
			matches = append(matches, Match{
				Start:     start,
				End:       start + matchedEnd,
				RawString: text[start : start+matchedEnd],
				Number:    number,
			})
			searchFrom = start + matchedEnd
			continue
		}

		log.Debug("rejected candidate: failed to parse or leniency", logger.CandidateAttr, candidate, logger.LeniencyAttr, leniency)
		searchFrom = end
	}

	if tries >= maxTries {
		log.Debug("stopped: max tries reached")
	}
	return matches
}

func isDateOrTimestampOrPage(candidate string) bool {
	if slashSeparatedDates.MatchString(candidate) {
		return true
	}
	if timeStamps.MatchString(candidate) || timeStampsSuffix.MatchString(candidate) {
		return true
	}
	if pubPages.MatchString(candidate) {
		return true
	}
	return false
}

// tryParseCandidate parses candidate with keep_raw=true; on failure it
// retries on progressively shorter fragments split at an ordered list of
// inner delimiters, §4.7 step 5.
func tryParseCandidate(provider metadata.Provider, candidate, defaultRegion string) (*PhoneNumber, int, bool) {
	if n, err := ParseAndKeepRawInput(provider, candidate, defaultRegion); err == nil {
		return n, len(candidate), true
	}

	for _, delim := range innerMatchDelimiters {
		idx := strings.Index(candidate, delim)
		if idx <= 0 {
			continue
		}
		prefix := candidate[:idx]
		if n, err := ParseAndKeepRawInput(provider, prefix, defaultRegion); err == nil {
			return n, len(prefix), true
		}
		suffix := candidate[idx+len(delim):]
		if n, err := ParseAndKeepRawInput(provider, suffix, defaultRegion); err == nil {
			return n, len(candidate), true
		}
	}
	return nil, 0, false
}

func passesLeniency(provider metadata.Provider, n *PhoneNumber, text string, start, end int, leniency Leniency) bool {
	if IsPossibleNumberWithReason(provider, n) != ValidationIsPossible &&
		IsPossibleNumberWithReason(provider, n) != ValidationIsPossibleLocalOnly {
		return false
	}
	if leniency == LeniencyPossible {
		return true
	}

	if !IsValidNumber(provider, n) {
		return false
	}
	if abutsLatinOrCurrency(text, start, end) {
		return false
	}
	if israeliFourDigit.MatchString(n.NationalSignificantNumber()) && n.CountryCode == 972 {
		if start == 0 || text[start-1] != '*' {
			return false
		}
	}
	if leniency == LeniencyValid {
		return true
	}

	region := mainRegionForCountryCode(provider, n.CountryCode)
	formattedNational := formatNSN(region, n.NationalSignificantNumber(), FormatNational, "")
	groupsMatch := groupingsPlausible(text[start:end], formattedNational)
	if strings.Count(n.NationalSignificantNumber(), "/") > 1 {
		return false
	}
	if leniency == LeniencyStrictGrouping {
		return groupsMatch
	}
	// EXACT_GROUPING
	return groupsMatch && exactGroupingMatch(text[start:end], formattedNational)
}

func abutsLatinOrCurrency(text string, start, end int) bool {
	if start > 0 {
		r := []rune(text[:start])
		last := r[len(r)-1]
		if unicode.In(last, unicode.Latin) || currencySymbol.MatchString(string(last)) {
			return true
		}
	}
	if end < len(text) {
		next := []rune(text[end:])[0]
		if unicode.In(next, unicode.Latin) || currencySymbol.MatchString(string(next)) {
			return true
		}
	}
	return false
}

// groupingsPlausible is a light-weight approximation of §4.7's grouping
// check: it reports whether candidate's digits, with punctuation stripped,
// equal or contain the digits of the formatted form. How the digits are
// grouped in candidate is not compared.
func groupingsPlausible(candidate, formattedNational string) bool {
	return digitsOnly(candidate) == digitsOnly(formattedNational) ||
		strings.Contains(digitsOnly(candidate), digitsOnly(formattedNational))
}

func exactGroupingMatch(candidate, formattedNational string) bool {
	candidateGroups := strings.FieldsFunc(candidate, func(r rune) bool { return !unicode.IsDigit(r) })
	formattedGroups := strings.FieldsFunc(formattedNational, func(r rune) bool { return !unicode.IsDigit(r) })
	if len(candidateGroups) != len(formattedGroups) {
		return false
	}
	for i := range candidateGroups {
		if candidateGroups[i] != formattedGroups[i] {
			return false
		}
	}
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
