package phonenumber

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/retailcrm/go-phonenumber/metadata"
)

// digitValues maps every digit rune this module recognizes (§4.1's
// "extended digit set") to its ASCII value. Fullwidth digits fold through
// golang.org/x/text/width before reaching this table; Arabic-indic and
// eastern-Arabic digits have no stdlib width-folding equivalent, so they are
// listed explicitly.
var digitValues = func() map[rune]byte {
	m := make(map[rune]byte, 40)
	for i := rune(0); i < 10; i++ {
		m['0'+i] = byte('0' + i)      // ASCII
		m['٠'+i] = byte('0' + i)      // Arabic-indic U+0660-0669
		m['۰'+i] = byte('0' + i)      // Eastern-Arabic U+06F0-06F9
	}
	return m
}()

// foldDigit returns the ASCII digit for r, folding fullwidth forms first.
func foldDigit(r rune) (byte, bool) {
	folded := width.Fold.String(string(r))
	if folded != "" {
		if fr := []rune(folded)[0]; fr >= '0' && fr <= '9' {
			return byte(fr), true
		}
	}
	if d, ok := digitValues[r]; ok {
		return d, true
	}
	return 0, false
}

// NormalizeDigitsOnly drops every character outside the extended digit set
// and folds the remainder to ASCII, §4.1.
func NormalizeDigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := foldDigit(r); ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// countLetters reports how many Unicode letters s contains.
func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// Normalize canonicalizes a raw candidate number, §4.1: digits fold to
// ASCII; three or more letters are mapped through the E.161 keypad, fewer
// are stripped; all other punctuation is dropped.
func Normalize(s string) string {
	mapLetters := countLetters(s) >= 3
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := foldDigit(r); ok {
			b.WriteByte(d)
			continue
		}
		if unicode.IsLetter(r) {
			if mapLetters {
				if d, ok := keypadDigit(r); ok {
					b.WriteByte(d)
				}
			}
			continue
		}
		if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	leadingGarbagePattern = regexp.MustCompile(`[+\p{Nd}٠-٩۰-۹]`)
	secondNumberStart     = regexp.MustCompile(`(?i)[/\\][x×]`)
	trailingJunk          = regexp.MustCompile(`[^\p{Nd}٠-٩۰-۹a-zA-Z#+]+$`)
)

// ExtractPossibleNumber returns the largest suffix of s starting at a plus
// sign or digit, trimmed at a "second number" marker and trailing
// non-alphanumerics, §4.1.
func ExtractPossibleNumber(s string) string {
	loc := leadingGarbagePattern.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	s = s[loc[0]:]
	if m := secondNumberStart.FindStringIndex(s); m != nil {
		s = s[:m[0]]
	}
	s = trailingJunk.ReplaceAllString(s, "")
	return s
}

// extensionPattern matches a trailing extension label and its digits. Word
// labels and the explicit ";ext=" form allow up to 20 digits; the remaining
// label classes are capped per §4.2's table and checked by the caller since
// the cap depends on which alternative matched.
var extensionPattern = regexp.MustCompile(
	`(?i)(?:;ext=|\bext\.?|\bextn\.?|\bextension\b|\bx\b|\bxtn\b|\banexo\b|\bint\b|доб\.?|[x#~.]|;)\s*(\d+)\s*$`,
)

const (
	extMaxWordLabel    = 20
	extMaxAutoDial     = 15
	extMaxAmbiguous    = 9
	extMaxBareTailHash = 6
)

// wordLabelPattern recognizes the word-label alternatives that take the
// 20-digit cap; everything else in extensionPattern is the single-character
// or auto-dial family with a tighter cap.
var wordLabelPattern = regexp.MustCompile(`(?i)(?:;ext=|\bext\.?|\bextn\.?|\bextension\b|\bxtn\b|\banexo\b|\bint\b|доб\.?)\s*$`)

// MaybeStripExtension pops a recognized extension suffix off buf and
// returns the extension digits, §4.1. ok is false if no recognized
// extension label is present.
func MaybeStripExtension(buf string) (rest, ext string, ok bool) {
	loc := extensionPattern.FindStringSubmatchIndex(buf)
	if loc == nil {
		return buf, "", false
	}
	label := buf[loc[0]:loc[2]]
	digits := buf[loc[2]:loc[3]]

	max := extMaxAmbiguous
	switch {
	case wordLabelPattern.MatchString(label):
		max = extMaxWordLabel
	case strings.HasPrefix(strings.TrimSpace(label), ",") || strings.HasPrefix(strings.TrimSpace(label), ";"):
		max = extMaxAutoDial
	case strings.HasSuffix(strings.TrimRight(label, " "), "#"):
		max = extMaxBareTailHash
	}
	if len(digits) > max {
		return buf, "", false
	}
	return buf[:loc[0]], digits, true
}

// MaybeStripInternationalPrefix strips a leading '+' or, failing that, the
// region's IDD prefix, from buf, §4.1. idd may be nil (no known IDD, e.g.
// when the default region itself is unknown).
func MaybeStripInternationalPrefix(buf string, idd *regexp.Regexp) (rest string, source CountryCodeSource) {
	if strings.HasPrefix(buf, "+") {
		return strings.TrimPrefix(buf, "+"), CountryCodeSourceFromNumberWithPlusSign
	}
	if idd != nil {
		if loc := idd.FindStringIndex(buf); loc != nil && loc[0] == 0 {
			return NormalizeDigitsOnly(buf[loc[1]:]), CountryCodeSourceFromNumberWithIDD
		}
	}
	return buf, CountryCodeSourceFromDefaultCountry
}

// MaybeStripNationalPrefixAndCarrierCode strips region's
// national_prefix_for_parsing from the front of buf when the remainder
// still matches general_desc, applying the national_prefix_transform_rule
// if present and returning any captured carrier code, §4.1.
func MaybeStripNationalPrefixAndCarrierCode(buf string, region *metadata.Region) (rest, carrierCode string, stripped bool) {
	if region == nil || region.NationalPrefixForParsing == nil || buf == "" {
		return buf, "", false
	}
	match := region.NationalPrefixForParsing.FindStringSubmatchIndex(buf)
	if match == nil || match[0] != 0 {
		return buf, "", false
	}

	withoutPrefix := buf[match[1]:]
	var transformed string
	if region.NationalPrefixTransformRule != "" && len(match) > 2 {
		transformed = applyCaptures(region.NationalPrefixTransformRule, buf, match) + withoutPrefix
	} else {
		transformed = withoutPrefix
	}

	if region.GeneralDesc == nil || !region.GeneralDesc.Matches(transformed) {
		return buf, "", false
	}

	// With a transform rule, group 1 feeds the rewrite and the carrier code
	// is group 2; without one, group 1 is the carrier code.
	carrierGroup := 2
	if region.NationalPrefixTransformRule == "" {
		carrierGroup = 1
	}
	if len(match) > carrierGroup*2+1 && match[carrierGroup*2] != -1 {
		carrierCode = buf[match[carrierGroup*2]:match[carrierGroup*2+1]]
	}
	return transformed, carrierCode, true
}

// applyCaptures substitutes $1..$9 in rule with the capture groups from a
// FindStringSubmatchIndex match against src.
func applyCaptures(rule, src string, match []int) string {
	var b strings.Builder
	for i := 0; i < len(rule); i++ {
		if rule[i] == '$' && i+1 < len(rule) && rule[i+1] >= '1' && rule[i+1] <= '9' {
			group := int(rule[i+1] - '0')
			if group*2+1 < len(match) && match[group*2] != -1 {
				b.WriteString(src[match[group*2]:match[group*2+1]])
			}
			i++
			continue
		}
		b.WriteByte(rule[i])
	}
	return b.String()
}
