// Package phonenumber parses, validates, formats and matches international
// phone numbers against region metadata supplied through the metadata
// package's Provider interface. It has no network, disk or process-global
// state: every operation takes an explicit Provider (or a PhoneNumber built
// from one) and is otherwise a pure function of its inputs.
package phonenumber

import "fmt"

// CountryCodeSource records how a PhoneNumber's country code was derived,
// populated only by ParseAndKeepRawInput.
type CountryCodeSource int

const (
	CountryCodeSourceUnspecified CountryCodeSource = iota
	CountryCodeSourceFromNumberWithPlusSign
	CountryCodeSourceFromNumberWithIDD
	CountryCodeSourceFromNumberWithoutPlusSign
	CountryCodeSourceFromDefaultCountry
)

func (s CountryCodeSource) String() string {
	switch s {
	case CountryCodeSourceFromNumberWithPlusSign:
		return "FROM_NUMBER_WITH_PLUS_SIGN"
	case CountryCodeSourceFromNumberWithIDD:
		return "FROM_NUMBER_WITH_IDD"
	case CountryCodeSourceFromNumberWithoutPlusSign:
		return "FROM_NUMBER_WITHOUT_PLUS_SIGN"
	case CountryCodeSourceFromDefaultCountry:
		return "FROM_DEFAULT_COUNTRY"
	default:
		return "UNSPECIFIED"
	}
}

// PhoneNumber is the canonical parsed representation, §3.1. It is a plain
// value; construct one via Parse/ParseAndKeepRawInput rather than by hand.
type PhoneNumber struct {
	CountryCode      int
	NationalNumber   uint64
	Extension        string
	ItalianLeadingZero bool
	NumberOfLeadingZeros int

	RawInput                     string
	CountryCodeSource            CountryCodeSource
	PreferredDomesticCarrierCode string
}

// Equal implements structural equality over the fields §3.1 designates
// significant: country code, national number, extension, and italian
// leading-zero bookkeeping. RawInput, CountryCodeSource and
// PreferredDomesticCarrierCode are deliberately excluded.
func (n *PhoneNumber) Equal(other *PhoneNumber) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.CountryCode == other.CountryCode &&
		n.NationalNumber == other.NationalNumber &&
		n.Extension == other.Extension &&
		n.ItalianLeadingZero == other.ItalianLeadingZero &&
		(!n.ItalianLeadingZero || n.NumberOfLeadingZeros == other.NumberOfLeadingZeros)
}

// NationalSignificantNumber renders NationalNumber back to its decimal
// digit string, restoring any leading zeros recorded at parse time.
func (n *PhoneNumber) NationalSignificantNumber() string {
	digits := fmt.Sprintf("%d", n.NationalNumber)
	if n.ItalianLeadingZero && n.NumberOfLeadingZeros > 0 {
		zeros := n.NumberOfLeadingZeros
		if n.NationalNumber == 0 {
			zeros--
		}
		for i := 0; i < zeros; i++ {
			digits = "0" + digits
		}
	}
	return digits
}

func (n *PhoneNumber) String() string {
	return fmt.Sprintf("PhoneNumber{CountryCode: %d, NationalNumber: %d}", n.CountryCode, n.NationalNumber)
}

// ValidationResult is the result of IsPossibleNumberWithReason, §4.3.
type ValidationResult int

const (
	ValidationIsPossible ValidationResult = iota
	ValidationIsPossibleLocalOnly
	ValidationInvalidCountryCode
	ValidationTooShort
	ValidationTooLong
	ValidationInvalidLength
)

func (v ValidationResult) String() string {
	switch v {
	case ValidationIsPossible:
		return "IS_POSSIBLE"
	case ValidationIsPossibleLocalOnly:
		return "IS_POSSIBLE_LOCAL_ONLY"
	case ValidationInvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case ValidationTooShort:
		return "TOO_SHORT"
	case ValidationTooLong:
		return "TOO_LONG"
	case ValidationInvalidLength:
		return "INVALID_LENGTH"
	default:
		return "UNKNOWN"
	}
}

// NumberType is the classification returned by GetNumberType, §4.3.
type NumberType int

const (
	NumberTypeUnknown NumberType = iota
	NumberTypeFixedLine
	NumberTypeMobile
	NumberTypeFixedLineOrMobile
	NumberTypeTollFree
	NumberTypePremiumRate
	NumberTypeSharedCost
	NumberTypeVoip
	NumberTypePersonalNumber
	NumberTypePager
	NumberTypeUan
)

func (t NumberType) String() string {
	switch t {
	case NumberTypeFixedLine:
		return "FIXED_LINE"
	case NumberTypeMobile:
		return "MOBILE"
	case NumberTypeFixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case NumberTypeTollFree:
		return "TOLL_FREE"
	case NumberTypePremiumRate:
		return "PREMIUM_RATE"
	case NumberTypeSharedCost:
		return "SHARED_COST"
	case NumberTypeVoip:
		return "VOIP"
	case NumberTypePersonalNumber:
		return "PERSONAL_NUMBER"
	case NumberTypePager:
		return "PAGER"
	case NumberTypeUan:
		return "UAN"
	default:
		return "UNKNOWN"
	}
}

// PhoneNumberFormat selects the rendering style for Format, §4.4.
type PhoneNumberFormat int

const (
	FormatE164 PhoneNumberFormat = iota
	FormatInternational
	FormatNational
	FormatRFC3966
)

// MatchType is the result of IsNumberMatch, §4.6.
type MatchType int

const (
	MatchNotANumber MatchType = iota
	MatchNoMatch
	MatchShortNSNMatch
	MatchNSNMatch
	MatchExactMatch
)

func (m MatchType) String() string {
	switch m {
	case MatchNotANumber:
		return "NOT_A_NUMBER"
	case MatchNoMatch:
		return "NO_MATCH"
	case MatchShortNSNMatch:
		return "SHORT_NSN_MATCH"
	case MatchNSNMatch:
		return "NSN_MATCH"
	case MatchExactMatch:
		return "EXACT_MATCH"
	default:
		return "NO_MATCH"
	}
}

// Leniency selects the validation cascade the Matcher applies to each
// candidate substring, §4.7.
type Leniency int

const (
	LeniencyPossible Leniency = iota
	LeniencyValid
	LeniencyStrictGrouping
	LeniencyExactGrouping
)
