package metadata

import "regexp"

// must compiles an anchored national-number-style pattern. Patterns in this
// file are deliberately simplified compared to the CLDR-derived tables a
// production deployment would load (see package doc comment) — just enough
// structure per region to exercise the parser, validator, formatter and
// AYTF against realistic numbers.
func must(pattern string) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + pattern + ")$")
}

func mustPrefix(pattern string) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + pattern + ")")
}

func desc(pattern string, lengths ...int) *Desc {
	return &Desc{NationalNumberPattern: must(pattern), PossibleLengths: lengths}
}

func format(pattern, tmpl string, npFormattingRule string, leadingDigits ...string) *NumberFormat {
	nf := &NumberFormat{
		Pattern:                       must(pattern),
		Format:                        tmpl,
		NationalPrefixFormattingRule:  npFormattingRule,
	}
	for _, ld := range leadingDigits {
		nf.LeadingDigitsPatterns = append(nf.LeadingDigitsPatterns, mustPrefix(ld))
	}
	return nf
}

// BundledRegions is the small, hand-curated metadata set shipped with this
// module, covering the regions exercised by its own test scenarios (US, NZ,
// IT, AR, GB, DE) plus a handful of others included for format and
// leading-zero/mobile-prefix diversity (RU, UZ, MX, IL, JP, KR, PS).
func BundledRegions() []*Region {
	return []*Region{
		regionUS(),
		regionNZ(),
		regionIT(),
		regionAR(),
		regionGB(),
		regionDE(),
		regionRU(),
		regionUZ(),
		regionMX(),
		regionIL(),
		regionJP(),
		regionKR(),
		regionPS(),
	}
}

func regionUS() *Region {
	return &Region{
		ID:                           "US",
		CountryCode:                  1,
		InternationalPrefix:          mustPrefix(`011`),
		PreferredInternationalPrefix: "011",
		NationalPrefix:               "1",
		NationalPrefixForParsing:     mustPrefix(`1`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[2-9]\d{9}`, 10),
		FixedLine:                    &Desc{NationalNumberPattern: must(`[2-9]\d{9}`), PossibleLengths: []int{10}, ExampleNumber: "2015550123"},
		Mobile:                       desc(`[2-9]\d{9}`, 10),
		TollFree:                     desc(`8(?:00|33|44|55|66|77|88)[2-9]\d{6}`, 10),
		PersonalNumber:               desc(`500[2-9]\d{6}`, 10),
		NumberFormats: []*NumberFormat{
			format(`(\d{3})(\d{3})(\d{4})`, "$1 $2 $3", ""),
		},
		IntlNumberFormats: []*NumberFormat{
			format(`(\d{3})(\d{3})(\d{4})`, "$1 $2 $3", ""),
		},
	}
}

func regionNZ() *Region {
	return &Region{
		ID:                           "NZ",
		CountryCode:                  64,
		InternationalPrefix:          mustPrefix(`0(?:0|161)`),
		PreferredInternationalPrefix: "00",
		NationalPrefix:               "0",
		NationalPrefixForParsing:     mustPrefix(`0`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[2-9]\d{7,9}`, 8, 9, 10),
		FixedLine:                    desc(`[34679]\d{7}`, 8),
		Mobile:                       desc(`2\d{7,9}`, 8, 9, 10),
		TollFree:                     desc(`800\d{6,7}`, 9, 10),
		NumberFormats: []*NumberFormat{
			format(`(\d)(\d{3})(\d{4})`, "$1-$2 $3", "0$1"),
			format(`(\d{2})(\d{3,4})(\d{4})`, "$1-$2 $3", "0$1"),
		},
		IntlNumberFormats: []*NumberFormat{
			format(`(\d)(\d{3})(\d{4})`, "$1 $2 $3", ""),
			format(`(\d{2})(\d{3,4})(\d{4})`, "$1 $2 $3", ""),
		},
	}
}

func regionIT() *Region {
	return &Region{
		ID:                           "IT",
		CountryCode:                  39,
		InternationalPrefix:          mustPrefix(`00`),
		PreferredInternationalPrefix: "00",
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`0\d{5,10}|3\d{8,9}`, 6, 7, 8, 9, 10, 11),
		FixedLine:                    desc(`0\d{5,10}`, 6, 7, 8, 9, 10, 11),
		Mobile:                       desc(`3\d{8,9}`, 9, 10),
		NumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", "", `0[26]`),
			format(`(\d{3})(\d{3})(\d{4})`, "$1 $2 $3", "", `0`),
			format(`(3\d{2})(\d{3})(\d{4})`, "$1 $2 $3", "", `3`),
		},
		IntlNumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", "", `0[26]`),
			format(`(\d{3})(\d{3})(\d{4})`, "$1 $2 $3", "", `0`),
			format(`(3\d{2})(\d{3})(\d{4})`, "$1 $2 $3", "", `3`),
		},
	}
}

func regionAR() *Region {
	return &Region{
		ID:                           "AR",
		CountryCode:                  54,
		InternationalPrefix:          mustPrefix(`00`),
		PreferredInternationalPrefix: "00",
		NationalPrefix:               "0",
		NationalPrefixForParsing:     mustPrefix(`0(?:(11|2\d{2}|3\d{2})15)?`),
		NationalPrefixTransformRule:  "9$1",
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`9?\d{10}`, 10, 11),
		FixedLine:                    desc(`\d{10}`, 10),
		Mobile:                       desc(`9\d{10}`, 11),
		NumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", "0$1"),
		},
		IntlNumberFormats: []*NumberFormat{
			format(`(9)(\d{2})(\d{4})(\d{4})`, "$1 $2 $3 $4", "", `9`),
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", ""),
		},
	}
}

func regionGB() *Region {
	return &Region{
		ID:                           "GB",
		CountryCode:                  44,
		InternationalPrefix:          mustPrefix(`00`),
		PreferredInternationalPrefix: "00",
		NationalPrefix:               "0",
		NationalPrefixForParsing:     mustPrefix(`0`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`\d{10}`, 10),
		FixedLine:                    desc(`[1-2]\d{9}`, 10),
		Mobile:                       desc(`7\d{9}`, 10),
		TollFree:                     desc(`800\d{6,7}`, 9, 10),
		NumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", "0$1"),
		},
		IntlNumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", ""),
		},
	}
}

func regionDE() *Region {
	return &Region{
		ID:                           "DE",
		CountryCode:                  49,
		InternationalPrefix:          mustPrefix(`00`),
		PreferredInternationalPrefix: "00",
		NationalPrefix:               "0",
		NationalPrefixForParsing:     mustPrefix(`0`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[1-9]\d{7,10}`, 8, 9, 10, 11),
		FixedLine:                    desc(`[2-9]\d{7,10}`, 8, 9, 10, 11),
		Mobile:                       desc(`1[5-7]\d{8,9}`, 10, 11),
		NumberFormats: []*NumberFormat{
			format(`(\d{2,5})(\d{3,9})`, "$1 $2", "0$1"),
		},
		IntlNumberFormats: []*NumberFormat{
			format(`(\d{2,5})(\d{3,9})`, "$1 $2", ""),
		},
	}
}

func regionRU() *Region {
	return &Region{
		ID:                           "RU",
		CountryCode:                  7,
		InternationalPrefix:          mustPrefix(`810`),
		PreferredInternationalPrefix: "810",
		NationalPrefix:               "8",
		NationalPrefixForParsing:     mustPrefix(`8`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[3489]\d{9}`, 10),
		FixedLine:                    desc(`[3-8]\d{9}`, 10),
		Mobile:                       desc(`9\d{9}`, 10),
		NumberFormats: []*NumberFormat{
			format(`(\d{3})(\d{3})(\d{2})(\d{2})`, "$1 $2-$3-$4", "8 ($1)"),
		},
		IntlNumberFormats: []*NumberFormat{
			format(`(\d{3})(\d{3})(\d{2})(\d{2})`, "$1 $2 $3 $4", ""),
		},
	}
}

func regionUZ() *Region {
	return &Region{
		ID:                           "UZ",
		CountryCode:                  998,
		InternationalPrefix:          mustPrefix(`810`),
		PreferredInternationalPrefix: "810",
		NationalPrefix:               "8",
		NationalPrefixForParsing:     mustPrefix(`8`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`\d{9}`, 9),
		FixedLine:                    desc(`\d{9}`, 9),
		Mobile:                       desc(`[6-9]\d{8}`, 9),
		NumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{3})(\d{2})(\d{2})`, "$1 $2 $3 $4", "8 $1"),
		},
	}
}

func regionMX() *Region {
	return &Region{
		ID:                           "MX",
		CountryCode:                  52,
		InternationalPrefix:          mustPrefix(`00`),
		PreferredInternationalPrefix: "00",
		NationalPrefix:               "01",
		NationalPrefixForParsing:     mustPrefix(`0(?:1|4(?:4|5))`),
		NationalPrefixTransformRule:  "1$1",
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[1-9]\d{9,10}`, 10, 11),
		FixedLine:                    desc(`[1-9]\d{9}`, 10),
		Mobile:                       desc(`1\d{10}`, 11),
		NumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1 $2 $3", "01 $1"),
		},
	}
}

func regionIL() *Region {
	return &Region{
		ID:                           "IL",
		CountryCode:                  972,
		InternationalPrefix:          mustPrefix(`0(?:0|1[2-9])`),
		PreferredInternationalPrefix: "00",
		NationalPrefix:               "0",
		NationalPrefixForParsing:     mustPrefix(`0`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[17]\d{3,8}|[2-589]\d{3}\d{2,6}`, 5, 6, 7, 8, 9),
		FixedLine:                    desc(`[2-489]\d{7}`, 8),
		Mobile:                       desc(`5\d{8}`, 9),
		PersonalNumber:               desc(`1\d{8}`, 9),
		NumberFormats: []*NumberFormat{
			format(`(\d)(\d{3})(\d{4})`, "$1-$2-$3", "0$1"),
			format(`(\d{2})(\d{3})(\d{4})`, "$1-$2-$3", "0$1"),
		},
	}
}

func regionJP() *Region {
	return &Region{
		ID:                           "JP",
		CountryCode:                  81,
		InternationalPrefix:          mustPrefix(`010`),
		PreferredInternationalPrefix: "010",
		NationalPrefix:               "0",
		NationalPrefixForParsing:     mustPrefix(`0`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[1-9]\d{8,9}`, 9, 10),
		FixedLine:                    desc(`[1-9]\d{8}`, 9),
		Mobile:                       desc(`[7-9]0\d{8}`, 10),
		NumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{4})(\d{4})`, "$1-$2-$3", "0$1"),
			format(`(\d{3})(\d{3})(\d{3})`, "$1-$2-$3", "0$1"),
		},
	}
}

func regionKR() *Region {
	return &Region{
		ID:                           "KR",
		CountryCode:                  82,
		InternationalPrefix:          mustPrefix(`00(?:1|2|3|[5-9]\d\d)`),
		PreferredInternationalPrefix: "001",
		NationalPrefix:               "0",
		NationalPrefixForParsing:     mustPrefix(`0(8(?:[1-46-8]|5\d\d))?`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[1-7]\d{3,9}`, 4, 5, 6, 7, 8, 9, 10),
		FixedLine:                    desc(`[2-6]\d{6,9}`, 7, 8, 9, 10),
		Mobile:                       desc(`1[0-9]\d{7,8}`, 9, 10),
		NumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{3,4})(\d{4})`, "$1-$2-$3", "0$1"),
		},
	}
}

func regionPS() *Region {
	return &Region{
		ID:                           "PS",
		CountryCode:                  970,
		InternationalPrefix:          mustPrefix(`00`),
		PreferredInternationalPrefix: "00",
		NationalPrefix:               "0",
		NationalPrefixForParsing:     mustPrefix(`0`),
		MainCountryForCode:           true,
		GeneralDesc:                  desc(`[2489]\d{7,8}|5[69]\d{7}`, 8, 9),
		FixedLine:                    desc(`[2489]\d{7,8}`, 8, 9),
		Mobile:                       desc(`5[69]\d{7}`, 9),
		NumberFormats: []*NumberFormat{
			format(`(\d{2})(\d{3})(\d{4})`, "$1 $2 $3", "0$1"),
		},
	}
}
