package metadata

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v2"
)

// yamlDesc mirrors Desc with string pattern fields, the on-the-wire shape
// used by LoadYAMLRegions. Grounded in the teacher's core/config.go, which
// decodes its own typed config structs from YAML with gopkg.in/yaml.v2.
type yamlDesc struct {
	NationalNumberPattern   string `yaml:"national_number_pattern"`
	PossibleLengths         []int  `yaml:"possible_lengths"`
	PossibleLengthLocalOnly []int  `yaml:"possible_length_local_only"`
	ExampleNumber           string `yaml:"example_number"`
}

func (d *yamlDesc) compile() (*Desc, error) {
	if d == nil {
		return nil, nil
	}
	out := &Desc{
		PossibleLengths:         d.PossibleLengths,
		PossibleLengthLocalOnly: d.PossibleLengthLocalOnly,
		ExampleNumber:           d.ExampleNumber,
	}
	if d.NationalNumberPattern != "" {
		pattern, err := regexp.Compile("^(?:" + d.NationalNumberPattern + ")$")
		if err != nil {
			return nil, fmt.Errorf("national_number_pattern: %w", err)
		}
		out.NationalNumberPattern = pattern
	}
	return out, nil
}

type yamlNumberFormat struct {
	Pattern                               string   `yaml:"pattern"`
	Format                                string   `yaml:"format"`
	LeadingDigitsPatterns                 []string `yaml:"leading_digits_patterns"`
	NationalPrefixFormattingRule          string   `yaml:"national_prefix_formatting_rule"`
	NationalPrefixOptionalWhenFormatting  bool     `yaml:"national_prefix_optional_when_formatting"`
	DomesticCarrierCodeFormattingRule     string   `yaml:"domestic_carrier_code_formatting_rule"`
}

func (f *yamlNumberFormat) compile() (*NumberFormat, error) {
	pattern, err := regexp.Compile("^(?:" + f.Pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	out := &NumberFormat{
		Pattern:                              pattern,
		Format:                               f.Format,
		NationalPrefixFormattingRule:         f.NationalPrefixFormattingRule,
		NationalPrefixOptionalWhenFormatting: f.NationalPrefixOptionalWhenFormatting,
		DomesticCarrierCodeFormattingRule:    f.DomesticCarrierCodeFormattingRule,
	}
	for _, ld := range f.LeadingDigitsPatterns {
		compiled, err := regexp.Compile("^(?:" + ld + ")")
		if err != nil {
			return nil, fmt.Errorf("leading_digits_patterns: %w", err)
		}
		out.LeadingDigitsPatterns = append(out.LeadingDigitsPatterns, compiled)
	}
	return out, nil
}

// yamlRegion is the on-the-wire shape of one region in a metadata fixture
// file. Only the fields exercised by this module's tests are present; a
// production metadata provider would not use this format at all (§1 — the
// concrete metadata payload's serialization is external to the core).
type yamlRegion struct {
	ID                           string             `yaml:"id"`
	CountryCode                  int                `yaml:"country_code"`
	InternationalPrefix          string             `yaml:"international_prefix"`
	PreferredInternationalPrefix string             `yaml:"preferred_international_prefix"`
	NationalPrefix               string             `yaml:"national_prefix"`
	NationalPrefixForParsing     string             `yaml:"national_prefix_for_parsing"`
	NationalPrefixTransformRule  string             `yaml:"national_prefix_transform_rule"`
	PreferredExtnPrefix          string             `yaml:"preferred_extn_prefix"`
	LeadingDigits                string             `yaml:"leading_digits"`
	MainCountryForCode           bool               `yaml:"main_country_for_code"`
	GeneralDesc                  *yamlDesc          `yaml:"general_desc"`
	FixedLine                    *yamlDesc          `yaml:"fixed_line"`
	Mobile                       *yamlDesc          `yaml:"mobile"`
	TollFree                     *yamlDesc          `yaml:"toll_free"`
	PremiumRate                  *yamlDesc          `yaml:"premium_rate"`
	Voip                         *yamlDesc          `yaml:"voip"`
	PersonalNumber               *yamlDesc          `yaml:"personal_number"`
	NumberFormats                []yamlNumberFormat `yaml:"number_formats"`
	IntlNumberFormats            []yamlNumberFormat `yaml:"intl_number_formats"`
}

type yamlFile struct {
	Regions []yamlRegion `yaml:"regions"`
}

// LoadYAMLRegions parses a metadata fixture document (§3.2's fields,
// expressed as YAML with string regex patterns) into compiled Regions,
// ready to pass to NewProvider or Merge.
func LoadYAMLRegions(data []byte) ([]*Region, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("metadata: decoding yaml: %w", err)
	}

	regions := make([]*Region, 0, len(file.Regions))
	for _, yr := range file.Regions {
		region, err := yr.compile()
		if err != nil {
			return nil, fmt.Errorf("metadata: region %s: %w", yr.ID, err)
		}
		regions = append(regions, region)
	}
	return regions, nil
}

func (yr *yamlRegion) compile() (*Region, error) {
	region := &Region{
		ID:                            yr.ID,
		CountryCode:                   yr.CountryCode,
		PreferredInternationalPrefix:  yr.PreferredInternationalPrefix,
		NationalPrefix:                yr.NationalPrefix,
		NationalPrefixTransformRule:   yr.NationalPrefixTransformRule,
		PreferredExtnPrefix:           yr.PreferredExtnPrefix,
		MainCountryForCode:            yr.MainCountryForCode,
	}

	var err error
	if yr.InternationalPrefix != "" {
		if region.InternationalPrefix, err = regexp.Compile("^(?:" + yr.InternationalPrefix + ")"); err != nil {
			return nil, err
		}
	}
	if yr.NationalPrefixForParsing != "" {
		if region.NationalPrefixForParsing, err = regexp.Compile("^(?:" + yr.NationalPrefixForParsing + ")"); err != nil {
			return nil, err
		}
	} else if yr.NationalPrefix != "" {
		region.NationalPrefixForParsing = regexp.MustCompile("^(?:" + regexp.QuoteMeta(yr.NationalPrefix) + ")")
	}
	if yr.LeadingDigits != "" {
		if region.LeadingDigits, err = regexp.Compile("^(?:" + yr.LeadingDigits + ")"); err != nil {
			return nil, err
		}
	}
	if region.GeneralDesc, err = yr.GeneralDesc.compile(); err != nil {
		return nil, err
	}
	if region.FixedLine, err = yr.FixedLine.compile(); err != nil {
		return nil, err
	}
	if region.Mobile, err = yr.Mobile.compile(); err != nil {
		return nil, err
	}
	if region.TollFree, err = yr.TollFree.compile(); err != nil {
		return nil, err
	}
	if region.PremiumRate, err = yr.PremiumRate.compile(); err != nil {
		return nil, err
	}
	if region.Voip, err = yr.Voip.compile(); err != nil {
		return nil, err
	}
	if region.PersonalNumber, err = yr.PersonalNumber.compile(); err != nil {
		return nil, err
	}
	for _, nf := range yr.NumberFormats {
		compiled, err := nf.compile()
		if err != nil {
			return nil, err
		}
		region.NumberFormats = append(region.NumberFormats, compiled)
	}
	for _, nf := range yr.IntlNumberFormats {
		compiled, err := nf.compile()
		if err != nil {
			return nil, err
		}
		region.IntlNumberFormats = append(region.IntlNumberFormats, compiled)
	}
	return region, nil
}
