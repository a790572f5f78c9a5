package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// countryNamers resolve ISO region codes to the names merchants type into zones.
var countryNamers = []display.Namer{
	display.Regions(language.English),
	display.Regions(language.French),
}

// CountryKey folds a country label for comparison: surrounding and repeated
// spaces dropped, diacritics stripped, typographic apostrophes made plain,
// case folded. "  Sénégal " -> "senegal", "Côte d’Ivoire" -> "cote d'ivoire".
func CountryKey(label string) string {
	label = strings.Join(strings.Fields(label), " ")
	if label == "" {
		return ""
	}
	// Transformers and casers carry state, so they are built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Map(plainApostrophe), norm.NFC)
	stripped, _, err := transform.String(stripMarks, label)
	if err != nil {
		stripped = label
	}
	return cases.Fold().String(stripped)
}

func plainApostrophe(r rune) rune {
	switch r {
	case '\u2019', '\u2018', '\u02BC':
		return '\''
	}
	return r
}

// CountryAliases returns every key label may match under. ISO 3166-1 codes
// ("SN", "SEN") also yield their English and French names.
func CountryAliases(label string) []string {
	key := CountryKey(label)
	if key == "" {
		return nil
	}
	aliases := []string{key}

	trimmed := strings.TrimSpace(label)
	if len(trimmed) != 2 && len(trimmed) != 3 {
		return aliases
	}
	region, err := language.ParseRegion(trimmed)
	if err != nil || !region.IsCountry() {
		return aliases
	}
	aliases = append(aliases, CountryKey(region.String()))
	for _, namer := range countryNamers {
		if name := namer.Name(region); name != "" {
			aliases = append(aliases, CountryKey(name))
		}
	}
	return aliases
}

// SameCountry reports whether two labels designate the same country.
func SameCountry(a, b string) bool {
	left := CountryAliases(a)
	if len(left) == 0 {
		return false
	}
	for _, r := range CountryAliases(b) {
		for _, l := range left {
			if l == r {
				return true
			}
		}
	}
	return false
}
