package model

// Region is the closed set of storefront regions
type Region string

const (
	RegionNorthAmerica Region = "north-america"
	RegionSouthAmerica Region = "south-america"
	RegionEurope       Region = "europe"
	RegionMENA         Region = "mena"
	RegionAsia         Region = "asia"
	RegionAfrica       Region = "africa"
	RegionAustralia    Region = "australia"
	RegionRussia       Region = "russia"
)

var regions = map[Region]bool{
	RegionNorthAmerica: true,
	RegionSouthAmerica: true,
	RegionEurope:       true,
	RegionMENA:         true,
	RegionAsia:         true,
	RegionAfrica:       true,
	RegionAustralia:    true,
	RegionRussia:       true,
}

// ParseRegion validates a region selector. Empty input falls back to
// north-america, anything else outside the set is rejected.
func ParseRegion(s string) (Region, bool) {
	if s == "" {
		return RegionNorthAmerica, true
	}
	r := Region(s)
	return r, regions[r]
}

// Language is the closed set of UI languages
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
	LanguageES Language = "es"
	LanguageFR Language = "fr"
	LanguageIT Language = "it"
	LanguageZH Language = "zh"
	LanguageTR Language = "tr"
	LanguageRU Language = "ru"
	LanguagePT Language = "pt"
	LanguageUR Language = "ur"
	LanguageHI Language = "hi"
	LanguageKO Language = "ko"
)

var languages = map[Language]bool{
	LanguageEN: true, LanguageAR: true, LanguageES: true, LanguageFR: true,
	LanguageIT: true, LanguageZH: true, LanguageTR: true, LanguageRU: true,
	LanguagePT: true, LanguageUR: true, LanguageHI: true, LanguageKO: true,
}

// ParseLanguage validates a language code, defaulting to English.
func ParseLanguage(s string) (Language, bool) {
	if s == "" {
		return LanguageEN, true
	}
	l := Language(s)
	return l, languages[l]
}
