package models

// Country is the canonical country record. One value type serves every layer;
// the store and cache each get their own representation through the codecs in
// this package, never through separate types.
type Country struct {
	CommonName         string                `json:"commonName"`
	OfficialName       string                `json:"officialName"`
	NativeNames        map[string]NativeName `json:"nativeName,omitempty"`
	CCA2               string                `json:"cca2"`
	CCA3               string                `json:"cca3"`
	CCN3               string                `json:"ccn3,omitempty"`
	Region             string                `json:"region"`
	Subregion          string                `json:"subregion,omitempty"`
	Languages          map[string]string     `json:"languages,omitempty"`
	Currencies         map[string]Currency   `json:"currencies,omitempty"`
	Translations       map[string]NativeName `json:"translations,omitempty"`
	Demonyms           map[string]Demonym    `json:"demonyms,omitempty"`
	Population         int64                 `json:"population"`
	Capital            []string              `json:"capital,omitempty"`
	Latlng             []float64             `json:"latlng,omitempty"`
	Landlocked         bool                  `json:"landlocked"`
	Independent        bool                  `json:"independent"`
	Status             string                `json:"status,omitempty"`
	BorderingCountries []string              `json:"borderingCountries,omitempty"`
	Timezones          []string              `json:"timezones,omitempty"`
	Continents         []string              `json:"continents,omitempty"`
	AltSpellings       []string              `json:"altSpellings,omitempty"`
	TopLevelDomains    []string              `json:"tld,omitempty"`
	Area               float64               `json:"area"`
	Flags              Flags                 `json:"flags"`
	CoatOfArms         CoatOfArms            `json:"coatOfArms"`
	Maps               Maps                  `json:"maps"`
	IDD                IDD                   `json:"idd"`
}

// NativeName is an official/common name pair in a given language.
type NativeName struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

// Currency describes a currency by display name and symbol.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Demonym holds gendered demonym forms.
type Demonym struct {
	Female string `json:"f"`
	Male   string `json:"m"`
}

// Flags holds flag image URLs.
type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt,omitempty"`
}

// CoatOfArms holds coat-of-arms image URLs.
type CoatOfArms struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
}

// Maps holds map service links.
type Maps struct {
	GoogleMaps     string `json:"googleMaps,omitempty"`
	OpenStreetMaps string `json:"openStreetMaps,omitempty"`
}

// IDD holds international direct dialing info.
type IDD struct {
	Root     string   `json:"root,omitempty"`
	Suffixes []string `json:"suffixes,omitempty"`
}

// Filter narrows a country listing. All provided predicates combine with AND.
// Regions holds title-cased fragments of the comma-separated region parameter;
// empty means no region predicate.
type Filter struct {
	Regions       []string
	MinPopulation *int64
	MaxPopulation *int64
	Page          int
	Limit         int
}

// Matches reports whether the country satisfies every provided predicate.
func (f Filter) Matches(c *Country) bool {
	if len(f.Regions) > 0 {
		found := false
		for _, region := range f.Regions {
			if region == c.Region {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinPopulation != nil && c.Population < *f.MinPopulation {
		return false
	}
	if f.MaxPopulation != nil && c.Population > *f.MaxPopulation {
		return false
	}
	return true
}

// Page is a paginated country listing.
type Page struct {
	CurrentPage  int       `json:"currentPage"`
	TotalPages   int       `json:"totalPages"`
	TotalRecords int       `json:"totalRecords"`
	Items        []Country `json:"items"`
}

// RegionSum is the store-level region roll-up before hydration.
type RegionSum struct {
	Name            string
	TotalPopulation int64
}

// RegionAggregate is a region roll-up carrying the denormalized list of
// constituent countries, not just a count.
type RegionAggregate struct {
	Name            string    `json:"name"`
	Countries       []Country `json:"countries"`
	TotalPopulation int64     `json:"totalPopulation"`
}

// LanguageAggregate is the inverted per-language view of the dataset. A
// country's full population counts toward every language it speaks, so the sum
// across all languages intentionally exceeds world population.
type LanguageAggregate struct {
	Language      string   `json:"language"`
	Countries     []string `json:"countries"`
	TotalSpeakers int64    `json:"totalSpeakers"`
}

// LanguageRank is the store-level top-language roll-up.
type LanguageRank struct {
	Language         string `json:"language"`
	NumberOfSpeakers int64  `json:"numberOfSpeakers"`
}

// Statistics is the derived global snapshot, cached as one object and
// recomputed in full on a cache miss.
type Statistics struct {
	TotalCountries              int           `json:"totalCountries"`
	LargestCountryByArea        CountryArea   `json:"largestCountryByArea"`
	SmallestCountryByPopulation CountryPeople `json:"smallestCountryByPopulation"`
	MostWidelySpokenLanguage    LanguageRank  `json:"mostWidelySpokenLanguage"`
}

// CountryArea names a country with its area.
type CountryArea struct {
	Name string  `json:"name"`
	Area float64 `json:"area"`
}

// CountryPeople names a country with its population.
type CountryPeople struct {
	Name       string `json:"name"`
	Population int64  `json:"population"`
}
