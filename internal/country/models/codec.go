package models

import (
	"encoding/json"
	"fmt"
)

// The relational store cannot hold nested structures natively, so every
// composite field is serialized to JSON text on the way in and parsed back on
// the way out. The cache stores records natively (whole-record JSON), so its
// codec is the identity. Keeping both mappings here, against the single
// Country type, is what guarantees the round-trip invariant: a record read
// back from either backend is field-for-field identical.

// StoreShape is the flattened row representation of a Country. Scalar fields
// map to native columns; composite fields are JSON text.
type StoreShape struct {
	CCA3         string
	CCA2         string
	CCN3         string
	CommonName   string
	OfficialName string
	Region       string
	Subregion    string
	Status       string
	Population   int64
	Area         float64
	Landlocked   bool
	Independent  bool

	NativeNames        string
	Languages          string
	Currencies         string
	Translations       string
	Demonyms           string
	Flags              string
	CoatOfArms         string
	Maps               string
	IDD                string
	Capital            string
	Latlng             string
	BorderingCountries string
	Timezones          string
	Continents         string
	AltSpellings       string
	TopLevelDomains    string
}

// ToStoreShape serializes a Country's composite fields for relational storage.
func ToStoreShape(c *Country) (*StoreShape, error) {
	s := &StoreShape{
		CCA3:         c.CCA3,
		CCA2:         c.CCA2,
		CCN3:         c.CCN3,
		CommonName:   c.CommonName,
		OfficialName: c.OfficialName,
		Region:       c.Region,
		Subregion:    c.Subregion,
		Status:       c.Status,
		Population:   c.Population,
		Area:         c.Area,
		Landlocked:   c.Landlocked,
		Independent:  c.Independent,
	}

	fields := []struct {
		name  string
		value any
		dst   *string
	}{
		{"nativeName", c.NativeNames, &s.NativeNames},
		{"languages", c.Languages, &s.Languages},
		{"currencies", c.Currencies, &s.Currencies},
		{"translations", c.Translations, &s.Translations},
		{"demonyms", c.Demonyms, &s.Demonyms},
		{"flags", c.Flags, &s.Flags},
		{"coatOfArms", c.CoatOfArms, &s.CoatOfArms},
		{"maps", c.Maps, &s.Maps},
		{"idd", c.IDD, &s.IDD},
		{"capital", c.Capital, &s.Capital},
		{"latlng", c.Latlng, &s.Latlng},
		{"borderingCountries", c.BorderingCountries, &s.BorderingCountries},
		{"timezones", c.Timezones, &s.Timezones},
		{"continents", c.Continents, &s.Continents},
		{"altSpellings", c.AltSpellings, &s.AltSpellings},
		{"tld", c.TopLevelDomains, &s.TopLevelDomains},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s for %s: %w", f.name, c.CCA3, err)
		}
		*f.dst = string(data)
	}
	return s, nil
}

// FromStoreShape parses a row back into a canonical Country.
func FromStoreShape(s *StoreShape) (*Country, error) {
	c := &Country{
		CCA3:         s.CCA3,
		CCA2:         s.CCA2,
		CCN3:         s.CCN3,
		CommonName:   s.CommonName,
		OfficialName: s.OfficialName,
		Region:       s.Region,
		Subregion:    s.Subregion,
		Status:       s.Status,
		Population:   s.Population,
		Area:         s.Area,
		Landlocked:   s.Landlocked,
		Independent:  s.Independent,
	}

	fields := []struct {
		name string
		text string
		dst  any
	}{
		{"nativeName", s.NativeNames, &c.NativeNames},
		{"languages", s.Languages, &c.Languages},
		{"currencies", s.Currencies, &c.Currencies},
		{"translations", s.Translations, &c.Translations},
		{"demonyms", s.Demonyms, &c.Demonyms},
		{"flags", s.Flags, &c.Flags},
		{"coatOfArms", s.CoatOfArms, &c.CoatOfArms},
		{"maps", s.Maps, &c.Maps},
		{"idd", s.IDD, &c.IDD},
		{"capital", s.Capital, &c.Capital},
		{"latlng", s.Latlng, &c.Latlng},
		{"borderingCountries", s.BorderingCountries, &c.BorderingCountries},
		{"timezones", s.Timezones, &c.Timezones},
		{"continents", s.Continents, &c.Continents},
		{"altSpellings", s.AltSpellings, &c.AltSpellings},
		{"tld", s.TopLevelDomains, &c.TopLevelDomains},
	}
	for _, f := range fields {
		if f.text == "" {
			continue
		}
		if err := json.Unmarshal([]byte(f.text), f.dst); err != nil {
			return nil, fmt.Errorf("decode %s for %s: %w", f.name, s.CCA3, err)
		}
	}
	return c, nil
}
