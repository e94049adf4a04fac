package service

import (
	"sort"
	"strings"

	"atlas/internal/country/models"
)

// SplitCSV splits a comma-separated parameter into trimmed, non-empty
// fragments. An empty input yields nil.
func SplitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// TitleCaseRegions normalizes a comma-separated region parameter into
// title-cased fragments, so "eUrope, ASIA" matches the stored "Europe" and
// "Asia" values.
func TitleCaseRegions(raw string) []string {
	regions := SplitCSV(raw)
	for i, r := range regions {
		regions[i] = titleCase(r)
	}
	return regions
}

func titleCase(s string) string {
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

// paginate slices an in-process result set into the requested page. A page
// past the end yields an empty item list with the totals intact.
func paginate(matched []models.Country, filter models.Filter) *models.Page {
	total := len(matched)
	start := (filter.Page - 1) * filter.Limit
	end := start + filter.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return &models.Page{
		CurrentPage:  filter.Page,
		TotalPages:   totalPages(total, filter.Limit),
		TotalRecords: total,
		Items:        matched[start:end],
	}
}

func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

// invertLanguages pivots the per-country dataset into per-language aggregates.
// Each country counts once per language it speaks, contributing its whole
// population. Output is sorted by language name for stable responses.
func invertLanguages(countries []models.Country) []models.LanguageAggregate {
	byLanguage := make(map[string]*models.LanguageAggregate)
	for i := range countries {
		c := &countries[i]
		for _, language := range c.Languages {
			agg, ok := byLanguage[language]
			if !ok {
				agg = &models.LanguageAggregate{Language: language}
				byLanguage[language] = agg
			}
			agg.Countries = append(agg.Countries, c.CommonName)
			agg.TotalSpeakers += c.Population
		}
	}

	names := make([]string, 0, len(byLanguage))
	for name := range byLanguage {
		names = append(names, name)
	}
	sort.Strings(names)

	aggregates := make([]models.LanguageAggregate, 0, len(names))
	for _, name := range names {
		agg := byLanguage[name]
		sort.Strings(agg.Countries)
		aggregates = append(aggregates, *agg)
	}
	return aggregates
}
