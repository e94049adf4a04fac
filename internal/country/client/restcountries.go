// Package client implements the upstream country-data provider collaborator.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"atlas/internal/country/models"
	"atlas/internal/platform/config"
	dErrors "atlas/pkg/domain-errors"
)

// upstreamCountry is the provider's wire shape for a single country.
// Fields with no local equivalent are ignored; fields the provider omits stay
// zero-valued rather than failing the record.
type upstreamCountry struct {
	Name struct {
		Common     string                       `json:"common"`
		Official   string                       `json:"official"`
		NativeName map[string]models.NativeName `json:"nativeName"`
	} `json:"name"`
	CCA2         string                       `json:"cca2"`
	CCA3         string                       `json:"cca3"`
	CCN3         string                       `json:"ccn3"`
	Region       string                       `json:"region"`
	Subregion    string                       `json:"subregion"`
	Languages    map[string]string            `json:"languages"`
	Currencies   map[string]models.Currency   `json:"currencies"`
	Translations map[string]models.NativeName `json:"translations"`
	Demonyms     map[string]models.Demonym    `json:"demonyms"`
	Population   int64                        `json:"population"`
	Capital      []string                     `json:"capital"`
	Latlng       []float64                    `json:"latlng"`
	Landlocked   bool                         `json:"landlocked"`
	Independent  bool                         `json:"independent"`
	Status       string                       `json:"status"`
	Borders      []string                     `json:"borders"`
	Timezones    []string                     `json:"timezones"`
	Continents   []string                     `json:"continents"`
	AltSpellings []string                     `json:"altSpellings"`
	TLD          []string                     `json:"tld"`
	Area         float64                      `json:"area"`
	Flags        models.Flags                 `json:"flags"`
	CoatOfArms   models.CoatOfArms            `json:"coatOfArms"`
	Maps         models.Maps                  `json:"maps"`
	IDD          models.IDD                   `json:"idd"`
}

// RestCountries fetches the full country dataset from a restcountries-style
// provider in a single bulk call.
type RestCountries struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	logger     *slog.Logger
}

// Option configures the client.
type Option func(c *RestCountries)

// WithHTTPClient injects a custom HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *RestCountries) {
		c.httpClient = httpClient
	}
}

// WithRetries enables retry-on-transient-failure for the bulk fetch.
func WithRetries(attempts int) Option {
	return func(c *RestCountries) {
		c.retries = attempts
	}
}

// New constructs a provider client from configuration.
func New(cfg config.Upstream, logger *slog.Logger, opts ...Option) *RestCountries {
	c := &RestCountries{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll retrieves the complete dataset from the provider's bulk endpoint.
//
// Errors: returns CodeUpstream when the provider is unreachable or responds
// non-2xx; transient failures are retried when configured.
func (c *RestCountries) FetchAll(ctx context.Context) ([]models.Country, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 500 * time.Millisecond
			c.logger.WarnContext(ctx, "retrying upstream fetch",
				"attempt", attempt+1,
				"backoff", backoff.String(),
				"error", lastErr,
			)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, dErrors.Wrap(ctx.Err(), dErrors.CodeTimeout, "upstream fetch canceled")
			}
		}

		countries, err := c.fetchOnce(ctx)
		if err == nil {
			return countries, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *RestCountries) fetchOnce(ctx context.Context) ([]models.Country, error) {
	url := c.baseURL + "/all"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build upstream request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "country provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, dErrors.New(dErrors.CodeUpstream,
			fmt.Sprintf("country provider returned status %d", resp.StatusCode))
	}

	var upstream []upstreamCountry
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "decode country provider response")
	}

	countries := make([]models.Country, 0, len(upstream))
	for i := range upstream {
		countries = append(countries, mapCountry(&upstream[i]))
	}
	return countries, nil
}

// mapCountry converts the wire shape into the canonical record. Missing
// upstream fields stay unset; malformed entries are persisted as-is rather
// than skipped.
func mapCountry(u *upstreamCountry) models.Country {
	return models.Country{
		CommonName:         u.Name.Common,
		OfficialName:       u.Name.Official,
		NativeNames:        u.Name.NativeName,
		CCA2:               u.CCA2,
		CCA3:               u.CCA3,
		CCN3:               u.CCN3,
		Region:             u.Region,
		Subregion:          u.Subregion,
		Languages:          u.Languages,
		Currencies:         u.Currencies,
		Translations:       u.Translations,
		Demonyms:           u.Demonyms,
		Population:         u.Population,
		Capital:            u.Capital,
		Latlng:             u.Latlng,
		Landlocked:         u.Landlocked,
		Independent:        u.Independent,
		Status:             u.Status,
		BorderingCountries: u.Borders,
		Timezones:          u.Timezones,
		Continents:         u.Continents,
		AltSpellings:       u.AltSpellings,
		TopLevelDomains:    u.TLD,
		Area:               u.Area,
		Flags:              u.Flags,
		CoatOfArms:         u.CoatOfArms,
		Maps:               u.Maps,
		IDD:                u.IDD,
	}
}
