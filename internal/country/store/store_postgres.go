package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"atlas/internal/country/models"
	"atlas/pkg/platform/sentinel"
)

const countryColumns = `cca3, cca2, ccn3, common_name, official_name, region, subregion, status,
	population, area, landlocked, independent,
	native_names, languages, currencies, translations, demonyms, flags, coat_of_arms, maps, idd,
	capital, latlng, bordering_countries, timezones, continents, alt_spellings, tlds`

// PostgresStore persists countries in PostgreSQL. Composite fields are stored
// as JSON text columns through the store-shape codec.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed country store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindByCode retrieves a country by its 3-letter code.
func (s *PostgresStore) FindByCode(ctx context.Context, code string) (*models.Country, error) {
	query := fmt.Sprintf(`SELECT %s FROM countries WHERE cca3 = $1`, countryColumns)
	country, err := scanCountry(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("country not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find country by code: %w", err)
	}
	return country, nil
}

// FindFiltered runs the filter and pagination server-side and returns the
// matching page plus the total filtered count.
func (s *PostgresStore) FindFiltered(ctx context.Context, filter models.Filter) ([]models.Country, int, error) {
	where, args := filterClauses(filter)
	query := fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total FROM countries%s ORDER BY cca3
		LIMIT $%d OFFSET $%d`, countryColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("find countries: %w", err)
	}
	defer rows.Close()

	var countries []models.Country
	total := 0
	for rows.Next() {
		country, n, err := scanCountryWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan country: %w", err)
		}
		total = n
		countries = append(countries, *country)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate countries: %w", err)
	}

	// An empty page past the end still needs the real total.
	if countries == nil && filter.Page > 1 {
		countQuery := "SELECT COUNT(*) FROM countries" + where
		if err := s.db.QueryRowContext(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count countries: %w", err)
		}
	}
	return countries, total, nil
}

// filterClauses builds the WHERE clause for the AND-combined filter.
func filterClauses(filter models.Filter) (string, []any) {
	var clauses []string
	var args []any
	if len(filter.Regions) > 0 {
		placeholders := make([]string, len(filter.Regions))
		for i, region := range filter.Regions {
			args = append(args, strings.ToLower(region))
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("LOWER(region) IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.MinPopulation != nil {
		args = append(args, *filter.MinPopulation)
		clauses = append(clauses, fmt.Sprintf("population >= $%d", len(args)))
	}
	if filter.MaxPopulation != nil {
		args = append(args, *filter.MaxPopulation)
		clauses = append(clauses, fmt.Sprintf("population <= $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// ListAll returns the full unfiltered country list.
func (s *PostgresStore) ListAll(ctx context.Context) ([]models.Country, error) {
	query := fmt.Sprintf(`SELECT %s FROM countries ORDER BY cca3`, countryColumns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()
	return collectCountries(rows)
}

// FindByRegion returns every country in the given region (exact match on the
// stored region string).
func (s *PostgresStore) FindByRegion(ctx context.Context, region string) ([]models.Country, error) {
	query := fmt.Sprintf(`SELECT %s FROM countries WHERE region = $1 ORDER BY cca3`, countryColumns)
	rows, err := s.db.QueryContext(ctx, query, region)
	if err != nil {
		return nil, fmt.Errorf("find countries by region: %w", err)
	}
	defer rows.Close()
	return collectCountries(rows)
}

// ReplaceAll clears the country table and bulk-inserts the given records as
// one transaction. Re-running is always safe: it fully replaces, never merges.
func (s *PostgresStore) ReplaceAll(ctx context.Context, countries []models.Country) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback after commit is no-op
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM countries`); err != nil {
		return fmt.Errorf("clear countries: %w", err)
	}

	insert := fmt.Sprintf(`INSERT INTO countries (%s) VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		 $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`, countryColumns)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range countries {
		shape, err := models.ToStoreShape(&countries[i])
		if err != nil {
			return fmt.Errorf("encode country: %w", err)
		}
		_, err = stmt.ExecContext(ctx,
			shape.CCA3, shape.CCA2, shape.CCN3, shape.CommonName, shape.OfficialName,
			shape.Region, shape.Subregion, shape.Status,
			shape.Population, shape.Area, shape.Landlocked, shape.Independent,
			shape.NativeNames, shape.Languages, shape.Currencies, shape.Translations,
			shape.Demonyms, shape.Flags, shape.CoatOfArms, shape.Maps, shape.IDD,
			shape.Capital, shape.Latlng, shape.BorderingCountries, shape.Timezones,
			shape.Continents, shape.AltSpellings, shape.TopLevelDomains,
		)
		if err != nil {
			return fmt.Errorf("insert country %s: %w", shape.CCA3, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// Count returns the total number of countries.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM countries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count countries: %w", err)
	}
	return count, nil
}

// LargestByArea returns the country with the greatest area.
func (s *PostgresStore) LargestByArea(ctx context.Context) (*models.CountryArea, error) {
	var result models.CountryArea
	err := s.db.QueryRowContext(ctx,
		`SELECT common_name, area FROM countries ORDER BY area DESC LIMIT 1`,
	).Scan(&result.Name, &result.Area)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no countries: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("largest country by area: %w", err)
	}
	return &result, nil
}

// SmallestByPopulation returns the country with the smallest population.
func (s *PostgresStore) SmallestByPopulation(ctx context.Context) (*models.CountryPeople, error) {
	var result models.CountryPeople
	err := s.db.QueryRowContext(ctx,
		`SELECT common_name, population FROM countries ORDER BY population ASC LIMIT 1`,
	).Scan(&result.Name, &result.Population)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no countries: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("smallest country by population: %w", err)
	}
	return &result, nil
}

// RegionPopulations groups countries by region and sums population per group.
// An empty regions slice matches every region.
func (s *PostgresStore) RegionPopulations(ctx context.Context, regions []string) ([]models.RegionSum, error) {
	query := `SELECT region, SUM(population) FROM countries`
	var args []any
	if len(regions) > 0 {
		placeholders := make([]string, len(regions))
		for i, region := range regions {
			args = append(args, strings.ToLower(region))
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		query += fmt.Sprintf(" WHERE LOWER(region) IN (%s)", strings.Join(placeholders, ", "))
	}
	query += ` GROUP BY region ORDER BY region`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("region populations: %w", err)
	}
	defer rows.Close()

	var sums []models.RegionSum
	for rows.Next() {
		var sum models.RegionSum
		if err := rows.Scan(&sum.Name, &sum.TotalPopulation); err != nil {
			return nil, fmt.Errorf("scan region sum: %w", err)
		}
		sums = append(sums, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate region sums: %w", err)
	}
	return sums, nil
}

// TopLanguage returns the language with the highest summed population across
// the countries that speak it, computed in a single grouping pass server-side.
func (s *PostgresStore) TopLanguage(ctx context.Context) (*models.LanguageRank, error) {
	// NULLIF keeps rows with no language data out of the jsonb cast.
	query := `
		SELECT l.value, SUM(c.population) AS speakers
		FROM countries c,
		     jsonb_each_text(NULLIF(NULLIF(c.languages, ''), 'null')::jsonb) l
		GROUP BY l.value
		ORDER BY speakers DESC, l.value ASC
		LIMIT 1
	`
	var rank models.LanguageRank
	err := s.db.QueryRowContext(ctx, query).Scan(&rank.Language, &rank.NumberOfSpeakers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no languages: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("top language: %w", err)
	}
	return &rank, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShape(row rowScanner, extra ...any) (*models.StoreShape, error) {
	var s models.StoreShape
	dest := []any{
		&s.CCA3, &s.CCA2, &s.CCN3, &s.CommonName, &s.OfficialName,
		&s.Region, &s.Subregion, &s.Status,
		&s.Population, &s.Area, &s.Landlocked, &s.Independent,
		&s.NativeNames, &s.Languages, &s.Currencies, &s.Translations,
		&s.Demonyms, &s.Flags, &s.CoatOfArms, &s.Maps, &s.IDD,
		&s.Capital, &s.Latlng, &s.BorderingCountries, &s.Timezones,
		&s.Continents, &s.AltSpellings, &s.TopLevelDomains,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanCountry(row rowScanner) (*models.Country, error) {
	shape, err := scanShape(row)
	if err != nil {
		return nil, err
	}
	return models.FromStoreShape(shape)
}

func scanCountryWithTotal(row rowScanner) (*models.Country, int, error) {
	var total int
	shape, err := scanShape(row, &total)
	if err != nil {
		return nil, 0, err
	}
	country, err := models.FromStoreShape(shape)
	if err != nil {
		return nil, 0, err
	}
	return country, total, nil
}

func collectCountries(rows *sql.Rows) ([]models.Country, error) {
	var countries []models.Country
	for rows.Next() {
		country, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, *country)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}
	return countries, nil
}
