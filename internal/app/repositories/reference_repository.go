package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/db"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// ReferenceRepository serves the static country and state lookup tables
type ReferenceRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewReferenceRepository creates a new ReferenceRepository
func NewReferenceRepository(database *db.PostgresDB) *ReferenceRepository {
	return &ReferenceRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListCountries returns all countries ordered by name
func (r *ReferenceRepository) ListCountries(ctx context.Context) ([]models.Country, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("countries").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list countries query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list countries query")
		return nil, fmt.Errorf("error listing countries: %w", err)
	}
	defer rows.Close()

	countries := []models.Country{}
	for rows.Next() {
		var country models.Country
		if err := rows.Scan(&country.ID, &country.Name); err != nil {
			return nil, fmt.Errorf("error scanning country row: %w", err)
		}
		countries = append(countries, country)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country rows: %w", err)
	}

	return countries, nil
}

// ListStates returns all states of a country ordered by name. An unknown
// country id yields an empty list, not an error.
func (r *ReferenceRepository) ListStates(ctx context.Context, countryID int64) ([]models.State, error) {
	sql, args, err := r.sb.Select("id", "name", "country_id").
		From("states").
		Where(squirrel.Eq{"country_id": countryID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list states query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("countryID", countryID).Msg("Error executing list states query")
		return nil, fmt.Errorf("error listing states: %w", err)
	}
	defer rows.Close()

	states := []models.State{}
	for rows.Next() {
		var state models.State
		if err := rows.Scan(&state.ID, &state.Name, &state.CountryID); err != nil {
			return nil, fmt.Errorf("error scanning state row: %w", err)
		}
		states = append(states, state)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating state rows: %w", err)
	}

	return states, nil
}

// CountCountries counts all countries
func (r *ReferenceRepository) CountCountries(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(id) FROM countries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting countries: %w", err)
	}
	return count, nil
}

// InsertCountry inserts a country with its states in one transaction.
// Only the seeder writes to these tables.
func (r *ReferenceRepository) InsertCountry(ctx context.Context, name string, stateNames []string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var countryID int64
		err := tx.QueryRow(ctx, `INSERT INTO countries (name) VALUES ($1) RETURNING id`, name).
			Scan(&countryID)
		if err != nil {
			return fmt.Errorf("error inserting country: %w", err)
		}

		for _, stateName := range stateNames {
			_, err := tx.Exec(ctx, `INSERT INTO states (name, country_id) VALUES ($1, $2)`,
				stateName, countryID)
			if err != nil {
				return fmt.Errorf("error inserting state: %w", err)
			}
		}

		return nil
	})
}
