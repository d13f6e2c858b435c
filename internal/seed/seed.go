package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/app/repositories"
	"github.com/eduplanhq/eduplan-backend/internal/config"
	"github.com/eduplanhq/eduplan-backend/internal/db"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/auth"
)

// defaultCountries is the reference data served by /api/global. Seeded once;
// the tables are read-only afterwards.
var defaultCountries = map[string][]string{
	"United States": {
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
		"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
		"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
		"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
		"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
		"New Hampshire", "New Jersey", "New Mexico", "New York",
		"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
		"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
		"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
		"West Virginia", "Wisconsin", "Wyoming",
	},
	"Canada": {
		"Alberta", "British Columbia", "Manitoba", "New Brunswick",
		"Newfoundland and Labrador", "Nova Scotia", "Ontario",
		"Prince Edward Island", "Quebec", "Saskatchewan",
	},
}

// CreateDefaultData seeds the admin user and the country/state reference
// tables. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(database)

	var finalErr error

	if err := seedReferenceData(ctx, repos.ReferenceRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedAdminUser(ctx, repos.UserRepository, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedReferenceData(ctx context.Context, reference *repositories.ReferenceRepository, lgr zerolog.Logger) error {
	count, err := reference.CountCountries(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking reference data")
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("countries", count).Msg("Reference data already seeded, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding country/state reference data...")

	var finalErr error
	for name, states := range defaultCountries {
		if err := reference.InsertCountry(ctx, name, states); err != nil {
			lgr.Error().Err(err).Str("country", name).Msg("Error seeding country")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func seedAdminUser(ctx context.Context, users *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	password := cfg.Admin.Password
	if email == "" || password == "" {
		lgr.Debug().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	exists, err := users.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Debug().Msg("Admin user already exists, skipping creation")
		return nil
	}

	lgr.Info().Str("email", email).Msg("Creating default admin user...")

	hash, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Email:     email,
		Password:  hash,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      models.RoleAdmin,
		IsActive:  true,
	}

	if err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created")
	return nil
}
