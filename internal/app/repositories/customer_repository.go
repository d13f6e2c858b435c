package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/eduplanhq/eduplan-backend/internal/app/models"
	"github.com/eduplanhq/eduplan-backend/internal/db"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// CustomerRecord is a customer row joined with its owning user.
type CustomerRecord struct {
	Customer models.Customer
	User     models.User
}

// CustomerRepository handles customer profile database operations
type CustomerRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(database *db.PostgresDB) *CustomerRepository {
	return &CustomerRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByUserID fetches a customer profile by owning user id. A nil customer
// with a nil error means the user has no customer profile yet.
func (r *CustomerRepository) GetByUserID(ctx context.Context, userID int64) (*models.Customer, error) {
	sql, args, err := r.sb.Select("id", "user_id", "company_name", "title", "notes", "created_at").
		From("customers").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get customer query: %w", err)
	}

	customer := &models.Customer{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&customer.ID, &customer.UserID, &customer.CompanyName,
		&customer.Title, &customer.Notes, &customer.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting customer")
		return nil, fmt.Errorf("error getting customer: %w", err)
	}

	return customer, nil
}

// Create inserts a customer profile for a user
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	sql, args, err := r.sb.Insert("customers").
		Columns("user_id", "company_name", "title", "notes").
		Values(customer.UserID, customer.CompanyName, customer.Title, customer.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create customer query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", customer.UserID).Msg("Error creating customer")
		return fmt.Errorf("error creating customer: %w", err)
	}

	return nil
}

// Update overwrites the mutable fields of a customer profile
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	sql, args, err := r.sb.Update("customers").
		Set("company_name", customer.CompanyName).
		Set("title", customer.Title).
		Set("notes", customer.Notes).
		Where(squirrel.Eq{"id": customer.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update customer query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("customerID", customer.ID).Msg("Error updating customer")
		return fmt.Errorf("error updating customer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// List returns all customer profiles joined with their users, newest first.
func (r *CustomerRepository) List(ctx context.Context) ([]CustomerRecord, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT c.id, c.user_id, c.company_name, c.title, c.notes, c.created_at,
		       u.email, u.first_name, u.last_name, u.phone_number
		FROM customers c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.created_at DESC`)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list customers query")
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	defer rows.Close()

	records := []CustomerRecord{}
	for rows.Next() {
		var rec CustomerRecord
		err := rows.Scan(
			&rec.Customer.ID, &rec.Customer.UserID, &rec.Customer.CompanyName,
			&rec.Customer.Title, &rec.Customer.Notes, &rec.Customer.CreatedAt,
			&rec.User.Email, &rec.User.FirstName, &rec.User.LastName, &rec.User.PhoneNumber)
		if err != nil {
			return nil, fmt.Errorf("error scanning customer row: %w", err)
		}
		rec.User.ID = rec.Customer.UserID
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	return records, nil
}

// DeleteByID removes a customer profile by its id
func (r *CustomerRepository) DeleteByID(ctx context.Context, customerID int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, customerID)
	if err != nil {
		logger.Error().Err(err).Int64("customerID", customerID).Msg("Error deleting customer")
		return fmt.Errorf("error deleting customer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count counts all customer profiles
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(id) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting customers: %w", err)
	}
	return count, nil
}
