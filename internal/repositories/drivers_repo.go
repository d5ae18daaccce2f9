package repositories

import (
	"context"
	"errors"

	"hhdonations/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	GetByEmail(ctx context.Context, email string) (*models.Driver, error)
	Update(ctx context.Context, driver *models.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Driver, error)
}

type driverRepo struct {
	db Database
}

func NewDriverRepository(db Database) DriverRepository {
	return &driverRepo{db: db}
}

func (r *driverRepo) Create(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (id, name, email, phone, license_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, driver.ID, driver.Name, driver.Email, driver.Phone, driver.LicenseNumber, driver.Status)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *driverRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	driver := &models.Driver{}
	query := `
		SELECT id, name, email, phone, license_number, status, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&driver.ID, &driver.Name, &driver.Email, &driver.Phone, &driver.LicenseNumber, &driver.Status, &driver.CreatedAt, &driver.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return driver, nil
}

func (r *driverRepo) GetByEmail(ctx context.Context, email string) (*models.Driver, error) {
	driver := &models.Driver{}
	query := `
		SELECT id, name, email, phone, license_number, status, created_at, updated_at
		FROM drivers
		WHERE email = $1
	`
	err := r.db.QueryRow(ctx, query, email).Scan(&driver.ID, &driver.Name, &driver.Email, &driver.Phone, &driver.LicenseNumber, &driver.Status, &driver.CreatedAt, &driver.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return driver, nil
}

func (r *driverRepo) Update(ctx context.Context, driver *models.Driver) error {
	query := `
		UPDATE drivers
		SET name = $1, email = $2, phone = $3, license_number = $4, status = $5, updated_at = NOW()
		WHERE id = $6
	`
	ct, err := r.db.Exec(ctx, query, driver.Name, driver.Email, driver.Phone, driver.LicenseNumber, driver.Status, driver.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete counts open pickups and deletes the driver inside one
// transaction, so a concurrent pickup assignment cannot defeat the
// guard between the check and the delete.
func (r *driverRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var openPickups int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM pickups
		WHERE driver_id = $1 AND status IN ('scheduled', 'in_progress')
	`, id).Scan(&openPickups)
	if err != nil {
		return err
	}
	if openPickups > 0 {
		return ErrDriverHasOpenPickups
	}

	ct, err := tx.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *driverRepo) List(ctx context.Context) ([]*models.Driver, error) {
	query := `
		SELECT id, name, email, phone, license_number, status, created_at, updated_at
		FROM drivers
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []*models.Driver
	for rows.Next() {
		driver := &models.Driver{}
		if err := rows.Scan(&driver.ID, &driver.Name, &driver.Email, &driver.Phone, &driver.LicenseNumber, &driver.Status, &driver.CreatedAt, &driver.UpdatedAt); err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}
	return drivers, rows.Err()
}
