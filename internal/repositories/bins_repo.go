package repositories

import (
	"context"
	"errors"

	"hhdonations/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BinRepository interface {
	Create(ctx context.Context, bin *models.Bin) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bin, error)
	Update(ctx context.Context, bin *models.Bin) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Bin, error)
}

type binRepo struct {
	db Database
}

func NewBinRepository(db Database) BinRepository {
	return &binRepo{db: db}
}

// nextBinNumber allocates the next sequential bin number inside tx.
// Reading the sequence in the same transaction as the insert makes the
// allocation atomic with respect to concurrent creations, and sequence
// values are never reused after a bin is deleted.
func nextBinNumber(ctx context.Context, tx pgx.Tx) (string, error) {
	var binNumber string
	err := tx.QueryRow(ctx, `SELECT 'HH-' || lpad(nextval('bin_number_seq')::text, 4, '0')`).Scan(&binNumber)
	if err != nil {
		return "", err
	}
	return binNumber, nil
}

func (r *binRepo) Create(ctx context.Context, bin *models.Bin) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	binNumber, err := nextBinNumber(ctx, tx)
	if err != nil {
		return err
	}
	bin.BinNumber = binNumber

	query := `
		INSERT INTO bins (id, bin_number, name, address, latitude, longitude, hours, type, drive_up, notes, distance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err = tx.Exec(ctx, query, bin.ID, bin.BinNumber, bin.Name, bin.Address, bin.Latitude, bin.Longitude, bin.Hours, bin.Type, bin.DriveUp, bin.Notes, bin.Distance, bin.Status)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *binRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Bin, error) {
	bin := &models.Bin{}
	query := `
		SELECT id, bin_number, name, address, latitude, longitude, hours, type, drive_up, notes, distance, status, created_at, updated_at
		FROM bins
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&bin.ID, &bin.BinNumber, &bin.Name, &bin.Address, &bin.Latitude, &bin.Longitude, &bin.Hours, &bin.Type, &bin.DriveUp, &bin.Notes, &bin.Distance, &bin.Status, &bin.CreatedAt, &bin.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bin, nil
}

func (r *binRepo) Update(ctx context.Context, bin *models.Bin) error {
	query := `
		UPDATE bins
		SET name = $1, address = $2, latitude = $3, longitude = $4, hours = $5, type = $6, drive_up = $7, notes = $8, distance = $9, status = $10, updated_at = NOW()
		WHERE id = $11
	`
	ct, err := r.db.Exec(ctx, query, bin.Name, bin.Address, bin.Latitude, bin.Longitude, bin.Hours, bin.Type, bin.DriveUp, bin.Notes, bin.Distance, bin.Status, bin.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the bin and its dependent pickups in one
// transaction, so pickup rows never hold a dangling bin reference.
func (r *binRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM pickups WHERE bin_id = $1`, id); err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, `DELETE FROM bins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *binRepo) List(ctx context.Context) ([]*models.Bin, error) {
	query := `
		SELECT id, bin_number, name, address, latitude, longitude, hours, type, drive_up, notes, distance, status, created_at, updated_at
		FROM bins
		ORDER BY bin_number ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bins []*models.Bin
	for rows.Next() {
		bin := &models.Bin{}
		if err := rows.Scan(&bin.ID, &bin.BinNumber, &bin.Name, &bin.Address, &bin.Latitude, &bin.Longitude, &bin.Hours, &bin.Type, &bin.DriveUp, &bin.Notes, &bin.Distance, &bin.Status, &bin.CreatedAt, &bin.UpdatedAt); err != nil {
			return nil, err
		}
		bins = append(bins, bin)
	}
	return bins, rows.Err()
}
