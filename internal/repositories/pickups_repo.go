package repositories

import (
	"context"
	"errors"

	"hhdonations/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PickupRepository interface {
	Create(ctx context.Context, pickup *models.Pickup) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error)
	Update(ctx context.Context, pickup *models.Pickup) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.PickupDetail, error)
	Stats(ctx context.Context) (*models.PickupStats, error)
}

type pickupRepo struct {
	db Database
}

func NewPickupRepository(db Database) PickupRepository {
	return &pickupRepo{db: db}
}

func (r *pickupRepo) Create(ctx context.Context, pickup *models.Pickup) error {
	query := `
		INSERT INTO pickups (id, bin_id, driver_id, pickup_date, pickup_time, load_type, load_weight, status, completed_at, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, pickup.ID, pickup.BinID, pickup.DriverID, pickup.PickupDate, pickup.PickupTime, pickup.LoadType, pickup.LoadWeight, pickup.Status, pickup.CompletedAt, pickup.Notes)
	return err
}

const pickupDetailColumns = `
	p.id, p.bin_id, p.driver_id, p.pickup_date, p.pickup_time, p.load_type, p.load_weight, p.status, p.completed_at, p.notes, p.created_at, p.updated_at,
	b.bin_number, b.name, b.address,
	d.name, d.phone
`

func scanPickupDetail(row pgx.Row) (*models.PickupDetail, error) {
	detail := &models.PickupDetail{}
	err := row.Scan(
		&detail.ID, &detail.BinID, &detail.DriverID, &detail.PickupDate, &detail.PickupTime,
		&detail.LoadType, &detail.LoadWeight, &detail.Status, &detail.CompletedAt, &detail.Notes,
		&detail.CreatedAt, &detail.UpdatedAt,
		&detail.BinNumber, &detail.BinName, &detail.BinAddress,
		&detail.DriverName, &detail.DriverPhone,
	)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *pickupRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error) {
	query := `
		SELECT ` + pickupDetailColumns + `
		FROM pickups p
		LEFT JOIN bins b ON p.bin_id = b.id
		LEFT JOIN drivers d ON p.driver_id = d.id
		WHERE p.id = $1
	`
	detail, err := scanPickupDetail(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *pickupRepo) Update(ctx context.Context, pickup *models.Pickup) error {
	query := `
		UPDATE pickups
		SET bin_id = $1, driver_id = $2, pickup_date = $3, pickup_time = $4, load_type = $5, load_weight = $6, status = $7, completed_at = $8, notes = $9, updated_at = NOW()
		WHERE id = $10
	`
	ct, err := r.db.Exec(ctx, query, pickup.BinID, pickup.DriverID, pickup.PickupDate, pickup.PickupTime, pickup.LoadType, pickup.LoadWeight, pickup.Status, pickup.CompletedAt, pickup.Notes, pickup.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pickupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM pickups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pickupRepo) List(ctx context.Context) ([]*models.PickupDetail, error) {
	query := `
		SELECT ` + pickupDetailColumns + `
		FROM pickups p
		LEFT JOIN bins b ON p.bin_id = b.id
		LEFT JOIN drivers d ON p.driver_id = d.id
		ORDER BY p.pickup_date DESC, p.pickup_time DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pickups []*models.PickupDetail
	for rows.Next() {
		detail, err := scanPickupDetail(rows)
		if err != nil {
			return nil, err
		}
		pickups = append(pickups, detail)
	}
	return pickups, rows.Err()
}

func (r *pickupRepo) Stats(ctx context.Context) (*models.PickupStats, error) {
	stats := &models.PickupStats{}
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'scheduled'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COALESCE(SUM(load_weight) FILTER (WHERE status = 'completed'), 0)
		FROM pickups
	`
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalPickups, &stats.ScheduledPickups, &stats.CompletedPickups, &stats.TotalWeight)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
