package repository

import (
	"context"
	"errors"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VehicleRepository is read-only; the catalogue is managed out of band.
type VehicleRepository struct {
	db DBConn
}

func NewVehicleRepository(db DBConn) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) AllVehicles(ctx context.Context) ([]models.Vehicle, error) {
	query := `
        SELECT v.car_id, v.brand, v.model_name, v.year, v.color, v.rental_price_per_day,
            (SELECT i.image_url FROM vehicle_images i
             WHERE i.car_id = v.car_id ORDER BY i.position LIMIT 1)
        FROM vehicles v
        ORDER BY v.brand, v.model_name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		var imageURL *string
		err := rows.Scan(&v.ID, &v.Brand, &v.ModelName, &v.Year, &v.Color, &v.RentalPricePerDay, &imageURL)
		if err != nil {
			return nil, err
		}
		if imageURL != nil {
			v.ImageURL = *imageURL
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) VehicleByID(ctx context.Context, carID uuid.UUID) (*models.Vehicle, error) {
	query := `
        SELECT car_id, brand, model_name, year, color, rental_price_per_day
        FROM vehicles WHERE car_id = $1
    `
	var v models.Vehicle
	err := r.db.QueryRow(ctx, query, carID).
		Scan(&v.ID, &v.Brand, &v.ModelName, &v.Year, &v.Color, &v.RentalPricePerDay)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) ImagesByCar(ctx context.Context, carID uuid.UUID) ([]string, error) {
	query := `SELECT image_url FROM vehicle_images WHERE car_id = $1 ORDER BY position`
	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
