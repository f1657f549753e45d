package service

import (
	"context"
	"fmt"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/google/uuid"
)

// vehicleService serves the read-only catalogue, with an optional
// read-through cache in front of the by-id lookups the cart hammers.
type vehicleService struct {
	repo  ports.VehicleStore
	cache ports.VehicleCache
}

// NewVehicleService accepts a nil cache; lookups then always hit the store.
func NewVehicleService(repo ports.VehicleStore, cache ports.VehicleCache) *vehicleService {
	return &vehicleService{repo: repo, cache: cache}
}

func (s *vehicleService) AllVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.repo.AllVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *vehicleService) VehicleByID(ctx context.Context, carID uuid.UUID) (*models.Vehicle, error) {
	if s.cache != nil {
		if v, ok := s.cache.GetVehicle(ctx, carID); ok {
			return v, nil
		}
	}
	v, err := s.repo.VehicleByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetVehicle(ctx, v)
	}
	return v, nil
}

func (s *vehicleService) ImagesByCar(ctx context.Context, carID uuid.UUID) ([]string, error) {
	if s.cache != nil {
		if urls, ok := s.cache.GetImages(ctx, carID); ok {
			return urls, nil
		}
	}
	urls, err := s.repo.ImagesByCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetImages(ctx, carID, urls)
	}
	return urls, nil
}
