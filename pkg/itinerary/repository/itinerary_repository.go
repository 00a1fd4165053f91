package repository

import (
	"context"
	"errors"

	"travelplanner/entities"
)

var ErrNotFound = errors.New("itinerary not found")

type ItineraryRepository interface {
	Create(ctx context.Context, it *entities.Itinerary) error
	List(ctx context.Context) ([]entities.Itinerary, error)
	FindByID(ctx context.Context, id uint) (*entities.Itinerary, error)
	// Update loads the row, lets apply mutate it and saves it with a fresh updated_at.
	Update(ctx context.Context, id uint, apply func(*entities.Itinerary) error) (*entities.Itinerary, error)
	Delete(ctx context.Context, id uint) error
}
