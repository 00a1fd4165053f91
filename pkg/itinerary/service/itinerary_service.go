package service

import (
	"context"
	"fmt"

	"travelplanner/entities"
	"travelplanner/pkg/itinerary/types"
)

type ItineraryService interface {
	Generate(ctx context.Context, req types.GenerateRequest) (*entities.Itinerary, error)
	Create(ctx context.Context, req types.CreateRequest) (*entities.Itinerary, error)
	List(ctx context.Context) ([]entities.Itinerary, error)
	Get(ctx context.Context, id uint) (*entities.Itinerary, error)
	UpdatePartial(ctx context.Context, id uint, patch types.ItineraryPatch) (*entities.Itinerary, error)
	Delete(ctx context.Context, id uint) error
	Adjust(ctx context.Context, id uint, adjustment string) (*entities.Itinerary, error)
}

// ValidationError is returned for inputs that are well-formed JSON but not
// acceptable, e.g. an end date before the start date.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }
