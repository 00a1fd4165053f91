package types

import (
	"encoding/json"

	"travelplanner/entities"
)

// TripParams are the inputs of a generation call.
type TripParams struct {
	Destination string
	StartDate   entities.Date
	EndDate     entities.Date
	Interests   []string
}

// Days is the inclusive day count; zero or negative for a reversed range.
func (p TripParams) Days() int { return p.StartDate.DaysUntil(p.EndDate) + 1 }

type GenerateRequest struct {
	Destination string         `json:"destination" validate:"required"`
	StartDate   *entities.Date `json:"start_date" validate:"required"`
	EndDate     *entities.Date `json:"end_date" validate:"required"`
	Interests   []string       `json:"interests" validate:"required"`
}

func (r GenerateRequest) Params() TripParams {
	return TripParams{
		Destination: r.Destination,
		StartDate:   *r.StartDate,
		EndDate:     *r.EndDate,
		Interests:   r.Interests,
	}
}

type CreateRequest struct {
	Destination   string          `json:"destination" validate:"required"`
	StartDate     *entities.Date  `json:"start_date" validate:"required"`
	EndDate       *entities.Date  `json:"end_date" validate:"required"`
	Interests     []string        `json:"interests" validate:"required"`
	ItineraryData json.RawMessage `json:"itinerary_data" validate:"document"`
}

// ItineraryPatch carries only the fields present in the request body; a nil
// field is left untouched.
type ItineraryPatch struct {
	Destination   *string          `json:"destination"`
	StartDate     *entities.Date   `json:"start_date"`
	EndDate       *entities.Date   `json:"end_date"`
	Interests     *[]string        `json:"interests"`
	ItineraryData *json.RawMessage `json:"itinerary_data"`
}

type AdjustRequest struct {
	Adjustment string `json:"adjustment" validate:"required"`
}
