package ai

import (
	"fmt"

	"travelplanner/pkg/itinerary/types"
)

// FallbackItinerary builds a generic plan with one entry per day from the
// start date to the end date inclusive. It makes no external call.
func FallbackItinerary(p types.TripParams) types.Document {
	focus := "sightseeing"
	if len(p.Interests) > 0 {
		focus = p.Interests[0]
	}

	days := p.Days()
	if days < 0 {
		days = 0
	}
	plan := make([]types.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		plan = append(plan, types.DayPlan{
			Day:  i + 1,
			Date: p.StartDate.AddDays(i).String(),
			Activities: []string{
				fmt.Sprintf("Morning: Explore %s city center", p.Destination),
				fmt.Sprintf("Afternoon: Visit local attractions related to %s", focus),
				"Evening: Dinner and local entertainment",
			},
			Meals: types.Meals{
				Breakfast: "Local cafe or hotel breakfast",
				Lunch:     "Traditional local restaurant",
				Dinner:    "Recommended restaurant in city center",
			},
			Accommodation: fmt.Sprintf("Hotel in %s city center", p.Destination),
			Notes:         fmt.Sprintf("Day %d of your %s adventure", i+1, p.Destination),
		})
	}

	return types.Document{
		Itinerary:          plan,
		TotalEstimatedCost: "Budget varies based on preferences",
		BestTimeToVisit:    "Check local weather and seasons",
		Transportation:     "Public transport and walking recommended",
		CulturalTips:       "Research local customs and etiquette",
	}
}
