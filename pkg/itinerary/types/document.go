package types

// Document is the advisory shape of itinerary_data. Model output is stored as
// returned, so a persisted document may carry more, fewer or other fields.
type Document struct {
	Itinerary          []DayPlan `json:"itinerary"`
	TotalEstimatedCost string    `json:"total_estimated_cost"`
	BestTimeToVisit    string    `json:"best_time_to_visit"`
	Transportation     string    `json:"transportation"`
	CulturalTips       string    `json:"cultural_tips"`
}

type DayPlan struct {
	Day           int      `json:"day"`
	Date          string   `json:"date"`
	Activities    []string `json:"activities"` // morning, afternoon, evening
	Meals         Meals    `json:"meals"`
	Accommodation string   `json:"accommodation"`
	Notes         string   `json:"notes"`
}

type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}
