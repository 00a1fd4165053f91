package ai

import (
	"strings"
	"testing"
	"time"

	"travelplanner/entities"
	"travelplanner/pkg/itinerary/types"
)

func TestFallbackItineraryDayCount(t *testing.T) {
	start := entities.NewDate(2024, time.December, 30)
	for _, span := range []int{0, 1, 2, 6, 30} {
		p := types.TripParams{Destination: "Lisbon", StartDate: start, EndDate: start.AddDays(span)}
		doc := FallbackItinerary(p)
		if len(doc.Itinerary) != span+1 {
			t.Fatalf("span %d: expected %d days, got %d", span, span+1, len(doc.Itinerary))
		}
		for i, d := range doc.Itinerary {
			if d.Day != i+1 {
				t.Fatalf("span %d: day index %d at position %d", span, d.Day, i)
			}
			if want := start.AddDays(i).String(); d.Date != want {
				t.Fatalf("span %d: date %s, want %s", span, d.Date, want)
			}
		}
	}
}

func TestFallbackItineraryContent(t *testing.T) {
	p := types.TripParams{
		Destination: "Kyoto",
		StartDate:   entities.NewDate(2024, time.April, 1),
		EndDate:     entities.NewDate(2024, time.April, 1),
		Interests:   []string{"temples", "food"},
	}
	doc := FallbackItinerary(p)
	day := doc.Itinerary[0]
	if len(day.Activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(day.Activities))
	}
	if !strings.Contains(day.Activities[0], "Kyoto") || !strings.Contains(day.Activities[1], "temples") {
		t.Fatalf("activities do not reference trip: %v", day.Activities)
	}
	if !strings.Contains(day.Accommodation, "Kyoto") {
		t.Fatalf("accommodation: %s", day.Accommodation)
	}
	if day.Meals.Breakfast == "" || day.Meals.Lunch == "" || day.Meals.Dinner == "" {
		t.Fatalf("missing meals: %+v", day.Meals)
	}
	if doc.TotalEstimatedCost == "" || doc.BestTimeToVisit == "" || doc.Transportation == "" || doc.CulturalTips == "" {
		t.Fatalf("missing trip-level fields: %+v", doc)
	}

	p.Interests = nil
	if got := FallbackItinerary(p).Itinerary[0].Activities[1]; !strings.Contains(got, "sightseeing") {
		t.Fatalf("expected sightseeing default, got %s", got)
	}
}

func TestFallbackItineraryReversedRange(t *testing.T) {
	p := types.TripParams{
		Destination: "Oslo",
		StartDate:   entities.NewDate(2024, time.June, 10),
		EndDate:     entities.NewDate(2024, time.June, 1),
	}
	if doc := FallbackItinerary(p); len(doc.Itinerary) != 0 {
		t.Fatalf("expected no days for reversed range, got %d", len(doc.Itinerary))
	}
}
