package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"travelplanner/pkg/itinerary/types"
)

func renderGeneratePrompt(p types.TripParams) string {
	interests := strings.Join(p.Interests, ", ")
	return fmt.Sprintf(`
Create a detailed travel itinerary for %[1]s from %[2]s to %[3]s (%[4]d days).

Traveler interests: %[5]s

Reply with JSON only, using exactly this structure:
{
  "itinerary": [
    {
      "day": 1,
      "date": "%[2]s",
      "activities": [
        "Morning: activity with location",
        "Afternoon: activity with location",
        "Evening: activity with location"
      ],
      "meals": {
        "breakfast": "restaurant or cafe recommendation",
        "lunch": "restaurant or cafe recommendation",
        "dinner": "restaurant or cafe recommendation"
      },
      "accommodation": "hotel or area recommendation",
      "notes": "tips for the day"
    }
  ],
  "total_estimated_cost": "estimated budget range",
  "best_time_to_visit": "season and weather information",
  "transportation": "how to get around",
  "cultural_tips": "important cultural information"
}

Include one entry per day, %[4]d in total, with consecutive dates.
Focus on the traveler interests: %[5]s.
Name specific places, restaurants and activities.
Keep the plan realistic and allow for travel time between locations.
`, p.Destination, p.StartDate, p.EndDate, p.Days(), interests)
}

func renderAdjustPrompt(current datatypes.JSON, adjustment string) string {
	return fmt.Sprintf(`
This is the current travel itinerary:
%s

The traveler asks for this change: %q

Revise the itinerary according to the request and return the complete updated JSON.
Keep the same top-level structure, but make large, clearly visible changes.

For budget-friendly requests:
- replace every expensive restaurant with a named cheap alternative (street food, markets, affordable cafes)
- swap paid activities for free or low-cost ones (free museums, parks, walking tours)
- move accommodation to budget options (hostels, budget hotels, cheaper neighborhoods)
- add concrete money-saving tips to the notes
- switch transportation to the cheapest options (public transport, walking, bike rental)
- give price ranges where possible

For other requests:
- cultural: add museums, cultural centers, local festivals, galleries
- food: focus on local cuisine, food markets, cooking classes, food tours
- relaxed: fewer activities, spa time, long meals, rest periods
- outdoor: hiking, parks, outdoor sports, nature

Do not make minor tweaks. Reply with JSON only.
`, indentDocument(current), adjustment)
}

func indentDocument(doc datatypes.JSON) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return string(doc)
	}
	return buf.String()
}
