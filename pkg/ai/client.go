package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"travelplanner/pkg/itinerary/types"
)

// Model is a single prompt-in, text-out round trip to a generative model.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client turns trip parameters and adjustment requests into itinerary
// documents. Unparseable model output never fails a call: generation falls
// back to a synthesized plan, adjustment keeps the current document.
type Client interface {
	GenerateItinerary(ctx context.Context, p types.TripParams) (datatypes.JSON, error)
	AdjustItinerary(ctx context.Context, current datatypes.JSON, adjustment string) (datatypes.JSON, error)
}

type planner struct{ model Model }

func New(m Model) Client { return &planner{model: m} }

func (c *planner) GenerateItinerary(ctx context.Context, p types.TripParams) (datatypes.JSON, error) {
	reply, err := c.model.Generate(ctx, renderGeneratePrompt(p))
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}
	doc, err := parseReply(reply)
	if err != nil {
		log.Printf("[ai] generate: unparseable reply for %q, using fallback: %v", p.Destination, err)
		fb, err := json.Marshal(FallbackItinerary(p))
		if err != nil {
			return nil, fmt.Errorf("encode fallback: %w", err)
		}
		return datatypes.JSON(fb), nil
	}
	return doc, nil
}

func (c *planner) AdjustItinerary(ctx context.Context, current datatypes.JSON, adjustment string) (datatypes.JSON, error) {
	reply, err := c.model.Generate(ctx, renderAdjustPrompt(current, adjustment))
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}
	doc, err := parseReply(reply)
	if err != nil {
		log.Printf("[ai] adjust: unparseable reply, keeping current itinerary: %v", err)
		return current, nil
	}
	return doc, nil
}
