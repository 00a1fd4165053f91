package serviceImp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/datatypes"

	"travelplanner/entities"
	"travelplanner/pkg/ai"
	"travelplanner/pkg/itinerary/repository"
	"travelplanner/pkg/itinerary/service"
	"travelplanner/pkg/itinerary/types"
)

type ItinerarySvc struct {
	repo repository.ItineraryRepository
	llm  ai.Client
}

var _ service.ItineraryService = (*ItinerarySvc)(nil)

func NewItineraryService(repo repository.ItineraryRepository, llm ai.Client) *ItinerarySvc {
	return &ItinerarySvc{repo: repo, llm: llm}
}

func (s *ItinerarySvc) Generate(ctx context.Context, req types.GenerateRequest) (*entities.Itinerary, error) {
	p := req.Params()
	if err := checkRange(p.StartDate, p.EndDate); err != nil {
		return nil, err
	}
	// the model call is not tied to the lifetime of the caller's request
	doc, err := s.llm.GenerateItinerary(context.WithoutCancel(ctx), p)
	if err != nil {
		return nil, err
	}
	it := &entities.Itinerary{
		Destination:   p.Destination,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Interests:     p.Interests,
		ItineraryData: doc,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *ItinerarySvc) Create(ctx context.Context, req types.CreateRequest) (*entities.Itinerary, error) {
	if err := checkRange(*req.StartDate, *req.EndDate); err != nil {
		return nil, err
	}
	doc, err := compact(req.ItineraryData)
	if err != nil {
		return nil, &service.ValidationError{Field: "itinerary_data", Msg: err.Error()}
	}
	it := &entities.Itinerary{
		Destination:   req.Destination,
		StartDate:     *req.StartDate,
		EndDate:       *req.EndDate,
		Interests:     req.Interests,
		ItineraryData: doc,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *ItinerarySvc) List(ctx context.Context) ([]entities.Itinerary, error) {
	return s.repo.List(ctx)
}

func (s *ItinerarySvc) Get(ctx context.Context, id uint) (*entities.Itinerary, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ItinerarySvc) UpdatePartial(ctx context.Context, id uint, patch types.ItineraryPatch) (*entities.Itinerary, error) {
	if patch.Destination != nil && strings.TrimSpace(*patch.Destination) == "" {
		return nil, &service.ValidationError{Field: "destination", Msg: "must not be empty"}
	}
	var doc datatypes.JSON
	if patch.ItineraryData != nil {
		var err error
		if doc, err = compact(*patch.ItineraryData); err != nil {
			return nil, &service.ValidationError{Field: "itinerary_data", Msg: err.Error()}
		}
	}

	return s.repo.Update(ctx, id, func(it *entities.Itinerary) error {
		// apply patch (only fields != nil)
		if patch.Destination != nil {
			it.Destination = *patch.Destination
		}
		if patch.StartDate != nil {
			it.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			it.EndDate = *patch.EndDate
		}
		if patch.Interests != nil {
			it.Interests = *patch.Interests
		}
		if doc != nil {
			it.ItineraryData = doc
		}
		return checkRange(it.StartDate, it.EndDate)
	})
}

func (s *ItinerarySvc) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *ItinerarySvc) Adjust(ctx context.Context, id uint, adjustment string) (*entities.Itinerary, error) {
	adjustment = strings.TrimSpace(adjustment)
	if adjustment == "" {
		return nil, &service.ValidationError{Field: "adjustment", Msg: "must not be empty"}
	}
	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := s.llm.AdjustItinerary(context.WithoutCancel(ctx), cur.ItineraryData, adjustment)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, func(it *entities.Itinerary) error {
		it.ItineraryData = doc
		return nil
	})
}

func checkRange(start, end entities.Date) error {
	if end.Before(start) {
		return &service.ValidationError{Field: "end_date", Msg: "must not be before start_date"}
	}
	return nil
}

func compact(raw json.RawMessage) (datatypes.JSON, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, errors.New("document is required")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return datatypes.JSON(buf.Bytes()), nil
}
