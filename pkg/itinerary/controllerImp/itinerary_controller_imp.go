package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"travelplanner/pkg/itinerary/repository"
	"travelplanner/pkg/itinerary/service"
	"travelplanner/pkg/itinerary/types"
)

type ItineraryCtrl struct{ svc service.ItineraryService }

func NewItineraryCtrl(svc service.ItineraryService) *ItineraryCtrl { return &ItineraryCtrl{svc: svc} }

func (h *ItineraryCtrl) Generate(c echo.Context) error {
	var req types.GenerateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	it, err := h.svc.Generate(c.Request().Context(), req)
	if err != nil {
		log.Printf("[http] generate %q: %v", req.Destination, err)
		return toHTTPError(err, "Failed to generate itinerary: ")
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *ItineraryCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItineraryCtrl) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	it, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err, "")
	}
	return c.JSON(http.StatusOK, it)
}

func (h *ItineraryCtrl) Create(c echo.Context) error {
	var req types.CreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	it, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, "")
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *ItineraryCtrl) Patch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch types.ItineraryPatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}
	it, err := h.svc.UpdatePartial(c.Request().Context(), id, patch)
	if err != nil {
		return toHTTPError(err, "")
	}
	return c.JSON(http.StatusOK, it)
}

func (h *ItineraryCtrl) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return toHTTPError(err, "")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Itinerary deleted successfully"})
}

func (h *ItineraryCtrl) Adjust(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.AdjustRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	it, err := h.svc.Adjust(c.Request().Context(), id, req.Adjustment)
	if err != nil {
		log.Printf("[http] adjust %d: %v", id, err)
		return toHTTPError(err, "Failed to adjust itinerary: ")
	}
	return c.JSON(http.StatusOK, it)
}

// toHTTPError maps service errors to statuses; anything unclassified is a 500
// whose message is prefixed with failMsg.
func toHTTPError(err error, failMsg string) error {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Itinerary not found")
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, verr.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, failMsg+err.Error()).SetInternal(err)
	}
}

func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json").SetInternal(err)
	}
	if err := c.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
