package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"travelplanner/pkg/itinerary/controller"
)

func New(
	e *echo.Echo,
	itinCtrl controller.ItineraryController,
	healthCtrl interface {
		Root(echo.Context) error
		Health(echo.Context) error
	},
) *echo.Echo {
	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler

	e.GET("/", healthCtrl.Root)
	e.GET("/health", healthCtrl.Health)

	g := e.Group("/api/itinerary")
	g.POST("/generate", itinCtrl.Generate)
	g.GET("", itinCtrl.List)
	g.POST("", itinCtrl.Create)
	g.GET("/:id", itinCtrl.Get)
	g.PATCH("/:id", itinCtrl.Patch)
	g.DELETE("/:id", itinCtrl.Delete)
	g.POST("/:id/adjust", itinCtrl.Adjust)
	return e
}

// errorHandler renders every error as {"error": message}.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]string{"error": msg})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
