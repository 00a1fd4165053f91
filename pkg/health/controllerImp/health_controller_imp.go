package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

const apiBanner = "Travel Itinerary Generator API v1.0"

const pingTimeout = 800 * time.Millisecond

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type dbCheck struct {
	OK      bool   `json:"ok"`
	Dialect string `json:"dialect,omitempty"`
	Err     string `json:"err,omitempty"`
}

type healthReport struct {
	Status    string  `json:"status"`
	UptimeSec int     `json:"uptime_sec"`
	Database  dbCheck `json:"database"`
	Time      string  `json:"time"`
}

func (h *HealthCtrl) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": apiBanner})
}

// Health answers 503 when the database cannot be pinged.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	check := h.pingDB(ctx)
	report := healthReport{
		Status:    "healthy",
		UptimeSec: int(time.Since(appStart).Seconds()),
		Database:  check,
		Time:      time.Now().UTC().Format(time.RFC3339),
	}
	if !check.OK {
		report.Status = "degraded"
		return c.JSON(http.StatusServiceUnavailable, report)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *HealthCtrl) pingDB(ctx context.Context) dbCheck {
	if h.db == nil {
		return dbCheck{Err: "database not configured"}
	}
	check := dbCheck{Dialect: h.db.Dialector.Name()}
	sqlDB, err := h.db.DB()
	if err != nil {
		check.Err = "db handle: " + err.Error()
		return check
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		check.Err = "ping: " + err.Error()
		return check
	}
	check.OK = true
	return check
}
