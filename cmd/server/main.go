package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"travelplanner/config"
	"travelplanner/database"
	"travelplanner/pkg/ai"
	"travelplanner/router"

	// Itinerary
	itinCtrlImp "travelplanner/pkg/itinerary/controllerImp"
	itinRepoImp "travelplanner/pkg/itinerary/repositoryImp"
	itinSvcImp "travelplanner/pkg/itinerary/serviceImp"

	// Health
	healthCtrlImp "travelplanner/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// 2) DB (postgres or sqlite) + automigrate
	db, err := database.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	// 3) Gemini
	gem, err := ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini: %v", err)
	}
	defer gem.Close()

	e := newServer(cfg, db, gem)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("listening on :%s", cfg.Port)
	if err := Run(context.Background(), e, ":"+cfg.Port, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

// newServer wires repositories, services and controllers onto a fresh echo instance.
func newServer(cfg config.AppConfig, db *gorm.DB, model ai.Model) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	iRepo := itinRepoImp.New(db)
	iSvc := itinSvcImp.NewItineraryService(iRepo, ai.New(model))
	iCtrl := itinCtrlImp.NewItineraryCtrl(iSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	return router.New(e, iCtrl, hCtrl)
}

type ListenFunc func(e *echo.Echo, addr string) error

var defaultListen ListenFunc = func(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

// Run serves e until a signal arrives, ctx ends or the listener fails.
func Run(ctx context.Context, e *echo.Echo, addr string, signals <-chan os.Signal, listen ListenFunc) error {
	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(e, addr)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
