package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/TomasMurua/Hotel-Pacific-Reef/api"
	"github.com/TomasMurua/Hotel-Pacific-Reef/config"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/booking"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/dashboard"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, dashboardSvc dashboard.DashboardUseCase, bookingSvc booking.BookingUseCase) error {
	router := newRouter(cfg, dashboardSvc, bookingSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, dashboardSvc dashboard.DashboardUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.Default()

	group := router.Group("/api")

	api.NewDashboardHandler(dashboardSvc).Register(group.Group("/analytics"))
	api.NewCatalogHandler(dashboardSvc).Register(group)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	bookingHandler.Register(group.Group("/bookings"))
	bookingHandler.RegisterReservations(group.Group("/reservations"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
