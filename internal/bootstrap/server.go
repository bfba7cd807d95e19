package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/washify/booking/api"
	"github.com/washify/booking/config"
	"github.com/washify/booking/internal/email"
	"github.com/washify/booking/internal/service/auth"
	"github.com/washify/booking/internal/service/booking"
	"github.com/washify/booking/internal/service/packages"
	"go.uber.org/zap"
)

// Deps are the wired services the HTTP server exposes.
type Deps struct {
	Bookings booking.BookingUseCase
	Packages packages.PackageUseCase
	Auth     auth.AuthUseCase
	Mail     email.Sender
	Log      *zap.SugaredLogger
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, deps),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	bookingHandler := api.NewBookingHandler(deps.Bookings, deps.Log)
	packageHandler := api.NewPackageHandler(deps.Packages, deps.Log)
	authHandler := api.NewAuthHandler(deps.Auth, deps.Log)
	emailHandler := api.NewEmailHandler(deps.Mail, deps.Log)

	public := router.Group("/api")
	bookingHandler.Register(public.Group("/bookings"))
	packageHandler.Register(public.Group("/packages"))

	adminBookings := router.Group("/api/admin/bookings")
	adminBookings.Use(api.RequireAdmin(deps.Auth))
	bookingHandler.RegisterAdmin(adminBookings)

	authHandler.Register(router.Group("/admin"))
	emailHandler.Register(router.Group("/"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger-spec", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger-spec/booking.swagger.json"),
		)))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
