package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chauffeurlux/rental-api/internal/api"
	"github.com/chauffeurlux/rental-api/internal/auth"
	"github.com/chauffeurlux/rental-api/internal/cache"
	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/chauffeurlux/rental-api/internal/repository"
	"github.com/chauffeurlux/rental-api/internal/service"
	"github.com/chauffeurlux/rental-api/internal/utils"
	"github.com/chauffeurlux/rental-api/pkg/config"
	"github.com/chauffeurlux/rental-api/pkg/health"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

type App struct {
	config *config.Config
	server *http.Server
	db     *pgxpool.Pool
	cache  *cache.VehicleCache
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := a.setupDatabase(ctx); err != nil {
		return fmt.Errorf("database setup failed: %w", err)
	}

	if err := a.setupCache(ctx); err != nil {
		return fmt.Errorf("cache setup failed: %w", err)
	}

	if err := a.setupServer(); err != nil {
		return fmt.Errorf("server setup failed: %w", err)
	}

	return nil
}

func (a *App) setupDatabase(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	return nil
}

func (a *App) setupCache(ctx context.Context) error {
	if a.config.Redis.URL == "" {
		log.Println("REDIS_URL not set, vehicle cache disabled")
		return nil
	}

	c, err := cache.New(a.config.Redis.URL)
	if err != nil {
		return err
	}
	a.cache = c
	return nil
}

func (a *App) setupServer() error {
	services := a.setupServices()
	router := a.setupRouter(services)

	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      router,
		WriteTimeout: a.config.Server.WriteTimeout,
		ReadTimeout:  a.config.Server.ReadTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	return nil
}

type Services struct {
	BookingService ports.BookingService
	TripService    ports.TripService
	VehicleService ports.VehicleService
	CartService    ports.CartService
	ReviewService  ports.ReviewService
}

func (a *App) setupServices() Services {
	bookingRepo := repository.NewBookingRepository(a.db)
	tripRepo := repository.NewTripRepository(a.db)
	vehicleRepo := repository.NewVehicleRepository(a.db)
	reviewRepo := repository.NewReviewRepository(a.db)

	var vehicleCache ports.VehicleCache
	if a.cache != nil {
		vehicleCache = a.cache
	}
	vehicleService := service.NewVehicleService(vehicleRepo, vehicleCache)

	return Services{
		BookingService: service.NewBookingService(bookingRepo),
		TripService:    service.NewTripService(tripRepo, bookingRepo),
		VehicleService: vehicleService,
		CartService:    service.NewCartService(bookingRepo, tripRepo, vehicleService),
		ReviewService:  service.NewReviewService(reviewRepo),
	}
}

func (a *App) setupRouter(services Services) http.Handler {
	router := http.NewServeMux()
	const prefix = "/api"
	secret := a.config.Auth.JWTSecret

	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return auth.Required(secret, h)
	}
	jsonBody := func(h http.HandlerFunc) http.HandlerFunc {
		return utils.AllowedContentTypes(h, "application/json")
	}

	router.HandleFunc("GET "+prefix+"/health", health.HealthGet())

	router.HandleFunc("GET "+prefix+"/vehicles", api.AllVehiclesHandler(services.VehicleService))
	router.HandleFunc("GET "+prefix+"/vehicles/{car_id}", api.VehicleHandler(services.VehicleService))
	router.HandleFunc("GET "+prefix+"/vehicles/{car_id}/images", api.VehicleImagesHandler(services.VehicleService))

	router.HandleFunc("GET "+prefix+"/reviews", api.AllReviewsHandler(services.ReviewService))
	router.HandleFunc("GET "+prefix+"/reviews/vehicle/{car_id}", api.ReviewsByCarHandler(services.ReviewService))
	router.HandleFunc("POST "+prefix+"/reviews", protected(jsonBody(api.CreateReviewHandler(services.ReviewService))))

	router.HandleFunc("GET "+prefix+"/bookings", protected(api.AllBookingsHandler(services.BookingService)))
	router.HandleFunc("GET "+prefix+"/bookings/user/{user_id}", protected(api.BookingsByUserHandler(services.BookingService)))
	router.HandleFunc("GET "+prefix+"/bookings/{booking_id}", protected(api.BookingHandler(services.BookingService)))
	router.HandleFunc("PUT "+prefix+"/bookings/{booking_id}", protected(jsonBody(api.UpdateBookingHandler(services.BookingService))))
	router.HandleFunc("DELETE "+prefix+"/bookings/{booking_id}", protected(api.DeleteBookingHandler(services.BookingService)))

	router.HandleFunc("GET "+prefix+"/trips", protected(api.AllTripsHandler(services.TripService)))
	router.HandleFunc("GET "+prefix+"/trips/booking/{booking_id}", protected(api.TripByBookingHandler(services.TripService)))
	router.HandleFunc("GET "+prefix+"/trips/{trip_id}", protected(api.TripHandler(services.TripService)))
	router.HandleFunc("POST "+prefix+"/trips", protected(jsonBody(api.CreateTripHandler(services.TripService))))
	router.HandleFunc("PUT "+prefix+"/trips/{trip_id}", protected(jsonBody(api.UpdateTripHandler(services.TripService))))
	router.HandleFunc("DELETE "+prefix+"/trips/{trip_id}", protected(api.DeleteTripHandler(services.TripService)))

	router.HandleFunc("GET "+prefix+"/cart/{user_id}", protected(api.CartHandler(services.CartService)))

	return router
}

func (a *App) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
		log.Println("Starting graceful shutdown")
		return a.Shutdown(ctx)
	case <-ctx.Done():
		return a.Shutdown(ctx)
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if a.cache != nil {
		a.cache.Close()
	}

	if a.db != nil {
		a.db.Close()
	}

	return nil
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app := NewApp(cfg)
	if err := app.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
