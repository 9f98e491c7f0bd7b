package server

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/SOHAMSUPEKAR24/travle1/internal/admin"
	"github.com/SOHAMSUPEKAR24/travle1/internal/auth"
	"github.com/SOHAMSUPEKAR24/travle1/internal/blog"
	"github.com/SOHAMSUPEKAR24/travle1/internal/booking"
	"github.com/SOHAMSUPEKAR24/travle1/internal/config"
	"github.com/SOHAMSUPEKAR24/travle1/internal/customer"
	"github.com/SOHAMSUPEKAR24/travle1/internal/kv"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
	"github.com/SOHAMSUPEKAR24/travle1/internal/payment"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
	"github.com/SOHAMSUPEKAR24/travle1/internal/stream"
	"github.com/SOHAMSUPEKAR24/travle1/internal/testimonial"
	"github.com/SOHAMSUPEKAR24/travle1/internal/trip"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Redis    *redis.Client
	Backend  kv.Store
	Store    *store.DataStore
	Monitor  *monitor.Monitor
	Payments *payment.Registry
	Auth     *auth.Service
	Stream   *stream.Hub
}

// NewServer wires the whole application. A nil redis client selects the
// directory-of-files backend under cfg.DataDir.
func NewServer(cfg config.Config, redisClient *redis.Client) (*Server, error) {
	var backend kv.Store
	if redisClient != nil {
		backend = kv.NewRedis(redisClient)
	} else {
		fileStore, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		backend = fileStore
	}

	mon := monitor.New(backend)
	hub := stream.NewHub(redisClient)
	mon.SetBroadcast(func(entry monitor.Entry) {
		if payload, err := json.Marshal(entry); err == nil {
			hub.Broadcast(payload)
		}
	})

	ds := store.New(backend, mon)
	payments := payment.NewRegistry(cfg.PaymentSeed)
	mon.SetProbes(ds.HealthMetrics, func() int { return len(payments.Available()) })

	authSvc := auth.NewService(cfg.SessionSecret, cfg.AdminUsername, cfg.AdminPassword, backend, mon)
	authSvc.Restore(context.Background())

	if err := ds.Seed(context.Background()); err != nil {
		return nil, err
	}
	go func() {
		if err := payments.InitializeAll(context.Background()); err != nil {
			log.Printf("payment initialization: %v", err)
		}
	}()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:      app,
		Cfg:      cfg,
		Redis:    redisClient,
		Backend:  backend,
		Store:    ds,
		Monitor:  mon,
		Payments: payments,
		Auth:     authSvc,
		Stream:   hub,
	}

	registerRoutes(s)
	return s, nil
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		if health, ok := s.Monitor.LastHealth(c.Context()); ok {
			return c.JSON(fiber.Map{"status": health.Status})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authMiddleware := auth.Middleware(s.Auth)
	bookingSvc := booking.NewService(s.Store, s.Payments, s.Monitor)

	api := s.App.Group("/api")
	auth.RegisterRoutes(api.Group("/auth"), s.Auth)
	trip.RegisterRoutes(api.Group("/trips"), trip.NewService(s.Store), authMiddleware)
	blog.RegisterRoutes(api.Group("/blogs"), blog.NewService(s.Store), authMiddleware)
	testimonial.RegisterRoutes(api.Group("/testimonials"), testimonial.NewService(s.Store), authMiddleware)
	booking.RegisterRoutes(api.Group("/bookings"), bookingSvc, authMiddleware)
	customer.RegisterRoutes(api.Group("/customers"), customer.NewService(s.Store), authMiddleware)
	payment.RegisterRoutes(api.Group("/payments"), s.Payments)

	adminGroup := api.Group("/admin", authMiddleware)
	admin.RegisterRoutes(adminGroup, s.Store, s.Monitor)
	stream.RegisterRoutes(adminGroup.Group("/stream"), s.Stream)
}
