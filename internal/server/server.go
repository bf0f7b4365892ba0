package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"staffhub/internal/config"
	"staffhub/internal/middleware"
	"staffhub/internal/model"
	"staffhub/internal/version"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	mongo    *mongo.Client
	services *Services
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	repos := InitRepositories(db)
	services := InitServices(cfg, repos)
	handlers := InitHandlers(services)

	if err := EnsureIndexes(repos); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	router := setupRouter(handlers, services)

	return &Server{
		cfg:      cfg,
		router:   router,
		mongo:    mongoClient,
		services: services,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique email index and the partial unique index
// backing the one-Paid-record-per-period invariant.
func EnsureIndexes(repos *Repositories) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repos.Users.EnsureIndexes(ctx); err != nil {
		return err
	}
	return repos.Payroll.EnsureIndexes(ctx)
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.startHealthMonitor()
	log.Printf("employee-management server running on %s", s.cfg.Server.Address())
	return s.router.Run(s.cfg.Server.Address())
}

func (s *Server) startHealthMonitor() {
	if !s.cfg.Health.Enabled {
		return
	}
	intervalSec := s.cfg.Health.IntervalSec
	if intervalSec <= 0 {
		intervalSec = 60
	}
	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	go func() {
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.mongo.Ping(ctx, nil); err != nil {
				log.Printf("[health] mongo ping failed: %v", err)
			}
			cancel()
		}
	}()
}

func setupRouter(h *Handlers, s *Services) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": version.Service, "version": version.Version})
	})

	// Public routes
	r.POST("/jwt", h.Auth.IssueToken)
	r.POST("/login", h.Auth.Login)
	r.POST("/users", h.Auth.Register)

	// Everything below requires a valid bearer token
	authed := r.Group("")
	authed.Use(middleware.RequireAuth(s.Auth))

	authed.GET("/user/admin/:email", h.Users.IsAdmin)
	authed.GET("/user/hr/:email", h.Users.IsHR)
	authed.GET("/payment-history", h.Payroll.History)

	// Worksheet routes
	authed.POST("/work-sheet", h.WorkRecords.Create)
	authed.GET("/work-sheets", h.WorkRecords.ListByEmail)
	authed.PUT("/work-sheet/:id", h.WorkRecords.UpdateTask)
	authed.DELETE("/work-sheet/:id", h.WorkRecords.Delete)

	// Progress routes
	authed.GET("/progress", h.WorkRecords.ListFiltered)
	authed.POST("/progress", h.WorkRecords.Create)
	authed.PUT("/progress/:id", h.WorkRecords.UpdateTask)
	authed.DELETE("/progress/:id", h.WorkRecords.Delete)

	// HR routes (admins pass too)
	hr := authed.Group("")
	hr.Use(middleware.RequireAnyRole(s.Users, model.RoleHR, model.RoleAdmin))
	{
		hr.GET("/employees", h.Users.List)
		hr.GET("/employees/:email", h.Users.Details)
		hr.POST("/payroll", h.Payroll.Create)
		hr.PATCH("/employees/:id/verify", h.Users.Verify)
	}

	// Admin routes
	admin := authed.Group("")
	admin.Use(middleware.RequireRole(s.Users, model.RoleAdmin))
	{
		admin.GET("/payroll", h.Payroll.List)
		admin.PATCH("/payroll/:id", h.Payroll.Pay)
		admin.PATCH("/employees/:id/hr", h.Users.PromoteToHR)
		admin.PATCH("/employees/:id/fire", h.Users.Fire)
		admin.PATCH("/employees/:id/salary", h.Users.IncreaseSalary)
	}

	return r
}
