package handler

import (
	"kyc-webhook-simulator/internal/adapter/http/middleware"
	redisStore "kyc-webhook-simulator/internal/adapter/storage/redis"
	"kyc-webhook-simulator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Processor      ports.InboundProcessor
	Scheduler      ports.WebhookScheduler
	Tracker        ports.DeliveryTracker
	SigSvc         ports.SignatureService
	EventRepo      ports.EventRepository
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus exposition
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Inbound provider callbacks (signature-verified in the processor) ---
	webhookHandler := NewWebhookHandler(deps.Processor, deps.SigSvc, deps.EventRepo, deps.Logger)
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/kyc/:provider", rl("webhooks"), webhookHandler.Receive)
		webhooks.POST("/aml/:provider", rl("webhooks"), webhookHandler.Receive)
	}

	// --- Simulation admin surface ---
	simulationHandler := NewSimulationHandler(deps.Scheduler, deps.Tracker)
	v1 := r.Group("/api/v1")

	simulations := v1.Group("/simulations")
	{
		simulations.POST("", rl("simulation_schedule"), simulationHandler.Schedule)
		simulations.POST("/send", rl("simulation_schedule"), simulationHandler.SendNow)
		simulations.GET("", rl("simulation_admin"), simulationHandler.List)
		simulations.GET("/stats", rl("simulation_admin"), simulationHandler.Stats)
		simulations.GET("/recent", rl("simulation_admin"), simulationHandler.Recent)
		simulations.POST("/clear", rl("simulation_admin"), simulationHandler.Clear)
		simulations.GET("/:id", rl("simulation_admin"), simulationHandler.Get)
		simulations.DELETE("/:id", rl("simulation_admin"), simulationHandler.Cancel)
	}

	events := v1.Group("/events")
	{
		events.GET("", rl("events"), webhookHandler.ListEvents)
	}

	return r
}
