package handler

import (
	"lnpos-gateway/internal/adapter/http/middleware"
	redisStore "lnpos-gateway/internal/adapter/storage/redis"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/internal/obs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LnurlSvc       ports.LnurlService
	PinSvc         ports.PinService
	TerminalSvc    ports.TerminalService
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	AuditSvc       ports.AuditService         // nil = audit logging disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	HTTPMetrics    *obs.HTTPMetrics     // nil = no HTTP metrics
	Gatherer       prometheus.Gatherer  // nil = no /metrics route
	TracerProvider trace.TracerProvider // nil = no server spans
	PublicURL      string
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	if deps.TracerProvider != nil {
		r.Use(middleware.Tracing(deps.TracerProvider))
	}
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep: pings PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules(0, 0)
	}

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

	// --- Wallet and terminal facing routes (no auth) ---
	lnurlHandler := NewLnurlHandler(deps.LnurlSvc, deps.PublicURL)
	lnurl := r.Group("/lnpos/api/v1/lnurl", rl(middleware.GroupLnurl))
	{
		lnurl.GET("/:terminal_id", lnurlHandler.Quote)
		lnurl.GET("/cb/:payment_id", lnurlHandler.Callback)
		lnurl.GET("/withdraw/cb/:payment_id", lnurlHandler.WithdrawCallback)
	}

	pinHandler := NewPinHandler(deps.PinSvc)
	r.GET("/lnpos/pin/:payment_id", rl(middleware.GroupPin), pinHandler.Show)

	// --- JWT-authenticated admin API ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth, rl(middleware.GroupAdmin))

	terminalHandler := NewTerminalHandler(deps.TerminalSvc, deps.PublicURL)
	terminals := v1.Group("/terminals")
	{
		terminals.POST("", terminalHandler.Create)
		terminals.GET("", terminalHandler.List)
		terminals.GET("/:id", terminalHandler.Get)
		terminals.PUT("/:id", terminalHandler.Update)
		terminals.DELETE("/:id", terminalHandler.Delete)
	}

	paymentHandler := NewPaymentHandler(deps.ReportingSvc)
	v1.GET("/payments", paymentHandler.List)

	return r
}
