package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/internal/pkg/circuitbreaker"
	"github.com/piresc/chatsync/internal/pkg/database"
	"github.com/piresc/chatsync/internal/pkg/logger"
	ws "github.com/piresc/chatsync/internal/pkg/websocket"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// RedisHealthChecker checks the token persistence connection
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.GetClient().Ping(ctx).Err()
}

// BreakerSource exposes the circuit breaker state of the chat API
type BreakerSource interface {
	BreakerState() circuitbreaker.State
}

// APIHealthChecker reports the chat API unhealthy while its breaker is open
type APIHealthChecker struct {
	source BreakerSource
}

// NewAPIHealthChecker creates a new chat API health checker
func NewAPIHealthChecker(source BreakerSource) *APIHealthChecker {
	return &APIHealthChecker{source: source}
}

// CheckHealth checks the API circuit breaker
func (a *APIHealthChecker) CheckHealth(ctx context.Context) error {
	if state := a.source.BreakerState(); state == circuitbreaker.StateOpen {
		return fmt.Errorf("circuit breaker is %s", state)
	}
	return nil
}

// SubscriptionSource looks up live socket subscriptions by name
type SubscriptionSource interface {
	Subscription(name string) (*ws.Subscription, bool)
}

// SocketHealthChecker reports a socket subscription unhealthy unless it is open
type SocketHealthChecker struct {
	source SubscriptionSource
	name   string
}

// NewSocketHealthChecker creates a checker for the subscription called name
func NewSocketHealthChecker(source SubscriptionSource, name string) *SocketHealthChecker {
	return &SocketHealthChecker{source: source, name: name}
}

// CheckHealth checks the socket state
func (s *SocketHealthChecker) CheckHealth(ctx context.Context) error {
	sub, ok := s.source.Subscription(s.name)
	if !ok {
		return errors.New("not subscribed")
	}
	if state := sub.State(); state != ws.StateOpen {
		return fmt.Errorf("socket is %s", state)
	}
	return nil
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers map[string]HealthChecker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		logger:   zapLogger,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(h.checkers)),
	}

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checkers[name].CheckHealth(ctx); err != nil {
			h.logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}

// RegisterHealthEndpoints registers /ping, /health and /health/detailed
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, healthService *HealthService) {
	e.GET("/ping", NewPingHandler(serviceName, version))

	healthGroup := e.Group("/health")
	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	healthGroup.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName
		response.Version = version

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	})
}
