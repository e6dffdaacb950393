// Package health tracks the dependencies the gateway needs (backend API,
// redis, audit database) and reports them over HTTP and the gRPC health
// protocol.
package health

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Probe func(ctx context.Context) error

type dependency struct {
	name     string
	probe    Probe
	required bool
}

// Checker polls dependency probes. Required dependencies decide the overall
// serving status; optional ones only show up as degraded.
type Checker struct {
	deps   []dependency
	server *health.Server

	mu   sync.RWMutex
	last map[string]error
	at   time.Time
}

func NewChecker() *Checker {
	return &Checker{
		server: health.NewServer(),
		last:   map[string]error{},
	}
}

func (c *Checker) Require(name string, probe Probe) {
	c.deps = append(c.deps, dependency{name: name, probe: probe, required: true})
}

func (c *Checker) Optional(name string, probe Probe) {
	c.deps = append(c.deps, dependency{name: name, probe: probe})
}

// Check runs every probe once and updates the gRPC statuses. The empty
// service name carries the overall status.
func (c *Checker) Check(ctx context.Context) map[string]error {
	results := make(map[string]error, len(c.deps))
	overall := healthpb.HealthCheckResponse_SERVING
	for _, d := range c.deps {
		err := d.probe(ctx)
		results[d.name] = err

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			if d.required {
				overall = healthpb.HealthCheckResponse_NOT_SERVING
			}
		}
		c.server.SetServingStatus(d.name, status)
	}
	c.server.SetServingStatus("", overall)

	c.mu.Lock()
	c.last = results
	c.at = time.Now()
	c.mu.Unlock()
	return results
}

// Run checks on every tick until ctx is done.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		for name, err := range c.Check(probeCtx) {
			if err != nil {
				log.Printf("⚠️ %s unhealthy: %v", name, err)
			}
		}
		cancel()

		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
		}
	}
}

func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.server)
	reflection.Register(s)
}

func (c *Checker) snapshot() (map[string]error, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last, c.at
}

func (c *Checker) status(results map[string]error) (string, []string) {
	status := "healthy"
	unavailable := []string{}
	for _, d := range c.deps {
		err, seen := results[d.name]
		if !seen || err == nil {
			continue
		}
		unavailable = append(unavailable, d.name)
		if d.required {
			status = "unhealthy"
		} else if status == "healthy" {
			status = "degraded"
		}
	}
	return status, unavailable
}

// Handler reports the last polled state without touching dependencies.
func (c *Checker) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		results, at := c.snapshot()
		status, unavailable := c.status(results)

		httpStatus := http.StatusOK
		if status == "unhealthy" {
			httpStatus = http.StatusServiceUnavailable
		}
		ctx.JSON(httpStatus, gin.H{
			"status":               status,
			"message":              "Server is running",
			"unavailable_services": unavailable,
			"checked_at":           at,
			"timestamp":            time.Now(),
		})
	}
}

// DetailedHandler probes every dependency live.
func (c *Checker) DetailedHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		results := c.Check(probeCtx)
		services := make(map[string]interface{}, len(results))
		for _, d := range c.deps {
			services[d.name] = serviceHealth(results[d.name], d.required)
		}
		overall, _ := c.status(results)

		ctx.JSON(http.StatusOK, gin.H{
			"overall_status": overall,
			"services":       services,
			"timestamp":      time.Now(),
		})
	}
}

// Middleware tags responses with the last known backend availability.
func (c *Checker) Middleware(name, header string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		results, _ := c.snapshot()
		if err, seen := results[name]; seen && err != nil {
			ctx.Header(header, "unavailable")
		} else {
			ctx.Header(header, "available")
		}
		ctx.Next()
	}
}

func serviceHealth(err error, required bool) map[string]interface{} {
	if err != nil {
		return map[string]interface{}{
			"status":   "unavailable",
			"required": required,
			"message":  err.Error(),
		}
	}
	return map[string]interface{}{
		"status":   "healthy",
		"required": required,
		"message":  "Service is responding",
	}
}
