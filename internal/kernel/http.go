// Package kernel assembles the HTTP handler: global middleware, operational
// endpoints, the websocket upgrade, and the API routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/firelovers/storefront/app/routes"
	"github.com/firelovers/storefront/pkg/metrics"
	"github.com/firelovers/storefront/pkg/middleware"
	"github.com/firelovers/storefront/pkg/reqid"
	"github.com/firelovers/storefront/pkg/router"
	"github.com/firelovers/storefront/pkg/ws"
)

// Deps carries everything the kernel mounts beyond the plain API routes.
type Deps struct {
	Controllers routes.Controllers
	Hub         *ws.Hub
	GraphQL     http.HandlerFunc
}

// New builds the full HTTP handler.
//
// Global middleware stack (outermost → innermost):
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. CORS               — set CORS headers
//  6. Rate limiter       — reject abusers early
func New(d Deps) http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Operational endpoints stay outside /api.
	r.Handle("/metrics", metrics.Handler())

	if d.Hub != nil {
		r.Handle("/ws", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ws.Upgrade(w, req, d.Hub)
		}))
	}
	if d.GraphQL != nil {
		r.Post("/graphql", "graphql", d.GraphQL)
	}

	routes.RegisterAPI(r, d.Controllers)

	return r.Handler()
}
