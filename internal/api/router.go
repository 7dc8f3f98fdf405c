package api

import (
	"net/http"

	"github.com/erazemk/itemservice/internal/auth"
	"github.com/erazemk/itemservice/internal/items"
	"github.com/erazemk/itemservice/internal/ratelimit"
)

// NewRouter creates the API router with all endpoints registered.
// limiter may be nil.
func NewRouter(svc *items.Service, op auth.Operator, jwtSecret string, limiter *ratelimit.Limiter) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Operator: op, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Items: svc}

	authMW := AuthMiddleware(op, jwtSecret)
	limit := limiter.Middleware

	// Public: login.
	mux.Handle("POST /api/auth/login", limit(http.HandlerFunc(authHandler.Login)))

	// Items: read (public), write (operator).
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.Handle("POST /api/items", authMW(limit(http.HandlerFunc(itemsHandler.Create))))
	mux.Handle("PUT /api/items/{id}", authMW(limit(http.HandlerFunc(itemsHandler.Update))))

	return mux
}
