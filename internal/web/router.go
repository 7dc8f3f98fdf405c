package web

import (
	"net/http"

	"github.com/erazemk/itemservice/internal/auth"
	"github.com/erazemk/itemservice/internal/items"
	"github.com/erazemk/itemservice/internal/ratelimit"
	webembed "github.com/erazemk/itemservice/web"
)

// NewRouter creates the web page router with all page routes registered.
// limiter may be nil.
func NewRouter(svc *items.Service, op auth.Operator, jwtSecret string, limiter *ratelimit.Limiter) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Items:     svc,
		Templates: templates,
		Operator:  op,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	loggedIn := RequireLogin(op)
	limit := limiter.Middleware

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.Handle("GET /{$}", http.RedirectHandler("/items", http.StatusSeeOther))

	// Session.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.Handle("POST /login", limit(http.HandlerFunc(s.LoginSubmit)))
	mux.HandleFunc("POST /logout", s.Logout)

	// Read-only pages.
	mux.HandleFunc("GET /items", s.ItemsPage)
	mux.HandleFunc("GET /items/{id}", s.ItemDetailPage)

	// Forms.
	mux.Handle("GET /items/add", loggedIn(http.HandlerFunc(s.ItemAddPage)))
	mux.Handle("POST /items/add", loggedIn(limit(http.HandlerFunc(s.ItemAddSubmit))))
	mux.Handle("GET /items/{id}/edit", loggedIn(http.HandlerFunc(s.ItemEditPage)))
	mux.Handle("POST /items/{id}/edit", loggedIn(limit(http.HandlerFunc(s.ItemEditSubmit))))

	return SessionMiddleware(jwtSecret)(mux), nil
}
