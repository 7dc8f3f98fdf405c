package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/itemservice/internal/auth"
)

type loginPage struct {
	PageData
	Username string
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	if !s.Operator.Enabled() {
		http.Redirect(w, r, "/items", http.StatusSeeOther)
		return
	}
	s.Templates.Render(w, "login.html", &loginPage{PageData: s.page(r, "Log in")})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.Operator.Enabled() {
		http.Redirect(w, r, "/items", http.StatusSeeOther)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	data := &loginPage{PageData: s.page(r, "Log in"), Username: username}

	if username == "" || password == "" {
		data.Error = "Enter your username and password."
		s.Templates.Render(w, "login.html", data)
		return
	}

	if err := s.Operator.Authenticate(username, password); err != nil {
		slog.Warn("failed login", "username", username)
		data.Error = "Invalid username or password."
		s.Templates.Render(w, "login.html", data)
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, username)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		data.Error = "Login failed."
		s.Templates.Render(w, "login.html", data)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})

	slog.Info("operator logged in", "username", username)
	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w)
	http.Redirect(w, r, "/items", http.StatusSeeOther)
}
