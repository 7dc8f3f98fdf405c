package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erazemk/itemservice/internal/auth"
	"github.com/erazemk/itemservice/internal/items"
	webembed "github.com/erazemk/itemservice/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

var printer = message.NewPrinter(language.English)

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		// number formats an optional integer with thousands separators.
		"number": func(v *int) string {
			if v == nil {
				return ""
			}
			return printer.Sprintf("%d", *v)
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	// Read layout.
	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"login.html",
		"items.html",
		"item.html",
		"item_form.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title       string
	User        string
	AuthEnabled bool
	Error       string
	Success     string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Items     *items.Service
	Templates *Templates
	Operator  auth.Operator
	JWTSecret string
}

// page returns the base page data for a request.
func (s *Server) page(r *http.Request, title string) PageData {
	pd := PageData{Title: title, AuthEnabled: s.Operator.Enabled()}
	if claims := GetWebClaims(r.Context()); claims != nil {
		pd.User = claims.Username
	}
	return pd
}
