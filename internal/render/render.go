package render

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"foxscrb-server/internal/domain"
	"foxscrb-server/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Data is the payload every page template receives. Only the fields a page
// uses need to be set.
type Data struct {
	LoggedIn bool
	Flashes  []session.Flash
	User     *domain.User
	Note     *domain.Note
	Notes    []*domain.Note
	Search   string
}

type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	t := template.New("").Funcs(template.FuncMap{
		// Note bodies are sanitized before persistence; rendering them as
		// HTML is the point of the allow-list.
		"noteBody": func(s string) template.HTML { return template.HTML(s) },
	})

	t, err := t.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: t}, nil
}

func (rd *Renderer) HTML(w http.ResponseWriter, name string, data *Data) {
	if data == nil {
		data = &Data{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rd.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("failed to render %s: %v", name, err)
	}
}
