package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/abhisek/toeiz/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
)

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
	"letter": func(i int) string { return string(rune('A' + i)) },
}

// pageRenderer holds one template set per page, each combining the shared
// layout with the page's own blocks.
type pageRenderer struct {
	pages map[string]*template.Template
}

func loadPages() (*pageRenderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &pageRenderer{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layoutFile || f == partialsFile {
			continue
		}
		t, err := template.New(path.Base(layoutFile)).Funcs(templateFuncs).ParseFS(templateFS, layoutFile, partialsFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return r, nil
}

// Instance implements render.HTMLRender.
func (r *pageRenderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		panic(fmt.Sprintf("server: unknown page %q", name))
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// render writes page with the common layout data: queued flashes and the
// login state.
func (s *Server) render(c *gin.Context, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	sess := session.Get(c)
	data["Flashes"] = sess.PopFlashes()
	data["LoggedIn"] = sess.LoggedIn()
	c.HTML(http.StatusOK, page, data)
}

// redirect queues a flash and sends the browser to location.
func (s *Server) redirect(c *gin.Context, location, category, format string, args ...any) {
	if format != "" {
		session.Get(c).AddFlash(category, format, args...)
	}
	c.Redirect(http.StatusSeeOther, location)
}
