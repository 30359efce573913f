package view

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"backoffice/internal/access"
	"backoffice/internal/apperr"
	"backoffice/internal/flash"
	"backoffice/internal/logger"
	"backoffice/internal/middleware"
	"backoffice/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

// MenuSource resolves the navigation shown to a signed-in user.
type MenuSource interface {
	GetUserMenus(ctx context.Context, userID uint) []access.Menu
}

// Page is the value every template executes against.
type Page struct {
	Title     string
	UserName  string
	UserEmail string
	Menus     []access.Menu
	Flash     *flash.Flash
	CSRFToken string
	Data      any
}

type ErrorData struct {
	Status    int
	Message   string
	Detail    string
	RequestID string
}

type Renderer struct {
	pages map[string]*template.Template
	menus MenuSource
	debug bool
}

func New(menus MenuSource, debug bool) (*Renderer, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Renderer{pages: pages, menus: menus, debug: debug}, nil
}

func parsePages() (map[string]*template.Template, error) {
	names, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[path.Base(name)] = t
	}
	return pages, nil
}

// HTML renders the named page inside the layout. Output is buffered so a
// template failure never leaves a half-written page.
func (v *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	t, ok := v.pages[name]
	if !ok {
		v.Error(w, r, fmt.Errorf("unknown template %q", name))
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, v.page(r, title, data)); err != nil {
		logger.FromCtx(r.Context()).Error("template execution failed", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (v *Renderer) page(r *http.Request, title string, data any) Page {
	ctx := r.Context()
	p := Page{
		Title:     title,
		Flash:     flash.FromContext(ctx),
		CSRFToken: middleware.CSRFToken(ctx),
		Data:      data,
	}
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		p.UserName = utils.GetUserNameFromContext(ctx)
		p.UserEmail = utils.GetUserEmailFromContext(ctx)
		if v.menus != nil {
			p.Menus = v.menus.GetUserMenus(ctx, userID)
		}
	}
	return p
}

// Error renders err as an error page. Internal errors are logged; their
// text reaches the page only in debug mode.
func (v *Renderer) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	data := ErrorData{
		Status:    status,
		Message:   apperr.PublicMessage(err),
		RequestID: logger.RequestIDFrom(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	if v.debug {
		data.Detail = err.Error()
	}
	if _, ok := v.pages["error.html"]; !ok {
		http.Error(w, data.Message, status)
		return
	}
	v.HTML(w, r, status, "error.html", http.StatusText(status), data)
}

func (v *Renderer) Forbidden(w http.ResponseWriter, r *http.Request) {
	v.Error(w, r, apperr.ForbiddenErr("You do not have access to this page."))
}

func (v *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Error(w, r, apperr.NotFoundErr("The page you are looking for does not exist.", nil))
}

var funcs = template.FuncMap{
	"money":    Money,
	"date":     func(t time.Time) string { return t.Format("2006-01-02") },
	"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	"dateptr": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"str": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"uintptr": func(u *uint) uint {
		if u == nil {
			return 0
		}
		return *u
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// Money formats d with exactly two decimals. Values are rounded here and
// nowhere earlier.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
