package pagecontroller

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/page.html
var templatesFS embed.FS

// HTMLRenderer writes a View as a complete listing page. Pagination controls
// become links to the URL of the target state, so the page works without script.
type HTMLRenderer struct {
	tmpl *template.Template
	path string
	lang string
}

func NewHTMLRenderer(path string, dates DateFormatter) (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	if path == "" {
		path = "/"
	}
	return &HTMLRenderer{tmpl: tmpl, path: path, lang: dates.Locale()}, nil
}

type htmlOption struct {
	Value    string
	Label    string
	Selected bool
}

type htmlCard struct {
	Card
	Delay string
}

type htmlControl struct {
	Control
	Ellipsis bool
	Href     string
}

type htmlPage struct {
	Lang        string
	Path        string
	Kind        string
	Title       string
	Message     string
	ShowingInfo string
	Cards       []htmlCard
	Controls    []htmlControl
	PrevHref    string
	NextHref    string
	SizeOptions []htmlOption
	SortOptions []htmlOption
}

func (r *HTMLRenderer) RenderPage(w io.Writer, v View) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", r.page(v))
}

func (r *HTMLRenderer) page(v View) htmlPage {
	p := htmlPage{
		Lang:        r.lang,
		Path:        r.path,
		Kind:        v.Kind.String(),
		Title:       v.Title,
		Message:     v.Message,
		ShowingInfo: v.ShowingInfo,
	}

	for _, c := range v.Cards {
		p.Cards = append(p.Cards, htmlCard{
			Card:  c,
			Delay: strconv.FormatFloat(c.AnimationDelay.Seconds(), 'f', 1, 64),
		})
	}

	for _, c := range v.Pagination {
		hc := htmlControl{Control: c, Ellipsis: c.Kind == ControlEllipsis}
		if !c.Disabled && !hc.Ellipsis {
			target := v.State
			target.Page = c.Page
			hc.Href = target.URL(r.path)
			switch c.Kind {
			case ControlPrev:
				p.PrevHref = hc.Href
			case ControlNext:
				p.NextHref = hc.Href
			}
		}
		p.Controls = append(p.Controls, hc)
	}

	for _, size := range PageSizeOptions {
		p.SizeOptions = append(p.SizeOptions, htmlOption{
			Value:    strconv.Itoa(size),
			Label:    strconv.Itoa(size),
			Selected: size == v.State.Size,
		})
	}
	known := false
	for _, opt := range SortOptions {
		known = known || opt.Key == v.State.Sort
		p.SortOptions = append(p.SortOptions, htmlOption{
			Value:    string(opt.Key),
			Label:    opt.Label,
			Selected: opt.Key == v.State.Sort,
		})
	}
	// Unlisted sort keys still round-trip through the form.
	if !known && v.State.Sort != "" {
		p.SortOptions = append(p.SortOptions, htmlOption{
			Value:    string(v.State.Sort),
			Label:    string(v.State.Sort),
			Selected: true,
		})
	}
	return p
}
