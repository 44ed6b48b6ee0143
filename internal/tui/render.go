package tui

import (
	"fmt"
	"strings"

	"ideas-listing/internal/pagecontroller"
)

const (
	cursorMark = "› "
	blankMark  = "  "
	minTitle   = 10
)

// sink is the controller's Renderer. The controller renders synchronously
// from Update, so the model reads the latest view without locking.
type sink struct {
	view     pagecontroller.View
	scrolled bool
}

func (s *sink) Render(v pagecontroller.View) { s.view = v }
func (s *sink) ScrollToTop()                 { s.scrolled = true }

// RenderView draws v as text. selected is the highlighted card, -1 for none;
// width truncates titles when positive.
func RenderView(v pagecontroller.View, selected, width int) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Ideas"))
	b.WriteString("  ")
	b.WriteString(infoStyle.Render(fmt.Sprintf("per page: %d  sort: %s", v.State.Size, sortLabel(v.State))))
	b.WriteString("\n")
	if v.ShowingInfo != "" {
		b.WriteString(infoStyle.Render(v.ShowingInfo))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch v.Kind {
	case pagecontroller.ViewLoading:
		b.WriteString(infoStyle.Render(v.Message))
		b.WriteString("\n")
	case pagecontroller.ViewError:
		b.WriteString(errorStyle.Render(v.Title))
		b.WriteString("\n")
		b.WriteString(v.Message)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press r to retry"))
		b.WriteString("\n")
	case pagecontroller.ViewEmpty:
		b.WriteString(titleStyle.Render(v.Title))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(v.Message))
		b.WriteString("\n")
	case pagecontroller.ViewPosts:
		for i, c := range v.Cards {
			b.WriteString(renderCard(c, i == selected, width))
		}
	}

	if len(v.Pagination) > 0 {
		b.WriteString("\n")
		b.WriteString(renderPagination(v.Pagination))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(c pagecontroller.Card, selected bool, width int) string {
	title := c.Title
	if width > 0 {
		title = truncate(title, width-len(blankMark))
	}

	mark, style := blankMark, titleStyle
	if selected {
		mark, style = cursorMark, selectedStyle
	}
	return mark + style.Render(title) + "\n" + blankMark + dateStyle.Render(c.Date) + "\n"
}

func renderPagination(controls []pagecontroller.Control) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch {
		case c.Kind == pagecontroller.ControlEllipsis:
			parts = append(parts, disabledStyle.Render(c.Label))
		case c.Active:
			parts = append(parts, activeStyle.Render(" "+c.Label+" "))
		case c.Disabled:
			parts = append(parts, disabledStyle.Render(c.Label))
		default:
			parts = append(parts, c.Label)
		}
	}
	return strings.Join(parts, " ")
}

func sortLabel(s pagecontroller.State) string {
	for _, opt := range pagecontroller.SortOptions {
		if opt.Key == s.Sort {
			return opt.Label
		}
	}
	return string(s.Sort)
}

func truncate(s string, max int) string {
	if max < minTitle {
		max = minTitle
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
