// Package tui is a terminal front end for the ideas listing. It drives a
// pagecontroller.Controller over an in-memory history, fetching through
// Bubble Tea commands so the UI stays responsive while a page loads.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"ideas-listing/internal/ideas"
	"ideas-listing/internal/models"
	"ideas-listing/internal/pagecontroller"
)

const helpText = "←/→ page  s sort  +/- size  b/f back/forward  ↑/↓ select  enter open  r retry  q quit"

// PageLoadedMsg carries the outcome of one fetch back into Update.
type PageLoadedMsg struct {
	Request ideas.PageRequest
	Page    models.Page
	Err     error
}

type Options struct {
	// Location is the starting address, e.g. "/?page=2&size=20".
	Location string
	Fetcher  pagecontroller.Fetcher
	Dates    pagecontroller.DateFormatter
	Logger   zerolog.Logger
}

//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View.
type Model struct {
	ctx      context.Context
	ctrl     *pagecontroller.Controller
	history  *pagecontroller.MemoryHistory
	fetcher  pagecontroller.Fetcher
	out      *sink
	selected int
	width    int
	status   string
	quitting bool
}

func NewModel(ctx context.Context, opts Options) Model {
	location := opts.Location
	if location == "" {
		location = "/"
	}

	history := pagecontroller.NewMemoryHistory(location)
	out := &sink{view: pagecontroller.LoadingView(pagecontroller.DefaultState())}
	ctrl := pagecontroller.New(pagecontroller.Options{
		History: history,
		Fetcher: opts.Fetcher,
		Render:  out,
		Dates:   opts.Dates,
		Logger:  opts.Logger,
	})
	ctrl.ReadLocation()

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		history: history,
		fetcher: opts.Fetcher,
		out:     out,
	}
}

// Controller exposes the page controller, mainly for tests.
func (m Model) Controller() *pagecontroller.Controller { return m.ctrl }

// Location is the current address of the in-memory history.
func (m Model) Location() string { return m.history.Location().String() }

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

// fetch starts a request for the current state. While another request is in
// flight it returns nil; that request's completion notices the state change.
func (m Model) fetch() tea.Cmd {
	req, ok := m.ctrl.Begin()
	if !ok {
		return nil
	}
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		page, err := fetcher.FetchPage(ctx, req)
		return PageLoadedMsg{Request: req, Page: page, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case PageLoadedMsg:
		if m.ctrl.Complete(msg.Request, msg.Page, msg.Err) {
			return m, m.fetch()
		}
		m.clampSelection()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		return m.step(pagecontroller.KeyLeft)
	case "right", "l":
		return m.step(pagecontroller.KeyRight)
	case "s":
		next := ideas.SortOldest
		if m.ctrl.State().Sort == ideas.SortOldest {
			next = ideas.SortNewest
		}
		m.ctrl.SetSort(next)
		m.selected = 0
		return m, m.fetch()
	case "+", "=":
		m.ctrl.SetPageSize(cycleSize(m.ctrl.State().Size, 1))
		m.selected = 0
		return m, m.fetch()
	case "-", "_":
		m.ctrl.SetPageSize(cycleSize(m.ctrl.State().Size, -1))
		m.selected = 0
		return m, m.fetch()
	case "b":
		if !m.history.Back() {
			return m, nil
		}
		m.ctrl.ReadLocation()
		m.selected = 0
		return m, m.fetch()
	case "f":
		if !m.history.Forward() {
			return m, nil
		}
		m.ctrl.ReadLocation()
		m.selected = 0
		return m, m.fetch()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.out.view.Cards)-1 {
			m.selected++
		}
	case "enter", " ":
		if m.selected < len(m.out.view.Cards) {
			card := m.out.view.Cards[m.selected]
			m.ctrl.Activate(card.ID)
			m.status = fmt.Sprintf("Navigate to post: %d", card.ID)
		}
	case "r":
		return m, m.fetch()
	}
	return m, nil
}

func (m Model) step(key pagecontroller.Key) (tea.Model, tea.Cmd) {
	next, ok := m.ctrl.State().Step(key)
	if !ok || !m.ctrl.Navigate(next.Page) {
		return m, nil
	}
	if m.out.scrolled {
		m.out.scrolled = false
		m.selected = 0
	}
	return m, m.fetch()
}

func (m *Model) clampSelection() {
	if n := len(m.out.view.Cards); m.selected >= n {
		m.selected = max(n-1, 0)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := RenderView(m.out.view, m.selected, m.width)
	if m.status != "" {
		s += "\n" + statusStyle.Render(m.status) + "\n"
	}
	return s + "\n" + helpStyle.Render(helpText) + "\n"
}

// cycleSize moves through PageSizeOptions, wrapping at either end. A size not
// in the list restarts from the first option.
func cycleSize(current, dir int) int {
	opts := pagecontroller.PageSizeOptions
	for i, size := range opts {
		if size == current {
			return opts[(i+dir+len(opts))%len(opts)]
		}
	}
	return opts[0]
}
