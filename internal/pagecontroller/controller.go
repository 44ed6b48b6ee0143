package pagecontroller

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"ideas-listing/internal/ideas"
	"ideas-listing/internal/models"
)

// ErrBusy is returned when a fetch is requested while another is in flight.
var ErrBusy = errors.New("a fetch is already in flight")

// Fetcher loads one page from the listing service.
type Fetcher interface {
	FetchPage(ctx context.Context, req ideas.PageRequest) (models.Page, error)
}

// Renderer displays views. ScrollToTop follows a page navigation.
type Renderer interface {
	Render(v View)
	ScrollToTop()
}

// Options configures a Controller.
type Options struct {
	// Path is the location path state URLs are built on. Defaults to the
	// history's current path.
	Path    string
	History History
	Fetcher Fetcher
	Render  Renderer
	Dates   DateFormatter
	Logger  zerolog.Logger
}

// Controller keeps State, the address bar and the rendered view consistent.
//
// At most one fetch runs at a time. A trigger arriving while one is in flight
// still updates state and history but does not fetch; when the in-flight fetch
// completes against a request that no longer matches state, its result is
// dropped and the caller is told to fetch again.
//
// That refetch means triggers dropped during a fetch are effectively coalesced
// into one follow-up request for the latest state, rather than lost outright.
// Without it the view would show the old request's posts under the new
// state's controls and URL.
type Controller struct {
	mu       sync.Mutex
	state    State
	path     string
	history  History
	fetcher  Fetcher
	renderer Renderer
	dates    DateFormatter
	guard    Guard
	log      zerolog.Logger
}

func New(opts Options) *Controller {
	path := opts.Path
	if path == "" {
		path = opts.History.Location().Path
	}
	if path == "" {
		path = "/"
	}
	return &Controller{
		state:    DefaultState(),
		path:     path,
		history:  opts.History,
		fetcher:  opts.Fetcher,
		renderer: opts.Render,
		dates:    opts.Dates,
		log:      opts.Logger.With().Str("component", "page_controller").Logger(),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load reads state from the current location and fetches it.
func (c *Controller) Load(ctx context.Context) error {
	c.readLocation()
	return c.Refresh(ctx)
}

// PopState handles back/forward: the location is read, never pushed.
func (c *Controller) PopState(ctx context.Context) error {
	return c.Load(ctx)
}

func (c *Controller) ChangePageSize(ctx context.Context, size int) error {
	c.apply(func(s State) State { return s.WithPageSize(size) })
	return c.Refresh(ctx)
}

func (c *Controller) ChangeSort(ctx context.Context, key ideas.SortKey) error {
	c.apply(func(s State) State { return s.WithSort(key) })
	return c.Refresh(ctx)
}

// GoToPage navigates to page when it is in range and not current. It reports
// whether navigation happened.
func (c *Controller) GoToPage(ctx context.Context, page int) (bool, error) {
	if !c.Navigate(page) {
		return false, nil
	}
	return true, c.Refresh(ctx)
}

// HandleKey applies arrow-key navigation.
func (c *Controller) HandleKey(ctx context.Context, key Key) (bool, error) {
	s := c.State()
	next, ok := s.Step(key)
	if !ok {
		return false, nil
	}
	return c.GoToPage(ctx, next.Page)
}

// Navigate is the synchronous half of GoToPage for front ends that fetch
// asynchronously with Begin and Complete.
func (c *Controller) Navigate(page int) bool {
	c.mu.Lock()
	next, ok := c.state.WithPage(page)
	if ok {
		c.state = next
		c.history.Push(next.URL(c.path))
	}
	c.mu.Unlock()

	if ok {
		c.renderer.ScrollToTop()
	}
	return ok
}

// SetPageSize and SetSort are the synchronous halves of ChangePageSize and ChangeSort.
func (c *Controller) SetPageSize(size int) {
	c.apply(func(s State) State { return s.WithPageSize(size) })
}

func (c *Controller) SetSort(key ideas.SortKey) {
	c.apply(func(s State) State { return s.WithSort(key) })
}

// ReadLocation is the synchronous half of Load and PopState.
func (c *Controller) ReadLocation() {
	c.readLocation()
}

// Activate is the card action. There is no detail view yet, so it only logs.
func (c *Controller) Activate(postID int) {
	c.log.Info().Int("post_id", postID).Msg("navigate to post")
}

// Refresh fetches the current state, repeating while state moved on during
// the fetch. It returns ErrBusy when another fetch holds the guard.
func (c *Controller) Refresh(ctx context.Context) error {
	for {
		req, ok := c.Begin()
		if !ok {
			return ErrBusy
		}
		page, err := c.fetcher.FetchPage(ctx, req)
		if c.Complete(req, page, err) {
			continue
		}
		return err
	}
}

// Begin takes the in-flight guard, renders the loading view and returns the
// request to fetch. It returns false when a fetch is already in flight.
func (c *Controller) Begin() (ideas.PageRequest, bool) {
	if !c.guard.TryAcquire() {
		c.log.Debug().Msg("fetch dropped, another is in flight")
		return ideas.PageRequest{}, false
	}

	c.mu.Lock()
	c.state.Loading = true
	s := c.state
	c.mu.Unlock()

	c.renderer.Render(LoadingView(s))
	return s.Request(), true
}

// Complete releases the guard and renders the outcome of req. It returns true
// when state changed while req was in flight; the result is then discarded
// and the caller should Begin again.
func (c *Controller) Complete(req ideas.PageRequest, page models.Page, err error) (stale bool) {
	defer c.guard.Release()

	c.mu.Lock()
	c.state.Loading = false
	if c.state.Request() != req {
		c.mu.Unlock()
		c.log.Debug().Int("page", req.Page).Msg("discarding stale page")
		return true
	}
	if err == nil {
		c.state = c.state.WithResult(page.Meta)
	}
	s := c.state
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Int("page", req.Page).Int("size", req.Size).Msg("error loading posts")
		c.renderer.Render(ErrorView(s))
		return false
	}
	c.renderer.Render(ResultView(s, page.Data, c.dates))
	return false
}

func (c *Controller) apply(fn func(State) State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = fn(c.state)
	c.history.Push(c.state.URL(c.path))
}

func (c *Controller) readLocation() {
	loc := c.history.Location()

	c.mu.Lock()
	defer c.mu.Unlock()

	next := FromQuery(loc.Query())
	next.TotalItems = c.state.TotalItems
	next.TotalPages = c.state.TotalPages
	next.Loading = c.state.Loading
	c.state = next
}
