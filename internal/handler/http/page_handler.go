package http

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"ideas-listing/internal/ideas"
	"ideas-listing/internal/pagecontroller"
)

// PageHandler serves the listing as a complete HTML page for the URL's
// page, size and sort, so every listing URL can be bookmarked.
type PageHandler struct {
	svc      ideas.Service
	renderer *pagecontroller.HTMLRenderer
	dates    pagecontroller.DateFormatter
	log      zerolog.Logger
}

func NewPageHandler(svc ideas.Service, renderer *pagecontroller.HTMLRenderer, dates pagecontroller.DateFormatter, log zerolog.Logger) *PageHandler {
	return &PageHandler{svc: svc, renderer: renderer, dates: dates, log: log}
}

func (h *PageHandler) Index(c echo.Context) error {
	state := pagecontroller.FromQuery(c.QueryParams())

	code, view := http.StatusInternalServerError, pagecontroller.ErrorView(state)
	page, err := h.svc.List(c.Request().Context(), state.Request())
	if err != nil {
		h.log.Error().Err(err).Interface("request", state.Request()).Msg("error loading posts")
	} else {
		state = state.WithResult(page.Meta)
		code, view = http.StatusOK, pagecontroller.ResultView(state, page.Data, h.dates)
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, view); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}
