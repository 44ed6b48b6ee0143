package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ideas-listing/internal/ideas"
)

type IdeasHandler struct {
	svc         ideas.Service
	defaultSize int
}

func NewIdeasHandler(svc ideas.Service, defaultSize int) *IdeasHandler {
	return &IdeasHandler{svc: svc, defaultSize: defaultSize}
}

// ListIdeas godoc
// @Summary List ideas
// @Description Returns one sorted page of the ideas collection. Malformed numbers fall back to defaults; pages past the end are empty.
// @Tags ideas
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(10)
// @Param page[size] query int false "Page size (takes precedence over size)"
// @Param sort query string false "Sort key" Enums(-published_at, published_at) default(-published_at)
// @Success 200 {object} models.Page
// @Failure 500 {object} models.HTTPError
// @Router /api/ideas [get]
func (h *IdeasHandler) ListIdeas(c echo.Context) error {
	req := ideas.ParsePageRequest(c.QueryParam("page"), sizeParam(c), c.QueryParam("sort"), h.defaultSize)

	page, err := h.svc.List(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// sizeParam prefers a usable page[size] over size.
func sizeParam(c echo.Context) string {
	if v := c.QueryParam("page[size]"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return v
		}
	}
	return c.QueryParam("size")
}
