package router

import (
	"github.com/labstack/echo/v4"

	"ideas-listing/internal/handler/http"
)

type Handlers struct {
	Ideas  *http.IdeasHandler
	Health *http.HealthHandler
	Page   *http.PageHandler
}

func NewRouter(e *echo.Echo, h Handlers) {
	api := e.Group("/api")
	api.GET("/ideas", h.Ideas.ListIdeas)
	api.GET("/health", h.Health.Health)

	if h.Page != nil {
		e.GET("/", h.Page.Index)
	}
}
