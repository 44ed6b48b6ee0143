package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"ideas-listing/internal/models"
)

const (
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgServerFault      = "Something went wrong!"
)

// NewErrorHandler renders every error as {"error": "..."}. Errors that are not
// *echo.HTTPError are server faults: logged, and reported with a generic message.
func NewErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := msgServerFault

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch code {
			case http.StatusNotFound:
				message = msgNotFound
			case http.StatusMethodNotAllowed:
				message = msgMethodNotAllowed
			default:
				if m, ok := he.Message.(string); ok && code < http.StatusInternalServerError {
					message = m
				}
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, models.HTTPError{Error: message})
		}
		if err != nil {
			log.Error().Err(err).Msg("write error response")
		}
	}
}
