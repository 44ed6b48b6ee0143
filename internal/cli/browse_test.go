package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideas-listing/internal/config"
	"ideas-listing/internal/models"
)

func newIdeasServer(t *testing.T, seen *[]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = append(*seen, r.URL.RawQuery)
		json.NewEncoder(w).Encode(models.Page{
			Data: []models.Post{{ID: 21, Title: "Strategi Content Marketing", PublishedAt: time.Date(2024, 1, 12, 16, 45, 0, 0, time.UTC)}},
			Meta: models.PageMeta{Total: 21, Page: 3, PerPage: 10, TotalPages: 3},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := NewBrowseCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBrowseOnce(t *testing.T) {
	var seen []string
	srv := newIdeasServer(t, &seen)

	out, err := execute(t, &config.Config{DateLocale: "id-ID"},
		"--once", "--api", srv.URL, "--page", "3", "--size", "10", "--sort", "published_at")
	require.NoError(t, err)

	assert.Equal(t, []string{"page=3&size=10&sort=published_at"}, seen)
	assert.Contains(t, out, "Strategi Content Marketing")
	assert.Contains(t, out, "12 Januari 2024")
	assert.Contains(t, out, "Showing 21 - 21 of 21")
}

func TestBrowseOnce_InvalidFlagsUseDefaults(t *testing.T) {
	var seen []string
	srv := newIdeasServer(t, &seen)

	_, err := execute(t, &config.Config{APIBaseURL: srv.URL}, "--once", "--page", "0", "--size", "-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"page=1&size=10&sort=-published_at"}, seen)
}

func TestBrowse_RejectsBadProxy(t *testing.T) {
	_, err := execute(t, &config.Config{APIBaseURL: "http://localhost:3000"}, "--once", "--proxy", "ftp://proxy")
	assert.ErrorContains(t, err, "invalid proxy URL format")
}

func TestBrowse_RejectsBadAPI(t *testing.T) {
	_, err := execute(t, &config.Config{}, "--once", "--api", "localhost:3000")
	assert.ErrorContains(t, err, "invalid API base URL")
}

func TestBrowseOnce_ServerErrorReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, err := execute(t, &config.Config{}, "--once", "--api", srv.URL)
	assert.ErrorContains(t, err, "HTTP error! status: 500")
	assert.Contains(t, out, "Oops! Something went wrong")
}

func TestBrowse_NonTerminalOutputRendersOnce(t *testing.T) {
	var seen []string
	srv := newIdeasServer(t, &seen)

	out, err := execute(t, &config.Config{APIBaseURL: srv.URL})
	require.NoError(t, err)
	assert.Len(t, seen, 1)
	assert.Contains(t, out, "Strategi Content Marketing")
}
