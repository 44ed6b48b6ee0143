// Package cli holds the browse command: a terminal client for the ideas API.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ideas-listing/internal/client"
	"ideas-listing/internal/config"
	"ideas-listing/internal/ideas"
	"ideas-listing/internal/logging"
	"ideas-listing/internal/pagecontroller"
	"ideas-listing/internal/tui"
	"ideas-listing/pkg/httpclient"
)

type browseOptions struct {
	api         string
	page        int
	size        int
	sort        string
	proxy       string
	fingerprint bool
	locale      string
	debug       bool
	once        bool
}

// NewBrowseCmd builds the browse command. Flag defaults come from cfg.
func NewBrowseCmd(cfg *config.Config) *cobra.Command {
	opts := browseOptions{
		api:         cfg.APIBaseURL,
		page:        ideas.DefaultPage,
		size:        ideas.DefaultPageSize,
		sort:        string(ideas.DefaultSort),
		proxy:       cfg.ProxyURL,
		fingerprint: cfg.Fingerprint,
		locale:      cfg.DateLocale,
	}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the ideas listing in the terminal",
		Long:  "Browse pages of the ideas listing served by the ideas API, with sorting, page sizes and history.",
		Example: `  browse
  browse --page 2 --size 20 --sort published_at
  browse --once --api http://localhost:3000`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, cfg.ClientTimeout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.api, "api", opts.api, "base URL of the ideas API")
	flags.IntVar(&opts.page, "page", opts.page, "starting page")
	flags.IntVar(&opts.size, "size", opts.size, "posts per page (10, 20 or 50)")
	flags.StringVar(&opts.sort, "sort", opts.sort, "sort key: -published_at (newest) or published_at (oldest)")
	flags.StringVar(&opts.proxy, "proxy", opts.proxy, "http, https or socks5 proxy URL")
	flags.BoolVar(&opts.fingerprint, "fingerprint", opts.fingerprint, "use a browser TLS fingerprint for https")
	flags.StringVar(&opts.locale, "locale", opts.locale, "date locale, e.g. id-ID or en-US")
	flags.BoolVar(&opts.debug, "debug", false, "log to stderr")
	flags.BoolVar(&opts.once, "once", false, "print one page and exit (implied when stdout is not a terminal)")

	return cmd
}

func runBrowse(ctx context.Context, stdout, stderr io.Writer, opts browseOptions, timeout time.Duration) error {
	if opts.proxy != "" {
		if err := config.ValidateProxyURL(opts.proxy); err != nil {
			return err
		}
	}

	log := zerolog.Nop()
	if opts.debug {
		log = logging.NewWithWriter(stderr, "debug")
	}

	httpClient, err := httpclient.New(httpclient.Options{
		ProxyURL:    opts.proxy,
		Fingerprint: opts.fingerprint,
		Timeout:     timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}
	if opts.proxy != "" {
		log.Debug().Str("proxy", httpclient.MaskProxyURL(opts.proxy)).Msg("using proxy")
	}

	ideasClient, err := client.NewIdeasClient(opts.api, httpClient)
	if err != nil {
		return err
	}

	tuiOpts := tui.Options{
		Location: startLocation(opts),
		Fetcher:  ideasClient,
		Dates:    pagecontroller.NewDateFormatter(opts.locale, nil),
		Logger:   log,
	}

	if opts.once || !isTerminal(stdout) {
		return tui.RenderOnce(ctx, stdout, tuiOpts)
	}

	program := tea.NewProgram(tui.NewModel(ctx, tuiOpts), tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// startLocation turns the flags into an address the controller reads like
// any other URL, so out-of-range flags get the usual defaults.
func startLocation(opts browseOptions) string {
	s := pagecontroller.State{Page: opts.page, Size: opts.size, Sort: ideas.SortKey(opts.sort)}
	return s.URL("/")
}

// Execute runs the browse command with configuration from the environment.
func Execute() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := NewBrowseCmd(cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
