package tui

import (
	"context"
	"io"

	"ideas-listing/internal/pagecontroller"
)

// RenderOnce loads the page at opts.Location and writes it to w without
// starting the interactive program.
func RenderOnce(ctx context.Context, w io.Writer, opts Options) error {
	location := opts.Location
	if location == "" {
		location = "/"
	}

	out := &sink{}
	ctrl := pagecontroller.New(pagecontroller.Options{
		History: pagecontroller.NewMemoryHistory(location),
		Fetcher: opts.Fetcher,
		Render:  out,
		Dates:   opts.Dates,
		Logger:  opts.Logger,
	})

	loadErr := ctrl.Load(ctx)
	if _, err := io.WriteString(w, RenderView(out.view, -1, 0)); err != nil {
		return err
	}
	return loadErr
}
