package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ideas-listing/docs"
	"ideas-listing/internal/app"
)

// @title Ideas Listing API
// @version 1.0
// @description Paginated, sortable listing of ideas posts.
//
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host localhost:3000
// @BasePath /

func main() {
	application, err := app.Initialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	log := application.Logger
	docs.SwaggerInfo.Host = "localhost:" + application.Config.ServerPort

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start()
	}()

	log.Info().Msgf("Swagger documentation available at http://localhost:%s/swagger/index.html", application.Config.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), application.Config.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
