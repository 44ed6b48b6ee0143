package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"ideas-listing/internal/config"
	handler "ideas-listing/internal/handler/http"
	"ideas-listing/internal/ideas"
	"ideas-listing/internal/logging"
	"ideas-listing/internal/pagecontroller"
	"ideas-listing/internal/router"
	"ideas-listing/pkg/cache"
)

// contentSecurityPolicy allows inline styles and scripts for the rendered
// page and images from any http(s) host.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"style-src 'self' 'unsafe-inline'",
	"script-src 'self' 'unsafe-inline'",
	"img-src 'self' data: https: http:",
	"font-src 'self' data:",
	"connect-src 'self'",
	"media-src 'self'",
	"object-src 'none'",
	"child-src 'self'",
	"frame-src 'self'",
	"worker-src 'self'",
	"manifest-src 'self'",
}, "; ")

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Service ideas.Service
	Logger  zerolog.Logger

	closers []func() error
}

func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logging.New(cfg.IsDevelopment(), cfg.LogLevel)
	return New(context.Background(), cfg, log)
}

// New builds the store, the listing service and the HTTP server from cfg.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: log}

	posts := ideas.Generate(cfg.IdeasCount, time.Now(), ideas.NewRand(cfg.IdeasSeed))

	var store ideas.Store
	switch cfg.IdeasStore {
	case config.StoreSQL:
		sqlStore, err := ideas.OpenSQLStore(cfg.IdeasSQLDSN, posts)
		if err != nil {
			return nil, fmt.Errorf("failed to open ideas store: %w", err)
		}
		a.closers = append(a.closers, sqlStore.Close)
		store = sqlStore
	default:
		store = ideas.NewSnapshot(posts)
	}
	log.Info().Str("store", cfg.IdeasStore).Int("posts", len(posts)).Msg("ideas store ready")

	svc := ideas.NewService(store)
	if cfg.RedisAddr != "" {
		client, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, page cache disabled")
		} else {
			a.closers = append(a.closers, client.Close)
			svc = ideas.NewCachedService(svc, cache.NewRedisPageCache(client), cfg.CacheTTL, log)
			log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("page cache enabled")
		}
	}
	a.Service = svc

	dates := pagecontroller.NewDateFormatter(cfg.DateLocale, nil)
	renderer, err := pagecontroller.NewHTMLRenderer("/", dates)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.HTTPErrorHandler = handler.NewErrorHandler(log)

	e.Use(RequestLogger(log))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{DisablePrintStack: !cfg.IsDevelopment()}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: contentSecurityPolicy,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSAllowOrigins}))
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{Root: cfg.StaticDir}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	router.NewRouter(e, router.Handlers{
		Ideas:  handler.NewIdeasHandler(svc, cfg.DefaultPageSize),
		Health: handler.NewHealthHandler(),
		Page:   handler.NewPageHandler(svc, renderer, dates, log),
	})

	a.Echo = e
	return a, nil
}

func (a *App) Start() error {
	port := a.Config.ServerPort
	if port == "" {
		port = "3000"
	}
	a.Logger.Info().Str("port", port).Msg("server listening")
	if err := a.Echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server and releases the store and cache connections.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	for i := len(a.closers) - 1; i >= 0; i-- {
		if cerr := a.closers[i](); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}
	return err
}
