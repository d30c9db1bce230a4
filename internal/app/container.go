package app

import (
	"fmt"
	"net/http"

	"github.com/kapu/character-lookup-go/internal/adapter"
	"github.com/kapu/character-lookup-go/internal/config"
	"github.com/kapu/character-lookup-go/internal/server"
	"github.com/kapu/character-lookup-go/internal/service"
	"github.com/kapu/character-lookup-go/internal/widget"
	"go.uber.org/zap"
)

// Container bundles the shared infrastructure every front-end builds on.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	httpClient *http.Client
	api        *service.CharacterAPIClient
	formatter  *adapter.ResponseFormatter
}

// Build assembles the API client and formatter from cfg.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	// A zero timeout leaves requests unbounded.
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	api := service.NewCharacterAPIClient(httpClient, cfg.API.BaseURL, cfg.API.UserAgent, logger.Named("api"))

	logger.Debug("Application services assembled",
		zap.String("base_url", cfg.API.BaseURL),
		zap.Duration("timeout", cfg.API.Timeout),
	)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		httpClient: httpClient,
		api:        api,
		formatter:  adapter.NewResponseFormatter(),
	}, nil
}

// NewLookupService returns a service with a fresh, empty history.
func (c *Container) NewLookupService() *service.LookupService {
	return service.NewLookupService(c.api, c.Logger.Named("lookup"))
}

// NewWidget returns a widget with a fresh, empty history.
func (c *Container) NewWidget() *widget.Widget {
	return widget.New(c.NewLookupService(), c.formatter)
}

// Formatter returns the shared text formatter.
func (c *Container) Formatter() *adapter.ResponseFormatter {
	return c.formatter
}

// NewServer builds the HTTP widget from the server configuration.
func (c *Container) NewServer() *server.Server {
	return server.New(server.Options{
		Addr:            c.Config.Server.Addr,
		SessionTTL:      c.Config.Server.SessionTTL,
		ShutdownTimeout: c.Config.Server.ShutdownTimeout,
	}, c.NewWidget, c.Logger.Named("server"))
}
