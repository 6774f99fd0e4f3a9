package core

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/vrsandeep/nijiero-go/internal/config"
	"github.com/vrsandeep/nijiero-go/internal/downloader/providers"
	"github.com/vrsandeep/nijiero-go/internal/downloader/providers/nijiero"
	"github.com/vrsandeep/nijiero-go/internal/scraper"
)

// App holds the core components of the application that are shared
// between the server and the CLI.
type App struct {
	mu     sync.RWMutex
	config *config.Config
	client *http.Client
}

// New builds the shared HTTP client from cfg and registers every provider.
func New(cfg *config.Config) (*App, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	providers.Register(nijiero.NewWithClient(client, cfg.Site.BaseURL))

	log.Println("Core application setup complete.")
	return &App{config: cfg, client: client}, nil
}

func newClient(cfg *config.Config) (*http.Client, error) {
	client, err := scraper.NewHTTPClient(scraper.ClientOptions{
		Timeout:   cfg.Timeout(),
		UserAgent: cfg.HTTP.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create http client: %w", err)
	}
	return client, nil
}

// Config returns the configuration currently in effect.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// HTTPClient returns the client built from the current configuration. It
// is the same client the site provider uses.
func (a *App) HTTPClient() *http.Client {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.client
}

// Reload rebuilds the HTTP client and site provider from cfg. Requests
// already in flight finish against the old ones.
func (a *App) Reload(cfg *config.Config) error {
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	providers.Replace(nijiero.NewWithClient(client, cfg.Site.BaseURL))

	a.mu.Lock()
	a.config = cfg
	a.client = client
	a.mu.Unlock()
	log.Printf("Configuration reloaded, site is %s", cfg.Site.BaseURL)
	return nil
}

// Close releases everything New registered.
func (a *App) Close() {
	providers.UnregisterAll()
}
