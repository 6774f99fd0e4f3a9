// Shared test server setup, which keeps the API tests short.

package testutil

import (
	"testing"

	"github.com/vrsandeep/nijiero-go/internal/api"
	"github.com/vrsandeep/nijiero-go/internal/config"
	"github.com/vrsandeep/nijiero-go/internal/core"
	"github.com/vrsandeep/nijiero-go/internal/downloader/providers"
	"github.com/vrsandeep/nijiero-go/internal/downloader/providers/mockadex"
	"github.com/vrsandeep/nijiero-go/internal/testutil/fakesite"
)

// TestConfig points the site at baseURL with short timeouts.
func TestConfig(baseURL string) *config.Config {
	cfg := &config.Config{Port: 0}
	cfg.Site.BaseURL = baseURL
	cfg.HTTP.TimeoutSeconds = 5
	cfg.HTTP.UserAgent = "nijiero-test"
	return cfg
}

// SetupTestApp builds a core.App whose nijiero provider talks to a fake
// site. Mockadex is registered alongside it.
func SetupTestApp(t *testing.T) (*core.App, *fakesite.Site) {
	t.Helper()
	site := fakesite.New(t)

	providers.UnregisterAll()
	app, err := core.New(TestConfig(site.URL))
	if err != nil {
		t.Fatalf("Failed to set up app: %v", err)
	}
	t.Cleanup(app.Close)

	// Register providers for the test environment
	providers.Register(mockadex.New())
	return app, site
}

// SetupTestServer initializes a full core.App and api.Server for integration testing.
func SetupTestServer(t *testing.T) (*api.Server, *fakesite.Site) {
	t.Helper()
	app, site := SetupTestApp(t)
	return api.NewServer(app), site
}
