package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/nijiero-go/internal/config"
	"github.com/vrsandeep/nijiero-go/internal/downloader/providers"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{Port: 8080}
	cfg.Site.BaseURL = baseURL
	cfg.HTTP.TimeoutSeconds = 5
	return cfg
}

func TestNewRegistersSiteProvider(t *testing.T) {
	providers.UnregisterAll()
	app, err := New(testConfig("https://www.nijiero-ch.com"))
	require.NoError(t, err)
	t.Cleanup(app.Close)

	p, ok := providers.Get("nijiero")
	require.True(t, ok)
	assert.Equal(t, "https://www.nijiero-ch.com", p.GetInfo().BaseURL)
	assert.Equal(t, 8080, app.Config().Port)
}

func TestReload(t *testing.T) {
	providers.UnregisterAll()
	app, err := New(testConfig("https://www.nijiero-ch.com"))
	require.NoError(t, err)
	t.Cleanup(app.Close)

	before := app.HTTPClient()
	next := testConfig("https://mirror.example.com")
	next.Port = 9090
	next.HTTP.TimeoutSeconds = 12
	require.NoError(t, app.Reload(next))

	p, ok := providers.Get("nijiero")
	require.True(t, ok)
	assert.Equal(t, "https://mirror.example.com", p.GetInfo().BaseURL)
	assert.Equal(t, 9090, app.Config().Port)
	assert.Len(t, providers.GetAll(), 1)
	assert.NotSame(t, before, app.HTTPClient())
	assert.Equal(t, 12*time.Second, app.HTTPClient().Timeout)
}

func TestCloseUnregisters(t *testing.T) {
	providers.UnregisterAll()
	app, err := New(testConfig("https://www.nijiero-ch.com"))
	require.NoError(t, err)

	app.Close()
	_, ok := providers.Get("nijiero")
	assert.False(t, ok)
}
