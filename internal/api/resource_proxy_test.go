package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/nijiero-go/internal/api"
	"github.com/vrsandeep/nijiero-go/internal/testutil"
)

func TestHandleProxyResource(t *testing.T) {
	server, site := testutil.SetupTestServer(t)
	router := server.Router()
	site.HandleResource("/wp-content/uploads/a.jpg", "image/jpeg", []byte("fake-image-data"))

	t.Run("Streams a page with the site as referer", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/proxy?url="+url.QueryEscape("/wp-content/uploads/a.jpg"))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=86400", rr.Header().Get("Cache-Control"))
		assert.Equal(t, "fake-image-data", rr.Body.String())

		requests := site.Requests()
		require.NotEmpty(t, requests)
		assert.Equal(t, site.URL+"/", requests[len(requests)-1].Referer())
	})

	t.Run("Refuses other hosts", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/proxy?url="+url.QueryEscape("https://elsewhere.example.com/a.jpg"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Missing resource", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/proxy?url="+url.QueryEscape("/missing.jpg"))
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("Missing url", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/proxy")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProxyFollowsConfigReload(t *testing.T) {
	app, site := testutil.SetupTestApp(t)
	router := api.NewServer(app).Router()
	site.HandleResource("/wp-content/uploads/a.jpg", "image/jpeg", []byte("fake-image-data"))
	target := "/api/providers/nijiero/proxy?url=" + url.QueryEscape("/wp-content/uploads/a.jpg")

	rr := get(t, router, target)
	require.Equal(t, http.StatusOK, rr.Code)

	reloaded := testutil.TestConfig(site.URL)
	reloaded.HTTP.UserAgent = "nijiero-reloaded"
	require.NoError(t, app.Reload(reloaded))

	rr = get(t, router, target)
	require.Equal(t, http.StatusOK, rr.Code)

	requests := site.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "nijiero-test", requests[0].UserAgent())
	assert.Equal(t, "nijiero-reloaded", requests[1].UserAgent())
}
