package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/nijiero-go/internal/models"
	"github.com/vrsandeep/nijiero-go/internal/testutil"
	"github.com/vrsandeep/nijiero-go/internal/testutil/fakesite"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestHandleListProviders(t *testing.T) {
	server, site := testutil.SetupTestServer(t)
	rr := get(t, server.Router(), "/api/providers")
	require.Equal(t, http.StatusOK, rr.Code)

	infos := decode[[]models.ProviderInfo](t, rr)
	require.Len(t, infos, 2)
	assert.Equal(t, "mockadex", infos[0].ID)
	assert.Equal(t, "nijiero", infos[1].ID)
	assert.Equal(t, site.URL, infos[1].BaseURL)
	assert.False(t, infos[1].Capabilities.Latest)
}

func TestHandleProviderBrowse(t *testing.T) {
	server, site := testutil.SetupTestServer(t)
	router := server.Router()

	site.Handle("/ranking.html", site.RankingPage([]fakesite.Work{
		{Path: "/archives/1", Title: "One", Thumb: "https://img/1.jpg"},
		{Path: "/archives/2", Title: "Two", Thumb: "https://img/2.jpg"},
	}, 1))
	site.Handle("/category/blue-archive/page/1", site.EmptySearchPage())
	site.Handle("/tag/blue-archive/page/1", site.SearchPage([]fakesite.Work{
		{Path: "/archives/3", Title: "Three", Thumb: "https://img/3.jpg"},
	}, true))

	t.Run("Popular", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/popular")
		require.Equal(t, http.StatusOK, rr.Code)
		page := decode[models.ListingPage](t, rr)
		assert.Len(t, page.Results, 2)
		assert.False(t, page.HasNextPage)
		assert.Equal(t, "/archives/1", page.Results[0].Identifier)
	})

	t.Run("Search by filter falls back to tag", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/search?page=1&tag=1")
		require.Equal(t, http.StatusOK, rr.Code)
		page := decode[models.ListingPage](t, rr)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "Three", page.Results[0].Title)
		assert.True(t, page.HasNextPage)
	})

	t.Run("Invalid page", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/popular?page=0")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		rr = get(t, router, "/api/providers/nijiero/search?tag=abc")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Out of range filter", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/search?tag=999")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Latest is not implemented", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/latest")
		assert.Equal(t, http.StatusNotImplemented, rr.Code)

		rr = get(t, router, "/api/providers/mockadex/latest?page=2")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decode[models.ListingPage](t, rr).HasNextPage)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nope/popular")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleProviderSeries(t *testing.T) {
	server, site := testutil.SetupTestServer(t)
	router := server.Router()

	site.Handle("/archives/10", site.PostPage(fakesite.Post{
		Title:      "正しいタイトル",
		PageTitle:  "page title",
		Cover:      "https://img/cover.jpg",
		Categories: []string{"aa-bb"},
		Published:  "2023-05-01T12:34:56+09:00",
		Images:     []string{"/wp-content/uploads/a.jpg.webp", "/wp-content/uploads/b.jpg.webp"},
	}))
	site.HandleStatus("/archives/500", http.StatusInternalServerError, "down")
	id := url.QueryEscape("/archives/10")

	t.Run("Details", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/series?id="+id)
		require.Equal(t, http.StatusOK, rr.Code)
		detail := decode[models.SeriesDetail](t, rr)
		assert.Equal(t, "正しいタイトル", detail.Title)
		assert.Equal(t, "aa bb", detail.Genre)
		assert.Equal(t, models.UpdateOnlyFetchOnce, detail.UpdateStrategy)
	})

	t.Run("Chapters", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/chapters?id="+id)
		require.Equal(t, http.StatusOK, rr.Code)
		chapters := decode[[]models.ChapterResult](t, rr)
		require.Len(t, chapters, 1)
		assert.Equal(t, "/archives/10", chapters[0].Identifier)
		assert.NotZero(t, chapters[0].DateUpload)
	})

	t.Run("Pages", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/pages?id="+id)
		require.Equal(t, http.StatusOK, rr.Code)
		pages := decode[[]models.Page](t, rr)
		require.Len(t, pages, 2)
		assert.Equal(t, "/wp-content/uploads/b.jpg", pages[1].URL)
		assert.Equal(t, 1, pages[1].Index)
	})

	t.Run("Missing id", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/series")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Upstream failure is a bad gateway", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/series?id="+url.QueryEscape("/archives/500"))
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("Foreign identifiers are refused", func(t *testing.T) {
		other := fakesite.New(t)
		other.Handle("/private", other.PostPage(fakesite.Post{Title: "internal-secret", Images: []string{"/admin/token"}}))
		foreign := url.QueryEscape(other.URL + "/private")

		for _, endpoint := range []string{"series", "chapters", "pages"} {
			rr := get(t, router, "/api/providers/nijiero/"+endpoint+"?id="+foreign)
			assert.Equal(t, http.StatusForbidden, rr.Code, endpoint)
			assert.NotContains(t, rr.Body.String(), "internal-secret")
		}
		assert.Empty(t, other.Requests())
	})

	t.Run("Filters", func(t *testing.T) {
		rr := get(t, router, "/api/providers/nijiero/filters")
		require.Equal(t, http.StatusOK, rr.Code)
		filters := decode[[]models.Filter](t, rr)
		require.Len(t, filters, 2)
		assert.Equal(t, models.FilterHeader, filters[0].Kind)
		assert.NotEmpty(t, filters[1].Options)
	})
}
