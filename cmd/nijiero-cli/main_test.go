package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/nijiero-go/internal/models"
	"github.com/vrsandeep/nijiero-go/internal/testutil/fakesite"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI(t *testing.T) {
	site := fakesite.New(t)
	t.Setenv("NIJIERO_SITE_BASE_URL", site.URL)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	site.Handle("/ranking.html", site.RankingPage([]fakesite.Work{
		{Path: "/archives/1", Title: "One", Thumb: "https://img/1.jpg"},
	}, 0))
	site.Handle("/tag/spy-x-family/page/2", site.SearchPage([]fakesite.Work{
		{Path: "/archives/2", Title: "Two", Thumb: "https://img/2.jpg"},
	}, false))

	t.Run("popular", func(t *testing.T) {
		out, err := run(t, "popular")
		require.NoError(t, err)
		var page models.ListingPage
		require.NoError(t, json.Unmarshal([]byte(out), &page))
		require.Len(t, page.Results, 1)
		assert.Equal(t, "/archives/1", page.Results[0].Identifier)
	})

	t.Run("search", func(t *testing.T) {
		out, err := run(t, "search", "--query", " Spy x Family ", "--page", "2")
		require.NoError(t, err)
		var page models.ListingPage
		require.NoError(t, json.Unmarshal([]byte(out), &page))
		require.Len(t, page.Results, 1)
		assert.Equal(t, "Two", page.Results[0].Title)
	})

	t.Run("filters", func(t *testing.T) {
		out, err := run(t, "filters")
		require.NoError(t, err)
		assert.Contains(t, out, "Spy x Family")
	})

	t.Run("latest is unsupported", func(t *testing.T) {
		_, err := run(t, "latest")
		assert.ErrorIs(t, err, models.ErrUnsupported)
	})

	t.Run("details needs an identifier", func(t *testing.T) {
		_, err := run(t, "details")
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := run(t, "--provider", "nope", "filters")
		assert.ErrorContains(t, err, "unknown provider")
	})
}
