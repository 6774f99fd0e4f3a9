// A handler file for all provider-related API endpoints.

package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vrsandeep/nijiero-go/internal/downloader/providers"
	"github.com/vrsandeep/nijiero-go/internal/models"
	"github.com/vrsandeep/nijiero-go/internal/scraper"
)

func (s *Server) handleListProviders(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, providers.GetAll())
}

// providerFromRequest looks up the {providerID} URL param, answering 404
// itself when the provider is unknown.
func providerFromRequest(w http.ResponseWriter, r *http.Request) (models.Provider, bool) {
	provider, ok := providers.Get(chi.URLParam(r, "providerID"))
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Provider not found")
	}
	return provider, ok
}

// intParam reads a non-negative integer query parameter.
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid '" + name + "' parameter")
	}
	return n, nil
}

func pageParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	page, err := intParam(r, "page", 1)
	if err != nil || page < 1 {
		RespondWithError(w, http.StatusBadRequest, "Invalid 'page' parameter")
		return 0, false
	}
	return page, true
}

func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing 'id' parameter")
		return "", false
	}
	return id, true
}

// respondWithProviderError maps provider failures onto HTTP statuses.
func respondWithProviderError(w http.ResponseWriter, providerID, action string, err error) {
	var statusErr *scraper.StatusError
	var originErr *scraper.OriginError
	switch {
	case errors.Is(err, models.ErrUnsupported):
		RespondWithError(w, http.StatusNotImplemented, "Operation not supported by provider")
	case errors.As(err, &originErr):
		RespondWithError(w, http.StatusForbidden, "Identifier is outside the provider's site")
	case errors.As(err, &statusErr):
		log.Printf("[%s] %s: upstream error: %v", providerID, action, err)
		RespondWithError(w, http.StatusBadGateway, "Source site returned an error")
	default:
		log.Printf("[%s] %s failed: %v", providerID, action, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

func (s *Server) handleProviderFilters(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerFromRequest(w, r)
	if !ok {
		return
	}
	RespondWithJSON(w, http.StatusOK, provider.Filters())
}

func (s *Server) handleProviderPopular(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerFromRequest(w, r)
	if !ok {
		return
	}
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	results, err := provider.Popular(r.Context(), page)
	if err != nil {
		respondWithProviderError(w, provider.GetInfo().ID, "browse popular", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, results)
}

func (s *Server) handleProviderLatest(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerFromRequest(w, r)
	if !ok {
		return
	}
	if !provider.GetInfo().Capabilities.Latest {
		RespondWithError(w, http.StatusNotImplemented, "Provider has no latest updates feed")
		return
	}
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	results, err := provider.Latest(r.Context(), page)
	if err != nil {
		respondWithProviderError(w, provider.GetInfo().ID, "browse latest", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, results)
}

func (s *Server) handleProviderSearch(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerFromRequest(w, r)
	if !ok {
		return
	}
	page, ok := pageParam(w, r)
	if !ok {
		return
	}
	tag, err := intParam(r, "tag", 0)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := provider.Search(r.Context(), page, r.URL.Query().Get("q"), models.FilterState{TagIndex: tag})
	if err != nil {
		respondWithProviderError(w, provider.GetInfo().ID, "perform search", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, results)
}

func (s *Server) handleProviderSeries(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	detail, err := provider.GetDetails(r.Context(), id)
	if err != nil {
		respondWithProviderError(w, provider.GetInfo().ID, "get series details", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, detail)
}

func (s *Server) handleProviderChapters(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	chapters, err := provider.GetChapters(r.Context(), id)
	if err != nil {
		respondWithProviderError(w, provider.GetInfo().ID, "get chapters", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, chapters)
}

func (s *Server) handleProviderPages(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	pages, err := provider.GetPages(r.Context(), id)
	if err != nil {
		respondWithProviderError(w, provider.GetInfo().ID, "get pages", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, pages)
}
