package api

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/vrsandeep/nijiero-go/internal/models"
)

// handleProxyResource streams a page resource from the provider's site.
// Sites that check the Referer refuse hot-linked images, so the request is
// made as if it came from the site itself.
//
// Query parameters:
//   - url: (required) an identifier or page location, or an absolute URL on
//     the provider's origin
func (s *Server) handleProxyResource(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerFromRequest(w, r)
	if !ok {
		return
	}
	info := provider.GetInfo()

	location := r.URL.Query().Get("url")
	if location == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing 'url' parameter")
		return
	}
	if resolver, ok := provider.(models.URLResolver); ok {
		resolved, err := resolver.ResolveURL(location)
		if err != nil {
			RespondWithError(w, http.StatusForbidden, "URL is outside the provider's site")
			return
		}
		location = resolved
	}

	target, err := url.Parse(location)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") {
		RespondWithError(w, http.StatusBadRequest, "Invalid URL")
		return
	}
	origin, err := url.Parse(info.BaseURL)
	if err != nil || origin.Host != target.Host {
		RespondWithError(w, http.StatusForbidden, "URL is outside the provider's site")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		log.Printf("Error creating proxy request: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to create request")
		return
	}
	req.Header.Set("Referer", info.BaseURL+"/")

	resp, err := s.app.HTTPClient().Do(req)
	if err != nil {
		log.Printf("Error fetching proxied resource: %v", err)
		RespondWithError(w, http.StatusBadGateway, "Failed to fetch resource")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Proxied resource returned status %d for URL: %s", resp.StatusCode, target)
		RespondWithError(w, http.StatusBadGateway, "Resource server returned error")
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if contentType == "" {
		contentType = inferContentType(target.Path)
	}
	w.Header().Set("Content-Type", contentType)
	if strings.HasPrefix(contentType, "image/") {
		w.Header().Set("Cache-Control", "public, max-age=86400") // 1 day
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600") // 1 hour
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		// Response already started, can't send error
		log.Printf("Error copying proxied resource data: %v", err)
	}
}

// inferContentType tries to infer content type from URL extension
func inferContentType(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
