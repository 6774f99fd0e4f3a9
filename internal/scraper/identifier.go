package scraper

import (
	"fmt"
	"net/url"
	"strings"
)

// OriginError is returned for an identifier that resolves to a URL outside
// the site origin.
type OriginError struct {
	Origin     string
	Identifier string
}

func (e *OriginError) Error() string {
	return fmt.Sprintf("identifier %q is outside %s", e.Identifier, e.Origin)
}

// StripOrigin turns an absolute URL under origin into the site-relative
// identifier stored by hosts. Anything else is returned untouched.
func StripOrigin(origin, link string) string {
	return strings.TrimPrefix(link, origin)
}

// ResolveOrigin is the inverse of StripOrigin. The result must be an
// http(s) URL on origin's host.
func ResolveOrigin(origin, identifier string) (string, error) {
	target := identifier
	if !strings.HasPrefix(identifier, "http://") && !strings.HasPrefix(identifier, "https://") {
		target = origin + identifier
	}

	base, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("invalid origin %q: %w", origin, err)
	}
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || !strings.EqualFold(u.Host, base.Host) {
		return "", &OriginError{Origin: origin, Identifier: identifier}
	}
	return target, nil
}
