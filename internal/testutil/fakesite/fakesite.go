// Package fakesite serves canned nijiero-style HTML from an httptest server
// and records every request it receives.
package fakesite

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type route struct {
	status      int
	contentType string
	body        string
	location    string
}

// Site is a fake origin. Routes are matched on the exact request path.
type Site struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]route
	requests []*http.Request
}

// New starts a site that is closed when the test finishes.
func New(t *testing.T) *Site {
	t.Helper()
	s := &Site{routes: make(map[string]route)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Site) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	rt, ok := s.routes[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	if rt.location != "" {
		http.Redirect(w, r, rt.location, rt.status)
		return
	}
	w.Header().Set("Content-Type", rt.contentType)
	w.WriteHeader(rt.status)
	fmt.Fprint(w, rt.body)
}

// Handle serves body with a 200 for path.
func (s *Site) Handle(path, body string) {
	s.HandleStatus(path, http.StatusOK, body)
}

func (s *Site) HandleStatus(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = route{status: status, contentType: "text/html; charset=utf-8", body: body}
}

// HandleResource serves a non-HTML resource such as an image.
func (s *Site) HandleResource(path, contentType string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = route{status: http.StatusOK, contentType: contentType, body: string(body)}
}

// Redirect answers path with a 301 to location.
func (s *Site) Redirect(path, location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = route{status: http.StatusMovedPermanently, location: location}
}

// Requests returns a copy of every request received so far, in order.
func (s *Site) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*http.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Work describes one listing row.
type Work struct {
	Path  string // site-relative, rendered as an absolute link
	Title string
	Thumb string
}

// RankingPage renders the ranking panel. Decorations are rows without links.
func (s *Site) RankingPage(works []Work, decorations int) string {
	var b strings.Builder
	b.WriteString(`<html><head><title>ランキング</title></head><body><div id="mainContent">`)
	b.WriteString(`<div class="allRunkingArea tabContent cf">`)
	for i, w := range works {
		fmt.Fprintf(&b, `<div class="rank"><span>%d</span><a href="%s%s" title="%s"><img src="%s" alt=""></a></div>`,
			i+1, s.URL, w.Path, w.Title, w.Thumb)
		if i < decorations {
			b.WriteString(`<div class="ad"><p>sponsored</p></div>`)
		}
	}
	for i := len(works); i < decorations; i++ {
		b.WriteString(`<div class="ad"><p>sponsored</p></div>`)
	}
	b.WriteString(`</div></div></body></html>`)
	return b.String()
}

// SearchPage renders a taxonomy listing with lazy-loaded thumbnails.
func (s *Site) SearchPage(works []Work, hasNext bool) string {
	var b strings.Builder
	b.WriteString(`<html><head><title>検索</title></head><body><ul class="contentList">`)
	for _, w := range works {
		fmt.Fprintf(&b, `<li><a href="%s%s" title="%s"><img src="data:image/gif;base64,R0lGOD" data-src="%s"></a></li>`,
			s.URL, w.Path, w.Title, w.Thumb)
	}
	b.WriteString(`<li class="clear"></li></ul><div class="pagination">`)
	b.WriteString(`<span class="page-numbers current">1</span>`)
	if hasNext {
		fmt.Fprintf(&b, `<a class="next page-numbers" href="%s/next/">次へ</a>`, s.URL)
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}

// EmptySearchPage is what the site renders for a taxonomy with no posts.
func (s *Site) EmptySearchPage() string {
	return s.SearchPage(nil, false)
}

// Post describes a work's detail/reading page.
type Post struct {
	Title      string
	PageTitle  string
	Cover      string
	Categories []string // slugs
	Tags       []string // slugs
	Published  string
	Images     []string // site-relative paths of the .webp previews
}

func (s *Site) PostPage(p Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<html><head><title>%s</title>`, p.PageTitle)
	if p.Cover != "" {
		fmt.Fprintf(&b, `<meta property="og:image" content="%s">`, p.Cover)
	}
	b.WriteString(`</head><body>`)
	if p.Title != "" {
		fmt.Fprintf(&b, `<div class="arrow mb0"><h1 class="type01_hl">%s</h1></div>`, p.Title)
	}
	if p.Published != "" {
		fmt.Fprintf(&b, `<div class="postInfo cf"><div class="postDate cf"><time class="entry-date date published updated" datetime="%s">%s</time></div></div>`,
			p.Published, p.Published)
	}
	b.WriteString(`<div class="postMeta">`)
	if len(p.Categories) > 0 {
		b.WriteString(`<dl class="cf"><dt>カテゴリ</dt><dd>`)
		for _, c := range p.Categories {
			fmt.Fprintf(&b, `<a href="%s/category/%s/">%s</a>`, s.URL, c, c)
		}
		b.WriteString(`</dd></dl>`)
	}
	if len(p.Tags) > 0 {
		b.WriteString(`<dl class="cf"><dt>タグ</dt><dd>`)
		for _, t := range p.Tags {
			fmt.Fprintf(&b, `<a href="%s/tag/%s/">%s</a>`, s.URL, t, t)
		}
		b.WriteString(`</dd></dl>`)
	}
	b.WriteString(`</div><div id="entry"><ul>`)
	for _, img := range p.Images {
		fmt.Fprintf(&b, `<li><a href="%s%s"><img src="%s%s" alt=""></a></li>`, s.URL, img, s.URL, img)
	}
	b.WriteString(`</ul></div></body></html>`)
	return b.String()
}
