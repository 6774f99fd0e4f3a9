package nijiero

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/nijiero-go/internal/models"
	"github.com/vrsandeep/nijiero-go/internal/scraper"
)

// The entry links point at a .webp preview; the original file lives at the
// same path without that suffix.
const previewSuffix = ".webp"

func (p *Provider) parsePages(doc *goquery.Document) []models.Page {
	pages := make([]models.Page, 0)
	doc.Find("#entry > ul > li a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		location := scraper.StripOrigin(p.baseURL, strings.TrimSuffix(href, previewSuffix))
		pages = append(pages, models.Page{
			Index:    i,
			URL:      location,
			ImageURL: location,
		})
	})
	return pages
}
