package nijiero

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/xpath"
	"github.com/vrsandeep/nijiero-go/internal/models"
	"github.com/vrsandeep/nijiero-go/internal/scraper"
)

// categoryLinks selects the links of the metadata row labelled カテゴリ.
var categoryLinks = xpath.MustCompile(
	`//dl[contains(concat(' ', normalize-space(@class), ' '), ' cf ')][contains(., 'カテゴリ')]//a`,
)

func parseDetails(doc *goquery.Document, identifier string) *models.SeriesDetail {
	title := strings.TrimSpace(doc.Find("h1.type01_hl").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	genres := make([]string, 0)
	scraper.SelectXPath(doc.Selection, categoryLinks).Each(func(i int, s *goquery.Selection) {
		if name := nameFromLink(s.AttrOr("href", "")); name != "" {
			genres = append(genres, name)
		}
	})

	return &models.SeriesDetail{
		Identifier:     identifier,
		Title:          title,
		CoverURL:       doc.Find(`meta[property="og:image"]`).First().AttrOr("content", ""),
		Genre:          strings.Join(genres, ", "),
		Genres:         genres,
		Status:         models.StatusCompleted,
		UpdateStrategy: models.UpdateOnlyFetchOnce,
	}
}

// nameFromLink turns /category/aa-bb/ into "aa bb".
func nameFromLink(link string) string {
	segments := strings.Split(strings.TrimRight(link, "/"), "/")
	return strings.ReplaceAll(segments[len(segments)-1], "-", " ")
}
