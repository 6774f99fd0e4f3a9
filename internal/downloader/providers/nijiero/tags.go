package nijiero

import "github.com/vrsandeep/nijiero-go/internal/models"

const categoryNote = "Category search directly is broken, type the name 1:1 in search bar."

// Tags is the category vocabulary offered by the filter selector. Indices
// are part of the host contract, so entries are only ever appended.
var Tags = []string{
	"Genshin Impact",
	"Blue Archive",
	"Hololive",
	"Fate Grand Order",
	"Azur Lane",
	"Uma Musume",
	"Idolmaster",
	"Love Live",
	"Pokemon",
	"One Piece",
	"Naruto",
	"Dragon Ball",
	"Sword Art Online",
	"Re Zero",
	"Konosuba",
	"Spy x Family",
	"Chainsaw Man",
	"Jujutsu Kaisen",
	"Kimetsu no Yaiba",
	"Evangelion",
	"Touhou Project",
	"Honkai Star Rail",
	"Arknights",
	"Bocchi the Rock",
	"Original",
}

// Filters returns the single category selector plus a note steering users
// towards free-text search.
func (p *Provider) Filters() []models.Filter {
	options := make([]string, len(Tags))
	copy(options, Tags)
	return []models.Filter{
		models.HeaderFilter(categoryNote),
		models.SelectFilter("Category", options),
	}
}
