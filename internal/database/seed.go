package database

// DefaultCategories are created on start-up when missing.
var DefaultCategories = []string{
	"Restaurant",
	"Cafe",
	"Shop",
	"Park",
	"Museum",
	"School",
	"Cinema",
	"Tourist attraction",
	"Playground",
	"Monument",
}
