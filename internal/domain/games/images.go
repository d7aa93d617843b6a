package games

// Default hero images per sport, used when a game is created without one.
var sportImages = map[string]string{
	"Basketball": "https://images.unsplash.com/photo-1546519638-68e109498ee3?auto=format&fit=crop&q=80&w=1000",
	"Soccer":     "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?auto=format&fit=crop&q=80&w=1000",
	"Football":   "https://images.unsplash.com/photo-1566577739112-5180d4bf9390?auto=format&fit=crop&q=80&w=1000",
	"Hockey":     "https://images.unsplash.com/photo-1580748141549-71748dbe0bdc?auto=format&fit=crop&q=80&w=1000",
	"Volleyball": "https://images.unsplash.com/photo-1612872087720-48ca556cd077?auto=format&fit=crop&q=80&w=1000",
	"Cricket":    "https://images.unsplash.com/photo-1531415074968-036ba1b575da?auto=format&fit=crop&q=80&w=1000",
	"Chess":      "https://images.unsplash.com/photo-1586165368502-1bad197a6461?auto=format&fit=crop&q=80&w=1000",
	"Kabaddi":    "https://images.unsplash.com/photo-1628779238951-be2c9f25b227?auto=format&fit=crop&q=80&w=1000",
}

const fallbackImage = "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&q=80&w=1000"

// DefaultImageURL returns the stock image for a sport, or a generic one for
// sports without a dedicated image.
func DefaultImageURL(sport string) string {
	if url, ok := sportImages[sport]; ok {
		return url
	}
	return fallbackImage
}
