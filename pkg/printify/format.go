package printify

import (
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// FormatProduct normalizes a raw provider product into the shape the
// storefront serves. Missing pieces degrade to zero values so a sparse
// provider payload never breaks the catalog.
func FormatProduct(p Product) DisplayProduct {
	display := DisplayProduct{
		ID:          p.ID,
		Name:        p.Title,
		Category:    DetectCategory(p.Title),
		Description: stripHTML(p.Description),
	}

	if len(p.Variants) > 0 {
		display.Price = float64(p.Variants[0].Price) / 100
	}

	for _, img := range p.Images {
		display.Images = append(display.Images, img.Src)
		if img.IsDefault && display.ImageURL == "" {
			display.ImageURL = img.Src
		}
	}
	if display.ImageURL == "" && len(p.Images) > 0 {
		display.ImageURL = p.Images[0].Src
	}

	seen := make(map[string]struct{})
	for _, v := range p.Variants {
		display.Variants = append(display.Variants, DisplayVariant{
			ID:          v.ID,
			Title:       v.Title,
			Price:       float64(v.Price) / 100,
			IsAvailable: v.IsAvailable,
		})
		if !v.IsAvailable {
			continue
		}
		if _, ok := seen[v.Title]; ok {
			continue
		}
		seen[v.Title] = struct{}{}
		display.Sizes = append(display.Sizes, v.Title)
	}

	return display
}

// FormatProducts normalizes a full provider listing.
func FormatProducts(products []Product) []DisplayProduct {
	out := make([]DisplayProduct, 0, len(products))
	for _, p := range products {
		out = append(out, FormatProduct(p))
	}
	return out
}

// DetectCategory buckets a product into the storefront's navigation by
// keywords in its title. Anything unrecognized sells as menswear.
func DetectCategory(title string) string {
	lowered := strings.ToLower(title)
	for _, keyword := range []string{"women", "cropped", "lady"} {
		if strings.Contains(lowered, keyword) {
			return "womens"
		}
	}
	for _, keyword := range []string{"tumbler", "mug", "hat", "bag"} {
		if strings.Contains(lowered, keyword) {
			return "accessories"
		}
	}
	return "mens"
}

// MatchVariant finds the available variant whose title equals the requested
// size, ignoring case. A miss reports false rather than an error.
func MatchVariant(variants []Variant, size string) (int64, bool) {
	want := strings.ToLower(strings.TrimSpace(size))
	for _, v := range variants {
		if !v.IsAvailable {
			continue
		}
		if strings.ToLower(v.Title) == want {
			return v.ID, true
		}
	}
	return 0, false
}

func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}
