package printify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatProduct(t *testing.T) {
	product := Product{
		ID:          "abc123",
		Title:       "Lowkey King Playing Card Women's T-Shirt",
		Description: "<p>Soft cotton tee.</p>",
		Images: []Image{
			{Src: "https://cdn.example.com/front.png", IsDefault: false},
			{Src: "https://cdn.example.com/back.png", IsDefault: true},
		},
		Variants: []Variant{
			{ID: 101, Title: "S", Price: 2999, IsAvailable: true},
			{ID: 102, Title: "M", Price: 2999, IsAvailable: true},
			{ID: 103, Title: "M", Price: 2999, IsAvailable: true},
			{ID: 104, Title: "XL", Price: 3199, IsAvailable: false},
		},
	}

	display := FormatProduct(product)

	assert.Equal(t, "abc123", display.ID)
	assert.Equal(t, "Lowkey King Playing Card Women's T-Shirt", display.Name)
	assert.Equal(t, "womens", display.Category)
	assert.Equal(t, 29.99, display.Price)
	assert.Equal(t, "Soft cotton tee.", display.Description)
	assert.Equal(t, "https://cdn.example.com/back.png", display.ImageURL)
	assert.Equal(t, []string{"https://cdn.example.com/front.png", "https://cdn.example.com/back.png"}, display.Images)
	assert.Equal(t, []string{"S", "M"}, display.Sizes)
	assert.Len(t, display.Variants, 4)
}

func TestFormatProduct_Fallbacks(t *testing.T) {
	t.Run("no default image uses first", func(t *testing.T) {
		display := FormatProduct(Product{
			Title:  "Lowkey Crest Hoodie",
			Images: []Image{{Src: "a.png"}, {Src: "b.png"}},
		})
		assert.Equal(t, "a.png", display.ImageURL)
	})

	t.Run("no images leaves url empty", func(t *testing.T) {
		display := FormatProduct(Product{Title: "Lowkey Crest Hoodie"})
		assert.Equal(t, "", display.ImageURL)
	})

	t.Run("no variants means zero price", func(t *testing.T) {
		display := FormatProduct(Product{Title: "Lowkey Crest Hoodie"})
		assert.Equal(t, 0.0, display.Price)
		assert.Empty(t, display.Sizes)
	})
}

func TestDetectCategory(t *testing.T) {
	cases := []struct {
		title    string
		expected string
	}{
		{"Lowkey King Playing Card Women's T-Shirt", "womens"},
		{"Cropped Crewneck", "womens"},
		{"First Lady Tee", "womens"},
		{"Lowkey Legends Tumbler", "accessories"},
		{"Coffee Mug", "accessories"},
		{"Snapback Hat", "accessories"},
		{"Tote Bag", "accessories"},
		{"Classic Logo Tee", "mens"},
		{"", "mens"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, DetectCategory(tc.title), "title %q", tc.title)
	}
}

func TestMatchVariant(t *testing.T) {
	variants := []Variant{
		{ID: 11, Title: "S", IsAvailable: true},
		{ID: 12, Title: "M", IsAvailable: false},
		{ID: 13, Title: "L", IsAvailable: true},
	}

	id, ok := MatchVariant(variants, "l")
	assert.True(t, ok)
	assert.Equal(t, int64(13), id)

	id, ok = MatchVariant(variants, " S ")
	assert.True(t, ok)
	assert.Equal(t, int64(11), id)

	// Unavailable variants never match.
	_, ok = MatchVariant(variants, "M")
	assert.False(t, ok)

	_, ok = MatchVariant(variants, "XXL")
	assert.False(t, ok)

	_, ok = MatchVariant(nil, "S")
	assert.False(t, ok)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello world", stripHTML("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "plain", stripHTML("plain"))
	assert.Equal(t, "", stripHTML("<br/>"))
}
