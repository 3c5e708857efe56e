package handler

import (
	"strings"
	"testing"

	"meroprofile/internal/model"
)

func TestNewProfileCardFallbacks(t *testing.T) {
	card := NewProfileCard(&model.Business{ID: 1, Name: "Bare Listing"})

	if card.BannerURL != defaultBannerURL {
		t.Errorf("banner fallback not applied: %q", card.BannerURL)
	}
	if card.LogoURL != defaultLogoURL {
		t.Errorf("logo fallback not applied: %q", card.LogoURL)
	}
	if card.Description != defaultDescription {
		t.Errorf("description fallback not applied: %q", card.Description)
	}
	if card.CategoryName != "Other" {
		t.Errorf("category fallback = %q, want Other", card.CategoryName)
	}
	if card.Location != "Nepal" {
		t.Errorf("location fallback = %q, want Nepal", card.Location)
	}
}

func TestNewProfileCardUsesListingData(t *testing.T) {
	b := &model.Business{
		ID:          7,
		Name:        "Himalayan Cafe",
		Slug:        "himalayan-cafe",
		Description: "Best coffee in town",
		BannerURL:   "http://example.com/banner.png",
		LogoURL:     "http://example.com/logo.png",
		PriceRange:  "Moderate (Rs 500-2000)",
		City:        "Birgunj",
		IsFeatured:  true,
		Category:    &model.Category{Name: "Cafe", Slug: "cafe"},
	}
	card := NewProfileCard(b)

	if card.Name != "Himalayan Cafe" || card.CategoryName != "Cafe" {
		t.Errorf("unexpected card identity: %+v", card)
	}
	if card.BannerURL != b.BannerURL || card.LogoURL != b.LogoURL {
		t.Errorf("card did not keep listing image URLs")
	}
	if !card.IsFeatured {
		t.Errorf("featured flag lost")
	}
	if card.Location != "Birgunj" {
		t.Errorf("location = %q, want Birgunj", card.Location)
	}
}

func TestNewProfileCardEscapesUserText(t *testing.T) {
	card := NewProfileCard(&model.Business{
		Name:        `<img src=x onerror=alert(1)>`,
		Description: `a <b>bold</b> claim`,
	})
	if strings.Contains(card.Name, "<") || strings.Contains(card.Description, "<") {
		t.Errorf("card leaked raw markup: name=%q description=%q", card.Name, card.Description)
	}
}

func TestNewProfileCardRatingRange(t *testing.T) {
	// The rating is decorative filler; the only contract is its range.
	// The raw draw is in [3.0, 5.0) but one-decimal rounding makes 5.0
	// reachable, so 5.0 is the inclusive upper bound.
	for i := 0; i < 100; i++ {
		card := NewProfileCard(&model.Business{Name: "x"})
		if card.Rating < 3.0 || card.Rating > 5.0 {
			t.Fatalf("rating %f outside [3.0, 5.0]", card.Rating)
		}
	}
}

func TestNewProfileCardsPreservesOrder(t *testing.T) {
	businesses := []model.Business{
		{ID: 3, Name: "c"},
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
	}
	cards := NewProfileCards(businesses)
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	for i := range businesses {
		if cards[i].ID != businesses[i].ID {
			t.Errorf("card %d has ID %d, want %d", i, cards[i].ID, businesses[i].ID)
		}
	}
}
