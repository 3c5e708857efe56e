package handler

import (
	"math"
	"math/rand"

	"meroprofile/internal/model"
	"meroprofile/pkg/textutil"
)

// Placeholder assets used when a listing has no uploaded images
const (
	defaultBannerURL     = "https://images.unsplash.com/photo-1557804506-669a67965ba0?w=800&h=400&fit=crop"
	defaultLogoURL       = "https://via.placeholder.com/60"
	defaultDescription   = "No description available"
	descriptionCardLimit = 160
)

// ProfileCard is the view model for one listing in a result grid. Building
// cards through this type keeps the escaping of user-supplied fields in one
// place instead of relying on every caller to remember it.
type ProfileCard struct {
	ID           uint    `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	CategoryName string  `json:"category_name"`
	BannerURL    string  `json:"banner_url"`
	LogoURL      string  `json:"logo_url"`
	Description  string  `json:"description"`
	PriceRange   string  `json:"price_range,omitempty"`
	City         string  `json:"city,omitempty"`
	Location     string  `json:"location"`
	IsFeatured   bool    `json:"is_featured"`
	Rating       float64 `json:"rating"`
}

// NewProfileCard builds the card view model for a business
func NewProfileCard(b *model.Business) ProfileCard {
	categoryName := "Other"
	if b.Category != nil && b.Category.Name != "" {
		categoryName = b.Category.Name
	}

	bannerURL := b.BannerURL
	if bannerURL == "" {
		bannerURL = defaultBannerURL
	}
	logoURL := b.LogoURL
	if logoURL == "" {
		logoURL = defaultLogoURL
	}

	description := defaultDescription
	if b.Description != "" {
		description = textutil.Truncate(b.Description, descriptionCardLimit)
	}

	location := b.City
	if location == "" {
		location = "Nepal"
	}

	return ProfileCard{
		ID:           b.ID,
		Slug:         b.Slug,
		Name:         textutil.SanitizeHTML(b.Name),
		CategoryName: categoryName,
		BannerURL:    bannerURL,
		LogoURL:      logoURL,
		Description:  textutil.SanitizeHTML(description),
		PriceRange:   textutil.SanitizeHTML(b.PriceRange),
		City:         textutil.SanitizeHTML(b.City),
		Location:     textutil.SanitizeHTML(location),
		IsFeatured:   b.IsFeatured,
		// Placeholder rating: random in [3.0, 5.0), rounded to one decimal,
		// so 5.0 is reachable. There is no review data behind it.
		Rating: placeholderRating(),
	}
}

// NewProfileCards builds cards for a result set in order
func NewProfileCards(businesses []model.Business) []ProfileCard {
	cards := make([]ProfileCard, 0, len(businesses))
	for i := range businesses {
		cards = append(cards, NewProfileCard(&businesses[i]))
	}
	return cards
}

func placeholderRating() float64 {
	return math.Round((rand.Float64()*2+3)*10) / 10
}
