package model

import "testing"

func TestVocabularySizes(t *testing.T) {
	if len(Categories) != 16 {
		t.Errorf("expected 16 categories, got %d", len(Categories))
	}
	if len(Cities) != 5 {
		t.Errorf("expected 5 cities, got %d", len(Cities))
	}
	if len(PriceRanges) != 4 {
		t.Errorf("expected 4 price ranges, got %d", len(PriceRanges))
	}
}

func TestIsKnownCity(t *testing.T) {
	if !IsKnownCity("Birgunj") {
		t.Errorf("Birgunj should be a known city")
	}
	if IsKnownCity("Kathmandu") {
		t.Errorf("Kathmandu is not in the supported set")
	}
}

func TestIsKnownPriceRange(t *testing.T) {
	if !IsKnownPriceRange("Budget (Rs 0-500)") {
		t.Errorf("budget range should be known")
	}
	if IsKnownPriceRange("Free") {
		t.Errorf("unknown label accepted")
	}
}
