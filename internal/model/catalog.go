package model

// Fixed vocabularies for dropdown population. Categories are also seeded
// into the database at startup; cities and price ranges stay UI-level only.

// Categories is the fixed category vocabulary
var Categories = []string{
	"Restaurant",
	"Cafe",
	"Doctor",
	"Clinic",
	"Hospital",
	"Salon",
	"Spa",
	"Gym",
	"Hotel",
	"Shop",
	"Service",
	"Education",
	"Real Estate",
	"Automotive",
	"Technology",
	"Other",
}

// Cities is the fixed set of supported cities
var Cities = []string{
	"Birgunj",
	"Hetauda",
	"Butwal",
	"Janakpur",
	"Rajbiraj",
}

// PriceRanges is the fixed set of price-range labels
var PriceRanges = []string{
	"Budget (Rs 0-500)",
	"Moderate (Rs 500-2000)",
	"Premium (Rs 2000-5000)",
	"Luxury (Rs 5000+)",
}

// IsKnownCity reports whether city is one of the supported cities
func IsKnownCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

// IsKnownPriceRange reports whether label is one of the price-range labels
func IsKnownPriceRange(label string) bool {
	for _, p := range PriceRanges {
		if p == label {
			return true
		}
	}
	return false
}
