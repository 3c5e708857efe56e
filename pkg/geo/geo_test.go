package geo

import "testing"

func TestDistanceZero(t *testing.T) {
	if d := Distance(27.7, 85.3, 27.7, 85.3); d != 0 {
		t.Errorf("distance between identical coordinates = %f, want 0", d)
	}
}

func TestDistanceKathmanduBiratnagar(t *testing.T) {
	// Kathmandu area to the eastern Terai, roughly 240 km great-circle
	d := Distance(27.7, 85.3, 26.45, 87.28)
	if d < 200 || d > 290 {
		t.Errorf("distance = %f km, want a plausible value in (200, 290)", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Distance(27.7, 85.3, 26.45, 87.28)
	b := Distance(26.45, 87.28, 27.7, 85.3)
	if a != b {
		t.Errorf("distance not symmetric: %f != %f", a, b)
	}
}

func TestFormatDistance(t *testing.T) {
	if got := FormatDistance(0.85); got != "850m" {
		t.Errorf("FormatDistance(0.85) = %q, want 850m", got)
	}
	if got := FormatDistance(1.25); got != "1.2km" {
		t.Errorf("FormatDistance(1.25) = %q, want 1.2km", got)
	}
}
