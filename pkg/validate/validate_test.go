package validate

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b@c.d.np"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	invalid := []string{"", "no-at.example.com", "two @spaces.com", "user@nodot"}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"9841234567", true},
		{"+977 9841234567", true},
		{"+9779841234567", true},
		{"9641234567", true},
		{"8841234567", false}, // wrong leading digit
		{"9541234567", false}, // second digit outside 6-9
		{"984123456", false},  // too short
		{"98412345678", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidPhone(tc.in); got != tc.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestImage(t *testing.T) {
	if err := Image("image/png", 1*1024*1024); err != nil {
		t.Errorf("1MB png rejected: %v", err)
	}
	if err := Image("image/webp", MaxImageSize); err != nil {
		t.Errorf("webp at the size limit rejected: %v", err)
	}
	if err := Image("application/pdf", 1024); err == nil {
		t.Errorf("pdf accepted, want rejection")
	}
	if err := Image("image/png", 6*1024*1024); err == nil {
		t.Errorf("6MB file accepted, want rejection")
	}
	if err := Image("image/gif", 1024); err == nil {
		t.Errorf("gif accepted, want rejection")
	}
}
