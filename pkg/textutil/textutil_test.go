package textutil

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tom's Café!!", "toms-caf"},
		{"Hello World", "hello-world"},
		{"  Trimmed  Name  ", "trimmed-name"},
		{"snake_case_name", "snake-case-name"},
		{"Already-Slugged", "already-slugged"},
		{"---edges---", "edges"},
		{"Rs 500 & Up!", "rs-500-up"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{"Tom's Café!!", "Hello World", "A  B__C--D", "Birgunj Sweet Shop"}
	for _, in := range inputs {
		once := GenerateSlug(in)
		twice := GenerateSlug(once)
		if once != twice {
			t.Errorf("GenerateSlug not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestGenerateSlugAlphabet(t *testing.T) {
	inputs := []string{"Tom's Café!!", "Rs 500 & Up!", "weird\t\ninput   here", "Ünïcode Nàme"}
	for _, in := range inputs {
		slug := GenerateSlug(in)
		if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
			t.Errorf("GenerateSlug(%q) = %q has a leading/trailing hyphen", in, slug)
		}
		if strings.Contains(slug, "--") {
			t.Errorf("GenerateSlug(%q) = %q contains a hyphen run", in, slug)
		}
		for _, r := range slug {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
				t.Errorf("GenerateSlug(%q) = %q contains unexpected rune %q", in, slug, r)
			}
		}
	}
}

func TestSanitizeHTML(t *testing.T) {
	out := SanitizeHTML(`<script>alert("x") & more</script>`)
	if strings.Contains(out, "<") || strings.Contains(out, ">") {
		t.Errorf("SanitizeHTML left raw angle brackets: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("SanitizeHTML did not escape markup: %q", out)
	}
	if SanitizeHTML("plain text") != "plain text" {
		t.Errorf("SanitizeHTML altered plain text")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("abcdefghij", 5); got != "abcde..." {
		t.Errorf("Truncate = %q, want %q", got, "abcde...")
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := map[int64]string{
		0:       "Rs 0",
		500:     "Rs 500",
		1500:    "Rs 1,500",
		1234567: "Rs 1,234,567",
	}
	for in, want := range cases {
		if got := FormatCurrency(in); got != want {
			t.Errorf("FormatCurrency(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{48 * time.Hour, "2 days ago"},
	}
	for _, tc := range cases {
		if got := FormatRelativeTime(now.Add(-tc.ago), now); got != tc.want {
			t.Errorf("FormatRelativeTime(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}

func TestProfanity(t *testing.T) {
	if !ContainsProfanity("this has BADWORD1 inside") {
		t.Errorf("ContainsProfanity missed a blocked word")
	}
	if ContainsProfanity("perfectly clean text") {
		t.Errorf("ContainsProfanity flagged clean text")
	}
	filtered := FilterProfanity("so Badword1 yes")
	if strings.Contains(strings.ToLower(filtered), "badword1") {
		t.Errorf("FilterProfanity left blocked word: %q", filtered)
	}
	if !strings.Contains(filtered, "********") {
		t.Errorf("FilterProfanity did not mask with asterisks: %q", filtered)
	}
}
