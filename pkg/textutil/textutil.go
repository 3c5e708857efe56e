package textutil

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"
)

var (
	nonWordRe = regexp.MustCompile(`[^\w\s-]`)
	runRe     = regexp.MustCompile(`[\s_-]+`)
	edgeRe    = regexp.MustCompile(`^-+|-+$`)
)

// GenerateSlug derives a URL-safe, lowercase, hyphen-delimited identifier
// from a display name. Idempotent: GenerateSlug(GenerateSlug(x)) == GenerateSlug(x).
func GenerateSlug(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = nonWordRe.ReplaceAllString(s, "")
	s = runRe.ReplaceAllString(s, "-")
	return edgeRe.ReplaceAllString(s, "")
}

// SanitizeHTML escapes HTML metacharacters so user-supplied strings can never
// parse as markup when interpolated into rendered output.
func SanitizeHTML(text string) string {
	return html.EscapeString(text)
}

// Truncate shortens text to maxLength runes, appending "..." when cut
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// FormatCurrency renders an amount in Nepali rupees with digit grouping
func FormatCurrency(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "Rs -" + b.String()
	}
	return "Rs " + b.String()
}

// FormatDate renders a timestamp as a long-form date, e.g. "January 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatRelativeTime renders how long ago a timestamp occurred
func FormatRelativeTime(t time.Time, now time.Time) string {
	diff := int64(now.Sub(t).Seconds())
	switch {
	case diff < 60:
		return "just now"
	case diff < 3600:
		return fmt.Sprintf("%d minutes ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%d hours ago", diff/3600)
	case diff < 604800:
		return fmt.Sprintf("%d days ago", diff/86400)
	case diff < 2592000:
		return fmt.Sprintf("%d weeks ago", diff/604800)
	case diff < 31536000:
		return fmt.Sprintf("%d months ago", diff/2592000)
	default:
		return fmt.Sprintf("%d years ago", diff/31536000)
	}
}
