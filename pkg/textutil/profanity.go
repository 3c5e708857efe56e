package textutil

import (
	"regexp"
	"strings"
)

// ProfanityWords is the block list applied to user-supplied text
var ProfanityWords = []string{
	"badword1",
	"badword2",
}

// ContainsProfanity reports whether text contains any blocked word
func ContainsProfanity(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range ProfanityWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// FilterProfanity masks every blocked word in text with asterisks
func FilterProfanity(text string) string {
	filtered := text
	for _, word := range ProfanityWords {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(word))
		filtered = re.ReplaceAllString(filtered, strings.Repeat("*", len(word)))
	}
	return filtered
}
