package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxImageSize is the upload size limit in bytes
const MaxImageSize = 5 * 1024 * 1024

// AllowedImageTypes lists the accepted image MIME types
var AllowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+977)?9[6-9]\d{8}$`)
)

// IsValidEmail reports whether email has a plausible address format
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone reports whether phone is a Nepali mobile number. Spaces are
// tolerated; an optional +977 prefix is accepted.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// Image checks an upload's MIME type and size against the default limits
func Image(contentType string, size int64) error {
	return ImageWith(contentType, size, AllowedImageTypes, MaxImageSize)
}

// ImageWith checks an upload's MIME type and size against the given limits
func ImageWith(contentType string, size int64, allowedTypes []string, maxSize int64) error {
	allowed := false
	for _, t := range allowedTypes {
		if strings.EqualFold(t, contentType) {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("invalid file type %q: only images are allowed", contentType)
	}
	if size > maxSize {
		return fmt.Errorf("file size %d exceeds %d byte limit", size, maxSize)
	}
	return nil
}
