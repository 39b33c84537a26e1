package errors

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// MaxIDLength is the longest accepted project id.
const MaxIDLength = 64

// idRegex matches project ids: lowercase slugs that are safe in URLs and
// SVG element ids.
var idRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateID validates a project id.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "project id cannot be empty")
	}
	if len(id) > MaxIDLength {
		return New(ErrCodeInvalidInput, "project id too long (max %d characters)", MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid project id %q (use lowercase letters, digits, '-' or '_')", id)
	}
	return nil
}

// ValidateText rejects empty strings and strings with control characters
// other than newlines and tabs.
func ValidateText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", field)
	}
	for _, r := range s {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL parses and has a safe scheme (http or https) and a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must have a host")
	}
	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
