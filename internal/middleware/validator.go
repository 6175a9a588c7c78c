package middleware

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// Input validation and sanitization utilities

var ideaIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

// ValidateDomain checks the domain is one of the recognized categories
func ValidateDomain(d string) error {
	if d == "" {
		return fmt.Errorf("domain is required")
	}
	if !domain.Domain(d).Valid() {
		names := make([]string, len(domain.Domains))
		for i, known := range domain.Domains {
			names[i] = string(known)
		}
		return fmt.Errorf("invalid domain: %s (allowed: %s)", d, strings.Join(names, ", "))
	}
	return nil
}

// ValidateDescription checks the description the way the submit form does.
// The text itself is stored as sent; only its trimmed form must be non-empty.
func ValidateDescription(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return fmt.Errorf("description is required")
	}
	if err := ValidateText(desc); err != nil {
		return fmt.Errorf("description %w", err)
	}
	if n := utf8.RuneCountInString(desc); n > domain.MaxDescriptionLength {
		return fmt.Errorf("description too long: %d characters (max %d)", n, domain.MaxDescriptionLength)
	}
	return nil
}

// ValidateIdeaID validates idea ID format
func ValidateIdeaID(id string) error {
	if id == "" {
		return fmt.Errorf("idea ID cannot be empty")
	}
	if !ideaIDPattern.MatchString(id) {
		return fmt.Errorf("invalid idea ID format")
	}
	return nil
}

var (
	errInvalidUTF8 = errors.New("must be valid UTF-8")
	errNulByte     = errors.New("must not contain NUL bytes")
)

// ValidateText rejects text that cannot be stored verbatim.
func ValidateText(s string) error {
	if !utf8.ValidString(s) {
		return errInvalidUTF8
	}
	if strings.ContainsRune(s, 0) {
		return errNulByte
	}
	return nil
}
