package validation

import (
	"strings"
	"unicode/utf8"

	"task-cli/internal/config"
	"task-cli/internal/repository"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Length returns the number of characters in s after trimming whitespace
func (v *Validator) Length(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// IsValidStringLength checks if a string length, in characters, is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := v.Length(s)
	return length >= min && length <= max
}

// IsValidDescriptionLength checks a description against the configured limit
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, 1, v.DescriptionMaxLength())
}

// IsDigits reports whether s is a non-empty run of ASCII decimal digits
func (v *Validator) IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// DescriptionMaxLength returns the configured description limit or the store limit
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil && v.config.Validation.DescriptionMaxLength > 0 {
		return v.config.Validation.DescriptionMaxLength
	}
	return repository.MaxDescriptionLength
}
