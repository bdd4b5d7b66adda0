package validation

import (
	"strings"
	"testing"

	"task-cli/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStringLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		min      int
		max      int
		expected bool
	}{
		{"Empty string, min 1", "", 1, 10, false},
		{"Too short", "a", 2, 10, false},
		{"Too long", "very long string", 1, 5, false},
		{"Valid length", "hello", 1, 10, true},
		{"Exactly max", "hello", 1, 5, true},
		{"With leading/trailing spaces", "  hello  ", 1, 5, true},
		{"Multibyte counted as characters", "héllo", 1, 5, true},
		{"Emoji counted as characters", "🎉🎉🎉", 1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidStringLength(tt.input, tt.min, tt.max)
			if result != tt.expected {
				t.Errorf("IsValidStringLength(%q, %d, %d) = %v, expected %v", tt.input, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsDigits(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"0", true},
		{"12", true},
		{"007", true},
		{"", false},
		{"-1", false},
		{"+1", false},
		{"1.5", false},
		{"12a", false},
		{"1 2", false},
		{"١٢", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := validator.IsDigits(tt.input); result != tt.expected {
				t.Errorf("IsDigits(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_DescriptionMaxLength(t *testing.T) {
	if got := NewValidator().DescriptionMaxLength(); got != 500 {
		t.Errorf("default DescriptionMaxLength() = %d, expected 500", got)
	}

	cfg := config.NewConfig()
	cfg.Validation.DescriptionMaxLength = 20
	validator := NewValidatorWithConfig(cfg)
	if got := validator.DescriptionMaxLength(); got != 20 {
		t.Errorf("configured DescriptionMaxLength() = %d, expected 20", got)
	}
	if validator.IsValidDescriptionLength(strings.Repeat("a", 21)) {
		t.Errorf("IsValidDescriptionLength accepted a description over the configured limit")
	}
	if !validator.IsValidDescriptionLength(strings.Repeat("a", 20)) {
		t.Errorf("IsValidDescriptionLength rejected a description at the configured limit")
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"  hello  ", "hello"},
		{"\thello\n", "hello"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if result := validator.TrimAndValidateString(tt.input); result != tt.expected {
			t.Errorf("TrimAndValidateString(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
