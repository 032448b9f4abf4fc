package services

import (
	"fmt"
	"regexp"
	"strings"

	"qrstudio/internal/common"
	"qrstudio/internal/domain/generation"
)

var (
	urlPattern      = regexp.MustCompile(`(?i)^https?://\S+`)
	phonePattern    = regexp.MustCompile(`^\+?\d{7,15}$`)
	phoneFormatting = regexp.MustCompile(`[\s\-\(\)\.]`)
)

// InputValidator applies the per-type format rules
type InputValidator struct{}

// NewInputValidator creates a new validator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// Validate returns an error wrapping common.ErrValidation when input is unusable.
func (v *InputValidator) Validate(input string, kind generation.InputType) error {
	text := strings.TrimSpace(input)
	if text == "" {
		return fmt.Errorf("%w: empty input", common.ErrValidation)
	}

	switch kind {
	case generation.InputURL:
		if !urlPattern.MatchString(text) {
			return fmt.Errorf("%w: URL must start with http:// or https://", common.ErrValidation)
		}
	case generation.InputPhone:
		if !phonePattern.MatchString(stripPhone(text)) {
			return fmt.Errorf("%w: phone must have 7 to 15 digits", common.ErrValidation)
		}
	case generation.InputText:
	default:
		return fmt.Errorf("%w: unknown input type %q", common.ErrValidation, kind)
	}
	return nil
}

// Payload validates input and returns the text to encode
func (v *InputValidator) Payload(input string, kind generation.InputType) (string, error) {
	if err := v.Validate(input, kind); err != nil {
		return "", err
	}

	text := strings.TrimSpace(input)
	if kind == generation.InputPhone {
		digits := stripPhone(text)
		if !strings.HasPrefix(digits, "+") {
			digits = "+" + digits
		}
		return "tel:" + digits, nil
	}
	return text, nil
}

func stripPhone(s string) string {
	return phoneFormatting.ReplaceAllString(s, "")
}
