package handlers

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)

func validateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// validatePassword enforces the signup password policy: at least 8
// characters with lowercase, uppercase, digit, and special character.
func validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("Password is required")
	}

	if len(password) < 8 {
		return fmt.Errorf("Password must be at least 8 characters")
	}

	checks := []struct {
		pattern string
		message string
	}{
		{`[a-z]`, "Password must contain at least one lowercase letter"},
		{`[A-Z]`, "Password must contain at least one uppercase letter"},
		{`\d`, "Password must contain at least one digit"},
		{`[@$!%*?&]`, "Password must contain at least one special character (@$!%*?&)"},
	}
	for _, check := range checks {
		if !regexp.MustCompile(check.pattern).MatchString(password) {
			return fmt.Errorf("%s", check.message)
		}
	}

	return nil
}

func isParsableContentType(contentType string) bool {
	switch contentType {
	case "application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return true
	default:
		return false
	}
}

func isAllowedUploadContentType(contentType string) bool {
	return isParsableContentType(contentType) || strings.HasPrefix(contentType, "image/")
}
