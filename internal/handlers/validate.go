package handlers

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for admin form fields.
const (
	maxTitleLen    = 300
	maxNameLen     = 200
	maxBodyLen     = 100_000
	maxURLLen      = 2_000
	maxFontNameLen = 100
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateTitle checks a required title-like field.
func validateTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	return ""
}

// validateName checks a required person or category name.
func validateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	return ""
}

// validateMarkdownBody checks a Markdown text field length.
func validateMarkdownBody(body string) string {
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Text is too long (max 100,000 characters)."
	}
	return ""
}

// validateURLField checks an optional URL field. It accepts absolute
// http(s) URLs and root-relative paths; other schemes (javascript:,
// data:) are rejected since these values end up in href/src attributes.
func validateURLField(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if utf8.RuneCountInString(raw) > maxURLLen {
		return "URL is too long (max 2,000 characters)."
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "URL is not valid."
	}
	switch {
	case u.Scheme == "http", u.Scheme == "https":
		if u.Host == "" {
			return "URL is not valid."
		}
	case u.Scheme == "" && strings.HasPrefix(raw, "/"):
		// root-relative path
	default:
		return "URL must be http(s) or a site-relative path."
	}
	return ""
}

// validateHexColor accepts #rgb or #rrggbb. Empty is allowed; the store
// keeps the current value for absent fields.
func validateHexColor(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !hexColorRe.MatchString(raw) {
		return "Colors must be hex values like #b08d57."
	}
	return ""
}

// validateFontName rejects characters that could escape a CSS context.
func validateFontName(raw string) string {
	raw = strings.TrimSpace(raw)
	if utf8.RuneCountInString(raw) > maxFontNameLen {
		return "Font name is too long (max 100 characters)."
	}
	if strings.ContainsAny(raw, ";{}<>\"'\\") {
		return "Font name contains invalid characters."
	}
	return ""
}

// validateOptionalEmail accepts an empty string or an RFC 5322 address.
func validateOptionalEmail(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if _, err := mail.ParseAddress(raw); err != nil {
		return "Email address is not valid."
	}
	return ""
}

// validateRequiredEmail is validateOptionalEmail with presence required.
func validateRequiredEmail(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Email is required."
	}
	return validateOptionalEmail(raw)
}
