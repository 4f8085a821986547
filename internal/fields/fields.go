// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fields checks the well-formedness of optional row fields.
// Validators never block conversion: a failing value is copied into the
// output document regardless and only surfaces as a warning.
package fields

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	hexColor  = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	rgbColor  = regexp.MustCompile(`^rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)$`)
	rgbaColor = regexp.MustCompile(`^rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*(0(\.\d+)?|1(\.0+)?)\s*\)$`)
)

// namedColors is the fixed set of accepted CSS color keywords.
var namedColors = map[string]bool{
	"red": true, "green": true, "blue": true, "white": true,
	"black": true, "yellow": true, "orange": true, "purple": true,
	"pink": true, "gray": true, "grey": true, "brown": true,
	"cyan": true, "magenta": true, "lime": true, "navy": true,
	"teal": true, "silver": true, "gold": true, "violet": true,
	"indigo": true, "turquoise": true,
}

// ValidURL reports whether s parses into a URL with both a scheme and a
// host component.
func ValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// ValidColor reports whether s is a 3- or 6-digit hex color, an rgb()
// or rgba() triple (alpha in [0,1], optional fractional part), or one
// of the named colors, case-insensitively for names.
func ValidColor(s string) bool {
	if hexColor.MatchString(s) || rgbColor.MatchString(s) || rgbaColor.MatchString(s) {
		return true
	}
	return namedColors[strings.ToLower(s)]
}
