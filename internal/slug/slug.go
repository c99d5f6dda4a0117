// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for project and
// category paths. Latin diacritics (including Romanian ă/â/î/ș/ț) are
// folded to ASCII before stripping, so "Bulevardul Unirii" and
// "Casa Brâncuși" both produce readable slugs.
package slug

import (
	"regexp"
	"strings"
)

// maxLen caps generated slugs. Long titles are cut at a word boundary.
const maxLen = 80

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)

	// diacritics folds accented Latin letters to their ASCII base.
	// Covers Romanian plus the Western European accents that show up
	// in project titles and staff names.
	diacritics = strings.NewReplacer(
		"ă", "a", "â", "a", "î", "i", "ș", "s", "ş", "s", "ț", "t", "ţ", "t",
		"á", "a", "à", "a", "ä", "a", "ã", "a", "å", "a",
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"í", "i", "ì", "i", "ï", "i",
		"ó", "o", "ò", "o", "ö", "o", "ô", "o", "õ", "o",
		"ú", "u", "ù", "u", "ü", "u", "û", "u",
		"ñ", "n", "ç", "c", "ß", "ss",
	)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Casa Brâncuși, 2026" → "casa-brancusi-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = diacritics.Replace(result)
	result = strings.ReplaceAll(result, "_", " ")
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > maxLen {
		result = result[:maxLen]
		// Never cut mid-word.
		if i := strings.LastIndexByte(result, '-'); i > 0 {
			result = result[:i]
		}
	}
	return result
}
