package main

import (
	"regexp"
	"strings"
)

// spellingCorrections fixes common misspellings seen in bank narrations
var spellingCorrections = []struct {
	wrong   string
	correct string
}{
	{"grocerie", "grocery"},
	{"groceri", "grocery"},
	{"restuarant", "restaurant"},
	{"restraunt", "restaurant"},
}

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRegex      = regexp.MustCompile(`\s+`)
)

// normalizeText lower-cases text, applies spelling corrections, replaces
// punctuation with spaces and collapses runs of whitespace.
func normalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(strings.TrimSpace(text))

	// Corrections run in order, so "grocerie" is handled before "groceri"
	for _, c := range spellingCorrections {
		text = strings.ReplaceAll(text, c.wrong, c.correct)
	}

	text = nonAlphanumericRegex.ReplaceAllString(text, " ")
	text = whitespaceRegex.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
