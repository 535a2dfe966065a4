// Package links handles [label](url) markup embedded in card definitions.
package links

import (
	"errors"
	"regexp"
	"strings"
)

var ErrNotFound = errors.New("no link at that position")

// linkPattern matches a [label](url) pair. The label and url groups are
// kept separate so the url portion can be stripped or extracted on its own.
var linkPattern = regexp.MustCompile(`(\[.+?\])(\s*\(.+?\))`)

// URLAt returns the url of the i-th (1-based) [label](url) occurrence in
// text, or ErrNotFound when fewer than i links exist.
func URLAt(text string, i int) (string, error) {
	matches := linkPattern.FindAllStringSubmatch(text, -1)
	if i < 1 || i > len(matches) {
		return "", ErrNotFound
	}
	raw := strings.TrimSpace(matches[i-1][2])
	return raw[1 : len(raw)-1], nil
}

// Hide strips the (url) portion of every [label](url) occurrence, leaving
// only the bracketed labels. This is the default definition rendering.
func Hide(text string) string {
	matches := linkPattern.FindAllStringSubmatch(text, -1)
	for _, match := range matches {
		text = strings.Replace(text, match[2], "", 1)
	}
	return text
}
