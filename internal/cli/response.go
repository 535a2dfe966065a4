package cli

import (
	"strconv"
	"strings"
)

// ResponseKind is the closed set of intents a review answer can express.
type ResponseKind int

const (
	// ResponseCorrect covers "y", empty input, and any token with no other
	// meaning. Unrecognized input deliberately counts as a correct answer.
	ResponseCorrect ResponseKind = iota
	// ResponseIncorrect is an "n" answer.
	ResponseIncorrect
	// ResponseRevealLink asks to open the N-th [label](url) of the
	// definition in a browser.
	ResponseRevealLink
	// ResponseShowRaw asks to re-show the definition with URL markup
	// visible.
	ResponseShowRaw
	// ResponseHelp asks for usage guidance.
	ResponseHelp
	// ResponseQuit ends the session immediately without saving.
	ResponseQuit
	// ResponseToggleAbort flips the session's abort-persistence flag.
	ResponseToggleAbort
)

// Response is one parsed review answer.
type Response struct {
	Kind ResponseKind
	// Link is the 1-based link number for ResponseRevealLink.
	Link int
}

// ParseResponse classifies a raw answer token. Classification happens once
// per input, in a fixed priority order: link number, raw-markup request,
// help, quit, abort toggle, incorrect, then correct as the lenient default.
func ParseResponse(token string) Response {
	if isDigits(token) {
		n, _ := strconv.Atoi(token)
		return Response{Kind: ResponseRevealLink, Link: n}
	}
	if strings.HasPrefix(token, "-") && isDigits(token[1:]) {
		return Response{Kind: ResponseShowRaw}
	}

	switch {
	case hasPrefixFold(token, "i"):
		return Response{Kind: ResponseHelp}
	case hasPrefixFold(token, "q"), hasPrefixFold(token, "e"):
		return Response{Kind: ResponseQuit}
	case hasPrefixFold(token, "a"):
		return Response{Kind: ResponseToggleAbort}
	case hasPrefixFold(token, "n"):
		return Response{Kind: ResponseIncorrect}
	}
	return Response{Kind: ResponseCorrect}
}

func isDigits(s string) bool {
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

func hasPrefixFold(s, prefix string) bool {
	return s != "" && strings.EqualFold(s[:1], prefix)
}
