package entities

import (
	"regexp"
	"strings"
)

// breakingChangePattern matches the conventional-commit "type(scope)!:" marker.
var breakingChangePattern = regexp.MustCompile(`^[a-zA-Z]+(\([^)]*\))?!:`)

// Keywords is an ordered list of substrings that select a bump category.
type Keywords []string

// ParseKeywords splits a comma-separated list, dropping blank entries so an
// empty input never yields a keyword that matches everything.
func ParseKeywords(raw string) Keywords {
	var words Keywords
	for _, word := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(word); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}

// String joins the keywords back into their comma-separated form.
func (k Keywords) String() string {
	return strings.Join(k, ",")
}

func (k Keywords) matchedBy(text string) bool {
	for _, word := range k {
		if word != "" && strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// ClassificationRules holds the keyword sets of every bump category.
type ClassificationRules struct {
	Major      Keywords
	Minor      Keywords
	Patch      Keywords
	Prerelease Keywords
}

// ClassificationKey returns the conventional-commit type of a message: the text
// before the first colon, or the whole message when there is none.
func ClassificationKey(message string) string {
	key, _, _ := strings.Cut(message, ":")
	return key
}

// Classify picks the bump for a set of commits. Categories are tried in the order
// major, minor, patch, prerelease and the first one matched by any commit wins.
// A prerelease decision never carries an identifier; see ResolvePrereleaseIdentifier.
func Classify(commits []string, rules ClassificationRules) BumpDecision {
	keys := make([]string, len(commits))
	for i, message := range commits {
		keys[i] = ClassificationKey(message)
	}

	switch {
	case anyBreaking(commits) || anyMatched(keys, rules.Major):
		return BumpDecision{Kind: BumpMajor}
	case anyMatched(keys, rules.Minor):
		return BumpDecision{Kind: BumpMinor}
	case anyMatched(keys, rules.Patch):
		return BumpDecision{Kind: BumpPatch}
	case anyMatched(keys, rules.Prerelease):
		return BumpDecision{Kind: BumpPrerelease}
	default:
		return BumpDecision{Kind: BumpNone}
	}
}

func anyBreaking(commits []string) bool {
	for _, message := range commits {
		if breakingChangePattern.MatchString(message) {
			return true
		}
	}
	return false
}

func anyMatched(keys []string, words Keywords) bool {
	if len(words) == 0 {
		return false
	}
	for _, key := range keys {
		if words.matchedBy(key) {
			return true
		}
	}
	return false
}

// ResolvePrereleaseIdentifier finds the prerelease identifier announced by the
// commits. Keywords have the "prefix-identifier" form; the identifier is what
// follows the first dash. Commits are scanned in order, then keywords in order,
// and the last match wins.
func ResolvePrereleaseIdentifier(words Keywords, commits []string) (string, bool) {
	found := ""
	for _, message := range commits {
		for _, word := range words {
			if word == "" || !strings.Contains(message, word) {
				continue
			}
			if _, identifier, ok := strings.Cut(word, "-"); ok && identifier != "" {
				found = identifier
			}
		}
	}
	return found, found != ""
}
