package entities

import (
	"regexp"
	"strings"
)

// VersionPlaceholder is replaced by the new version in commit message templates.
const VersionPlaceholder = "{{version}}"

const versionPattern = `\d+\.\d+\.\d+`

// NewBumpMatcher builds a case-insensitive matcher for commits created by a
// previous bump. The template is matched literally except for the version
// placeholder, which accepts any tagPrefix-prefixed release triple.
func NewBumpMatcher(template, tagPrefix string) *regexp.Regexp {
	literals := strings.Split(template, VersionPlaceholder)
	for i, literal := range literals {
		literals[i] = regexp.QuoteMeta(literal)
	}
	pattern := strings.Join(literals, regexp.QuoteMeta(tagPrefix)+versionPattern)
	return regexp.MustCompile("(?i)" + pattern)
}

// RelevantCommits returns the commits made after the most recent bump commit.
// Commits are ordered most recent first, so the result is the prefix ending
// just before the first match. An empty result means the latest commit is
// itself a bump.
func RelevantCommits(commits []string, template, tagPrefix string) []string {
	if template == "" {
		return commits
	}

	matcher := NewBumpMatcher(template, tagPrefix)
	for i, message := range commits {
		if matcher.MatchString(message) {
			return commits[:i:i]
		}
	}
	return commits
}

// RenderCommitMessage substitutes every version placeholder in the template.
func RenderCommitMessage(template, version string) string {
	return strings.ReplaceAll(template, VersionPlaceholder, version)
}
