//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/autobump/internal/domain/entities"
)

func TestParseKeywords(t *testing.T) {
	t.Parallel()

	t.Run("should split and trim a comma-separated list", func(t *testing.T) {
		t.Parallel()

		// when
		words := entities.ParseKeywords(" feat , minor,")

		// then
		assert.Equal(t, entities.Keywords{"feat", "minor"}, words)
		assert.Equal(t, "feat,minor", words.String())
	})

	t.Run("should return no keyword for an empty list", func(t *testing.T) {
		t.Parallel()

		// when
		words := entities.ParseKeywords(" , ")

		// then
		assert.Empty(t, words)
	})
}

func TestClassificationKey(t *testing.T) {
	t.Parallel()

	t.Run("should return the text before the first colon", func(t *testing.T) {
		t.Parallel()

		// when
		key := entities.ClassificationKey("feat(api): add endpoint: v2")

		// then
		assert.Equal(t, "feat(api)", key)
	})

	t.Run("should return the whole message without a colon", func(t *testing.T) {
		t.Parallel()

		// when
		key := entities.ClassificationKey("Merge branch main")

		// then
		assert.Equal(t, "Merge branch main", key)
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	defaults := entities.ClassificationRules{
		Major:      entities.ParseKeywords("BREAKING CHANGE,major"),
		Minor:      entities.ParseKeywords("feat,minor"),
		Patch:      entities.ParseKeywords("fix"),
		Prerelease: entities.ParseKeywords("pre-rc,pre-beta"),
	}

	tests := []struct {
		name     string
		commits  []string
		rules    entities.ClassificationRules
		expected entities.BumpKind
	}{
		{
			name:     "should pick minor for a feature",
			commits:  []string{"feat: add export"},
			rules:    defaults,
			expected: entities.BumpMinor,
		},
		{
			name:     "should pick patch for a fix",
			commits:  []string{"fix: handle nil"},
			rules:    defaults,
			expected: entities.BumpPatch,
		},
		{
			name:     "should let major win over every other category",
			commits:  []string{"fix: a", "feat: b", "BREAKING CHANGE: c", "pre-rc: d"},
			rules:    defaults,
			expected: entities.BumpMajor,
		},
		{
			name:     "should let minor win over patch regardless of order",
			commits:  []string{"fix: a", "feat: b"},
			rules:    defaults,
			expected: entities.BumpMinor,
		},
		{
			name:     "should treat the conventional-commit bang as major",
			commits:  []string{"chore: a", "refactor(core)!: drop legacy api"},
			rules:    defaults,
			expected: entities.BumpMajor,
		},
		{
			name:     "should match a configured bang keyword",
			commits:  []string{"feat!: x"},
			rules:    entities.ClassificationRules{Major: entities.ParseKeywords("feat!")},
			expected: entities.BumpMajor,
		},
		{
			name:     "should only look at the text before the colon",
			commits:  []string{"docs: explain the feat flag"},
			rules:    defaults,
			expected: entities.BumpNone,
		},
		{
			name:     "should be case sensitive",
			commits:  []string{"FEAT: shout"},
			rules:    defaults,
			expected: entities.BumpNone,
		},
		{
			name:     "should pick prerelease when only a prerelease keyword matches",
			commits:  []string{"pre-rc: candidate"},
			rules:    defaults,
			expected: entities.BumpPrerelease,
		},
		{
			name:     "should never match with empty keyword lists",
			commits:  []string{"feat: a", "fix: b"},
			rules:    entities.ClassificationRules{},
			expected: entities.BumpNone,
		},
		{
			name:     "should return none for no commits",
			commits:  nil,
			rules:    defaults,
			expected: entities.BumpNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			decision := entities.Classify(tt.commits, tt.rules)

			// then
			assert.Equal(t, tt.expected, decision.Kind)
			assert.Empty(t, decision.Identifier)
		})
	}
}

func TestResolvePrereleaseIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		words    string
		commits  []string
		expected string
		found    bool
	}{
		{
			name:     "should take the text after the first dash of the keyword",
			words:    "pre-rc",
			commits:  []string{"pre-rc: candidate"},
			expected: "rc",
			found:    true,
		},
		{
			name:     "should keep later dashes in the identifier",
			words:    "pre-release-candidate",
			commits:  []string{"pre-release-candidate: x"},
			expected: "release-candidate",
			found:    true,
		},
		{
			name:     "should let the last matching commit win",
			words:    "pre-rc,pre-beta",
			commits:  []string{"pre-beta: newest", "pre-rc: older"},
			expected: "rc",
			found:    true,
		},
		{
			name:     "should let the last keyword win inside a commit",
			words:    "pre-rc,pre-beta",
			commits:  []string{"pre-rc pre-beta: both"},
			expected: "beta",
			found:    true,
		},
		{
			name:    "should ignore keywords without a dash",
			words:   "alpha",
			commits: []string{"alpha: x"},
			found:   false,
		},
		{
			name:    "should report nothing when no commit matches",
			words:   "pre-rc",
			commits: []string{"feat: x"},
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			identifier, found := entities.ResolvePrereleaseIdentifier(entities.ParseKeywords(tt.words), tt.commits)

			// then
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, identifier)
		})
	}
}
