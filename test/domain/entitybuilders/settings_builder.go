//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autobump/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder starting from the defaults,
// reading a manifest named app.csproj from the local history.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    defaultSettings(),
	}
}

func defaultSettings() entities.Settings {
	settings := *entities.DefaultSettings()
	settings.Document.Path = "app.csproj"
	return settings
}

// WithWorkspace sets the workspace directory.
func (b *SettingsBuilder) WithWorkspace(workspace string) *SettingsBuilder {
	b.settings.Workspace = workspace
	return b
}

// WithDocument sets the document path and type.
func (b *SettingsBuilder) WithDocument(path, documentType string) *SettingsBuilder {
	b.settings.Document = entities.DocumentSettings{Path: path, Type: documentType}
	return b
}

// WithHistorySource sets the history source name.
func (b *SettingsBuilder) WithHistorySource(source string) *SettingsBuilder {
	b.settings.History.Source = source
	return b
}

// WithMajorWords sets the comma-separated major keywords.
func (b *SettingsBuilder) WithMajorWords(words string) *SettingsBuilder {
	b.settings.Keywords.Major = words
	return b
}

// WithMinorWords sets the comma-separated minor keywords.
func (b *SettingsBuilder) WithMinorWords(words string) *SettingsBuilder {
	b.settings.Keywords.Minor = words
	return b
}

// WithPatchWords sets the comma-separated patch keywords.
func (b *SettingsBuilder) WithPatchWords(words string) *SettingsBuilder {
	b.settings.Keywords.Patch = words
	return b
}

// WithPrereleaseWords sets the comma-separated prerelease keywords.
func (b *SettingsBuilder) WithPrereleaseWords(words string) *SettingsBuilder {
	b.settings.Keywords.Prerelease = words
	return b
}

// WithPrereleaseID sets the explicit prerelease identifier.
func (b *SettingsBuilder) WithPrereleaseID(identifier string) *SettingsBuilder {
	b.settings.PrereleaseID = identifier
	return b
}

// WithTagPrefix sets the tag prefix.
func (b *SettingsBuilder) WithTagPrefix(prefix string) *SettingsBuilder {
	b.settings.Commit.TagPrefix = prefix
	return b
}

// WithCommitMessage sets the bump commit message template.
func (b *SettingsBuilder) WithCommitMessage(message string) *SettingsBuilder {
	b.settings.Commit.Message = message
	return b
}

// WithBranch sets the target branch.
func (b *SettingsBuilder) WithBranch(branch string) *SettingsBuilder {
	b.settings.Commit.Branch = branch
	return b
}

// WithOutputPath sets the step output file.
func (b *SettingsBuilder) WithOutputPath(path string) *SettingsBuilder {
	b.settings.OutputPath = path
	return b
}

// WithDryRun enables or disables dry-run mode.
func (b *SettingsBuilder) WithDryRun(dryRun bool) *SettingsBuilder {
	b.settings.DryRun = dryRun
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = defaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    b.settings,
	}
}
