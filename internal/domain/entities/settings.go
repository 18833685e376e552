package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	HistoryEvent  = "event"
	HistoryGitHub = "github"
	HistoryGitLab = "gitlab"
	HistoryLocal  = "local"

	defaultCommitMessage = "ci: version bump to " + VersionPlaceholder
	defaultUserName      = "Automated Version Bump"
	defaultUserEmail     = "autobump@users.noreply.github.com"
	defaultDomain        = "github.com"
	defaultHistoryLimit  = 100
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// refPattern extracts the branch from a fully qualified ref such as refs/heads/main.
var refPattern = regexp.MustCompile(`^refs/[a-zA-Z]+/(.*)`)

// Settings is the complete configuration of a bump run. It is assembled once,
// at the edge, from defaults, the CI environment, an optional YAML file and
// CLI flags, and then passed down explicitly.
type Settings struct {
	Workspace    string           `yaml:"workspace"      validate:"required"`
	Document     DocumentSettings `yaml:"document"`
	Keywords     KeywordSettings  `yaml:"keywords"`
	PrereleaseID string           `yaml:"pre_release_id"`
	Commit       CommitSettings   `yaml:"commit"`
	History      HistorySettings  `yaml:"history"`
	OutputPath   string           `yaml:"output_path"`
	DryRun       bool             `yaml:"dry_run"`
}

// DocumentSettings locates the version-bearing document.
type DocumentSettings struct {
	Path string `yaml:"path" validate:"required"`
	Type string `yaml:"type" validate:"required"`
}

// KeywordSettings holds the comma-separated keyword lists of each bump category.
type KeywordSettings struct {
	Major      string `yaml:"major"`
	Minor      string `yaml:"minor"`
	Patch      string `yaml:"patch"`
	Prerelease string `yaml:"prerelease"`
}

// CommitSettings controls how a bump is committed, tagged and pushed.
type CommitSettings struct {
	Message          string `yaml:"message"           validate:"required"`
	ReleasePattern   string `yaml:"release_pattern"`
	TagPrefix        string `yaml:"tag_prefix"`
	SkipCommit       bool   `yaml:"skip_commit"`
	SkipTag          bool   `yaml:"skip_tag"`
	SkipPush         bool   `yaml:"skip_push"`
	Branch           string `yaml:"target_branch"`
	UserName         string `yaml:"user_name"`
	UserEmail        string `yaml:"user_email"       validate:"omitempty,email"`
	Actor            string `yaml:"actor"`
	Token            string `yaml:"token"`
	Repository       string `yaml:"repository"`
	RepositoryDomain string `yaml:"repository_domain" validate:"required,hostname_port|hostname"`
}

// HistorySettings selects where commit messages come from.
type HistorySettings struct {
	Source     string `yaml:"source"     validate:"required,oneof=event github gitlab local"`
	EventPath  string `yaml:"event_path" validate:"required_if=Source event"`
	Repository string `yaml:"repository" validate:"required_if=Source github,required_if=Source gitlab"`
	Ref        string `yaml:"ref"`
	Token      string `yaml:"token"`
	BaseURL    string `yaml:"base_url"   validate:"omitempty,url"`
	Limit      int    `yaml:"limit"      validate:"gte=0"`
}

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Workspace: ".",
		Document:  DocumentSettings{Type: "manifest"},
		Keywords: KeywordSettings{
			Major: "BREAKING CHANGE,major",
			Minor: "feat,minor",
		},
		Commit: CommitSettings{
			Message:          defaultCommitMessage,
			UserName:         defaultUserName,
			UserEmail:        defaultUserEmail,
			RepositoryDomain: defaultDomain,
		},
		History: HistorySettings{
			Source: HistoryLocal,
			Limit:  defaultHistoryLimit,
		},
	}
}

// ApplyEnvironment fills the settings from a CI environment. Only variables that
// are set are applied.
func (it *Settings) ApplyEnvironment(getenv func(string) string) {
	setIfPresent(&it.Workspace, getenv("GITHUB_WORKSPACE"))
	setIfPresent(&it.OutputPath, getenv("GITHUB_OUTPUT"))
	setIfPresent(&it.Commit.UserName, getenv("GITHUB_USER"))
	setIfPresent(&it.Commit.UserEmail, getenv("GITHUB_EMAIL"))
	setIfPresent(&it.Commit.Actor, getenv("GITHUB_ACTOR"))
	setIfPresent(&it.Commit.Token, getenv("GITHUB_TOKEN"))
	setIfPresent(&it.Commit.Repository, getenv("GITHUB_REPOSITORY"))
	setIfPresent(&it.History.Token, getenv("GITHUB_TOKEN"))
	setIfPresent(&it.History.Repository, getenv("GITHUB_REPOSITORY"))

	if eventPath := getenv("GITHUB_EVENT_PATH"); eventPath != "" {
		it.History.Source = HistoryEvent
		it.History.EventPath = eventPath
	}

	if ref := getenv("GITHUB_REF"); ref != "" {
		it.History.Ref = ref
		if matches := refPattern.FindStringSubmatch(ref); len(matches) > 1 {
			it.Commit.Branch = matches[1]
		}
	}
	// pull requests run on a merge ref; push to the head branch instead
	setIfPresent(&it.Commit.Branch, getenv("GITHUB_HEAD_REF"))
}

func setIfPresent(target *string, value string) {
	if value != "" {
		*target = value
	}
}

// LoadFile decodes a YAML settings file on top of the current values and
// resolves token references.
func (it *Settings) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if unmarshalErr := yaml.Unmarshal(data, it); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	it.Commit.Token = resolveToken(it.Commit.Token)
	it.History.Token = resolveToken(it.History.Token)
	return nil
}

// Validate checks the settings against their struct constraints.
func (it *Settings) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(it); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Rules returns the parsed keyword lists.
func (it *Settings) Rules() ClassificationRules {
	return ClassificationRules{
		Major:      ParseKeywords(it.Keywords.Major),
		Minor:      ParseKeywords(it.Keywords.Minor),
		Patch:      ParseKeywords(it.Keywords.Patch),
		Prerelease: ParseKeywords(it.Keywords.Prerelease),
	}
}

// BumpPattern returns the template that identifies previous bump commits.
func (it *Settings) BumpPattern() string {
	if it.Commit.ReleasePattern != "" {
		return it.Commit.ReleasePattern
	}
	return it.Commit.Message
}

// DocumentPath returns the document path resolved against the workspace.
func (it *Settings) DocumentPath() string {
	if filepath.IsAbs(it.Document.Path) {
		return it.Document.Path
	}
	return filepath.Join(it.Workspace, it.Document.Path)
}

// HistoryRepository returns the coordinates of the repository whose history is read.
func (it *Settings) HistoryRepository() Repository {
	owner, name, _ := strings.Cut(it.History.Repository, "/")
	return Repository{
		Name:          name,
		Organization:  owner,
		DefaultBranch: it.History.Ref,
		ProviderName:  it.History.Source,
	}
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile(workspace string) (string, error) {
	locations := []string{
		workspace,
		filepath.Join(workspace, ".config"),
		filepath.Join(workspace, ".github"),
	}

	patterns := []string{
		".autobump.yaml",
		".autobump.yml",
		"autobump.yaml",
		"autobump.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// ShortRef strips the refs/heads/ or refs/tags/ qualifier from a git ref.
func ShortRef(ref string) string {
	for _, prefix := range []string{"refs/heads/", "refs/tags/"} {
		if strings.HasPrefix(ref, prefix) {
			return strings.TrimPrefix(ref, prefix)
		}
	}
	return ref
}
