package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/autobump/internal/domain/entities"
)

// AddGlobalFlags adds the flags every subcommand accepts to the root command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect in the workspace)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Compute the new version without writing, committing or pushing")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}

func addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().String("workspace", "", "Directory holding the repository (default: GITHUB_WORKSPACE or .)")
	cmd.Flags().String("path-to-file", "", "Path of the version-bearing document, relative to the workspace")
	cmd.Flags().String("type", "", "Document type: manifest (csproj), attribute (assembly) or terraform (hcl)")
}

func addBumpFlags(cmd *cobra.Command) {
	addDocumentFlags(cmd)
	cmd.Flags().String("tag-prefix", "", "Prefix of the created tag (e.g. v)")
	cmd.Flags().String("major-wording", "", "Comma-separated keywords that trigger a major bump")
	cmd.Flags().String("minor-wording", "", "Comma-separated keywords that trigger a minor bump")
	cmd.Flags().String("patch-wording", "", "Comma-separated keywords that trigger a patch bump")
	cmd.Flags().String("release-candidate-wording", "",
		"Comma-separated prefix-identifier keywords that trigger a prerelease bump (e.g. pre-rc)")
	cmd.Flags().String("pre-release-id", "", "Prerelease identifier to use instead of the one in the commits")
	cmd.Flags().Bool("skip-tag", false, "Do not tag the bump commit")
	cmd.Flags().Bool("skip-commit", false, "Do not commit the rewritten document")
	cmd.Flags().Bool("skip-push", false, "Do not push the commit and tag")
	cmd.Flags().String("target-branch", "", "Branch to push to (default: the triggering branch)")
	cmd.Flags().String("commit-message", "", "Bump commit message; {{version}} is replaced by the tag name")
	cmd.Flags().String("release-commit-message-regex", "",
		"Message of earlier bump commits, with {{version}} (default: the commit message)")
	cmd.Flags().String("repository-domain", "", "Host of the repository to push to (default: github.com)")
	cmd.Flags().String("history", "", "Commit history source: event, github, gitlab or local")
}

// loadSettings layers the settings: defaults, then the CI environment, then the
// config file, then explicitly set flags. The result is validated.
func loadSettings(flags *pflag.FlagSet, getenv entities.Environment) (*entities.Settings, error) {
	settings := entities.DefaultSettings()
	settings.ApplyEnvironment(getenv)
	setString(flags, "workspace", &settings.Workspace)

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(settings.Workspace); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		if err := settings.LoadFile(configPath); err != nil {
			return nil, err
		}
	}

	applyFlags(flags, settings)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w (set --path-to-file and --type or a config file)", err)
	}
	return settings, nil
}

func applyFlags(flags *pflag.FlagSet, settings *entities.Settings) {
	setString(flags, "workspace", &settings.Workspace)
	setString(flags, "path-to-file", &settings.Document.Path)
	setString(flags, "type", &settings.Document.Type)
	setString(flags, "tag-prefix", &settings.Commit.TagPrefix)
	setString(flags, "major-wording", &settings.Keywords.Major)
	setString(flags, "minor-wording", &settings.Keywords.Minor)
	setString(flags, "patch-wording", &settings.Keywords.Patch)
	setString(flags, "release-candidate-wording", &settings.Keywords.Prerelease)
	setString(flags, "pre-release-id", &settings.PrereleaseID)
	setString(flags, "target-branch", &settings.Commit.Branch)
	setString(flags, "commit-message", &settings.Commit.Message)
	setString(flags, "release-commit-message-regex", &settings.Commit.ReleasePattern)
	setString(flags, "repository-domain", &settings.Commit.RepositoryDomain)
	setString(flags, "history", &settings.History.Source)
	setBool(flags, "skip-tag", &settings.Commit.SkipTag)
	setBool(flags, "skip-commit", &settings.Commit.SkipCommit)
	setBool(flags, "skip-push", &settings.Commit.SkipPush)
	setBool(flags, "dry-run", &settings.DryRun)
}

// setString overrides target only when the flag exists and was set explicitly.
func setString(flags *pflag.FlagSet, name string, target *string) {
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		*target = flag.Value.String()
	}
}

func setBool(flags *pflag.FlagSet, name string, target *bool) {
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		value, err := flags.GetBool(name)
		if err == nil {
			*target = value
		}
	}
}
