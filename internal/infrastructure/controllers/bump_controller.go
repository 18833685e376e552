package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autobump/internal/domain/commands"
	"github.com/rios0rios0/autobump/internal/domain/entities"
)

// BumpController handles the "bump" subcommand.
type BumpController struct {
	command commands.Bump
	getenv  entities.Environment
}

// NewBumpController creates a new BumpController.
func NewBumpController(command commands.Bump, getenv entities.Environment) *BumpController {
	return &BumpController{command: command, getenv: getenv}
}

// GetBind returns the Cobra command metadata for the bump controller.
func (it *BumpController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bump",
		Short: "Bump the version of a project from its commit history",
		Long: `Read the version stored in the project document, classify the commits
made since the last version bump, and write the next semantic version back.

The bump is then committed, tagged and pushed. Inside a GitHub workflow the
event payload, branch, token and output file are picked up from the
environment; every setting can also come from a config file or flags.`,
	}
}

// AddFlags adds the bump-specific flags to the given Cobra command.
func (it *BumpController) AddFlags(cmd *cobra.Command) {
	addBumpFlags(cmd)
}

// Execute runs one bump.
func (it *BumpController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd.Flags(), it.getenv)
	if err != nil {
		logger.Errorf("failed to load settings: %v", err)
		return err
	}

	result, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		logger.Errorf("Failed to bump version: %v", err)
		return err
	}

	if result.Bumped {
		logger.Infof("Version bumped: %s -> %s", result.OldVersion, result.NewVersion)
	}
	return nil
}
