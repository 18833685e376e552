package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autobump/internal/domain/commands"
	"github.com/rios0rios0/autobump/internal/domain/entities"
)

// CurrentController handles the "current" subcommand.
type CurrentController struct {
	command commands.Current
	getenv  entities.Environment
}

// NewCurrentController creates a new CurrentController.
func NewCurrentController(command commands.Current, getenv entities.Environment) *CurrentController {
	return &CurrentController{command: command, getenv: getenv}
}

// GetBind returns the Cobra command metadata for the current controller.
func (it *CurrentController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "current",
		Short: "Print the version stored in the project document",
	}
}

// AddFlags adds the document flags to the given Cobra command.
func (it *CurrentController) AddFlags(cmd *cobra.Command) {
	addDocumentFlags(cmd)
}

// Execute prints the current version on standard output.
func (it *CurrentController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd.Flags(), it.getenv)
	if err != nil {
		logger.Errorf("failed to load settings: %v", err)
		return err
	}

	version, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		logger.Errorf("Failed to read the current version: %v", err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
	return err
}
