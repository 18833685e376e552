package actions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const (
	outputFileMode = 0o644

	// multiline values use the heredoc syntax of the runner's output file
	multilineDelimiter = "AUTOBUMP_OUTPUT_EOF"
)

var errEmptyOutputName = errors.New("output name must not be empty")

// ActionsOutputRepository appends step outputs to the file named by GITHUB_OUTPUT.
type ActionsOutputRepository struct{}

// NewOutputRepository creates a step output writer.
func NewOutputRepository() repositories.OutputRepository {
	return &ActionsOutputRepository{}
}

// SetOutput appends name=value to target. Without a target the output is only logged.
func (p *ActionsOutputRepository) SetOutput(target, name, value string) error {
	if strings.TrimSpace(name) == "" {
		return errEmptyOutputName
	}
	if target == "" {
		logger.Infof("Output %s=%s", name, value)
		return nil
	}

	file, err := os.OpenFile(target, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", target, err)
	}
	defer file.Close()

	line := fmt.Sprintf("%s=%s\n", name, value)
	if strings.ContainsAny(value, "\r\n") {
		line = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, multilineDelimiter, value, multilineDelimiter)
	}
	if _, err = file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write output %q: %w", name, err)
	}

	logger.Debugf("Set output %s=%s", name, value)
	return nil
}
