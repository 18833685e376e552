package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/autobump/internal/infrastructure/repositories"
)

const (
	outputOldVersion = "oldVersion"
	outputNewVersion = "newVersion"
	outputWasBumped  = "wasBumped"
)

// Bump is the interface for the bump command.
type Bump interface {
	Execute(ctx context.Context, settings *entities.Settings) (entities.BumpResult, error)
}

// BumpCommand orchestrates a version bump:
// read document -> fetch history -> classify -> rewrite -> commit, tag and push.
type BumpCommand struct {
	documentRegistry  *infraRepos.DocumentRegistry
	historyRegistry   *infraRepos.HistoryRegistry
	releaseRepository repositories.ReleaseRepository
	outputRepository  repositories.OutputRepository
}

// NewBumpCommand creates a new BumpCommand with the given registries and collaborators.
func NewBumpCommand(
	documentRegistry *infraRepos.DocumentRegistry,
	historyRegistry *infraRepos.HistoryRegistry,
	releaseRepository repositories.ReleaseRepository,
	outputRepository repositories.OutputRepository,
) *BumpCommand {
	return &BumpCommand{
		documentRegistry:  documentRegistry,
		historyRegistry:   historyRegistry,
		releaseRepository: releaseRepository,
		outputRepository:  outputRepository,
	}
}

// Execute runs one bump. Runs that find nothing to do return a result with
// Bumped set to false and the reason, not an error.
func (it *BumpCommand) Execute(ctx context.Context, settings *entities.Settings) (entities.BumpResult, error) {
	doc, err := loadDocument(it.documentRegistry, settings)
	if err != nil {
		return entities.BumpResult{}, err
	}

	result := entities.BumpResult{OldVersion: doc.version.String()}
	logger.Infof("Current version: %s", result.OldVersion)
	if err = it.setOutput(settings, outputOldVersion, result.OldVersion); err != nil {
		return entities.BumpResult{}, err
	}

	commits, err := it.fetchHistory(ctx, settings)
	if err != nil {
		return entities.BumpResult{}, err
	}
	if len(commits) == 0 {
		return skip(result, entities.ReasonNoMatchingCommits), nil
	}

	relevant := entities.RelevantCommits(commits, settings.BumpPattern(), settings.Commit.TagPrefix)
	if len(relevant) == 0 {
		return skip(result, entities.ReasonAlreadyBumped), nil
	}
	logger.Debugf("%d of %d commits are newer than the last bump", len(relevant), len(commits))

	decision, reason := decide(relevant, settings)
	if reason != "" {
		return skip(result, reason), nil
	}

	next, err := doc.version.Next(decision)
	if err != nil {
		return entities.BumpResult{}, fmt.Errorf("failed to compute the next version: %w", err)
	}
	if next.Compare(doc.version) <= 0 {
		logger.Warnf("New version %s does not sort after %s", next, doc.version)
	}

	result.Decision = decision
	result.NewVersion = next.String()
	logger.Infof("New version: %s (%s bump)", result.NewVersion, decision.Kind)
	if err = it.setOutput(settings, outputNewVersion, result.NewVersion); err != nil {
		return entities.BumpResult{}, err
	}

	result.Content, err = doc.repository.WriteVersion(doc.content, result.NewVersion)
	if err != nil {
		return entities.BumpResult{}, fmt.Errorf("failed to rewrite %q: %w", doc.path, err)
	}
	result.Bumped = true

	if settings.DryRun {
		logger.Infof("[dry-run] Would write %s to %q and publish it", result.NewVersion, doc.path)
		return result, nil
	}

	if err = os.WriteFile(doc.path, []byte(result.Content), doc.mode); err != nil {
		return entities.BumpResult{}, fmt.Errorf("failed to write %q: %w", doc.path, err)
	}
	logger.Infof("Wrote version %s to %q", result.NewVersion, doc.path)

	release := entities.NewRelease(result.NewVersion, settings)
	if err = it.releaseRepository.Publish(ctx, release); err != nil {
		return entities.BumpResult{}, fmt.Errorf("failed to publish %s: %w", release.TagName, err)
	}

	if err = it.setOutput(settings, outputWasBumped, strconv.FormatBool(true)); err != nil {
		return entities.BumpResult{}, err
	}
	return result, nil
}

func (it *BumpCommand) fetchHistory(ctx context.Context, settings *entities.Settings) ([]string, error) {
	source, err := it.historyRegistry.Get(settings.History.Source)
	if err != nil {
		return nil, err
	}

	commits, err := source.CommitMessages(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits from %q: %w", source.Name(), err)
	}

	logger.Infof("Found %d commits from %q", len(commits), source.Name())
	return commits, nil
}

func (it *BumpCommand) setOutput(settings *entities.Settings, name, value string) error {
	if err := it.outputRepository.SetOutput(settings.OutputPath, name, value); err != nil {
		return fmt.Errorf("failed to set output %q: %w", name, err)
	}
	return nil
}

// decide classifies the commits and attaches the prerelease identifier. An
// explicit identifier wins over one announced by the commits.
func decide(commits []string, settings *entities.Settings) (entities.BumpDecision, entities.NoBumpReason) {
	rules := settings.Rules()
	decision := entities.Classify(commits, rules)
	if decision.Kind == entities.BumpNone {
		return decision, entities.ReasonNoMatchingCommits
	}
	if decision.Kind != entities.BumpPrerelease {
		return decision, ""
	}

	identifier := settings.PrereleaseID
	if identifier == "" {
		identifier, _ = entities.ResolvePrereleaseIdentifier(rules.Prerelease, commits)
	}
	if identifier == "" {
		return decision, entities.ReasonNoPrereleaseIdentifier
	}
	return decision.WithIdentifier(identifier), ""
}

func skip(result entities.BumpResult, reason entities.NoBumpReason) entities.BumpResult {
	logger.Infof("Could not find any version bump to make, skipping: %s", reason)
	result.Reason = reason
	return result
}
