package git

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const defaultRemote = "origin"

var errUnknownBranch = errors.New("cannot determine the branch to push: HEAD is detached and no target branch is set")

// GitReleaseRepository commits, tags and pushes a bump with go-git, without
// relying on a git binary in the runner.
type GitReleaseRepository struct{}

// NewReleaseRepository creates a go-git backed release publisher.
func NewReleaseRepository() repositories.ReleaseRepository {
	return &GitReleaseRepository{}
}

// Publish records the release in the workspace repository, honoring the skip flags.
func (p *GitReleaseRepository) Publish(ctx context.Context, release entities.Release) error {
	repo, err := git.PlainOpenWithOptions(release.Workspace, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("failed to open repository at %q: %w", release.Workspace, err)
	}

	if release.SkipCommit {
		logger.Info("Skipping commit")
	} else if commitErr := p.commit(repo, release); commitErr != nil {
		return commitErr
	}

	if release.SkipTag {
		logger.Info("Skipping tag")
	} else if tagErr := p.tag(repo, release); tagErr != nil {
		return tagErr
	}

	if release.SkipPush {
		logger.Info("Skipping push")
		return nil
	}
	return p.push(ctx, repo, release)
}

func (p *GitReleaseRepository) commit(repo *git.Repository, release entities.Release) error {
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	hash, err := worktree.Commit(release.CommitMessage, &git.CommitOptions{
		All: true,
		Author: &object.Signature{
			Name:  release.UserName,
			Email: release.UserEmail,
			When:  time.Now(),
		},
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		// checkouts that already carry the change have nothing left to commit
		logger.Warnf("Nothing to commit for %s: %v", release.Version, err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to commit version %s: %w", release.Version, err)
	}

	logger.Infof("Committed %q as %s", release.CommitMessage, hash.String()[:7])
	return nil
}

func (p *GitReleaseRepository) tag(repo *git.Repository, release entities.Release) error {
	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if _, err = repo.CreateTag(release.TagName, head.Hash(), nil); err != nil {
		return fmt.Errorf("failed to create tag %q: %w", release.TagName, err)
	}

	logger.Infof("Tagged %s as %q", head.Hash().String()[:7], release.TagName)
	return nil
}

func (p *GitReleaseRepository) push(ctx context.Context, repo *git.Repository, release entities.Release) error {
	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	source, branch, err := pushSource(head, release.Branch)
	if err != nil {
		return err
	}
	if !head.Name().IsBranch() {
		// a detached checkout gets a local branch so the refspec has a source
		if setErr := repo.Storer.SetReference(plumbing.NewHashReference(source, head.Hash())); setErr != nil {
			return fmt.Errorf("failed to create local branch %q: %w", branch, setErr)
		}
	}

	remote, err := p.remote(repo, release.Remote)
	if err != nil {
		return err
	}

	options := &git.PushOptions{
		RemoteName: remote.Config().Name,
		RefSpecs:   refSpecs(source, branch, release),
	}
	if release.Remote.Password != "" {
		options.Auth = &githttp.BasicAuth{
			Username: release.Remote.Username,
			Password: release.Remote.Password,
		}
	}

	err = remote.PushContext(ctx, options)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		logger.Infof("Remote branch %q is already up to date", branch)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push to %q: %w", branch, err)
	}

	logger.Infof("Pushed %q to branch %q", release.Version, branch)
	return nil
}

// remote returns an in-memory remote for an explicit URL, else the configured origin.
func (p *GitReleaseRepository) remote(repo *git.Repository, target entities.Remote) (*git.Remote, error) {
	if target.URL != "" {
		return git.NewRemote(repo.Storer, &config.RemoteConfig{
			Name: defaultRemote,
			URLs: []string{target.URL},
		}), nil
	}

	remote, err := repo.Remote(defaultRemote)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve remote %q: %w", defaultRemote, err)
	}
	return remote, nil
}

// pushSource returns the local reference to push and the remote branch name.
// The target branch wins over the checked out one.
func pushSource(head *plumbing.Reference, target string) (plumbing.ReferenceName, string, error) {
	switch {
	case head.Name().IsBranch() && (target == "" || target == head.Name().Short()):
		return head.Name(), head.Name().Short(), nil
	case head.Name().IsBranch():
		return head.Name(), target, nil
	case target != "":
		return plumbing.NewBranchReferenceName(target), target, nil
	default:
		return "", "", errUnknownBranch
	}
}

func refSpecs(source plumbing.ReferenceName, branch string, release entities.Release) []config.RefSpec {
	specs := []config.RefSpec{
		config.RefSpec(fmt.Sprintf("%s:%s", source, plumbing.NewBranchReferenceName(branch))),
	}
	if !release.SkipTag {
		tag := plumbing.NewTagReferenceName(release.TagName)
		specs = append(specs, config.RefSpec(fmt.Sprintf("%s:%s", tag, tag)))
	}
	return specs
}
