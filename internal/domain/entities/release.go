package entities

import "fmt"

// Remote is where a release is pushed. An empty URL means the "origin" remote.
type Remote struct {
	URL      string
	Username string
	Password string
}

// Release describes the git side of a bump: the commit that records the
// rewritten document, the tag that marks it and where to push both.
type Release struct {
	Workspace     string
	Version       string
	TagName       string
	CommitMessage string
	Branch        string
	UserName      string
	UserEmail     string
	Remote        Remote
	SkipCommit    bool
	SkipTag       bool
	SkipPush      bool
}

// NewRelease builds the release of a version from the settings.
func NewRelease(version string, settings *Settings) Release {
	commit := settings.Commit
	tagName := commit.TagPrefix + version
	return Release{
		Workspace: settings.Workspace,
		Version:   version,
		TagName:   tagName,
		// rendered with the prefix so the next run recognizes this commit as a bump
		CommitMessage: RenderCommitMessage(commit.Message, tagName),
		Branch:        commit.Branch,
		UserName:      commit.UserName,
		UserEmail:     commit.UserEmail,
		Remote:        commit.Remote(),
		SkipCommit:    commit.SkipCommit,
		SkipTag:       commit.SkipTag,
		SkipPush:      commit.SkipPush,
	}
}

// Remote returns the authenticated push target for the configured repository slug.
func (it CommitSettings) Remote() Remote {
	if it.Repository == "" {
		return Remote{}
	}
	username := it.Actor
	if username == "" {
		// any non-empty user works with token authentication
		username = "x-access-token"
	}
	return Remote{
		URL:      fmt.Sprintf("https://%s/%s.git", it.RepositoryDomain, it.Repository),
		Username: username,
		Password: it.Token,
	}
}
