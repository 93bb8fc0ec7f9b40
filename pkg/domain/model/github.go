package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// GitHubRepo identifies a GitHub repository.
type GitHubRepo struct {
	RepoID   int64  `json:"repo_id"`
	Owner    string `json:"owner"`
	RepoName string `json:"repo_name"`
}

func (x *GitHubRepo) FullName() string {
	return x.Owner + "/" + x.RepoName
}

// GitHubUser is the committer or PR author attached to a trigger.
type GitHubUser struct {
	ID    int64  `json:"id,omitempty"`
	Login string `json:"login,omitempty"`
	Email string `json:"email,omitempty"`
}

// GitHubCommit is the commit context of a webhook trigger.
type GitHubCommit struct {
	GitHubRepo
	Branch    string     `json:"branch"`
	Ref       string     `json:"ref,omitempty"`
	CommitID  string     `json:"commit_id"`
	Committer GitHubUser `json:"committer,omitempty"`
}

// GitHubMetadata is everything a validated webhook trigger carries into the
// pipeline.
type GitHubMetadata struct {
	GitHubCommit
	DefaultBranch  string `json:"default_branch,omitempty"`
	InstallationID int64  `json:"installation_id,omitempty"`
}

func (x *GitHubMetadata) ValidateBasic() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo name is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	return nil
}
