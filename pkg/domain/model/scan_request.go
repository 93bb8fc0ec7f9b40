package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

var ptnValidCommitID = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Trigger sources for a scan request. Supersession policy is decided per
// trigger, not globally.
const (
	TriggerManual  = "manual"
	TriggerWebhook = "webhook"
	TriggerCLI     = "cli"
)

// ScanRequest is a job submission: repository, branch, optional commit and
// the enabled scanner set.
type ScanRequest struct {
	WorkspaceID types.WorkspaceID `json:"workspace_id"`
	RepoID      types.RepoID      `json:"repo_id"`
	RepoName    string            `json:"repo_name"`
	Branch      types.BranchName  `json:"branch"`

	// CommitSHA is optional. When empty the pipeline resolves the branch
	// head, falling back to a synthetic identifier if resolution fails.
	CommitSHA types.CommitSHA     `json:"commit_sha,omitempty"`
	Scanners  []types.ScannerType `json:"scanners"`

	InstallID   types.GitHubAppInstallID `json:"install_id,omitempty"`
	TriggeredBy string                   `json:"triggered_by,omitempty"`

	// Supersede cancels older pending/running jobs for the same
	// repository+branch before submitting. Webhook triggers enable it by
	// default; manual submissions must opt in.
	Supersede bool `json:"supersede,omitempty"`
}

func (x *ScanRequest) Validate() error {
	if x.WorkspaceID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace ID is empty")
	}
	if x.RepoID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo ID is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	if x.CommitSHA != "" && !IsSyntheticCommit(x.CommitSHA) && !ptnValidCommitID.MatchString(string(x.CommitSHA)) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid commit ID", goerr.V("commit", x.CommitSHA))
	}
	if len(x.Scanners) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "scanner set is empty")
	}
	for _, s := range x.Scanners {
		if !s.IsValid() {
			return goerr.Wrap(types.ErrValidationFailed, "unknown scanner type", goerr.V("scanner", s))
		}
	}
	return nil
}
