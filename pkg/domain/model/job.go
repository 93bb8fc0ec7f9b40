package model

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// ScanJob is the unit of work of the pipeline. It is created on submission
// with status pending and mutated only by the worker executing it. Severity
// counts, score and grade are written once at completion and never change
// afterwards.
type ScanJob struct {
	ID          types.ScanJobID   `json:"id" firestore:"ID"`
	WorkspaceID types.WorkspaceID `json:"workspace_id" firestore:"WorkspaceID"`
	RepoID      types.RepoID      `json:"repo_id" firestore:"RepoID"`
	RepoName    string            `json:"repo_name" firestore:"RepoName"`
	Branch      types.BranchName  `json:"branch" firestore:"Branch"`

	// CommitSHA is the resolved commit, or a synthetic identifier when
	// resolution failed (see SyntheticCommit).
	CommitSHA       types.CommitSHA     `json:"commit_sha" firestore:"CommitSHA"`
	CommitSynthetic bool                `json:"commit_synthetic" firestore:"CommitSynthetic"`
	Scanners        []types.ScannerType `json:"scanners" firestore:"Scanners"`
	TriggeredBy     string              `json:"triggered_by" firestore:"TriggeredBy"`

	// InstallID selects the GitHub App installation used to fetch the source.
	InstallID types.GitHubAppInstallID `json:"install_id,omitempty" firestore:"InstallID"`

	Status   types.ScanJobStatus `json:"status" firestore:"Status"`
	Stage    types.ScanStage     `json:"stage" firestore:"Stage"`
	Progress int                 `json:"progress" firestore:"Progress"`
	Attempts int                 `json:"attempts" firestore:"Attempts"`

	// LeaseExpiresAt is renewed while a worker executes the job. A job whose
	// lease expired without reaching a terminal state is stalled.
	LeaseExpiresAt time.Time `json:"lease_expires_at" firestore:"LeaseExpiresAt"`

	StartedAt  time.Time     `json:"started_at" firestore:"StartedAt"`
	FinishedAt time.Time     `json:"finished_at" firestore:"FinishedAt"`
	Duration   time.Duration `json:"duration" firestore:"Duration"`

	Counts  SeverityCounts `json:"counts" firestore:"Counts"`
	Secrets int            `json:"secrets" firestore:"Secrets"`
	Score   int            `json:"score" firestore:"Score"`
	Grade   types.Grade    `json:"grade" firestore:"Grade"`

	// ClonedFrom is set when the job was satisfied from the result cache.
	ClonedFrom types.ScanJobID `json:"cloned_from,omitempty" firestore:"ClonedFrom"`

	FileCount int   `json:"file_count" firestore:"FileCount"`
	LineCount int   `json:"line_count" firestore:"LineCount"`
	ByteSize  int64 `json:"byte_size" firestore:"ByteSize"`

	Error string `json:"error,omitempty" firestore:"Error"`

	CreatedAt time.Time `json:"created_at" firestore:"CreatedAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"UpdatedAt"`
}

func (x *ScanJob) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "job ID is empty")
	}
	if x.WorkspaceID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace ID is empty")
	}
	if x.RepoID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo ID is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
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

// ScannerSetFingerprint derives a stable key for the enabled scanner set,
// independent of the order scanners were requested in. It is one component of
// the result cache key.
func ScannerSetFingerprint(scanners []types.ScannerType) string {
	names := make([]string, 0, len(scanners))
	seen := map[types.ScannerType]bool{}
	for _, s := range scanners {
		if seen[s] {
			continue
		}
		seen[s] = true
		names = append(names, s.String())
	}
	sort.Strings(names)

	h := sha256.Sum256([]byte(strings.Join(names, ",")))
	return hex.EncodeToString(h[:])[:16]
}

// CacheKey is the result cache tuple: repository, resolved (or synthetic)
// commit, and the scanner-set fingerprint.
func (x *ScanJob) CacheKey() CacheKey {
	return CacheKey{
		RepoID:     x.RepoID,
		CommitSHA:  x.CommitSHA,
		ScannerSet: ScannerSetFingerprint(x.Scanners),
	}
}

type CacheKey struct {
	RepoID     types.RepoID
	CommitSHA  types.CommitSHA
	ScannerSet string
}

// SyntheticCommit derives a deterministic commit identifier from the
// repository, branch and calendar day. It keeps same-day re-scans cache-warm
// when the real commit cannot be resolved, while a new day forces a fresh run.
func SyntheticCommit(repoID types.RepoID, branch types.BranchName, day time.Time) types.CommitSHA {
	seed := strings.Join([]string{
		repoID.String(),
		branch.String(),
		day.UTC().Format("2006-01-02"),
	}, "|")
	h := sha256.Sum256([]byte(seed))
	return types.CommitSHA("synthetic:" + hex.EncodeToString(h[:])[:40])
}

// IsSyntheticCommit reports whether sha was produced by SyntheticCommit.
func IsSyntheticCommit(sha types.CommitSHA) bool {
	return strings.HasPrefix(string(sha), "synthetic:")
}
