package model

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// UnifiedVulnerability is the durable identity of a logical issue within a
// workspace, keyed by Fingerprint. It outlives any single scan job: repeated
// detections refresh LastSeenAt, and a full scan that no longer detects it
// marks it fixed.
type UnifiedVulnerability struct {
	ID          types.VulnID      `json:"id" firestore:"ID"`
	WorkspaceID types.WorkspaceID `json:"workspace_id" firestore:"WorkspaceID"`
	RepoID      types.RepoID      `json:"repo_id" firestore:"RepoID"`
	Branch      types.BranchName  `json:"branch" firestore:"Branch"`
	Fingerprint types.Fingerprint `json:"fingerprint" firestore:"Fingerprint"`

	Scanner  types.ScannerType `json:"scanner" firestore:"Scanner"`
	RuleID   types.RuleID      `json:"rule_id" firestore:"RuleID"`
	Severity types.Severity    `json:"severity" firestore:"Severity"`
	Title    string            `json:"title" firestore:"Title"`

	Status     types.VulnStatus `json:"status" firestore:"Status"`
	AssigneeID string           `json:"assignee_id,omitempty" firestore:"AssigneeID"`

	FirstDetectedAt time.Time `json:"first_detected_at" firestore:"FirstDetectedAt"`
	LastSeenAt      time.Time `json:"last_seen_at" firestore:"LastSeenAt"`

	// LastFullScanAt records the most recent non-cached scan that detected
	// this issue. Reconciliation only closes records that a prior full scan
	// has vouched for; cache clones never advance it.
	LastFullScanAt time.Time       `json:"last_full_scan_at" firestore:"LastFullScanAt"`
	LastFullScanID types.ScanJobID `json:"last_full_scan_id,omitempty" firestore:"LastFullScanID"`

	CreatedAt time.Time `json:"created_at" firestore:"CreatedAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"UpdatedAt"`
}

func (x *UnifiedVulnerability) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "vulnerability ID is empty")
	}
	if x.WorkspaceID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workspace ID is empty")
	}
	if x.Fingerprint == "" {
		return goerr.Wrap(types.ErrValidationFailed, "fingerprint is empty")
	}
	if x.Status == "" {
		return goerr.Wrap(types.ErrValidationFailed, "status is empty")
	}
	return nil
}

// MergeDetection folds a new detection into the stored record: LastSeenAt
// advances, fixed records re-open (accepted and false-positive verdicts are
// sticky), severity and title follow the latest detection, and the full-scan
// markers advance only when the incoming detection sets them. Store
// implementations call this inside their atomic conditional write.
func MergeDetection(stored, incoming *UnifiedVulnerability, now time.Time) {
	if incoming.LastSeenAt.After(stored.LastSeenAt) {
		stored.LastSeenAt = incoming.LastSeenAt
	}
	if stored.Status == types.VulnStatusFixed {
		stored.Status = types.VulnStatusOpen
	}
	stored.Severity = incoming.Severity
	stored.Title = incoming.Title
	if !incoming.LastFullScanAt.IsZero() && incoming.LastFullScanAt.After(stored.LastFullScanAt) {
		stored.LastFullScanAt = incoming.LastFullScanAt
		stored.LastFullScanID = incoming.LastFullScanID
	}
	stored.UpdatedAt = now
}

// VulnerabilityInstance is one detection event: it links a scan job to a
// unified vulnerability and snapshots the raw finding. Instances are created
// once per (job, finding identity) and never mutated.
type VulnerabilityInstance struct {
	Key    types.InstanceKey `json:"key" firestore:"Key"`
	JobID  types.ScanJobID   `json:"job_id" firestore:"JobID"`
	VulnID types.VulnID      `json:"vuln_id" firestore:"VulnID"`

	Scanner  types.ScannerType `json:"scanner" firestore:"Scanner"`
	RuleID   types.RuleID      `json:"rule_id" firestore:"RuleID"`
	Severity types.Severity    `json:"severity" firestore:"Severity"`
	Location string            `json:"location" firestore:"Location"`

	// Payload is the raw finding envelope as emitted by the scanner adapter.
	Payload json.RawMessage `json:"payload" firestore:"Payload"`

	CreatedAt time.Time `json:"created_at" firestore:"CreatedAt"`
}

func (x *VulnerabilityInstance) Validate() error {
	if x.Key == "" {
		return goerr.Wrap(types.ErrValidationFailed, "instance key is empty")
	}
	if x.JobID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "job ID is empty")
	}
	if x.VulnID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "vulnerability ID is empty")
	}
	return x.ValidatePayload()
}

// ValidatePayload checks that the retained finding snapshot is still a usable
// JSON envelope. Cache clones skip instances failing this check instead of
// propagating corrupt rows into a new job.
func (x *VulnerabilityInstance) ValidatePayload() error {
	if len(x.Payload) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "instance payload is empty", goerr.V("key", x.Key))
	}
	var f RawFinding
	if err := json.Unmarshal(x.Payload, &f); err != nil {
		return goerr.Wrap(err, "instance payload is not a finding envelope", goerr.V("key", x.Key))
	}
	if !f.Scanner.IsValid() || f.RuleID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "instance payload misses scanner or rule",
			goerr.V("key", x.Key),
		)
	}
	return nil
}
