package types

import (
	"strings"

	"github.com/google/uuid"
)

type (
	ScanJobID   string
	WorkspaceID string
	RepoID      string
	BranchName  string
	CommitSHA   string
	VulnID      string
	Fingerprint string
	InstanceKey string
	RequestID   string
	RuleID      string
)

// NewScanJobID issues a new random job ID
func NewScanJobID() ScanJobID {
	return ScanJobID(uuid.NewString())
}

// NewVulnID issues a new random unified vulnerability ID
func NewVulnID() VulnID {
	return VulnID(uuid.NewString())
}

// NewRequestID issues a new random request ID
func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x ScanJobID) String() string   { return string(x) }
func (x WorkspaceID) String() string { return string(x) }
func (x RepoID) String() string      { return string(x) }
func (x BranchName) String() string  { return string(x) }
func (x CommitSHA) String() string   { return string(x) }
func (x VulnID) String() string      { return string(x) }
func (x Fingerprint) String() string { return string(x) }
func (x InstanceKey) String() string { return string(x) }

// NewRepoID composes the canonical "owner/name" repository identifier.
func NewRepoID(owner, name string) RepoID {
	return RepoID(owner + "/" + name)
}

// SplitRepoID splits an "owner/name" identifier. The name is empty when the
// identifier does not follow the canonical form.
func SplitRepoID(id RepoID) (owner, name string) {
	owner, name, _ = strings.Cut(string(id), "/")
	return owner, name
}

// ScannerType identifies a class of scanner adapter. The finding payload shape
// is determined by this type.
type ScannerType string

const (
	ScannerStatic     ScannerType = "static"
	ScannerDependency ScannerType = "dependency"
	ScannerSecret     ScannerType = "secret"
	ScannerIaC        ScannerType = "iac"
	ScannerContainer  ScannerType = "container"
)

// AllScannerTypes returns every known scanner class in a stable order.
func AllScannerTypes() []ScannerType {
	return []ScannerType{
		ScannerStatic,
		ScannerDependency,
		ScannerSecret,
		ScannerIaC,
		ScannerContainer,
	}
}

func (x ScannerType) IsValid() bool {
	switch x {
	case ScannerStatic, ScannerDependency, ScannerSecret, ScannerIaC, ScannerContainer:
		return true
	}
	return false
}

func (x ScannerType) String() string { return string(x) }

// ScanJobStatus is the lifecycle status of a scan job.
// pending and running are live states; completed, failed and cancelled are terminal.
type ScanJobStatus string

const (
	ScanJobPending   ScanJobStatus = "pending"
	ScanJobRunning   ScanJobStatus = "running"
	ScanJobCompleted ScanJobStatus = "completed"
	ScanJobFailed    ScanJobStatus = "failed"
	ScanJobCancelled ScanJobStatus = "cancelled"
)

func (x ScanJobStatus) IsTerminal() bool {
	switch x {
	case ScanJobCompleted, ScanJobFailed, ScanJobCancelled:
		return true
	}
	return false
}

func (x ScanJobStatus) String() string { return string(x) }

// ScanStage is a milestone in a single job execution. Stages are emitted in
// order on the success path and never repeat within one job.
type ScanStage string

const (
	StageFetch           ScanStage = "fetch"
	StageScanning        ScanStage = "scanning"
	StageScannerComplete ScanStage = "scanner_complete"
	StageNormalizing     ScanStage = "normalizing"
	StageComplete        ScanStage = "complete"
	StageFailed          ScanStage = "failed"
)

func (x ScanStage) String() string { return string(x) }

// VulnStatus is the state of a unified vulnerability record.
type VulnStatus string

const (
	VulnStatusOpen          VulnStatus = "open"
	VulnStatusFixed         VulnStatus = "fixed"
	VulnStatusAccepted      VulnStatus = "accepted"
	VulnStatusFalsePositive VulnStatus = "false_positive"
)

func (x VulnStatus) String() string { return string(x) }

// Severity of a finding or unified vulnerability.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
	SeverityUnknown  Severity = "unknown"
)

// Rank returns an integer rank for comparison (info=1, critical=5, unknown=0).
func (x Severity) Rank() int {
	switch x {
	case SeverityInfo:
		return 1
	case SeverityLow:
		return 2
	case SeverityMedium:
		return 3
	case SeverityHigh:
		return 4
	case SeverityCritical:
		return 5
	default:
		return 0
	}
}

func (x Severity) String() string { return string(x) }

// Grade is a letter grade derived from the job score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

func (x Grade) String() string { return string(x) }
