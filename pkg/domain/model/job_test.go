package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

func TestScannerSetFingerprintOrderIndependent(t *testing.T) {
	a := model.ScannerSetFingerprint([]types.ScannerType{types.ScannerStatic, types.ScannerSecret})
	b := model.ScannerSetFingerprint([]types.ScannerType{types.ScannerSecret, types.ScannerStatic})
	gt.V(t, a).Equal(b)

	// Duplicates collapse.
	c := model.ScannerSetFingerprint([]types.ScannerType{types.ScannerSecret, types.ScannerSecret, types.ScannerStatic})
	gt.V(t, c).Equal(a)

	d := model.ScannerSetFingerprint([]types.ScannerType{types.ScannerStatic})
	gt.V(t, d).NotEqual(a)
}

func TestSyntheticCommit(t *testing.T) {
	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	first := model.SyntheticCommit("org/repo", "main", day)
	sameDay := model.SyntheticCommit("org/repo", "main", day.Add(10*time.Hour))
	gt.V(t, first).Equal(sameDay)
	gt.True(t, model.IsSyntheticCommit(first))

	nextDay := model.SyntheticCommit("org/repo", "main", day.Add(24*time.Hour))
	gt.V(t, nextDay).NotEqual(first)

	otherBranch := model.SyntheticCommit("org/repo", "develop", day)
	gt.V(t, otherBranch).NotEqual(first)

	gt.False(t, model.IsSyntheticCommit("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
}

func TestCacheKey(t *testing.T) {
	job := &model.ScanJob{
		RepoID:    "org/repo",
		CommitSHA: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Scanners:  []types.ScannerType{types.ScannerStatic, types.ScannerSecret},
	}
	other := &model.ScanJob{
		RepoID:    "org/repo",
		CommitSHA: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Scanners:  []types.ScannerType{types.ScannerSecret, types.ScannerStatic},
	}
	gt.V(t, job.CacheKey()).Equal(other.CacheKey())

	reduced := &model.ScanJob{
		RepoID:    "org/repo",
		CommitSHA: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Scanners:  []types.ScannerType{types.ScannerStatic},
	}
	gt.V(t, reduced.CacheKey()).NotEqual(job.CacheKey())
}

func TestScanJobValidate(t *testing.T) {
	valid := &model.ScanJob{
		ID:          types.NewScanJobID(),
		WorkspaceID: "ws-1",
		RepoID:      "org/repo",
		Branch:      "main",
		Scanners:    []types.ScannerType{types.ScannerStatic},
	}
	gt.NoError(t, valid.Validate())

	noScanners := *valid
	noScanners.Scanners = nil
	gt.Error(t, noScanners.Validate())

	badScanner := *valid
	badScanner.Scanners = []types.ScannerType{"bogus"}
	gt.Error(t, badScanner.Validate())
}

func TestScoreAndGrade(t *testing.T) {
	clean := model.Score(model.SeverityCounts{}, 0)
	gt.V(t, clean).Equal(100)
	gt.V(t, model.GradeOf(clean)).Equal(types.GradeA)

	// One critical cancels the clean bonus and costs 25.
	oneCritical := model.Score(model.SeverityCounts{Critical: 1}, 0)
	gt.V(t, oneCritical).Equal(75)
	gt.V(t, model.GradeOf(oneCritical)).Equal(types.GradeC)

	// Low-only findings keep the clean bonus.
	lows := model.Score(model.SeverityCounts{Low: 3}, 0)
	gt.V(t, lows).Equal(100)

	// The score floors at zero.
	floor := model.Score(model.SeverityCounts{Critical: 10}, 10)
	gt.V(t, floor).Equal(0)
	gt.V(t, model.GradeOf(floor)).Equal(types.GradeF)

	withSecrets := model.Score(model.SeverityCounts{High: 1}, 2)
	gt.V(t, withSecrets).Equal(80)
	gt.V(t, model.GradeOf(withSecrets)).Equal(types.GradeB)
}

func TestStagePercentOrder(t *testing.T) {
	last := -1
	for _, stage := range model.StageOrder {
		pct := model.StagePercent(stage)
		gt.True(t, pct > last)
		last = pct
	}
	gt.V(t, model.StagePercent(types.StageComplete)).Equal(100)
	gt.V(t, model.StagePercent(types.ScanStage("bogus"))).Equal(0)
}

func TestMergeDetection(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	stored := &model.UnifiedVulnerability{
		Status:         types.VulnStatusFixed,
		Severity:       types.SeverityMedium,
		Title:          "old title",
		LastSeenAt:     base,
		LastFullScanAt: base,
		LastFullScanID: "job-1",
	}
	incoming := &model.UnifiedVulnerability{
		Severity:       types.SeverityHigh,
		Title:          "new title",
		LastSeenAt:     base.Add(time.Hour),
		LastFullScanAt: base.Add(time.Hour),
		LastFullScanID: "job-2",
	}

	model.MergeDetection(stored, incoming, base.Add(time.Hour))
	gt.V(t, stored.Status).Equal(types.VulnStatusOpen)
	gt.V(t, stored.Severity).Equal(types.SeverityHigh)
	gt.V(t, stored.Title).Equal("new title")
	gt.V(t, stored.LastFullScanID).Equal(types.ScanJobID("job-2"))
	gt.True(t, stored.LastSeenAt.Equal(base.Add(time.Hour)))

	// Accepted verdicts are sticky.
	accepted := &model.UnifiedVulnerability{
		Status:     types.VulnStatusAccepted,
		LastSeenAt: base,
	}
	model.MergeDetection(accepted, incoming, base.Add(time.Hour))
	gt.V(t, accepted.Status).Equal(types.VulnStatusAccepted)

	// A cache clone carries no full-scan markers: they must not regress.
	fullScanned := &model.UnifiedVulnerability{
		Status:         types.VulnStatusOpen,
		LastSeenAt:     base,
		LastFullScanAt: base,
		LastFullScanID: "job-1",
	}
	clone := &model.UnifiedVulnerability{LastSeenAt: base.Add(time.Minute)}
	model.MergeDetection(fullScanned, clone, base.Add(time.Minute))
	gt.V(t, fullScanned.LastFullScanID).Equal(types.ScanJobID("job-1"))
	gt.True(t, fullScanned.LastFullScanAt.Equal(base))
}
