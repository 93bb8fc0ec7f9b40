package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

func TestCodeFingerprintIgnoresLineShift(t *testing.T) {
	fps := model.DefaultFingerprinters()

	base := &model.RawFinding{
		Scanner:  types.ScannerStatic,
		RuleID:   "go.lang.security.audit.xss",
		Severity: types.SeverityHigh,
		Title:    "reflected XSS",
		Code: &model.CodeDetail{
			File:      "handlers/render.go",
			StartLine: 42,
			EndLine:   44,
			Snippet:   "w.Write([]byte(input))",
		},
	}
	shifted := *base
	shifted.Code = &model.CodeDetail{
		File:      "handlers/render.go",
		StartLine: 120,
		EndLine:   122,
		Snippet:   "w.Write( []byte(input) )",
	}

	fpBase := gt.R1(fps.Fingerprint(base)).NoError(t)
	fpShifted := gt.R1(fps.Fingerprint(&shifted)).NoError(t)
	gt.V(t, fpBase).Equal(fpShifted)

	// A different snippet is a different issue.
	other := *base
	other.Code = &model.CodeDetail{
		File:    "handlers/render.go",
		Snippet: "w.Write([]byte(other))",
	}
	fpOther := gt.R1(fps.Fingerprint(&other)).NoError(t)
	gt.V(t, fpOther).NotEqual(fpBase)
}

func TestCodeFingerprintNormalizesPath(t *testing.T) {
	fps := model.DefaultFingerprinters()

	unix := &model.RawFinding{
		Scanner: types.ScannerStatic,
		RuleID:  "rule-1",
		Title:   "t",
		Code:    &model.CodeDetail{File: "./pkg/a.go"},
	}
	windows := &model.RawFinding{
		Scanner: types.ScannerStatic,
		RuleID:  "rule-1",
		Title:   "t",
		Code:    &model.CodeDetail{File: "pkg\\a.go"},
	}

	gt.V(t, gt.R1(fps.Fingerprint(unix)).NoError(t)).
		Equal(gt.R1(fps.Fingerprint(windows)).NoError(t))
}

func TestDependencyFingerprintIgnoresVersion(t *testing.T) {
	fps := model.DefaultFingerprinters()

	v1 := &model.RawFinding{
		Scanner: types.ScannerDependency,
		RuleID:  "GHSA-xxxx",
		Title:   "t",
		Dependency: &model.DependencyDetail{
			Ecosystem:        "npm",
			Package:          "left-pad",
			InstalledVersion: "1.0.0",
			AdvisoryID:       "GHSA-xxxx",
		},
	}
	v2 := *v1
	v2.Dependency = &model.DependencyDetail{
		Ecosystem:        "NPM",
		Package:          "left-pad",
		InstalledVersion: "1.1.0",
		AdvisoryID:       "GHSA-xxxx",
	}

	gt.V(t, gt.R1(fps.Fingerprint(v1)).NoError(t)).
		Equal(gt.R1(fps.Fingerprint(&v2)).NoError(t))
}

func TestSecretFingerprintIgnoresLine(t *testing.T) {
	fps := model.DefaultFingerprinters()

	a := &model.RawFinding{
		Scanner: types.ScannerSecret,
		RuleID:  "aws-access-key",
		Title:   "t",
		Secret:  &model.SecretDetail{PatternID: "aws-access-key", File: "config.yml", Line: 10},
	}
	b := *a
	b.Secret = &model.SecretDetail{PatternID: "aws-access-key", File: "config.yml", Line: 99}

	gt.V(t, gt.R1(fps.Fingerprint(a)).NoError(t)).
		Equal(gt.R1(fps.Fingerprint(&b)).NoError(t))
}

func TestContainerFingerprintIgnoresTag(t *testing.T) {
	fps := model.DefaultFingerprinters()

	tagged := &model.RawFinding{
		Scanner: types.ScannerContainer,
		RuleID:  "CVE-2024-0001",
		Title:   "t",
		Container: &model.ContainerDetail{
			Image:            "registry.example.com:5000/app:v1.2.3",
			Package:          "openssl",
			InstalledVersion: "1.1.1",
			AdvisoryID:       "CVE-2024-0001",
		},
	}
	digest := *tagged
	digest.Container = &model.ContainerDetail{
		Image:            "registry.example.com:5000/app@sha256:abcd",
		Package:          "openssl",
		InstalledVersion: "1.1.1",
		AdvisoryID:       "CVE-2024-0001",
	}

	gt.V(t, gt.R1(fps.Fingerprint(tagged)).NoError(t)).
		Equal(gt.R1(fps.Fingerprint(&digest)).NoError(t))
}

func TestFingerprintMissingDetail(t *testing.T) {
	fps := model.DefaultFingerprinters()

	_, err := fps.Fingerprint(&model.RawFinding{
		Scanner: types.ScannerStatic,
		RuleID:  "rule-1",
		Title:   "t",
	})
	gt.Error(t, err)

	_, err = fps.Fingerprint(&model.RawFinding{
		Scanner: types.ScannerType("unknown"),
		RuleID:  "rule-1",
		Title:   "t",
	})
	gt.Error(t, err)
}

func TestNewInstanceKeyDeterminism(t *testing.T) {
	jobA := types.ScanJobID("job-a")
	jobB := types.ScanJobID("job-b")
	fp := types.Fingerprint("fp-1")

	gt.V(t, model.NewInstanceKey(jobA, fp, "loc")).Equal(model.NewInstanceKey(jobA, fp, "loc"))
	gt.V(t, model.NewInstanceKey(jobA, fp, "loc")).NotEqual(model.NewInstanceKey(jobB, fp, "loc"))
	gt.V(t, model.NewInstanceKey(jobA, fp, "loc")).NotEqual(model.NewInstanceKey(jobA, fp, "loc2"))
}
