package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/safe"
)

// trivyReport is the subset of the Trivy JSON report the adapters read. The
// same envelope serves filesystem, misconfiguration and image scans.
type trivyReport struct {
	ArtifactName string        `json:"ArtifactName"`
	Results      []trivyResult `json:"Results"`
}

type trivyResult struct {
	Target            string               `json:"Target"`
	Class             string               `json:"Class"`
	Type              string               `json:"Type"`
	Vulnerabilities   []trivyVulnerability `json:"Vulnerabilities"`
	Misconfigurations []trivyMisconfig     `json:"Misconfigurations"`
}

type trivyVulnerability struct {
	VulnerabilityID  string `json:"VulnerabilityID"`
	PkgName          string `json:"PkgName"`
	InstalledVersion string `json:"InstalledVersion"`
	FixedVersion     string `json:"FixedVersion"`
	Title            string `json:"Title"`
	Description      string `json:"Description"`
	Severity         string `json:"Severity"`
	Layer            struct {
		DiffID string `json:"DiffID"`
	} `json:"Layer"`
}

type trivyMisconfig struct {
	ID            string `json:"ID"`
	Title         string `json:"Title"`
	Description   string `json:"Description"`
	Severity      string `json:"Severity"`
	CauseMetadata struct {
		Resource string `json:"Resource"`
	} `json:"CauseMetadata"`
}

// runTrivy executes trivy with the given mode arguments and decodes the
// report written to a temp file.
func runTrivy(ctx context.Context, binary string, args []string, dir string) (*trivyReport, *interfaces.ScanOutput, error) {
	out := &interfaces.ScanOutput{}

	if _, err := exec.LookPath(binary); err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("%s executable not found in PATH", binary))
		return nil, out, nil
	}

	reportFile, err := os.CreateTemp("", "sentinel_trivy.*.json")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create temp file for trivy report")
	}
	defer safe.Remove(reportFile.Name())
	if err := reportFile.Close(); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to close temp file for trivy report")
	}

	args = append(args,
		"--exit-code", "0",
		"--no-progress",
		"--format", "json",
		"--output", reportFile.Name(),
	)

	res, runErr := runTool(ctx, binary, args, dir)
	out.Duration = res.Duration

	if ctx.Err() != nil {
		return nil, nil, goerr.Wrap(ctx.Err(), "trivy run cancelled")
	}
	if res.ExitCode != 0 {
		out.Errors = append(out.Errors, fmt.Sprintf("trivy failed (exit %d): %v: %s", res.ExitCode, runErr, res.Stderr))
		return nil, out, nil
	}

	raw, err := os.ReadFile(reportFile.Name())
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("trivy report read error: %v", err))
		return nil, out, nil
	}

	var report trivyReport
	if err := json.Unmarshal(raw, &report); err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("trivy output parse error: %v", err))
		return nil, out, nil
	}

	return &report, out, nil
}

// TrivyFS wraps "trivy fs" as the dependency vulnerability adapter.
type TrivyFS struct {
	binary string
}

var _ interfaces.Scanner = (*TrivyFS)(nil)

func NewTrivyFS() *TrivyFS {
	return &TrivyFS{binary: "trivy"}
}

func (x *TrivyFS) Type() types.ScannerType { return types.ScannerDependency }
func (x *TrivyFS) Name() string            { return "trivy-fs" }

func (x *TrivyFS) Run(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
	report, out, err := runTrivy(ctx, x.binary, []string{
		"fs",
		"--scanners", "vuln",
		"--list-all-pkgs",
		".",
	}, dir)
	if err != nil || report == nil {
		return out, err
	}

	for _, result := range report.Results {
		for _, v := range result.Vulnerabilities {
			out.Findings = append(out.Findings, dependencyFinding(result.Type, &v))
		}
	}

	return out, nil
}

func dependencyFinding(ecosystem string, v *trivyVulnerability) *model.RawFinding {
	title := v.Title
	if title == "" {
		title = v.VulnerabilityID
	}
	return &model.RawFinding{
		Scanner:     types.ScannerDependency,
		RuleID:      types.RuleID(v.VulnerabilityID),
		Severity:    parseSeverity(v.Severity),
		Title:       title,
		Description: v.Description,
		Dependency: &model.DependencyDetail{
			Ecosystem:        ecosystem,
			Package:          v.PkgName,
			InstalledVersion: v.InstalledVersion,
			FixedVersion:     v.FixedVersion,
			AdvisoryID:       v.VulnerabilityID,
		},
	}
}

// TrivyConfig wraps "trivy config" as the IaC misconfiguration adapter.
type TrivyConfig struct {
	binary string
}

var _ interfaces.Scanner = (*TrivyConfig)(nil)

func NewTrivyConfig() *TrivyConfig {
	return &TrivyConfig{binary: "trivy"}
}

func (x *TrivyConfig) Type() types.ScannerType { return types.ScannerIaC }
func (x *TrivyConfig) Name() string            { return "trivy-config" }

func (x *TrivyConfig) Run(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
	report, out, err := runTrivy(ctx, x.binary, []string{
		"config",
		".",
	}, dir)
	if err != nil || report == nil {
		return out, err
	}

	for _, result := range report.Results {
		for _, m := range result.Misconfigurations {
			title := m.Title
			if title == "" {
				title = m.ID
			}
			out.Findings = append(out.Findings, &model.RawFinding{
				Scanner:     types.ScannerIaC,
				RuleID:      types.RuleID(m.ID),
				Severity:    parseSeverity(m.Severity),
				Title:       title,
				Description: m.Description,
				IaC: &model.IaCDetail{
					File:            result.Target,
					ResourceAddress: m.CauseMetadata.Resource,
					PolicyID:        m.ID,
				},
			})
		}
	}

	return out, nil
}

// TrivyImage wraps "trivy image" as the container image adapter. The image
// reference is fixed at construction; one adapter instance scans one image.
type TrivyImage struct {
	binary   string
	imageRef string
}

var _ interfaces.Scanner = (*TrivyImage)(nil)

func NewTrivyImage(imageRef string) *TrivyImage {
	return &TrivyImage{binary: "trivy", imageRef: imageRef}
}

func (x *TrivyImage) Type() types.ScannerType { return types.ScannerContainer }
func (x *TrivyImage) Name() string            { return "trivy-image" }

func (x *TrivyImage) Run(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
	report, out, err := runTrivy(ctx, x.binary, []string{
		"image",
		x.imageRef,
	}, dir)
	if err != nil || report == nil {
		return out, err
	}

	image := report.ArtifactName
	if image == "" {
		image = x.imageRef
	}

	for _, result := range report.Results {
		for _, v := range result.Vulnerabilities {
			title := v.Title
			if title == "" {
				title = v.VulnerabilityID
			}
			out.Findings = append(out.Findings, &model.RawFinding{
				Scanner:     types.ScannerContainer,
				RuleID:      types.RuleID(v.VulnerabilityID),
				Severity:    parseSeverity(v.Severity),
				Title:       title,
				Description: v.Description,
				Container: &model.ContainerDetail{
					Image:            image,
					Layer:            v.Layer.DiffID,
					Package:          v.PkgName,
					InstalledVersion: v.InstalledVersion,
					AdvisoryID:       v.VulnerabilityID,
				},
			})
		}
	}

	return out, nil
}
