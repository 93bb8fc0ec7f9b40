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

// Gitleaks wraps the gitleaks CLI as the secret detection adapter. The
// working tree is an extracted archive without git history, so detection runs
// in no-git mode.
type Gitleaks struct {
	binary string
}

var _ interfaces.Scanner = (*Gitleaks)(nil)

func NewGitleaks() *Gitleaks {
	return &Gitleaks{binary: "gitleaks"}
}

func (x *Gitleaks) Type() types.ScannerType { return types.ScannerSecret }
func (x *Gitleaks) Name() string            { return "gitleaks" }

func (x *Gitleaks) Run(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
	if _, err := exec.LookPath(x.binary); err != nil {
		return &interfaces.ScanOutput{
			Errors: []string{fmt.Sprintf("%s executable not found in PATH", x.binary)},
		}, nil
	}

	reportFile, err := os.CreateTemp("", "sentinel_gitleaks.*.json")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temp file for gitleaks report")
	}
	defer safe.Remove(reportFile.Name())
	if err := reportFile.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close temp file for gitleaks report")
	}

	args := []string{
		"detect",
		"--source", ".",
		"--no-git",
		"--report-format", "json",
		"--report-path", reportFile.Name(),
		"--exit-code", "0",
	}

	res, runErr := runTool(ctx, x.binary, args, dir)
	out := &interfaces.ScanOutput{Duration: res.Duration}

	if ctx.Err() != nil {
		return nil, goerr.Wrap(ctx.Err(), "gitleaks run cancelled")
	}
	if res.ExitCode != 0 {
		out.Errors = append(out.Errors, fmt.Sprintf("gitleaks failed (exit %d): %v: %s", res.ExitCode, runErr, res.Stderr))
		return out, nil
	}

	raw, err := os.ReadFile(reportFile.Name())
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("gitleaks report read error: %v", err))
		return out, nil
	}

	findings, err := parseGitleaksOutput(raw)
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("gitleaks output parse error: %v", err))
		return out, nil
	}

	out.Findings = findings
	return out, nil
}

type gitleaksFinding struct {
	RuleID      string  `json:"RuleID"`
	Description string  `json:"Description"`
	File        string  `json:"File"`
	StartLine   int     `json:"StartLine"`
	Entropy     float64 `json:"Entropy"`
}

func parseGitleaksOutput(raw []byte) ([]*model.RawFinding, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var leaks []gitleaksFinding
	if err := json.Unmarshal(raw, &leaks); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal gitleaks json")
	}

	findings := make([]*model.RawFinding, 0, len(leaks))
	for _, leak := range leaks {
		title := leak.Description
		if title == "" {
			title = leak.RuleID
		}
		findings = append(findings, &model.RawFinding{
			Scanner:  types.ScannerSecret,
			RuleID:   types.RuleID(leak.RuleID),
			Severity: types.SeverityHigh,
			Title:    title,
			Secret: &model.SecretDetail{
				PatternID: leak.RuleID,
				File:      leak.File,
				Line:      leak.StartLine,
				Entropy:   leak.Entropy,
			},
		})
	}

	return findings, nil
}
