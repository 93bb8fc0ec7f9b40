package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// Semgrep wraps the semgrep CLI as the static analysis adapter.
type Semgrep struct {
	binary string
	config string
}

var _ interfaces.Scanner = (*Semgrep)(nil)

func NewSemgrep() *Semgrep {
	return &Semgrep{
		binary: "semgrep",
		config: "auto",
	}
}

func (x *Semgrep) Type() types.ScannerType { return types.ScannerStatic }
func (x *Semgrep) Name() string            { return "semgrep" }

func (x *Semgrep) Run(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
	if _, err := exec.LookPath(x.binary); err != nil {
		return &interfaces.ScanOutput{
			Errors: []string{fmt.Sprintf("%s executable not found in PATH", x.binary)},
		}, nil
	}

	args := []string{
		"scan",
		"--config", x.config,
		"--json",
		"--quiet",
		"--metrics", "off",
		".",
	}

	res, runErr := runTool(ctx, x.binary, args, dir)
	out := &interfaces.ScanOutput{Duration: res.Duration}

	if ctx.Err() != nil {
		return nil, goerr.Wrap(ctx.Err(), "semgrep run cancelled")
	}
	// semgrep exits 1 when findings exist; only treat hard failures as degraded.
	if res.ExitCode >= 2 || res.ExitCode == exitCodeTimeout || res.ExitCode == exitCodeNotFound {
		out.Errors = append(out.Errors, fmt.Sprintf("semgrep failed (exit %d): %v: %s", res.ExitCode, runErr, res.Stderr))
		return out, nil
	}

	findings, err := parseSemgrepOutput(res.Stdout)
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("semgrep output parse error: %v", err))
		return out, nil
	}

	out.Findings = findings
	return out, nil
}

type semgrepReport struct {
	Results []semgrepResult `json:"results"`
	Errors  []semgrepError  `json:"errors"`
}

type semgrepResult struct {
	CheckID string          `json:"check_id"`
	Path    string          `json:"path"`
	Start   semgrepPosition `json:"start"`
	End     semgrepPosition `json:"end"`
	Extra   semgrepExtra    `json:"extra"`
}

type semgrepPosition struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

type semgrepExtra struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Lines    string `json:"lines"`
}

type semgrepError struct {
	Message string `json:"message"`
}

func parseSemgrepOutput(raw []byte) ([]*model.RawFinding, error) {
	var report semgrepReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal semgrep json")
	}

	findings := make([]*model.RawFinding, 0, len(report.Results))
	for _, r := range report.Results {
		title := r.Extra.Message
		if title == "" {
			title = r.CheckID
		}
		findings = append(findings, &model.RawFinding{
			Scanner:  types.ScannerStatic,
			RuleID:   types.RuleID(r.CheckID),
			Severity: parseSeverity(r.Extra.Severity),
			Title:    title,
			Code: &model.CodeDetail{
				File:      r.Path,
				StartLine: r.Start.Line,
				EndLine:   r.End.Line,
				Snippet:   r.Extra.Lines,
			},
		})
	}

	return findings, nil
}
