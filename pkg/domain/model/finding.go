package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// RawFinding is one scanner output item. It is ephemeral: produced and
// consumed within a single job execution, then retained only as the payload
// snapshot of a VulnerabilityInstance.
type RawFinding struct {
	Scanner     types.ScannerType `json:"scanner"`
	RuleID      types.RuleID      `json:"rule_id"`
	Severity    types.Severity    `json:"severity"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Confidence  float64           `json:"confidence,omitempty"`

	// Exactly one detail field is set, matching Scanner.
	Code       *CodeDetail       `json:"code,omitempty"`
	Dependency *DependencyDetail `json:"dependency,omitempty"`
	Secret     *SecretDetail     `json:"secret,omitempty"`
	IaC        *IaCDetail        `json:"iac,omitempty"`
	Container  *ContainerDetail  `json:"container,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

// CodeDetail locates a static analysis finding in source code.
type CodeDetail struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Snippet   string `json:"snippet,omitempty"`
}

// DependencyDetail identifies a vulnerable package version.
type DependencyDetail struct {
	Ecosystem        string `json:"ecosystem"`
	Package          string `json:"package"`
	InstalledVersion string `json:"installed_version"`
	FixedVersion     string `json:"fixed_version,omitempty"`
	AdvisoryID       string `json:"advisory_id"`
}

// SecretDetail locates a leaked credential.
type SecretDetail struct {
	PatternID string  `json:"pattern_id"`
	File      string  `json:"file"`
	Line      int     `json:"line"`
	Entropy   float64 `json:"entropy,omitempty"`
}

// IaCDetail identifies an infrastructure-as-code policy violation.
type IaCDetail struct {
	File            string `json:"file"`
	ResourceAddress string `json:"resource_address"`
	PolicyID        string `json:"policy_id"`
}

// ContainerDetail identifies a vulnerable package inside a container image.
type ContainerDetail struct {
	Image            string `json:"image"`
	Layer            string `json:"layer,omitempty"`
	Package          string `json:"package"`
	InstalledVersion string `json:"installed_version"`
	AdvisoryID       string `json:"advisory_id"`
}

// Validate checks the finding envelope and that the detail payload matches
// the scanner class.
func (x *RawFinding) Validate() error {
	if !x.Scanner.IsValid() {
		return goerr.Wrap(types.ErrValidationFailed, "unknown scanner type", goerr.V("scanner", x.Scanner))
	}
	if x.RuleID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "rule ID is empty", goerr.V("scanner", x.Scanner))
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "title is empty", goerr.V("rule", x.RuleID))
	}

	var want, got int
	for _, set := range []bool{
		x.Code != nil, x.Dependency != nil, x.Secret != nil, x.IaC != nil, x.Container != nil,
	} {
		if set {
			got++
		}
	}
	want = 1

	var matched bool
	switch x.Scanner {
	case types.ScannerStatic:
		matched = x.Code != nil
	case types.ScannerDependency:
		matched = x.Dependency != nil
	case types.ScannerSecret:
		matched = x.Secret != nil
	case types.ScannerIaC:
		matched = x.IaC != nil
	case types.ScannerContainer:
		matched = x.Container != nil
	}

	if got != want || !matched {
		return goerr.Wrap(types.ErrValidationFailed, "finding detail does not match scanner type",
			goerr.V("scanner", x.Scanner),
			goerr.V("rule", x.RuleID),
		)
	}

	return nil
}

// Location renders a human-readable location snapshot. It is stored on the
// instance record and reused to recompute instance keys during cache clones.
func (x *RawFinding) Location() string {
	switch {
	case x.Code != nil:
		return fmt.Sprintf("%s:%d-%d", normalizePath(x.Code.File), x.Code.StartLine, x.Code.EndLine)
	case x.Dependency != nil:
		return fmt.Sprintf("%s/%s@%s", x.Dependency.Ecosystem, x.Dependency.Package, x.Dependency.InstalledVersion)
	case x.Secret != nil:
		return fmt.Sprintf("%s:%d", normalizePath(x.Secret.File), x.Secret.Line)
	case x.IaC != nil:
		return fmt.Sprintf("%s:%s", normalizePath(x.IaC.File), x.IaC.ResourceAddress)
	case x.Container != nil:
		return fmt.Sprintf("%s:%s@%s", x.Container.Image, x.Container.Package, x.Container.InstalledVersion)
	}
	return ""
}

// normalizePath canonicalizes a working-tree relative path so fingerprints do
// not depend on the checkout location or OS path separator.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	return strings.TrimLeft(p, "/")
}
