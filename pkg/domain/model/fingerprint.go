package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// Fingerprinter derives the durable identity key of a finding. The
// normalization is scanner-class specific: it must stay stable across commits
// and branches and resist unrelated line-shift noise, without conflating
// distinct issues.
type Fingerprinter interface {
	Fingerprint(f *RawFinding) (types.Fingerprint, error)
}

// FingerprinterSet maps each scanner class to its strategy.
type FingerprinterSet map[types.ScannerType]Fingerprinter

// DefaultFingerprinters returns the built-in strategy per scanner class.
func DefaultFingerprinters() FingerprinterSet {
	return FingerprinterSet{
		types.ScannerStatic:     codeFingerprinter{},
		types.ScannerDependency: dependencyFingerprinter{},
		types.ScannerSecret:     secretFingerprinter{},
		types.ScannerIaC:        iacFingerprinter{},
		types.ScannerContainer:  containerFingerprinter{},
	}
}

// Fingerprint dispatches to the strategy for the finding's scanner class.
func (x FingerprinterSet) Fingerprint(f *RawFinding) (types.Fingerprint, error) {
	fp, ok := x[f.Scanner]
	if !ok {
		return "", goerr.Wrap(types.ErrInvalidOption, "no fingerprinter for scanner type",
			goerr.V("scanner", f.Scanner),
		)
	}
	return fp.Fingerprint(f)
}

func hashFingerprint(parts ...string) types.Fingerprint {
	h := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return types.Fingerprint(hex.EncodeToString(h[:]))
}

// codeFingerprinter keys a static finding on rule and normalized file path
// plus a whitespace-insensitive hash of the flagged snippet. Line numbers are
// deliberately excluded: edits elsewhere in the file shift them without
// changing the issue.
type codeFingerprinter struct{}

func (codeFingerprinter) Fingerprint(f *RawFinding) (types.Fingerprint, error) {
	if f.Code == nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "code detail is missing", goerr.V("rule", f.RuleID))
	}
	parts := []string{"static", string(f.RuleID), normalizePath(f.Code.File)}
	if snippet := collapseSpace(f.Code.Snippet); snippet != "" {
		sum := sha256.Sum256([]byte(snippet))
		parts = append(parts, hex.EncodeToString(sum[:])[:12])
	}
	return hashFingerprint(parts...), nil
}

// dependencyFingerprinter keys on ecosystem, package and advisory. The
// installed version is excluded so a version bump that still carries the
// advisory does not open a second record.
type dependencyFingerprinter struct{}

func (dependencyFingerprinter) Fingerprint(f *RawFinding) (types.Fingerprint, error) {
	if f.Dependency == nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "dependency detail is missing", goerr.V("rule", f.RuleID))
	}
	return hashFingerprint(
		"dependency",
		strings.ToLower(f.Dependency.Ecosystem),
		f.Dependency.Package,
		f.Dependency.AdvisoryID,
	), nil
}

// secretFingerprinter keys on the pattern and file. The line is excluded so a
// moved but unrotated secret keeps its identity.
type secretFingerprinter struct{}

func (secretFingerprinter) Fingerprint(f *RawFinding) (types.Fingerprint, error) {
	if f.Secret == nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "secret detail is missing", goerr.V("rule", f.RuleID))
	}
	return hashFingerprint("secret", f.Secret.PatternID, normalizePath(f.Secret.File)), nil
}

type iacFingerprinter struct{}

func (iacFingerprinter) Fingerprint(f *RawFinding) (types.Fingerprint, error) {
	if f.IaC == nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "iac detail is missing", goerr.V("rule", f.RuleID))
	}
	return hashFingerprint(
		"iac",
		f.IaC.PolicyID,
		f.IaC.ResourceAddress,
		normalizePath(f.IaC.File),
	), nil
}

// containerFingerprinter keys on the untagged image name, package and
// advisory: a rebuilt tag of the same image with the same vulnerable package
// is the same issue.
type containerFingerprinter struct{}

func (containerFingerprinter) Fingerprint(f *RawFinding) (types.Fingerprint, error) {
	if f.Container == nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "container detail is missing", goerr.V("rule", f.RuleID))
	}
	return hashFingerprint(
		"container",
		untagImage(f.Container.Image),
		f.Container.Package,
		f.Container.AdvisoryID,
	), nil
}

// NewInstanceKey derives the per-scan idempotency key of one finding
// occurrence. It is deterministic in (job, fingerprint, location), so retries
// upsert the same row and cache clones can recompute keys under the new job's
// identity from stored instance data alone.
func NewInstanceKey(jobID types.ScanJobID, fp types.Fingerprint, location string) types.InstanceKey {
	h := sha256.Sum256([]byte(strings.Join([]string{jobID.String(), fp.String(), location}, "|")))
	return types.InstanceKey(hex.EncodeToString(h[:]))
}

// collapseSpace strips all whitespace so reformatting a flagged snippet does
// not change its identity.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func untagImage(image string) string {
	if i := strings.LastIndex(image, "@"); i >= 0 {
		image = image[:i]
	}
	// A colon after the last slash separates the tag, not a registry port.
	slash := strings.LastIndex(image, "/")
	if i := strings.LastIndex(image, ":"); i > slash {
		image = image[:i]
	}
	return image
}
