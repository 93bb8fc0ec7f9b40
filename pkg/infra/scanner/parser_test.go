package scanner_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra/scanner"
)

func TestParseSemgrepOutput(t *testing.T) {
	raw := []byte(`{
		"results": [
			{
				"check_id": "go.lang.security.audit.crypto.use_of_weak_crypto",
				"path": "pkg/auth/token.go",
				"start": {"line": 42, "col": 2},
				"end": {"line": 44, "col": 10},
				"extra": {
					"message": "Use of weak cryptographic primitive MD5",
					"severity": "ERROR",
					"lines": "h := md5.New()"
				}
			},
			{
				"check_id": "go.lang.correctness.unchecked-error",
				"path": "main.go",
				"start": {"line": 10},
				"end": {"line": 10},
				"extra": {"severity": "WARNING"}
			}
		],
		"errors": []
	}`)

	findings := gt.R1(scanner.ParseSemgrepOutput(raw)).NoError(t)
	gt.A(t, findings).Length(2)

	first := findings[0]
	gt.V(t, first.Scanner).Equal(types.ScannerStatic)
	gt.V(t, first.RuleID).Equal("go.lang.security.audit.crypto.use_of_weak_crypto")
	gt.V(t, first.Severity).Equal(types.SeverityHigh)
	gt.V(t, first.Title).Equal("Use of weak cryptographic primitive MD5")
	gt.NoError(t, first.Validate())
	gt.V(t, first.Code.File).Equal("pkg/auth/token.go")
	gt.V(t, first.Code.StartLine).Equal(42)
	gt.V(t, first.Code.EndLine).Equal(44)

	// Title falls back to the rule ID when the message is empty.
	second := findings[1]
	gt.V(t, second.Title).Equal("go.lang.correctness.unchecked-error")
	gt.V(t, second.Severity).Equal(types.SeverityMedium)
	gt.NoError(t, second.Validate())
}

func TestParseSemgrepOutputInvalid(t *testing.T) {
	_, err := scanner.ParseSemgrepOutput([]byte("not json"))
	gt.Error(t, err)
}

func TestParseGitleaksOutput(t *testing.T) {
	raw := []byte(`[
		{
			"RuleID": "aws-access-key-id",
			"Description": "AWS Access Key ID",
			"File": "config/deploy.env",
			"StartLine": 3,
			"EndLine": 3,
			"Entropy": 3.52
		}
	]`)

	findings := gt.R1(scanner.ParseGitleaksOutput(raw)).NoError(t)
	gt.A(t, findings).Length(1)

	leak := findings[0]
	gt.V(t, leak.Scanner).Equal(types.ScannerSecret)
	gt.V(t, leak.RuleID).Equal("aws-access-key-id")
	gt.V(t, leak.Severity).Equal(types.SeverityHigh)
	gt.NoError(t, leak.Validate())
	gt.V(t, leak.Secret.PatternID).Equal("aws-access-key-id")
	gt.V(t, leak.Secret.File).Equal("config/deploy.env")
	gt.V(t, leak.Secret.Line).Equal(3)
}

func TestParseGitleaksOutputEmpty(t *testing.T) {
	findings := gt.R1(scanner.ParseGitleaksOutput(nil)).NoError(t)
	gt.A(t, findings).Length(0)
}

func TestParseSeverity(t *testing.T) {
	cases := map[string]types.Severity{
		"CRITICAL": types.SeverityCritical,
		"High":     types.SeverityHigh,
		"ERROR":    types.SeverityHigh,
		"MODERATE": types.SeverityMedium,
		"WARNING":  types.SeverityMedium,
		"low":      types.SeverityLow,
		"INFO":     types.SeverityInfo,
		"bogus":    types.SeverityUnknown,
		"":         types.SeverityUnknown,
	}

	for label, want := range cases {
		gt.V(t, scanner.ParseSeverity(label)).Equal(want)
	}
}
