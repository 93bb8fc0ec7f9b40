package scanner

import (
	"strings"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// parseSeverity normalizes the severity labels the external tools emit.
// Unrecognized labels map to unknown rather than failing the parse.
func parseSeverity(s string) types.Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return types.SeverityCritical
	case "high", "error":
		return types.SeverityHigh
	case "medium", "moderate", "warning":
		return types.SeverityMedium
	case "low":
		return types.SeverityLow
	case "info", "informational", "negligible":
		return types.SeverityInfo
	default:
		return types.SeverityUnknown
	}
}
