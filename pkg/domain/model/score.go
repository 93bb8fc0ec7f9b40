package model

import "github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"

// SeverityCounts holds de-duplicated open vulnerability counts per severity.
// These are counts of distinct unified vulnerabilities reachable through a
// job's instances, never raw finding counts.
type SeverityCounts struct {
	Critical int `json:"critical" firestore:"Critical"`
	High     int `json:"high" firestore:"High"`
	Medium   int `json:"medium" firestore:"Medium"`
	Low      int `json:"low" firestore:"Low"`
	Info     int `json:"info" firestore:"Info"`
}

func (x SeverityCounts) Total() int {
	return x.Critical + x.High + x.Medium + x.Low + x.Info
}

// Add increments the bucket for the given severity. Unknown severities count
// as info.
func (x *SeverityCounts) Add(sev types.Severity) {
	switch sev {
	case types.SeverityCritical:
		x.Critical++
	case types.SeverityHigh:
		x.High++
	case types.SeverityMedium:
		x.Medium++
	case types.SeverityLow:
		x.Low++
	default:
		x.Info++
	}
}

// Score weights. Critical issues and leaked secrets dominate the penalty.
const (
	penaltyCritical = 25
	penaltyHigh     = 10
	penaltyMedium   = 4
	penaltyLow      = 1
	penaltySecret   = 5

	bonusClean = 5
)

// Score computes the 0-100 repository score: 100 minus a weighted penalty
// over de-duplicated open counts, with an extra penalty per secret-type
// vulnerability and a bounded bonus when no critical or high issues remain.
func Score(counts SeverityCounts, secrets int) int {
	score := 100
	score -= counts.Critical * penaltyCritical
	score -= counts.High * penaltyHigh
	score -= counts.Medium * penaltyMedium
	score -= counts.Low * penaltyLow
	score -= secrets * penaltySecret

	if counts.Critical == 0 && counts.High == 0 {
		score += bonusClean
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// GradeOf maps a score to a letter grade with fixed thresholds.
func GradeOf(score int) types.Grade {
	switch {
	case score >= 90:
		return types.GradeA
	case score >= 80:
		return types.GradeB
	case score >= 70:
		return types.GradeC
	case score >= 60:
		return types.GradeD
	default:
		return types.GradeF
	}
}
