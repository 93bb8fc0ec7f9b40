package types

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// Fetch failures from the source fetcher. These are not retryable and each
	// one maps to a distinct user-facing failure reason.
	ErrAuthExpired     = goerr.New("source auth expired")
	ErrBranchNotFound  = goerr.New("branch not found")
	ErrEmptyRepository = goerr.New("repository has no scannable files")

	// ErrTransient tags infrastructure failures that are safe to retry with
	// backoff. Anything not tagged transient is treated as permanent.
	ErrTransient = goerr.New("transient infrastructure error")

	// ErrUnificationFailed marks pipeline-fatal failures in the dedup engine.
	// Jobs failing with this tag are never auto-retried: the upsert side
	// effects are not idempotent across partial replays.
	ErrUnificationFailed = goerr.New("vulnerability unification failed")

	// ErrVoidCacheHit indicates a cache hit that cloned zero usable rows.
	ErrVoidCacheHit = goerr.New("cache hit cloned no instances")

	// ErrJobTimeout is the watchdog-detected wall-clock timeout.
	ErrJobTimeout = goerr.New("scan job exceeded wall-clock timeout")

	// ErrJobStalled is assigned by the stall detector when a lease expires
	// without completion.
	ErrJobStalled = goerr.New("scan job lease expired")

	ErrInvalidGitHubData = goerr.New("invalid github data")
)

// IsTransient reports whether err is tagged as a retryable infra failure.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient) || goerr.HasTag(err, TagTransient)
}

var (
	// TagTransient marks retryable infra errors.
	TagTransient = goerr.NewTag("transient")
	// TagFatal marks pipeline-fatal errors that must fail the job without retry.
	TagFatal = goerr.NewTag("fatal")
)
