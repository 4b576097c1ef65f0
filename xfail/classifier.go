// Package xfail provides the exception classification layer of riptide:
// an OR-composed predicate list over transport errors, and a Plugin that
// wraps classified-transient failures in TemporaryError so callers can
// decide whether to retry. It mirrors the real Riptide library's split
// between riptide-core and riptide-exceptions as two separate packages,
// so a caller who doesn't want classification doesn't pay for it.
package xfail

import (
	"errors"
	"net"
	"strings"
)

// Predicate reports whether err should be classified as a temporary,
// retryable failure.
type Predicate func(err error) bool

// ExceptionClassifier is a whitelist of predicates, OR-combined: a
// successful match by any predicate classifies the error as temporary.
// The shape is grounded in cloudfoundry-gorouter's ClassifierGroup.Classify
// and the teacher's own And/Or Discriminator composition
// (discriminator.go), generalised from View predicates to error
// predicates.
type ExceptionClassifier struct {
	predicates []Predicate
}

// Create builds an ExceptionClassifier from predicates, combined by
// logical OR. The first match wins; order does not matter.
func Create(predicates ...Predicate) ExceptionClassifier {
	return ExceptionClassifier{predicates: predicates}
}

// Matches reports whether err is classified as temporary by any predicate
// in the list.
func (c ExceptionClassifier) Matches(err error) bool {
	for _, p := range c.predicates {
		if p(err) {
			return true
		}
	}
	return false
}

// With returns a new ExceptionClassifier extending c with additional
// predicates, an additive builder per spec.md §4.7.
func (c ExceptionClassifier) With(predicates ...Predicate) ExceptionClassifier {
	combined := make([]Predicate, 0, len(c.predicates)+len(predicates))
	combined = append(combined, c.predicates...)
	combined = append(combined, predicates...)
	return ExceptionClassifier{predicates: combined}
}

// DefaultClassifier recognises socket read/connect timeouts, connection
// refused/reset/aborted, and DNS resolution failure. It has no predicate
// for other transient I/O conditions; errors outside those five checks
// are not classified as temporary. The individual
// predicates are grounded in gogama-httpx/transient.Categorize
// (Timeout(), syscall.ECONNRESET/ECONNREFUSED) and in stdlib *net.DNSError
// for DNS failures.
func DefaultClassifier() ExceptionClassifier {
	return Create(
		IsTimeout,
		IsConnectionRefused,
		IsConnectionReset,
		IsConnectionAborted,
		IsDNSFailure,
	)
}

// IsTimeout matches any error (or wrapped cause) that reports Timeout()
// true — the same check gogama-httpx/transient.Categorize performs for
// its Timeout category.
func IsTimeout(err error) bool {
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) {
		return timeoutErr.Timeout()
	}
	return false
}

// IsConnectionRefused matches syscall.ECONNREFUSED, surfaced as
// transient because the usual cause is a remote service mid-restart.
func IsConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial" && isErrno(opErr.Err, "connection refused")
	}
	return isErrno(err, "connection refused")
}

// IsConnectionReset matches a reset TCP connection (RST), transient
// because it commonly indicates a remote restart or load balancer churn.
func IsConnectionReset(err error) bool {
	return isErrno(err, "connection reset")
}

// IsConnectionAborted matches a locally- or remotely-aborted connection.
func IsConnectionAborted(err error) bool {
	return isErrno(err, "connection aborted") || isErrno(err, "software caused connection abort")
}

// IsDNSFailure matches DNS resolution failures via stdlib *net.DNSError.
func IsDNSFailure(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isErrno reports whether err's message contains the given substring,
// the portable way to detect a specific syscall.Errno across platforms
// without depending on platform-specific errno constants.
func isErrno(err error, substr string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), substr)
}
