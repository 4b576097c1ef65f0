package xfail

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(fakeTimeoutError{}))
	assert.False(t, IsTimeout(errors.New("boom")))
}

func TestIsConnectionRefused(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	assert.True(t, IsConnectionRefused(opErr))
	assert.False(t, IsConnectionRefused(errors.New("boom")))
}

func TestIsConnectionReset(t *testing.T) {
	assert.True(t, IsConnectionReset(errors.New("read: connection reset by peer")))
	assert.False(t, IsConnectionReset(errors.New("boom")))
}

func TestIsConnectionAborted(t *testing.T) {
	assert.True(t, IsConnectionAborted(errors.New("connection aborted")))
	assert.True(t, IsConnectionAborted(errors.New("software caused connection abort")))
	assert.False(t, IsConnectionAborted(errors.New("boom")))
}

func TestIsDNSFailure(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "example.invalid"}
	assert.True(t, IsDNSFailure(dnsErr))
	assert.False(t, IsDNSFailure(errors.New("boom")))
}

func TestDefaultClassifier_MatchesKnownTransientCauses(t *testing.T) {
	c := DefaultClassifier()
	assert.True(t, c.Matches(fakeTimeoutError{}))
	assert.True(t, c.Matches(&net.DNSError{Err: "no such host", Name: "x"}))
	assert.False(t, c.Matches(errors.New("permanent failure")))
}

func TestExceptionClassifier_With(t *testing.T) {
	sentinel := errors.New("custom marker")
	base := Create(IsTimeout)
	extended := base.With(func(err error) bool { return errors.Is(err, sentinel) })

	assert.False(t, base.Matches(sentinel))
	assert.True(t, extended.Matches(sentinel))
	// With returns a new classifier; the original is untouched.
	assert.False(t, base.Matches(sentinel))
}

func TestExceptionClassifier_EmptyMatchesNothing(t *testing.T) {
	var c ExceptionClassifier
	assert.False(t, c.Matches(errors.New("anything")))
}
