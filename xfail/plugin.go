package xfail

import (
	"context"
	"errors"

	"github.com/zalando-go/riptide"
)

// TemporaryExceptionPlugin attaches exception classification to a Rest's
// plugin chain (via riptide.WithPlugins), re-labelling matched transport
// failures as *TemporaryError so callers know a retry has some prospect
// of success. Algorithm, per spec.md §4.7:
//
//  1. unwrap one level if the failure is a *riptide.TransportError, so
//     the classifier inspects the underlying cause, not riptide's own
//     completion wrapper;
//  2. evaluate classifier; on a match, re-wrap the cause as
//     *TemporaryError;
//  3. otherwise propagate the original failure unchanged.
//
// The plugin is idempotent: applying it twice (or stacking it after
// another plugin that already produced a *TemporaryError) leaves the
// wrapping depth at exactly one, since an already-*TemporaryError failure
// passes through untouched.
func TemporaryExceptionPlugin(classifier ExceptionClassifier) riptide.Plugin {
	return func(args riptide.RequestArguments, next riptide.ResponseSupplier) riptide.ResponseSupplier {
		return func(ctx context.Context) *riptide.Future[*riptide.Response] {
			return riptide.MapError(next(ctx), func(err error) error {
				return classify(classifier, err)
			})
		}
	}
}

func classify(classifier ExceptionClassifier, err error) error {
	if IsTemporary(err) {
		return err
	}

	cause := err
	var transportErr *riptide.TransportError
	if errors.As(err, &transportErr) {
		cause = transportErr.Cause
	}

	if classifier.Matches(cause) {
		return &TemporaryError{Cause: cause}
	}
	return err
}
