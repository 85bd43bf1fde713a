package validation

import (
	"errors"
	"strings"
)

// Sentinel errors for invalid arguments.
var (
	ErrEmptyFailureReasonSupplied = errors.New("empty failure reason supplied")
	ErrNilErrorFactorySupplied    = errors.New("nil error factory supplied")
)

// Result is the immutable outcome of a validation: either a success without a
// reason or a failure carrying one. The zero value is a success. A reason is
// present exactly when the result is a failure.
type Result struct {
	failed bool
	reason string
}

// Success returns the successful result.
func Success() Result {
	return Result{}
}

// Failure returns a failed result carrying the reason verbatim. The reason
// must contain at least one non-whitespace character.
func Failure(reason string) (Result, error) {
	if strings.TrimSpace(reason) == "" {
		return Result{}, ErrEmptyFailureReasonSupplied
	}

	return Result{failed: true, reason: reason}, nil
}

// MustFailure is like Failure but panics for a blank reason. It simplifies
// call sites with constant reasons, analogous to regexp.MustCompile.
func MustFailure(reason string) Result {
	result, err := Failure(reason)
	if err != nil {
		panic(err)
	}

	return result
}

// IsSuccess reports whether the validation passed.
func (r Result) IsSuccess() bool {
	return !r.failed
}

// FailureReason returns the reason and true for failures, and the zero value
// and false for successes.
func (r Result) FailureReason() (string, bool) {
	if !r.failed {
		return "", false
	}

	return r.reason, true
}

// ErrIfFailure converts the result into an error chosen by the call site.
// It returns nil for successes without invoking build. For failures it invokes
// build with the reason and returns the produced error. This is the only way a
// Result turns into an error, so the error type stays a call-site decision.
// A nil build on a failed result yields ErrNilErrorFactorySupplied.
func (r Result) ErrIfFailure(build func(reason string) error) error {
	if !r.failed {
		return nil
	}

	if build == nil {
		return ErrNilErrorFactorySupplied
	}

	return build(r.reason)
}
