package core

import (
	"fmt"
)

// Instead of implementing a full value object, an alias type is enough for the account identity in payloads ...

// AccountIDString represents an account identifier inside event payloads.
type AccountIDString = string

// NewInvalidCommandError builds the error that command validation failures are reported with.
// It is meant to be passed as the error factory to validation.Result.ErrIfFailure.
func NewInvalidCommandError(reason string) error {
	return fmt.Errorf("invalid command: %s", reason)
}
