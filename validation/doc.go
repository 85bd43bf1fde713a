// Package validation provides a two-state validation result that separates
// detecting an invalid state from deciding how to report it.
//
// Validation code returns a Result; the call site converts failures into its
// own error type through ErrIfFailure:
//
//	result, _ := validation.Failure("amount must be positive")
//
//	if err := result.ErrIfFailure(func(reason string) error {
//		return fmt.Errorf("deposit rejected: %s", reason)
//	}); err != nil {
//		return err
//	}
package validation
