package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Success(t *testing.T) {
	result := Success()

	assert.True(t, result.IsSuccess())

	reason, found := result.FailureReason()
	assert.Empty(t, reason)
	assert.False(t, found)
}

func Test_ZeroValueIsASuccess(t *testing.T) {
	var result Result

	assert.True(t, result.IsSuccess())
}

func Test_Failure_Success(t *testing.T) {
	result, err := Failure("amount must be positive")
	require.NoError(t, err)

	assert.False(t, result.IsSuccess())

	reason, found := result.FailureReason()
	assert.Equal(t, "amount must be positive", reason)
	assert.True(t, found)
}

func Test_Failure_KeepsTheReasonVerbatim(t *testing.T) {
	result, err := Failure("  reason with surrounding space  ")
	require.NoError(t, err)

	reason, found := result.FailureReason()
	assert.Equal(t, "  reason with surrounding space  ", reason)
	assert.True(t, found)
}

func Test_Failure_ErrorCases(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{name: "empty reason", reason: ""},
		{name: "blank reason", reason: "   "},
		{name: "whitespace only reason", reason: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Failure(tt.reason)

			assert.ErrorIs(t, err, ErrEmptyFailureReasonSupplied)
		})
	}
}

func Test_MustFailure_Success(t *testing.T) {
	result := MustFailure("account is closed")

	assert.False(t, result.IsSuccess())

	reason, found := result.FailureReason()
	assert.Equal(t, "account is closed", reason)
	assert.True(t, found)
}

func Test_MustFailure_PanicsOnBlankReason(t *testing.T) {
	assert.Panics(t, func() {
		_ = MustFailure("   ")
	})
}

func Test_ErrIfFailure_ReturnsNilForSuccessWithoutInvokingTheFactory(t *testing.T) {
	invoked := false

	err := Success().ErrIfFailure(func(_ string) error {
		invoked = true
		return errors.New("must not be built")
	})

	assert.NoError(t, err)
	assert.False(t, invoked)
}

func Test_ErrIfFailure_ReturnsNilForSuccessWithNilFactory(t *testing.T) {
	err := Success().ErrIfFailure(nil)

	assert.NoError(t, err)
}

func Test_ErrIfFailure_BuildsTheErrorFromTheReason(t *testing.T) {
	result, err := Failure("insufficient funds")
	require.NoError(t, err)

	conversionErr := result.ErrIfFailure(func(reason string) error {
		return fmt.Errorf("withdrawal rejected: %s", reason)
	})

	assert.EqualError(t, conversionErr, "withdrawal rejected: insufficient funds")
}

func Test_ErrIfFailure_FailsWithNilFactoryOnAFailedResult(t *testing.T) {
	result, err := Failure("insufficient funds")
	require.NoError(t, err)

	conversionErr := result.ErrIfFailure(nil)

	assert.ErrorIs(t, conversionErr, ErrNilErrorFactorySupplied)
}
