package withdrawmoney_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/example/features/command/withdrawmoney"
)

func Test_Decide_Success_WhenPolicyIsSatisfied(t *testing.T) {
	// arrange
	accountID := domain.NewEntityID()
	now := time.Now()

	state := projectState(t, accountID,
		givenAccountOpened(t, accountID, now.Add(-2*time.Hour)),
		givenMoneyDeposited(t, accountID, 10_000, now.Add(-1*time.Hour)),
	)
	command := buildCommand(t, accountID, 2_500, now)

	// act
	result := withdrawmoney.Decide(state, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	require.NotNil(t, result.Event, "Expected event to be generated")
	assert.NoError(t, result.HasError(), "Expected no error for success decision")

	withdrawnEvent, ok := result.Event.(core.MoneyWithdrawn)
	assert.True(t, ok, "Expected MoneyWithdrawn event")
	assert.Equal(t, accountID.String(), withdrawnEvent.AccountID, "Event should have correct AccountID")
	assert.Equal(t, int64(2_500), withdrawnEvent.AmountMinorUnits)
	assert.Equal(t, "EUR", withdrawnEvent.Currency)
}

func Test_Decide_Success_WithdrawingTheExactBalance(t *testing.T) {
	// arrange
	accountID := domain.NewEntityID()
	now := time.Now()

	state := projectState(t, accountID,
		givenAccountOpened(t, accountID, now.Add(-2*time.Hour)),
		givenMoneyDeposited(t, accountID, 10_000, now.Add(-1*time.Hour)),
	)
	command := buildCommand(t, accountID, 10_000, now)

	// act
	result := withdrawmoney.Decide(state, command)

	// assert - draining the account to zero is allowed
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NotNil(t, result.Event, "Expected event to be generated")
}

func Test_Decide_Success_WithdrawingExactlyTheSingleWithdrawalLimit(t *testing.T) {
	// arrange
	accountID := domain.NewEntityID()
	now := time.Now()

	state := projectState(t, accountID,
		givenAccountOpened(t, accountID, now.Add(-2*time.Hour)),
		givenMoneyDeposited(t, accountID, 2*core.MaxSingleWithdrawalMinorUnits, now.Add(-1*time.Hour)),
	)
	command := buildCommand(t, accountID, core.MaxSingleWithdrawalMinorUnits, now)

	// act
	result := withdrawmoney.Decide(state, command)

	// assert - the limit itself is still within the policy
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NotNil(t, result.Event, "Expected event to be generated")
}

//nolint:funlen
func Test_Decide_Refusals(t *testing.T) {
	accountID := domain.NewEntityID()
	now := time.Now()

	testCases := []struct {
		name             string
		history          []domain.Event
		amountMinorUnits int64
		currency         string
		expectedReason   string
	}{
		{
			name:             "account never opened",
			history:          nil,
			amountMinorUnits: 2_500,
			currency:         "EUR",
			expectedReason:   "account is not open",
		},
		{
			name: "account closed",
			history: []domain.Event{
				givenAccountOpened(t, accountID, now.Add(-2*time.Hour)),
				givenAccountClosed(t, accountID, now.Add(-1*time.Hour)),
			},
			amountMinorUnits: 2_500,
			currency:         "EUR",
			expectedReason:   "account is not open",
		},
		{
			name: "foreign currency withdrawal",
			history: []domain.Event{
				givenAccountOpened(t, accountID, now.Add(-2*time.Hour)),
				givenMoneyDeposited(t, accountID, 10_000, now.Add(-1*time.Hour)),
			},
			amountMinorUnits: 2_500,
			currency:         "USD",
			expectedReason:   "withdrawal currency does not match the account currency",
		},
		{
			name: "amount above the single withdrawal limit",
			history: []domain.Event{
				givenAccountOpened(t, accountID, now.Add(-2*time.Hour)),
				givenMoneyDeposited(t, accountID, 2*core.MaxSingleWithdrawalMinorUnits, now.Add(-1*time.Hour)),
			},
			amountMinorUnits: core.MaxSingleWithdrawalMinorUnits + 1,
			currency:         "EUR",
			expectedReason:   "amount exceeds the single withdrawal limit",
		},
		{
			name: "insufficient funds",
			history: []domain.Event{
				givenAccountOpened(t, accountID, now.Add(-3*time.Hour)),
				givenMoneyDeposited(t, accountID, 10_000, now.Add(-2*time.Hour)),
				givenMoneyWithdrawn(t, accountID, 8_000, now.Add(-1*time.Hour)),
			},
			amountMinorUnits: 2_500,
			currency:         "EUR",
			expectedReason:   "insufficient funds",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			state := projectState(t, accountID, tc.history...)

			command, err := withdrawmoney.BuildCommand(accountID, tc.amountMinorUnits, tc.currency, now)
			require.NoError(t, err)

			// act
			result := withdrawmoney.Decide(state, command)

			// assert - refusals are journaled AND reported as errors
			assert.Equal(t, "error", result.Outcome, "Expected error decision")
			require.NotNil(t, result.Event, "Expected refusal event to be generated")
			assert.True(t, result.HasEventToAppend(), "Expected refusal event to be appended")
			assert.ErrorContains(t, result.HasError(), tc.expectedReason)

			refusedEvent, ok := result.Event.(core.WithdrawalRefused)
			assert.True(t, ok, "Expected WithdrawalRefused event")
			assert.Equal(t, accountID.String(), refusedEvent.AccountID, "Event should have correct AccountID")
			assert.Equal(t, tc.expectedReason, refusedEvent.Reason, "Event should carry the violated rule")
		})
	}
}

// Test helper functions with t.Helper() for better error reporting

func buildCommand(t *testing.T, accountID domain.EntityID, amountMinorUnits int64, at time.Time) withdrawmoney.Command {
	t.Helper()

	command, err := withdrawmoney.BuildCommand(accountID, amountMinorUnits, "EUR", at)
	require.NoError(t, err)

	return command
}

func projectState(t *testing.T, accountID domain.EntityID, history ...domain.Event) core.AccountState {
	t.Helper()

	return core.ProjectAccountState(accountID, history, uint64(len(history)))
}

func givenAccountOpened(t *testing.T, accountID domain.EntityID, at time.Time) domain.Event {
	t.Helper()

	return core.BuildAccountOpened(accountID, "Ada Lovelace", "EUR", at)
}

func givenAccountClosed(t *testing.T, accountID domain.EntityID, at time.Time) domain.Event {
	t.Helper()

	return core.BuildAccountClosed(accountID, at)
}

func givenMoneyDeposited(t *testing.T, accountID domain.EntityID, amountMinorUnits int64, at time.Time) domain.Event {
	t.Helper()

	amount, err := core.BuildMoney(amountMinorUnits, "EUR")
	require.NoError(t, err)

	return core.BuildMoneyDeposited(accountID, amount, at)
}

func givenMoneyWithdrawn(t *testing.T, accountID domain.EntityID, amountMinorUnits int64, at time.Time) domain.Event {
	t.Helper()

	amount, err := core.BuildMoney(amountMinorUnits, "EUR")
	require.NoError(t, err)

	return core.BuildMoneyWithdrawn(accountID, amount, at)
}
