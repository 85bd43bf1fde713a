package closeaccount_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/example/features/command/closeaccount"
	"github.com/modelfirst/tactical-ddd-go/example/features/command/depositmoney"
	"github.com/modelfirst/tactical-ddd-go/example/features/command/openaccount"
	"github.com/modelfirst/tactical-ddd-go/example/features/command/withdrawmoney"
	"github.com/modelfirst/tactical-ddd-go/example/shell"
	. "github.com/modelfirst/tactical-ddd-go/testutil/fixtures" //nolint:revive
	. "github.com/modelfirst/tactical-ddd-go/testutil/postgresengine/wrapper" //nolint:revive
)

func Test_CommandHandler_Handle_ClosesAccount(t *testing.T) {
	// setup
	ctx, w, cleanup := setupTestEnvironment(t)
	defer cleanup()

	openAccountHandler := createOpenAccountHandler(t, w)
	closeAccountHandler := createCloseAccountHandler(t, w)

	fakeClock := time.Unix(0, 0).UTC()
	accountID := GivenUniqueID(t)

	// arrange
	openCommand, err := openaccount.BuildCommand(accountID, "Ada Lovelace", "EUR", fakeClock.Add(time.Hour))
	assert.NoError(t, err, "Should build the open command")

	err = openAccountHandler.Handle(ctx, openCommand)
	assert.NoError(t, err, "Should successfully open the account")

	// act
	closeCommand, err := closeaccount.BuildCommand(accountID, fakeClock.Add(2*time.Hour))
	assert.NoError(t, err, "Should build the close command")

	err = closeAccountHandler.Handle(ctx, closeCommand)

	// assert
	assert.NoError(t, err, "Should successfully close the account")
	verifyJournaledEventTypes(ctx, t, w, accountID,
		core.AccountOpenedEventType,
		core.AccountClosedEventType,
	)
}

//nolint:funlen
func Test_CommandHandler_Handle_ClosesAccount_AfterBalanceReturnsToZero(t *testing.T) {
	// setup
	ctx, w, cleanup := setupTestEnvironment(t)
	defer cleanup()

	openAccountHandler := createOpenAccountHandler(t, w)
	depositMoneyHandler := createDepositMoneyHandler(t, w)
	withdrawMoneyHandler := createWithdrawMoneyHandler(t, w)
	closeAccountHandler := createCloseAccountHandler(t, w)

	fakeClock := time.Unix(0, 0).UTC()
	accountID := GivenUniqueID(t)

	// arrange
	openCommand, err := openaccount.BuildCommand(accountID, "Ada Lovelace", "EUR", fakeClock.Add(time.Hour))
	assert.NoError(t, err, "Should build the open command")

	err = openAccountHandler.Handle(ctx, openCommand)
	assert.NoError(t, err, "Should successfully open the account")

	depositCommand, err := depositmoney.BuildCommand(accountID, 50_00, "EUR", fakeClock.Add(2*time.Hour))
	assert.NoError(t, err, "Should build the deposit command")

	err = depositMoneyHandler.Handle(ctx, depositCommand)
	assert.NoError(t, err, "Should successfully deposit money")

	withdrawCommand, err := withdrawmoney.BuildCommand(accountID, 50_00, "EUR", fakeClock.Add(3*time.Hour))
	assert.NoError(t, err, "Should build the withdraw command")

	err = withdrawMoneyHandler.Handle(ctx, withdrawCommand)
	assert.NoError(t, err, "Should successfully withdraw the full balance")

	// act
	closeCommand, err := closeaccount.BuildCommand(accountID, fakeClock.Add(4*time.Hour))
	assert.NoError(t, err, "Should build the close command")

	err = closeAccountHandler.Handle(ctx, closeCommand)

	// assert
	assert.NoError(t, err, "Should successfully close the account once the balance is zero")
	verifyJournaledEventTypes(ctx, t, w, accountID,
		core.AccountOpenedEventType,
		core.MoneyDepositedEventType,
		core.MoneyWithdrawnEventType,
		core.AccountClosedEventType,
	)
}

func Test_CommandHandler_Handle_Idempotent_WhenAccountIsAlreadyClosed(t *testing.T) {
	// setup
	ctx, w, cleanup := setupTestEnvironment(t)
	defer cleanup()

	openAccountHandler := createOpenAccountHandler(t, w)
	closeAccountHandler := createCloseAccountHandler(t, w)

	fakeClock := time.Unix(0, 0).UTC()
	accountID := GivenUniqueID(t)

	// arrange
	openCommand, err := openaccount.BuildCommand(accountID, "Ada Lovelace", "EUR", fakeClock.Add(time.Hour))
	assert.NoError(t, err, "Should build the open command")

	err = openAccountHandler.Handle(ctx, openCommand)
	assert.NoError(t, err, "Should successfully open the account")

	closeCommand, err := closeaccount.BuildCommand(accountID, fakeClock.Add(2*time.Hour))
	assert.NoError(t, err, "Should build the close command")

	err = closeAccountHandler.Handle(ctx, closeCommand)
	assert.NoError(t, err, "Should successfully close the account")

	// act
	err = closeAccountHandler.Handle(ctx, closeCommand)

	// assert
	assert.NoError(t, err, "Should succeed (idempotent) when the account is already closed")
	verifyJournaledEventTypes(ctx, t, w, accountID,
		core.AccountOpenedEventType,
		core.AccountClosedEventType,
	)
}

func Test_CommandHandler_Handle_Error_WhenBalanceIsNotZero(t *testing.T) {
	// setup
	ctx, w, cleanup := setupTestEnvironment(t)
	defer cleanup()

	openAccountHandler := createOpenAccountHandler(t, w)
	depositMoneyHandler := createDepositMoneyHandler(t, w)
	closeAccountHandler := createCloseAccountHandler(t, w)

	fakeClock := time.Unix(0, 0).UTC()
	accountID := GivenUniqueID(t)

	// arrange
	openCommand, err := openaccount.BuildCommand(accountID, "Ada Lovelace", "EUR", fakeClock.Add(time.Hour))
	assert.NoError(t, err, "Should build the open command")

	err = openAccountHandler.Handle(ctx, openCommand)
	assert.NoError(t, err, "Should successfully open the account")

	depositCommand, err := depositmoney.BuildCommand(accountID, 10_00, "EUR", fakeClock.Add(2*time.Hour))
	assert.NoError(t, err, "Should build the deposit command")

	err = depositMoneyHandler.Handle(ctx, depositCommand)
	assert.NoError(t, err, "Should successfully deposit money")

	// act
	closeCommand, err := closeaccount.BuildCommand(accountID, fakeClock.Add(3*time.Hour))
	assert.NoError(t, err, "Should build the close command")

	err = closeAccountHandler.Handle(ctx, closeCommand)

	// assert
	assert.Error(t, err, "Should fail to close an account with a remaining balance")
	assert.ErrorContains(t, err, "account balance must be zero", "The error should name the zero balance rule")
	verifyJournaledEventTypes(ctx, t, w, accountID,
		core.AccountOpenedEventType,
		core.MoneyDepositedEventType,
	)
}

func Test_CommandHandler_Handle_Error_WhenAccountWasNeverOpened(t *testing.T) {
	// setup
	ctx, w, cleanup := setupTestEnvironment(t)
	defer cleanup()

	closeAccountHandler := createCloseAccountHandler(t, w)

	fakeClock := time.Unix(0, 0).UTC()
	accountID := GivenUniqueID(t)

	// act
	closeCommand, err := closeaccount.BuildCommand(accountID, fakeClock.Add(time.Hour))
	assert.NoError(t, err, "Should build the close command")

	err = closeAccountHandler.Handle(ctx, closeCommand)

	// assert
	assert.Error(t, err, "Should fail to close an account that was never opened")
	assert.ErrorContains(t, err, "account was never opened", "The error should name the missing account rule")
	verifyJournaledEventTypes(ctx, t, w, accountID)
}

// Test helper functions

func setupTestEnvironment(t *testing.T) (context.Context, Wrapper, func()) {
	t.Helper()

	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	w := CreateWrapperWithTestConfig(t)

	cleanup := func() {
		cancel()
		w.Close()
	}

	CleanUp(t, w)

	return ctxWithTimeout, w, cleanup
}

func createOpenAccountHandler(t *testing.T, w Wrapper) openaccount.CommandHandler {
	t.Helper()

	registry, err := shell.NewAccountEventRegistry()
	assert.NoError(t, err, "Should build the account event registry")

	publisher, err := domain.BuildEventPublisher()
	assert.NoError(t, err, "Should build the event publisher")

	return openaccount.NewCommandHandler(w.GetJournal(), registry, publisher)
}

func createDepositMoneyHandler(t *testing.T, w Wrapper) depositmoney.CommandHandler {
	t.Helper()

	registry, err := shell.NewAccountEventRegistry()
	assert.NoError(t, err, "Should build the account event registry")

	publisher, err := domain.BuildEventPublisher()
	assert.NoError(t, err, "Should build the event publisher")

	return depositmoney.NewCommandHandler(w.GetJournal(), registry, publisher)
}

func createWithdrawMoneyHandler(t *testing.T, w Wrapper) withdrawmoney.CommandHandler {
	t.Helper()

	registry, err := shell.NewAccountEventRegistry()
	assert.NoError(t, err, "Should build the account event registry")

	publisher, err := domain.BuildEventPublisher()
	assert.NoError(t, err, "Should build the event publisher")

	return withdrawmoney.NewCommandHandler(w.GetJournal(), registry, publisher)
}

func createCloseAccountHandler(t *testing.T, w Wrapper) closeaccount.CommandHandler {
	t.Helper()

	registry, err := shell.NewAccountEventRegistry()
	assert.NoError(t, err, "Should build the account event registry")

	publisher, err := domain.BuildEventPublisher()
	assert.NoError(t, err, "Should build the event publisher")

	return closeaccount.NewCommandHandler(w.GetJournal(), registry, publisher)
}

func verifyJournaledEventTypes(
	ctx context.Context,
	t *testing.T,
	w Wrapper,
	accountID domain.EntityID,
	expectedEventTypes ...domain.EventTypeString,
) {
	t.Helper()

	records, _, err := w.GetJournal().Events(ctx, SelectionAllEventTypesForOneAccount(accountID))
	assert.NoError(t, err, "Should query records successfully")

	var actualEventTypes []domain.EventTypeString
	for _, record := range records {
		actualEventTypes = append(actualEventTypes, record.EventType)
	}

	assert.Equal(t, expectedEventTypes, actualEventTypes, "The journaled event types should match")
}
