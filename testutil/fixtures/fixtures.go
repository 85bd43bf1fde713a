package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/example/shell"
	"github.com/modelfirst/tactical-ddd-go/journal"
	"github.com/modelfirst/tactical-ddd-go/journal/postgresengine"
)

const (
	fixtureHolder   = "Ada Lovelace"
	fixtureCurrency = "EUR"
)

// GivenUniqueID generates a unique account identity for testing.
func GivenUniqueID(t testing.TB) domain.EntityID {
	t.Helper()

	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	accountID, err := domain.BuildEntityID(id)
	assert.NoError(t, err, "error in arranging test data")

	return accountID
}

// QueryStreamVersionBeforeAppend queries the current stream version for a selection.
func QueryStreamVersionBeforeAppend(
	t testing.TB,
	ctx context.Context, //nolint:revive
	j postgresengine.Journal,
	selection journal.Selection,
) journal.Version {

	t.Helper()

	_, streamVersion, err := j.Events(ctx, selection)
	assert.NoError(t, err, "error in arranging test data")

	return streamVersion
}

// SelectionAllEventTypesForOneAccount creates a selection covering every
// account event type for a specific account.
func SelectionAllEventTypesForOneAccount(accountID domain.EntityID) journal.Selection {
	return journal.BuildSelection().
		ForEntity(accountID).
		WithEventTypes(
			core.AccountOpenedEventType,
			core.MoneyDepositedEventType,
			core.MoneyWithdrawnEventType,
			core.WithdrawalRefusedEventType,
			core.AccountClosedEventType).
		Finalize()
}

// FixtureAccountOpened creates a test event for opening an account.
func FixtureAccountOpened(accountID domain.EntityID, fakeClock time.Time) core.AccountOpened {
	return core.BuildAccountOpened(accountID, fixtureHolder, fixtureCurrency, fakeClock)
}

// FixtureMoneyDeposited creates a test event for depositing money.
func FixtureMoneyDeposited(
	t testing.TB,
	accountID domain.EntityID,
	amountMinorUnits int64,
	fakeClock time.Time,
) core.MoneyDeposited {

	t.Helper()

	return core.BuildMoneyDeposited(accountID, fixtureAmount(t, amountMinorUnits), fakeClock)
}

// FixtureMoneyWithdrawn creates a test event for withdrawing money.
func FixtureMoneyWithdrawn(
	t testing.TB,
	accountID domain.EntityID,
	amountMinorUnits int64,
	fakeClock time.Time,
) core.MoneyWithdrawn {

	t.Helper()

	return core.BuildMoneyWithdrawn(accountID, fixtureAmount(t, amountMinorUnits), fakeClock)
}

// FixtureWithdrawalRefused creates a test event for a refused withdrawal.
func FixtureWithdrawalRefused(
	t testing.TB,
	accountID domain.EntityID,
	amountMinorUnits int64,
	reason string,
	fakeClock time.Time,
) core.WithdrawalRefused {

	t.Helper()

	return core.BuildWithdrawalRefused(accountID, fixtureAmount(t, amountMinorUnits), reason, fakeClock)
}

// FixtureAccountClosed creates a test event for closing an account.
func FixtureAccountClosed(accountID domain.EntityID, fakeClock time.Time) core.AccountClosed {
	return core.BuildAccountClosed(accountID, fakeClock)
}

// ToRecord converts a domain event to a journal record for testing.
func ToRecord(t testing.TB, event domain.Event) journal.Record {
	t.Helper()

	commandID := uuid.New()

	record, err := shell.RecordFor(event, commandID, commandID)
	assert.NoError(t, err, "error in arranging test data")

	return record
}

// ToRecordWithMetadata converts a domain event to a journal record carrying
// the given causation and correlation identifiers.
func ToRecordWithMetadata(
	t testing.TB,
	event domain.Event,
	causationID uuid.UUID,
	correlationID uuid.UUID,
) journal.Record {

	t.Helper()

	record, err := shell.RecordFor(event, causationID, correlationID)
	assert.NoError(t, err, "error in arranging test data")

	return record
}

// GivenAccountOpenedWasAppended appends an account opening event for testing.
func GivenAccountOpenedWasAppended(
	t testing.TB,
	ctx context.Context, //nolint:revive
	j postgresengine.Journal,
	accountID domain.EntityID,
	fakeClock time.Time,
) core.AccountOpened {

	t.Helper()

	selection := SelectionAllEventTypesForOneAccount(accountID)
	event := FixtureAccountOpened(accountID, fakeClock)

	err := j.Append(
		ctx,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctx, j, selection),
		ToRecord(t, event),
	)
	assert.NoError(t, err, "error in arranging test data")

	return event
}

// GivenMoneyDepositedWasAppended appends a deposit event for testing.
func GivenMoneyDepositedWasAppended(
	t testing.TB,
	ctx context.Context, //nolint:revive
	j postgresengine.Journal,
	accountID domain.EntityID,
	amountMinorUnits int64,
	fakeClock time.Time,
) core.MoneyDeposited {

	t.Helper()

	selection := SelectionAllEventTypesForOneAccount(accountID)
	event := FixtureMoneyDeposited(t, accountID, amountMinorUnits, fakeClock)

	err := j.Append(
		ctx,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctx, j, selection),
		ToRecord(t, event),
	)
	assert.NoError(t, err, "error in arranging test data")

	return event
}

// GivenMoneyWithdrawnWasAppended appends a withdrawal event for testing.
func GivenMoneyWithdrawnWasAppended(
	t testing.TB,
	ctx context.Context, //nolint:revive
	j postgresengine.Journal,
	accountID domain.EntityID,
	amountMinorUnits int64,
	fakeClock time.Time,
) core.MoneyWithdrawn {

	t.Helper()

	selection := SelectionAllEventTypesForOneAccount(accountID)
	event := FixtureMoneyWithdrawn(t, accountID, amountMinorUnits, fakeClock)

	err := j.Append(
		ctx,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctx, j, selection),
		ToRecord(t, event),
	)
	assert.NoError(t, err, "error in arranging test data")

	return event
}

// GivenWithdrawalRefusedWasAppended appends a refused withdrawal event for testing.
func GivenWithdrawalRefusedWasAppended(
	t testing.TB,
	ctx context.Context, //nolint:revive
	j postgresengine.Journal,
	accountID domain.EntityID,
	amountMinorUnits int64,
	reason string,
	fakeClock time.Time,
) core.WithdrawalRefused {

	t.Helper()

	selection := SelectionAllEventTypesForOneAccount(accountID)
	event := FixtureWithdrawalRefused(t, accountID, amountMinorUnits, reason, fakeClock)

	err := j.Append(
		ctx,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctx, j, selection),
		ToRecord(t, event),
	)
	assert.NoError(t, err, "error in arranging test data")

	return event
}

// GivenAccountClosedWasAppended appends an account closing event for testing.
func GivenAccountClosedWasAppended(
	t testing.TB,
	ctx context.Context, //nolint:revive
	j postgresengine.Journal,
	accountID domain.EntityID,
	fakeClock time.Time,
) core.AccountClosed {

	t.Helper()

	selection := SelectionAllEventTypesForOneAccount(accountID)
	event := FixtureAccountClosed(accountID, fakeClock)

	err := j.Append(
		ctx,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctx, j, selection),
		ToRecord(t, event),
	)
	assert.NoError(t, err, "error in arranging test data")

	return event
}

func fixtureAmount(t testing.TB, amountMinorUnits int64) core.Money {
	t.Helper()

	amount, err := core.BuildMoney(amountMinorUnits, fixtureCurrency)
	assert.NoError(t, err, "error in arranging test data")

	return amount
}
