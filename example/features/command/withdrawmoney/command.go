package withdrawmoney

import (
	"strings"
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/validation"
)

const commandType = "WithdrawMoney"

// Command represents the intent to withdraw money from a bank account.
// It encapsulates all the necessary information required to execute the withdraw money use case.
type Command struct {
	AccountID        domain.EntityID
	AmountMinorUnits int64
	Currency         string
	OccurredAt       domain.OccurredAtTS
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// It fails with an invalid command error when a parameter violates the account rules.
func BuildCommand(
	accountID domain.EntityID,
	amountMinorUnits int64,
	currency string,
	occurredAt time.Time,
) (Command, error) {

	if err := validateCommand(accountID, amountMinorUnits, currency).ErrIfFailure(core.NewInvalidCommandError); err != nil {
		return Command{}, err
	}

	return Command{
		AccountID:        accountID,
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
		OccurredAt:       domain.ToOccurredAt(occurredAt),
	}, nil
}

func validateCommand(accountID domain.EntityID, amountMinorUnits int64, currency string) validation.Result {
	switch {
	case accountID.IsZero():
		return validation.MustFailure("account id must not be zero")
	case amountMinorUnits <= 0:
		return validation.MustFailure("amount must be positive")
	case strings.TrimSpace(currency) == "":
		return validation.MustFailure("currency must not be blank")
	default:
		return validation.Success()
	}
}
