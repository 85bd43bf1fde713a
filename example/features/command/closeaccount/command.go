package closeaccount

import (
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/validation"
)

const commandType = "CloseAccount"

// Command represents the intent to close a bank account.
type Command struct {
	AccountID  domain.EntityID
	OccurredAt domain.OccurredAtTS
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// It fails with an invalid command error when a parameter violates the account rules.
func BuildCommand(accountID domain.EntityID, occurredAt time.Time) (Command, error) {
	if err := validateCommand(accountID).ErrIfFailure(core.NewInvalidCommandError); err != nil {
		return Command{}, err
	}

	return Command{
		AccountID:  accountID,
		OccurredAt: domain.ToOccurredAt(occurredAt),
	}, nil
}

func validateCommand(accountID domain.EntityID) validation.Result {
	if accountID.IsZero() {
		return validation.MustFailure("account id must not be zero")
	}

	return validation.Success()
}
