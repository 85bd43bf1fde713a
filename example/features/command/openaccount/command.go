package openaccount

import (
	"strings"
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/validation"
)

const commandType = "OpenAccount"

// Command represents the intent to open a bank account.
// It encapsulates all the necessary information required to execute the open account use case.
type Command struct {
	AccountID  domain.EntityID
	Holder     string
	Currency   string
	OccurredAt domain.OccurredAtTS
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// It fails with an invalid command error when a parameter violates the account rules.
func BuildCommand(
	accountID domain.EntityID,
	holder string,
	currency string,
	occurredAt time.Time,
) (Command, error) {

	if err := validateCommand(accountID, holder, currency).ErrIfFailure(core.NewInvalidCommandError); err != nil {
		return Command{}, err
	}

	return Command{
		AccountID:  accountID,
		Holder:     holder,
		Currency:   currency,
		OccurredAt: domain.ToOccurredAt(occurredAt),
	}, nil
}

func validateCommand(accountID domain.EntityID, holder string, currency string) validation.Result {
	switch {
	case accountID.IsZero():
		return validation.MustFailure("account id must not be zero")
	case strings.TrimSpace(holder) == "":
		return validation.MustFailure("holder must not be blank")
	case strings.TrimSpace(currency) == "":
		return validation.MustFailure("currency must not be blank")
	default:
		return validation.Success()
	}
}
