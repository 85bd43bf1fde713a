package accountbalance

import (
	"github.com/modelfirst/tactical-ddd-go/example/core"
)

// Balance represents the query result with the account's current balance.
type Balance struct {
	AccountID         core.AccountIDString
	Holder            string
	Currency          string
	BalanceMinorUnits int64
	IsOpen            bool
	MovementCount     int
}
