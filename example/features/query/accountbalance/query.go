package accountbalance

import (
	"github.com/modelfirst/tactical-ddd-go/domain"
)

const queryType = "AccountBalance"

// Query represents the intent to query the current balance of a bank account.
type Query struct {
	AccountID domain.EntityID
}

// BuildQuery creates a new Query with the provided account ID.
func BuildQuery(accountID domain.EntityID) Query {
	return Query{
		AccountID: accountID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
