package listitems

import "github.com/AntonStoeckl/holdqueue/core"

const (
	queryType = "ListItems"
)

// Query represents the intent to list all items. It has no parameters.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// Items lists all items ordered by id.
type Items struct {
	Items []core.Item `json:"items"`
	Count int         `json:"count"`
}
