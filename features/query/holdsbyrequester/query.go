package holdsbyrequester

import "github.com/AntonStoeckl/holdqueue/core"

const (
	queryType = "HoldsByRequester"
)

// Query represents the intent to list the holds of a requester.
type Query struct {
	RequesterKey core.RequesterKey
}

// BuildQuery validates and normalizes the requester key and creates a new Query.
func BuildQuery(requesterKey string) (Query, error) {
	key, err := core.NormalizeRequesterKey(requesterKey)
	if err != nil {
		return Query{}, err
	}

	return Query{RequesterKey: key}, nil
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// HoldsByRequester lists the holds of one requester.
type HoldsByRequester struct {
	RequesterKey core.RequesterKey `json:"requesterKey"`
	Holds        []core.Hold       `json:"holds"`
}
