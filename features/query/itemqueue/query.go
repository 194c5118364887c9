package itemqueue

import "github.com/AntonStoeckl/holdqueue/core"

const (
	queryType = "ItemQueue"
)

// Query represents the intent to read the queue of an item.
type Query struct {
	ItemID core.ItemID
}

// BuildQuery validates the input and creates a new Query.
func BuildQuery(itemID core.ItemID) (Query, error) {
	if itemID == 0 {
		return Query{}, core.ErrInvalidItemID
	}

	return Query{ItemID: itemID}, nil
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// ItemQueue is the queue of one item, ordered by position.
type ItemQueue struct {
	Item  core.Item   `json:"item"`
	Holds []core.Hold `json:"holds"`
}
