package core

// Instead of implementing full value objects, I'm using some alias types here ...

// ItemID represents an item identifier, assigned sequentially starting at 1.
type ItemID = uint64

// HoldID represents a hold identifier, assigned sequentially starting at 1.
type HoldID = uint64

// Position represents the 1-based rank of a hold within its item's queue.
type Position = uint64

// RequesterKey represents the normalized identity of a requester.
type RequesterKey = string

// Counters holds the last identifiers handed out for items and holds.
type Counters struct {
	ItemID ItemID `json:"itemId"`
	HoldID HoldID `json:"holdId"`
}
