package core

// Hold is a standing request by one requester for one unit of one item.
type Hold struct {
	ID           HoldID       `json:"id"`
	ItemID       ItemID       `json:"itemId"`
	RequesterKey RequesterKey `json:"requesterKey"`
	Position     Position     `json:"position"`
	Frozen       bool         `json:"frozen"`
	Fulfilled    bool         `json:"fulfilled"`
}

// IsEligible reports whether the hold may receive a unit.
func (h Hold) IsEligible() bool {
	return !h.Fulfilled && !h.Frozen
}

// IsOwnedBy reports whether the hold belongs to the given requester.
func (h Hold) IsOwnedBy(key RequesterKey) bool {
	return h.RequesterKey == key
}
