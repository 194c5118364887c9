package placehold

import "github.com/AntonStoeckl/holdqueue/core"

const (
	commandType = "PlaceHold"
	operation   = "place_hold"
)

// Command represents the intent of a requester to wait for a unit of an item.
type Command struct {
	RequesterKey core.RequesterKey
	ItemID       core.ItemID
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand validates and normalizes the input and creates a new Command.
func BuildCommand(requesterKey string, itemID core.ItemID) (Command, error) {
	key, err := core.NormalizeRequesterKey(requesterKey)
	if err != nil {
		return Command{}, err
	}

	if itemID == 0 {
		return Command{}, core.ErrInvalidItemID
	}

	return Command{
		RequesterKey: key,
		ItemID:       itemID,
	}, nil
}

// Result is what a requester learns about the placed hold.
type Result struct {
	Position core.Position `json:"position"`
	HoldID   core.HoldID   `json:"holdId"`
}
