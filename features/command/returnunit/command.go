package returnunit

import "github.com/AntonStoeckl/holdqueue/core"

const (
	commandType = "ReturnUnit"
	operation   = "return_unit"
)

// Command represents a unit of an item coming back into the pool.
type Command struct {
	ItemID core.ItemID
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand validates the input and creates a new Command.
func BuildCommand(itemID core.ItemID) (Command, error) {
	if itemID == 0 {
		return Command{}, core.ErrInvalidItemID
	}

	return Command{ItemID: itemID}, nil
}

// Result carries the available units after the assignment attempt and the hold that received a unit, if any.
type Result struct {
	UnitsAvailable int          `json:"unitsAvailable"`
	AssignedTo     *core.HoldID `json:"assignedTo"`
}
