package unfreezehold

import "github.com/AntonStoeckl/holdqueue/core"

const (
	commandType = "UnfreezeHold"
	operation   = "unfreeze_hold"
)

// Command represents the intent of a requester to resume their hold.
type Command struct {
	RequesterKey core.RequesterKey
	HoldID       core.HoldID
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand validates and normalizes the input and creates a new Command.
func BuildCommand(requesterKey string, holdID core.HoldID) (Command, error) {
	key, err := core.NormalizeRequesterKey(requesterKey)
	if err != nil {
		return Command{}, err
	}

	if holdID == 0 {
		return Command{}, core.ErrInvalidHoldID
	}

	return Command{
		RequesterKey: key,
		HoldID:       holdID,
	}, nil
}

// Result carries the hold as committed and the hold that received a unit, if any.
// Hold reflects the assignment, so it is fulfilled when it was the one assigned.
type Result struct {
	Hold       core.Hold    `json:"hold"`
	AssignedTo *core.HoldID `json:"assignedTo"`
}
