package freezehold

import "github.com/AntonStoeckl/holdqueue/core"

const (
	commandType = "FreezeHold"
	operation   = "freeze_hold"
)

// Command represents the intent of a requester to pause their hold.
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
