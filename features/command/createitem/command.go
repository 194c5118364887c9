package createitem

import "github.com/AntonStoeckl/holdqueue/core"

const (
	commandType = "CreateItem"
	operation   = "create_item"
)

// Command represents the intent to add a lendable item with a fixed number of units.
type Command struct {
	Title      string
	UnitsTotal int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand validates the input and creates a new Command with the trimmed title.
func BuildCommand(title string, unitsTotal int) (Command, error) {
	trimmed, err := core.ValidateNewItem(title, unitsTotal)
	if err != nil {
		return Command{}, err
	}

	return Command{
		Title:      trimmed,
		UnitsTotal: unitsTotal,
	}, nil
}
