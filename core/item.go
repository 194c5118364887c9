package core

import "strings"

// Item is a lendable title with a fixed pool of units.
type Item struct {
	ID             ItemID `json:"id"`
	Title          string `json:"title"`
	UnitsTotal     int    `json:"unitsTotal"`
	UnitsAvailable int    `json:"unitsAvailable"`
}

// ValidateNewItem checks the input for a new item and returns the trimmed title.
func ValidateNewItem(title string, unitsTotal int) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}

	if unitsTotal <= 0 {
		return "", ErrInvalidUnitsTotal
	}

	return trimmed, nil
}

// HasAvailableUnits reports whether at least one unit can be handed out.
func (i Item) HasAvailableUnits() bool {
	return i.UnitsAvailable > 0
}

// WithUnitReturned returns a copy with one more available unit, capped at UnitsTotal.
func (i Item) WithUnitReturned() Item {
	if i.UnitsAvailable < i.UnitsTotal {
		i.UnitsAvailable++
	}

	return i
}

// WithUnitConsumed returns a copy with one less available unit, floored at zero.
func (i Item) WithUnitConsumed() Item {
	if i.UnitsAvailable > 0 {
		i.UnitsAvailable--
	}

	return i
}
