package core

import (
	"fmt"
	"slices"
	"sort"
)

// StateReader is the read-only view of a State.
type StateReader interface {
	Counters() Counters
	Item(id ItemID) (Item, bool)
	Items() []Item
	Hold(id HoldID) (Hold, bool)
	Holds() []Hold
	Queue(itemID ItemID) []Hold
	HoldsByRequester(key RequesterKey) []Hold
	ActiveHold(itemID ItemID, key RequesterKey) (Hold, bool)
}

type activeHoldKey struct {
	itemID ItemID
	key    RequesterKey
}

// State owns all items and holds.
// Queues are kept per item as hold ids in ascending position order, so reading a queue never scans all holds.
type State struct {
	counters Counters
	items    map[ItemID]Item
	holds    map[HoldID]Hold
	queues   map[ItemID][]HoldID
	active   map[activeHoldKey]HoldID
}

// NewState creates an empty State.
func NewState() *State {
	return &State{
		items:  make(map[ItemID]Item),
		holds:  make(map[HoldID]Hold),
		queues: make(map[ItemID][]HoldID),
		active: make(map[activeHoldKey]HoldID),
	}
}

// RestoreState rebuilds a State from persisted parts and checks every invariant on the way.
// The returned error wraps ErrInconsistentState.
func RestoreState(counters Counters, items []Item, holds []Hold) (*State, error) {
	s := NewState()
	s.counters = counters

	for _, item := range items {
		if err := checkRestoredItem(s, item); err != nil {
			return nil, err
		}

		s.items[item.ID] = item
	}

	sorted := slices.Clone(holds)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ItemID != sorted[j].ItemID {
			return sorted[i].ItemID < sorted[j].ItemID
		}

		return sorted[i].Position < sorted[j].Position
	})

	for _, hold := range sorted {
		if err := checkRestoredHold(s, hold); err != nil {
			return nil, err
		}

		s.holds[hold.ID] = hold
		s.queues[hold.ItemID] = append(s.queues[hold.ItemID], hold.ID)

		if !hold.Fulfilled {
			s.active[activeHoldKey{itemID: hold.ItemID, key: hold.RequesterKey}] = hold.ID
		}
	}

	return s, nil
}

func checkRestoredItem(s *State, item Item) error {
	_, exists := s.items[item.ID]

	switch {
	case item.ID == 0 || item.ID > s.counters.ItemID:
		return fmt.Errorf("%w: item id %d out of range", ErrInconsistentState, item.ID)
	case exists:
		return fmt.Errorf("%w: duplicate item id %d", ErrInconsistentState, item.ID)
	case item.UnitsTotal <= 0:
		return fmt.Errorf("%w: item %d has no units", ErrInconsistentState, item.ID)
	case item.UnitsAvailable < 0 || item.UnitsAvailable > item.UnitsTotal:
		return fmt.Errorf("%w: item %d has %d of %d units available",
			ErrInconsistentState, item.ID, item.UnitsAvailable, item.UnitsTotal)
	}

	return nil
}

func checkRestoredHold(s *State, hold Hold) error {
	if hold.ID == 0 || hold.ID > s.counters.HoldID {
		return fmt.Errorf("%w: hold id %d out of range", ErrInconsistentState, hold.ID)
	}

	if _, exists := s.holds[hold.ID]; exists {
		return fmt.Errorf("%w: duplicate hold id %d", ErrInconsistentState, hold.ID)
	}

	if _, exists := s.items[hold.ItemID]; !exists {
		return fmt.Errorf("%w: hold %d references unknown item %d", ErrInconsistentState, hold.ID, hold.ItemID)
	}

	if hold.Position == 0 {
		return fmt.Errorf("%w: hold %d has no position", ErrInconsistentState, hold.ID)
	}

	if key, err := NormalizeRequesterKey(string(hold.RequesterKey)); err != nil || key != hold.RequesterKey {
		return fmt.Errorf("%w: hold %d has an invalid requester key", ErrInconsistentState, hold.ID)
	}

	if queue := s.queues[hold.ItemID]; len(queue) > 0 {
		previous := s.holds[queue[len(queue)-1]]

		if previous.Position == hold.Position {
			return fmt.Errorf("%w: position %d is taken twice for item %d", ErrInconsistentState, hold.Position, hold.ItemID)
		}

		// holds are visited in position order, so ids must rise as well
		if previous.ID > hold.ID {
			return fmt.Errorf("%w: hold %d is ranked behind the later hold %d on item %d",
				ErrInconsistentState, hold.ID, previous.ID, hold.ItemID)
		}
	}

	if !hold.Fulfilled {
		if _, exists := s.active[activeHoldKey{itemID: hold.ItemID, key: hold.RequesterKey}]; exists {
			return fmt.Errorf("%w: requester has two active holds for item %d", ErrInconsistentState, hold.ItemID)
		}
	}

	return nil
}

// Clone returns a deep copy that can be mutated without affecting the receiver.
func (s *State) Clone() *State {
	c := &State{
		counters: s.counters,
		items:    make(map[ItemID]Item, len(s.items)),
		holds:    make(map[HoldID]Hold, len(s.holds)),
		queues:   make(map[ItemID][]HoldID, len(s.queues)),
		active:   make(map[activeHoldKey]HoldID, len(s.active)),
	}

	for id, item := range s.items {
		c.items[id] = item
	}

	for id, hold := range s.holds {
		c.holds[id] = hold
	}

	for id, queue := range s.queues {
		c.queues[id] = slices.Clone(queue)
	}

	for key, id := range s.active {
		c.active[key] = id
	}

	return c
}

// Counters returns the last identifiers handed out.
func (s *State) Counters() Counters {
	return s.counters
}

// Item returns the item with the given id.
func (s *State) Item(id ItemID) (Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Items returns all items ordered by id.
func (s *State) Items() []Item {
	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items
}

// Hold returns the hold with the given id.
func (s *State) Hold(id HoldID) (Hold, bool) {
	hold, ok := s.holds[id]
	return hold, ok
}

// Holds returns all holds ordered by id.
func (s *State) Holds() []Hold {
	holds := make([]Hold, 0, len(s.holds))
	for _, hold := range s.holds {
		holds = append(holds, hold)
	}

	sort.Slice(holds, func(i, j int) bool { return holds[i].ID < holds[j].ID })

	return holds
}

// Queue returns all holds of an item in ascending position order, including frozen and fulfilled ones.
func (s *State) Queue(itemID ItemID) []Hold {
	ids := s.queues[itemID]
	queue := make([]Hold, 0, len(ids))

	for _, id := range ids {
		queue = append(queue, s.holds[id])
	}

	return queue
}

// HoldsByRequester returns all holds of a requester ordered by item id, then position.
func (s *State) HoldsByRequester(key RequesterKey) []Hold {
	holds := make([]Hold, 0)
	for _, hold := range s.holds {
		if hold.RequesterKey == key {
			holds = append(holds, hold)
		}
	}

	sort.Slice(holds, func(i, j int) bool {
		if holds[i].ItemID != holds[j].ItemID {
			return holds[i].ItemID < holds[j].ItemID
		}

		return holds[i].Position < holds[j].Position
	})

	return holds
}

// ActiveHold returns the unfulfilled hold of a requester for an item, if there is one.
func (s *State) ActiveHold(itemID ItemID, key RequesterKey) (Hold, bool) {
	id, ok := s.active[activeHoldKey{itemID: itemID, key: key}]
	if !ok {
		return Hold{}, false
	}

	return s.holds[id], true
}

// AddItem creates an item with all units available and the next item id.
func (s *State) AddItem(title string, unitsTotal int) Item {
	s.counters.ItemID++

	item := Item{
		ID:             s.counters.ItemID,
		Title:          title,
		UnitsTotal:     unitsTotal,
		UnitsAvailable: unitsTotal,
	}
	s.items[item.ID] = item

	return item
}

// AddHold appends an active hold to the item's queue.
// The position is the highest existing position of the item plus one, so it stays unique
// even if holds ever get removed. The caller must ensure the item exists and the requester
// has no active hold for it.
func (s *State) AddHold(itemID ItemID, key RequesterKey) Hold {
	s.counters.HoldID++

	var position Position = 1
	if queue := s.queues[itemID]; len(queue) > 0 {
		position = s.holds[queue[len(queue)-1]].Position + 1
	}

	hold := Hold{
		ID:           s.counters.HoldID,
		ItemID:       itemID,
		RequesterKey: key,
		Position:     position,
	}

	s.holds[hold.ID] = hold
	s.queues[itemID] = append(s.queues[itemID], hold.ID)
	s.active[activeHoldKey{itemID: itemID, key: key}] = hold.ID

	return hold
}

// PutItem replaces an existing item. Identity and unit total are kept from the stored item.
func (s *State) PutItem(item Item) {
	stored, ok := s.items[item.ID]
	if !ok {
		return
	}

	stored.UnitsAvailable = item.UnitsAvailable
	s.items[item.ID] = stored
}

// PutHold replaces an existing hold. Only the frozen and fulfilled flags are taken over,
// and a fulfilled hold never becomes unfulfilled again.
func (s *State) PutHold(hold Hold) {
	stored, ok := s.holds[hold.ID]
	if !ok {
		return
	}

	stored.Frozen = hold.Frozen
	if hold.Fulfilled && !stored.Fulfilled {
		stored.Fulfilled = true
		delete(s.active, activeHoldKey{itemID: stored.ItemID, key: stored.RequesterKey})
	}

	s.holds[hold.ID] = stored
}
