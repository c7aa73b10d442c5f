package userstate

import "sync"

// MaxCompare bounds the side-by-side selection.
const MaxCompare = 3

// AddResult is the informational outcome of an add. Neither a duplicate
// nor a full list is an error.
type AddResult int

const (
	Added AddResult = iota
	AlreadyInList
	LimitReached
)

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case AlreadyInList:
		return "already_in_list"
	case LimitReached:
		return "limit_reached"
	}
	return "unknown"
}

// Compare is the bounded ordered selection of listings for comparison.
// It lives in memory only; the list does not survive a restart. Instances
// are shared across requests of one profile, so mutations take a lock.
type Compare struct {
	mu  sync.Mutex
	ids []string
}

func NewCompare() *Compare { return &Compare{} }

// Add appends the id unless it is already present or the list is full.
// The duplicate check wins over the limit check, so re-adding a selected
// listing never reports limit_reached.
func (c *Compare) Add(id string) AddResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.ids {
		if v == id {
			return AlreadyInList
		}
	}
	if len(c.ids) >= MaxCompare {
		return LimitReached
	}
	c.ids = append(c.ids, id)
	return Added
}

// Remove drops the id if present; removing an absent id is a no-op.
func (c *Compare) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, v := range c.ids {
		if v == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			return
		}
	}
}

func (c *Compare) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (c *Compare) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = nil
}

func (c *Compare) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ids)
}

func (c *Compare) CanAddMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ids) < MaxCompare
}

// List returns the ids in insertion order, which is also the comparison
// table column order.
func (c *Compare) List() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.ids...)
}
