package model

import (
	"errors"
	"fmt"
)

// Item is the domain model for a todo entry.
// The JSON field names are the on-disk format; don't rename them.
type Item struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// ErrIndexOutOfRange is returned when a position does not address an item.
var ErrIndexOutOfRange = errors.New("index out of range")

// String renders the item as "[x] name" or "[ ] name".
func (it Item) String() string {
	if it.Completed {
		return "[x] " + it.Name
	}
	return "[ ] " + it.Name
}

// Add appends a new, not yet completed item.
func Add(items []Item, name string) []Item {
	return append(items, Item{Name: name})
}

// Toggle flips the completed flag of the item at idx in place.
func Toggle(items []Item, idx int) error {
	if err := checkIndex(items, idx); err != nil {
		return err
	}
	items[idx].Completed = !items[idx].Completed
	return nil
}

// Remove deletes the item at idx, keeping the order of the rest.
func Remove(items []Item, idx int) ([]Item, error) {
	if err := checkIndex(items, idx); err != nil {
		return items, err
	}
	return append(items[:idx], items[idx+1:]...), nil
}

// Stats counts completed and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func checkIndex(items []Item, idx int) error {
	if idx < 0 || idx >= len(items) {
		return fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(items), idx)
	}
	return nil
}
