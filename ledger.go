package costcalc

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned when a ledger position does not exist.
var ErrIndexOutOfRange = errors.New("index out of range")

// Entry is a computed cost in a ledger.
//
// Entries are values: they are created by Ledger.Add and never change.
type Entry struct {
	Category    Category
	Description string
	Cost        Money
}

// Ledger represents an ordered list of cost entries.
//
// Insertion order is display order. Positions are dense and zero based, a
// removal shifts every following entry one position to the left, so positions
// held before a removal must not be reused.
type Ledger struct {
	entries  []Entry
	currency string
}

// NewLedger creates an empty ledger whose amounts are in currency.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		entries:  make([]Entry, 0),
		currency: currency,
	}
}

// Currency returns the currency of the ledger amounts.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Add computes the cost of basis for days with margin, appends it as a new
// entry and returns it.
func (l *Ledger) Add(description string, basis Basis, days Quantity, margin Percent) Entry {
	e := Entry{
		Category:    basis.Category(),
		Description: description,
		Cost:        CalculateBasis(basis, days, margin).In(l.currency),
	}
	l.entries = append(l.entries, e)
	return e
}

// Entry returns the entry at index.
func (l *Ledger) Entry(index int) (Entry, error) {
	if err := l.checkIndex(index); err != nil {
		return Entry{}, err
	}
	return l.entries[index], nil
}

// Remove deletes the entry at index and returns it.
func (l *Ledger) Remove(index int) (Entry, error) {
	if err := l.checkIndex(index); err != nil {
		return Entry{}, err
	}
	e := l.entries[index]
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	return e, nil
}

// Clear removes all entries.
func (l *Ledger) Clear() {
	l.entries = make([]Entry, 0)
}

// Total returns the sum of all entries' cost. It is zero for an empty ledger.
func (l *Ledger) Total() Money {
	total := M(0, l.currency)
	for _, e := range l.entries {
		total = total.Add(e.Cost)
	}
	return total
}

// All iterates over the entries and their position.
func (l *Ledger) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

func (l *Ledger) checkIndex(index int) error {
	if index < 0 || index >= len(l.entries) {
		return fmt.Errorf("entry %d: %w (ledger has %d entries)", index, ErrIndexOutOfRange, len(l.entries))
	}
	return nil
}
