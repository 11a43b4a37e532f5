package renderer

import (
	"github.com/etnz/costcalc"
)

// Title is the heading of the ledger view.
const Title = "Campaign Cost Calculator"

// Ledger is the display form of a costcalc.Ledger.
type Ledger struct {
	Title    string
	Currency string
	Entries  []Entry
	Total    string
}

// Entry is the display form of a costcalc.Entry.
type Entry struct {
	Index       int
	Category    string
	Description string
	Cost        string
}

// NewLedger builds the display form of l. Amounts are rounded to the
// currency's minor unit and grouped with costcalc.Format.
func NewLedger(l *costcalc.Ledger) *Ledger {
	v := &Ledger{
		Title:    Title,
		Currency: l.Currency(),
		Entries:  make([]Entry, 0, l.Len()),
		Total:    l.Total().String(),
	}
	for i, e := range l.All() {
		v.Entries = append(v.Entries, NewEntry(i, e))
	}
	return v
}

// NewEntry builds the display form of the entry e found at index.
func NewEntry(index int, e costcalc.Entry) Entry {
	return Entry{
		Index:       index,
		Category:    string(e.Category),
		Description: e.Description,
		Cost:        e.Cost.String(),
	}
}
