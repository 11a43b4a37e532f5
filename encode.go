package costcalc

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for Entry.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", e.Category)
	w.Append("description", e.Description)
	w.Append("cost", e.Cost)
	return w.MarshalJSON()
}

// indexedEntry is an entry with its position, as displayed.
type indexedEntry struct {
	index int
	Entry
}

func (e indexedEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("index", e.index)
	w.EmbedFrom(e.Entry)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Ledger. The total
// is computed at marshal time.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	entries := make([]indexedEntry, 0, l.Len())
	for i, e := range l.All() {
		entries = append(entries, indexedEntry{index: i, Entry: e})
	}
	var w jsonObjectWriter
	w.Append("currency", l.currency)
	w.Append("entries", entries)
	w.Append("total", l.Total())
	return w.MarshalJSON()
}

// EncodeLedger writes the ledger as a single line of JSON.
func EncodeLedger(w io.Writer, l *Ledger) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("could not write ledger: %w", err)
	}
	return nil
}
