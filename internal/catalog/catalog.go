// Package catalog holds the fixed, ordered list of statuses a card can show.
//
// A Catalog is immutable once built: there are no mutation operations and
// accessors hand out copies. The built-in catalog is returned by Default;
// custom catalogs can be loaded from YAML or TOML files with LoadFile.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/workcheck/internal/errors"
)

// Catalog is an immutable, non-empty ordered sequence of entries.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from the given entries. It fails when no entries are
// given or when an entry has no message.
func New(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCatalog,
			"Catalog has no statuses",
			"Add at least one entry under 'statuses'")
	}
	for i, e := range entries {
		if strings.TrimSpace(e.message) == "" {
			return nil, errors.New(errors.ErrCatalog,
				fmt.Sprintf("Status #%d has an empty message", i+1),
				"Every status needs a message to display")
		}
		if e.answer != AnswerFor(e.working) {
			return nil, errors.New(errors.ErrCatalog,
				fmt.Sprintf("Status #%d was not built with NewEntry", i+1),
				"Construct entries with catalog.NewEntry")
		}
	}

	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return &Catalog{entries: owned}, nil
}

// Len returns the number of entries. Always at least 1.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i. It panics when i is out of range, like a slice.
func (c *Catalog) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// CountWorking returns how many entries are affirmative.
func (c *Catalog) CountWorking() int {
	n := 0
	for _, e := range c.entries {
		if e.working {
			n++
		}
	}
	return n
}

var defaultEntries = []Entry{
	NewEntry(true, "Restoring immutable backups... please wait.", "Database"),
	NewEntry(true, "Fighting with the Veeam API.", "Terminal"),
	NewEntry(true, "Compiling VBRCommander. Do not disturb.", "Cpu"),
	NewEntry(true, "On a Zoom call that could have been an email.", "Video"),
	NewEntry(true, "Troubleshooting a Zigbee network failure.", "Wifi"),
	NewEntry(true, "Writing documentation (just kidding, he's debugging).", "FileText"),
	NewEntry(true, "Deploying to the Cloud... slowly.", "Cloud"),
	NewEntry(false, "Gone to Two Thumbs for a 'meeting'.", "Beer"),
	NewEntry(false, "Tinkering with Home Assistant (again).", "Home"),
	NewEntry(false, "Packet loss detected. Brain buffering.", "AlertTriangle"),
	NewEntry(false, "Error 418: I'm a teapot.", "Coffee"),
	NewEntry(false, "Charging the EV. Taking a nap.", "BatteryCharging"),
	NewEntry(false, "Scouring the Op Shops for vintage tech.", "ShoppingBag"),
	NewEntry(false, "Latency too high. Try again tomorrow.", "Clock"),
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultEntries...)
	if err != nil {
		panic(err)
	}
	return c
}
