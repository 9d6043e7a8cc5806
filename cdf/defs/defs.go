// Package defs holds CDFbin field definition tables. A definition table is
// externally supplied configuration, not something derived from a file: each
// entry names a field, the section it belongs to, the exact marker byte
// sequence that locates it, and the scalar layout of the payload that follows
// the marker.
//
// Names are not unique across the table; two sections may both carry a field
// called "Setting". The identity of a definition is the full
// (section, name, marker) triple, and tables reject duplicate triples at
// construction time.
package defs

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// Def is one immutable field definition.
type Def struct {
	Name    string
	Section string
	Marker  []byte
	Layout  format.Layout
	Notes   string
}

// MarkerHex returns the marker as lowercase hex without separators. It is
// the stable textual identity of the marker used in instance keys.
func (d *Def) MarkerHex() string {
	return hex.EncodeToString(d.Marker)
}

// Triple returns the identity triple of the definition.
func (d *Def) Triple() string {
	return d.Section + "/" + d.Name + "/" + d.MarkerHex()
}

// Table is a validated, immutable collection of definitions.
type Table struct {
	defs []*Def
}

// NewTable validates the definitions and returns a table. Every marker must
// be non-empty and every (section, name, marker) triple unique.
func NewTable(list []*Def) (*Table, error) {
	seen := make(map[string]struct{}, len(list))
	for i, d := range list {
		if d.Name == "" {
			return nil, fmt.Errorf("defs: entry %d has no name", i)
		}
		if len(d.Marker) == 0 {
			return nil, fmt.Errorf("defs: %s/%s has an empty marker", d.Section, d.Name)
		}
		key := d.Triple()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("defs: duplicate definition %s", key)
		}
		seen[key] = struct{}{}
	}
	out := make([]*Def, len(list))
	copy(out, list)
	return &Table{defs: out}, nil
}

// Defs returns the definitions in table order.
func (t *Table) Defs() []*Def { return t.defs }

// Len returns the number of definitions.
func (t *Table) Len() int { return len(t.defs) }

// ParseMarker parses a marker spelled as hex bytes, with or without
// separating spaces: "24 BB B3 9F 0B" or "24bbb39f0b".
func ParseMarker(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", "\t", "", ",", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return nil, fmt.Errorf("defs: empty marker")
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("defs: bad marker %q: %w", s, err)
	}
	return b, nil
}

// mustMarker is the builtin-table constructor; it panics on bad hex, which
// can only happen from a typo in this package.
func mustMarker(s string) []byte {
	b, err := ParseMarker(s)
	if err != nil {
		panic(err)
	}
	return b
}
