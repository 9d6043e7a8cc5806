package cdf

import (
	"fmt"
	"strings"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf/defs"
	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// Key identifies one field instance across parses of the same blob. The
// marker hex disambiguates equally named fields; the occurrence index is the
// zero-based rank among instances sharing the (section, name, marker) triple,
// ordered by ascending marker offset.
type Key struct {
	Section    string
	Name       string
	MarkerHex  string
	Occurrence int
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s#%d", k.Section, k.Name, k.Occurrence)
}

// FieldInstance is one concrete occurrence of a definition in a blob.
// Instances are transient: they are rebuilt on every parse and must not be
// used against a buffer other than the one they were parsed from.
type FieldInstance struct {
	Def        *defs.Def
	Occurrence int

	// MarkerOffset is the absolute offset of the matched marker;
	// ValueOffset is MarkerOffset + len(marker), the first payload byte.
	MarkerOffset int
	ValueOffset  int

	// Raw holds the payload bytes exactly as found; Values the decoded
	// scalar tuple. len(Raw) always equals Def.Layout.Size().
	Raw    []byte
	Values []format.Value
}

// Key returns the stable identity of this instance.
func (fi *FieldInstance) Key() Key {
	return Key{
		Section:    fi.Def.Section,
		Name:       fi.Def.Name,
		MarkerHex:  fi.Def.MarkerHex(),
		Occurrence: fi.Occurrence,
	}
}

// MarkerEnd returns the exclusive end offset of the marker bytes.
func (fi *FieldInstance) MarkerEnd() int { return fi.MarkerOffset + len(fi.Def.Marker) }

// ValueEnd returns the exclusive end offset of the payload bytes.
func (fi *FieldInstance) ValueEnd() int { return fi.ValueOffset + len(fi.Raw) }

// FormatValues renders the decoded tuple for display: "(marker only)" for
// empty layouts, a bare value for arity one, a parenthesised tuple otherwise.
func (fi *FieldInstance) FormatValues() string {
	if len(fi.Def.Layout) == 0 {
		return "(marker only)"
	}
	if len(fi.Values) == 1 {
		return fi.Values[0].String()
	}
	parts := make([]string, len(fi.Values))
	for i, v := range fi.Values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
