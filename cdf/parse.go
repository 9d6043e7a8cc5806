package cdf

import (
	"fmt"
	"sort"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf/defs"
	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// decodePayload decodes a definition's layout at off and detaches the raw
// bytes from the blob, so instances stay valid after the working buffer is
// replaced.
func decodePayload(def *defs.Def, blob []byte, off int) ([]format.Value, []byte, error) {
	values, raw, err := format.DecodePayload(def.Layout, blob, off)
	if err != nil {
		return nil, nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return values, out, nil
}

// Parse scans blob for every definition in the table and returns the decoded
// field instances.
//
// For each definition, markers are discovered by a strict left-to-right scan
// and occurrence indices assigned in that order, so re-parsing an identical
// blob always yields identical numbering. The returned collection is sorted
// by (section, name, occurrence), not by file offset, so grouped views stay
// stable regardless of where fields sit in the file.
//
// Any single payload decode failure aborts the whole parse; no partial
// instance list is returned.
func Parse(blob []byte, table *defs.Table) ([]*FieldInstance, error) {
	var instances []*FieldInstance
	occ := make(map[string]int)

	for _, def := range table.Defs() {
		positions := FindAll(blob, def.Marker)
		if len(positions) == 0 {
			continue
		}
		triple := def.Triple()
		for _, pos := range positions {
			n := occ[triple]
			occ[triple] = n + 1

			valOff := pos + len(def.Marker)
			values, raw, err := decodePayload(def, blob, valOff)
			if err != nil {
				return nil, fmt.Errorf("cdf: %s/%s #%d at %#x: %w",
					def.Section, def.Name, n, pos, err)
			}
			instances = append(instances, &FieldInstance{
				Def:          def,
				Occurrence:   n,
				MarkerOffset: pos,
				ValueOffset:  valOff,
				Raw:          raw,
				Values:       values,
			})
		}
	}

	sort.SliceStable(instances, func(i, j int) bool {
		a, b := instances[i], instances[j]
		if a.Def.Section != b.Def.Section {
			return a.Def.Section < b.Def.Section
		}
		if a.Def.Name != b.Def.Name {
			return a.Def.Name < b.Def.Name
		}
		return a.Occurrence < b.Occurrence
	})
	return instances, nil
}
