package cdf

import "sort"

// Range is one known byte span [Start, End) owned by a field instance:
// either its marker bytes or its non-empty payload bytes.
type Range struct {
	Start int
	End   int
	Key   Key
}

// Ranges is the offset index built from a parse. It powers reverse
// navigation (byte offset -> logical field) without re-scanning the blob.
// It is rebuilt from scratch after every parse; it never survives an edit.
type Ranges struct {
	spans []Range
}

// BuildRanges indexes every marker span and every non-empty payload span.
// Spans are sorted by ascending start offset; the sort is stable so spans
// with equal starts keep insertion order.
func BuildRanges(instances []*FieldInstance) *Ranges {
	spans := make([]Range, 0, 2*len(instances))
	for _, inst := range instances {
		key := inst.Key()
		if len(inst.Def.Marker) > 0 {
			spans = append(spans, Range{Start: inst.MarkerOffset, End: inst.MarkerEnd(), Key: key})
		}
		if len(inst.Raw) > 0 {
			spans = append(spans, Range{Start: inst.ValueOffset, End: inst.ValueEnd(), Key: key})
		}
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return &Ranges{spans: spans}
}

// Resolve returns the key of the first span (by ascending start offset)
// containing off. When two definitions' spans overlap in the raw bytes the
// earliest-starting span wins; the index does not resolve such collisions
// further.
func (r *Ranges) Resolve(off int) (Key, bool) {
	for _, s := range r.spans {
		if s.Start > off {
			break
		}
		if off < s.End {
			return s.Key, true
		}
	}
	return Key{}, false
}

// Spans returns the sorted span table.
func (r *Ranges) Spans() []Range { return r.spans }

// Len returns the number of indexed spans.
func (r *Ranges) Len() int { return len(r.spans) }
