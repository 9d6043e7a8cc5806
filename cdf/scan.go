package cdf

import "bytes"

// FindAll returns every starting offset where needle occurs in blob, in
// ascending order, including overlapping occurrences: after a match at i the
// scan resumes at i+1, not i+len(needle). An absent marker yields an empty
// result, not an error.
func FindAll(blob, needle []byte) []int {
	if len(needle) == 0 || len(needle) > len(blob) {
		return nil
	}
	var out []int
	for i := 0; ; {
		j := bytes.Index(blob[i:], needle)
		if j < 0 {
			return out
		}
		out = append(out, i+j)
		i += j + 1
	}
}
