// Package printer renders hex dumps and field tables for terminal output.
package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf"
)

// Options controls a hex dump.
type Options struct {
	// BytesPerLine is the number of bytes per output row. Zero means 16.
	BytesPerLine int

	// Start is the first offset to dump.
	Start int

	// Length limits the dump; zero means to the end of the blob.
	Length int

	// Annotate, when non-nil, maps an offset to a label printed at the end
	// of the first row that enters the labelled span.
	Annotate func(off int) (string, bool)
}

// DefaultOptions dumps the whole blob, 16 bytes per row, unannotated.
func DefaultOptions() Options {
	return Options{BytesPerLine: 16}
}

// Dump writes a classic offset/hex/ascii dump:
//
//	00000040  43 44 46 62 69 6e 00 00 01 00 00 00 0a 28 5c 3f  |CDFbin.......(\?|
func Dump(w io.Writer, blob []byte, opts Options) error {
	per := opts.BytesPerLine
	if per <= 0 {
		per = 16
	}
	start := opts.Start
	if start < 0 {
		start = 0
	}
	if start > len(blob) {
		start = len(blob)
	}
	end := len(blob)
	if opts.Length > 0 && start+opts.Length < end {
		end = start + opts.Length
	}

	hexWidth := per*3 - 1
	var lastLabel string

	for off := start; off < end; off += per {
		lineEnd := off + per
		if lineEnd > end {
			lineEnd = end
		}
		line := blob[off:lineEnd]

		var hexPart strings.Builder
		var asciiPart strings.Builder
		for i, b := range line {
			if i > 0 {
				hexPart.WriteByte(' ')
			}
			fmt.Fprintf(&hexPart, "%02x", b)
			if b >= 0x20 && b < 0x7f {
				asciiPart.WriteByte(b)
			} else {
				asciiPart.WriteByte('.')
			}
		}

		annotation := ""
		if opts.Annotate != nil {
			for i := range line {
				if label, ok := opts.Annotate(off + i); ok {
					if label != lastLabel {
						annotation = "  <- " + label
						lastLabel = label
					}
					break
				}
			}
		}

		if _, err := fmt.Fprintf(w, "%08X  %-*s  |%s|%s\n",
			off, hexWidth, hexPart.String(), asciiPart.String(), annotation); err != nil {
			return err
		}
	}
	return nil
}

// FieldTable writes one aligned row per instance: key, offsets, layout and
// decoded values.
func FieldTable(w io.Writer, instances []*cdf.FieldInstance) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tNAME\t#\tMARKER\tVALUE OFF\tLAYOUT\tVALUE")
	for _, inst := range instances {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%#x\t%#x\t%s\t%s\n",
			inst.Def.Section, inst.Def.Name, inst.Occurrence,
			inst.MarkerOffset, inst.ValueOffset,
			inst.Def.Layout.String(), inst.FormatValues())
	}
	return tw.Flush()
}
