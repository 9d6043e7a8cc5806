package main

import (
	"fmt"
	"strconv"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf"
)

// openSession loads the definition table and opens a session on path.
func openSession(path string) (*cdf.Session, error) {
	table, err := loadTable()
	if err != nil {
		return nil, err
	}
	logger.Debug("opening file", "path", path)
	s, err := cdf.Open(path, table)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed file", "bytes", s.Len(), "instances", len(s.Instances()))
	return s, nil
}

// saveSession backs up the on-disk file and writes the working buffer back.
// The backup captures the pre-edit bytes, so it runs before Save.
func saveSession(s *cdf.Session, noBackup bool) error {
	if !noBackup {
		backupPath, err := backupFile(s.Path())
		if err != nil {
			return err
		}
		printInfo("Backup: %s\n", backupPath)
	}
	return s.Save("")
}

// parseOffset accepts decimal or 0x-prefixed hex offsets.
func parseOffset(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	return int(v), nil
}

// instanceJSON is the JSON shape shared by fields and get.
type instanceJSON struct {
	Section      string   `json:"section"`
	Name         string   `json:"name"`
	Occurrence   int      `json:"occurrence"`
	Marker       string   `json:"marker"`
	MarkerOffset int      `json:"marker_offset"`
	ValueOffset  int      `json:"value_offset"`
	Layout       string   `json:"layout"`
	Values       []string `json:"values"`
	Notes        string   `json:"notes,omitempty"`
}

func instanceToJSON(inst *cdf.FieldInstance) instanceJSON {
	values := make([]string, len(inst.Values))
	for i, v := range inst.Values {
		values[i] = v.String()
	}
	return instanceJSON{
		Section:      inst.Def.Section,
		Name:         inst.Def.Name,
		Occurrence:   inst.Occurrence,
		Marker:       inst.Def.MarkerHex(),
		MarkerOffset: inst.MarkerOffset,
		ValueOffset:  inst.ValueOffset,
		Layout:       inst.Def.Layout.String(),
		Values:       values,
		Notes:        inst.Def.Notes,
	}
}
