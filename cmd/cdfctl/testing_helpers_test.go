package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf/defs"
	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// testFile writes a synthetic setup file carrying a few builtin fields and
// returns its path. Registers are consistent unless corrupt is set, in which
// case R0 is stale.
func testFile(t *testing.T, corrupt bool) string {
	t.Helper()

	var mid []byte
	appendField := func(name string, payload []byte) {
		for _, d := range defs.Builtin().Defs() {
			if d.Section == "GENERAL" && d.Name == name {
				mid = append(mid, d.Marker...)
				mid = append(mid, payload...)
				return
			}
		}
		t.Fatalf("no builtin definition GENERAL/%s", name)
	}

	mass := make([]byte, 4)
	format.PutF32(mass, 0, 755.5)
	appendField("Mass", mass)
	appendField("FuelSetting", []byte{30})
	appendField("Symmetric", []byte{1})

	end := []byte{0xDE, 0xAD}
	total := format.HeaderSize + len(mid) + len(end)
	blob := make([]byte, total)
	format.PutU32(blob, format.RegFileLenOffset, uint32(total))
	format.PutU32(blob, format.RegMidLenOffset, uint32(len(mid)))
	format.PutU32(blob, format.RegEndLenOffset, uint32(len(end)))
	format.PutU32(blob, format.RegEndStartOffset, uint32(format.HeaderSize+len(mid)))
	copy(blob[format.HeaderSize:], mid)
	copy(blob[format.HeaderSize+len(mid):], end)

	if corrupt {
		format.PutU32(blob, format.RegFileLenOffset, uint32(total-10))
	}

	path := filepath.Join(t.TempDir(), "car.cdfbin")
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// resetFlags restores the global flag state between table entries.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	defsPath = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
