package main

import (
	"fmt"
	"testing"
)

func TestDumpCommand(t *testing.T) {
	resetFlags()
	dumpStart = "0"
	dumpLength = 0
	dumpNoAnnotate = false

	output, err := captureOutput(t, func() error {
		return runDump([]string{testFile(t, false)})
	})
	if err != nil {
		t.Fatalf("runDump() error = %v", err)
	}
	assertContains(t, output, []string{"00000000", "|", "<- GENERAL/Mass#0"})
}

func TestDumpCommandRange(t *testing.T) {
	resetFlags()
	dumpStart = "0x10"
	dumpLength = 16
	dumpNoAnnotate = true

	output, err := captureOutput(t, func() error {
		return runDump([]string{testFile(t, false)})
	})
	if err != nil {
		t.Fatalf("runDump() error = %v", err)
	}
	assertContains(t, output, []string{"00000010"})
	assertNotContains(t, output, []string{"00000000  ", "00000020", "<-"})
}

func TestResolveCommand(t *testing.T) {
	resetFlags()
	path := testFile(t, false)

	// First mid byte is the Mass marker.
	output, err := captureOutput(t, func() error {
		return runResolve([]string{path, "0x28"})
	})
	if err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}
	assertContains(t, output, []string{"GENERAL/Mass#0", "marker", "payload"})

	// Header offsets resolve to nothing.
	output, err = captureOutput(t, func() error {
		return runResolve([]string{path, "0"})
	})
	if err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}
	assertContains(t, output, []string{"no known field"})
}

func TestResolveCommandJSON(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runResolve([]string{testFile(t, false), fmt.Sprintf("%d", 0x28)})
	})
	if err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{"\"known\": true", "\"name\": \"Mass\""})
}
