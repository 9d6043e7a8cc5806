package main

import (
	"testing"
)

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name        string
		corrupt     bool
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "clean file",
			wantContain: []string{"Registers consistent"},
		},
		{
			name:        "stale file length register",
			corrupt:     true,
			wantErr:     true,
			wantContain: []string{"R0 mismatch", "Suggested fix"},
		},
		{
			name:        "clean file as JSON",
			wantJSON:    true,
			wantContain: []string{"\"ok\": true", "\"r0_file_len\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, func() error {
				return runCheck([]string{testFile(t, tt.corrupt)})
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("runCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestRepairCommand(t *testing.T) {
	resetFlags()
	path := testFile(t, true)

	output, err := captureOutput(t, func() error {
		repairDryRun = false
		repairNoBackup = true
		return runRepair([]string{path})
	})
	if err != nil {
		t.Fatalf("runRepair() error = %v", err)
	}
	assertContains(t, output, []string{"Repair applied"})

	// The file is consistent afterwards.
	output, err = captureOutput(t, func() error {
		return runCheck([]string{path})
	})
	if err != nil {
		t.Fatalf("runCheck() after repair error = %v\n%s", err, output)
	}
}

func TestRepairCommandNothingToDo(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		repairDryRun = false
		repairNoBackup = true
		return runRepair([]string{testFile(t, false)})
	})
	if err != nil {
		t.Fatalf("runRepair() error = %v", err)
	}
	assertContains(t, output, []string{"nothing to repair"})
}

func TestRepairCommandDryRun(t *testing.T) {
	resetFlags()
	path := testFile(t, true)
	output, err := captureOutput(t, func() error {
		repairDryRun = true
		repairNoBackup = true
		return runRepair([]string{path})
	})
	if err != nil {
		t.Fatalf("runRepair() error = %v", err)
	}
	assertContains(t, output, []string{"Dry-run"})

	// Still broken on disk.
	_, err = captureOutput(t, func() error {
		return runCheck([]string{path})
	})
	if err == nil {
		t.Fatal("expected check to still fail after dry-run")
	}
}
