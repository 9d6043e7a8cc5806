package cdf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf/defs"
	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// ErrFileChanged indicates the file on disk no longer matches the bytes this
// session was loaded from. Saving over foreign edits would destroy them, so
// the session refuses; re-open to pick up the new content.
var ErrFileChanged = errors.New("cdf: file changed on disk since load")

// InconsistentRegistersError is returned by Save when the byte-count
// registers fail validation and no automatic repair can be derived.
type InconsistentRegistersError struct {
	Check *RegisterCheck
}

func (e *InconsistentRegistersError) Error() string {
	return fmt.Sprintf("cdf: registers inconsistent and not automatically repairable: %s",
		strings.Join(e.Check.Problems, "; "))
}

// Session owns one working buffer for the open/edit/save cycle of a single
// CDFbin file. The core holds no process-wide state: a host owns the session
// and passes it into each operation. A session is not safe for concurrent
// use; callers apply one edit at a time.
//
// The original buffer captured at load never changes and backs revert
// operations. Every successful mutation replaces the working buffer and
// rebuilds the instance list and the offset range index from scratch.
type Session struct {
	path        string
	table       *defs.Table
	original    []byte
	working     []byte
	fingerprint uint64

	instances []*FieldInstance
	ranges    *Ranges
	edited    map[Key]struct{}
}

// NewSession builds a session around an already-loaded blob and parses it.
func NewSession(path string, blob []byte, table *defs.Table) (*Session, error) {
	original := make([]byte, len(blob))
	copy(original, blob)
	s := &Session{
		path:        path,
		table:       table,
		original:    original,
		working:     original,
		fingerprint: xxhash.Sum64(original),
		edited:      make(map[Key]struct{}),
	}
	if err := s.reparse(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open loads the file at path and builds a session around it.
func Open(path string, table *defs.Table) (*Session, error) {
	blob, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return NewSession(path, blob, table)
}

// reparse rebuilds all derived state from the working buffer. On failure the
// previous state is kept, matching the mutation entry points that only swap
// the buffer in after a successful parse.
func (s *Session) reparse() error {
	instances, err := Parse(s.working, s.table)
	if err != nil {
		return err
	}
	s.instances = instances
	s.ranges = BuildRanges(instances)
	return nil
}

// Path returns the file path this session was opened from.
func (s *Session) Path() string { return s.path }

// Len returns the buffer length. Edits never change it.
func (s *Session) Len() int { return len(s.working) }

// Working returns the working buffer. Callers must not mutate it.
func (s *Session) Working() []byte { return s.working }

// Original returns the pristine buffer captured at load time.
func (s *Session) Original() []byte { return s.original }

// Fingerprint returns the xxhash digest of the original buffer.
func (s *Session) Fingerprint() uint64 { return s.fingerprint }

// Instances returns the parsed instances, sorted by (section, name,
// occurrence).
func (s *Session) Instances() []*FieldInstance { return s.instances }

// Ranges returns the offset range index for the current working buffer.
func (s *Session) Ranges() *Ranges { return s.ranges }

// Resolve maps an absolute byte offset to the owning instance key.
func (s *Session) Resolve(off int) (Key, bool) { return s.ranges.Resolve(off) }

// Find returns the instance with the given key in the current parse.
func (s *Session) Find(key Key) (*FieldInstance, bool) {
	for _, inst := range s.instances {
		if inst.Key() == key {
			return inst, true
		}
	}
	return nil, false
}

// Lookup returns the instance for (section, name, occurrence), ignoring the
// marker component of the key. It reports an error when the triple is
// ambiguous, which can only happen if two definitions share a section and
// name with different markers and both occur in the file.
func (s *Session) Lookup(section, name string, occurrence int) (*FieldInstance, error) {
	var found *FieldInstance
	for _, inst := range s.instances {
		if inst.Def.Section != section || inst.Def.Name != name || inst.Occurrence != occurrence {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("cdf: %s/%s#%d is ambiguous: markers %s and %s both match",
				section, name, occurrence, found.Def.MarkerHex(), inst.Def.MarkerHex())
		}
		found = inst
	}
	if found == nil {
		return nil, fmt.Errorf("cdf: no instance %s/%s#%d", section, name, occurrence)
	}
	return found, nil
}

// Edited returns the keys of instances edited since load, in parse order.
func (s *Session) Edited() []Key {
	var out []Key
	for _, inst := range s.instances {
		if _, ok := s.edited[inst.Key()]; ok {
			out = append(out, inst.Key())
		}
	}
	return out
}

// CheckRegisters validates the working buffer's byte-count registers.
func (s *Session) CheckRegisters() (*RegisterCheck, error) {
	return CheckRegisters(s.working)
}

// ApplyRegisterFix writes the suggested register set into the header.
func (s *Session) ApplyRegisterFix(fix *Registers) error {
	out, err := ApplyRegisterFix(s.working, fix)
	if err != nil {
		return err
	}
	return s.commit(out)
}

// EditField applies a structured in-place edit to the instance with key.
func (s *Session) EditField(key Key, values []format.Value) error {
	inst, ok := s.Find(key)
	if !ok {
		return fmt.Errorf("cdf: no instance %s in current parse", key)
	}
	out, err := EditField(s.working, inst, values)
	if err != nil {
		return err
	}
	if err := s.commit(out); err != nil {
		return err
	}
	s.edited[key] = struct{}{}
	return nil
}

// OverwriteRange applies a raw in-place byte overwrite.
func (s *Session) OverwriteRange(start, length int, newBytes []byte) error {
	out, err := OverwriteRange(s.working, start, length, newBytes)
	if err != nil {
		return err
	}
	return s.commit(out)
}

// RevertRange restores a byte range from the original buffer.
func (s *Session) RevertRange(start, length int) error {
	out, err := RevertRange(s.working, s.original, start, length)
	if err != nil {
		return err
	}
	return s.commit(out)
}

// RevertField restores one instance's payload from the original buffer and
// clears its edited mark.
func (s *Session) RevertField(key Key) error {
	inst, ok := s.Find(key)
	if !ok {
		return fmt.Errorf("cdf: no instance %s in current parse", key)
	}
	if err := s.RevertRange(inst.ValueOffset, len(inst.Raw)); err != nil {
		return err
	}
	delete(s.edited, key)
	return nil
}

// commit swaps in a mutated buffer and re-derives the whole parsed view.
// There is no incremental patching of instances or ranges: an edit always
// invalidates everything downstream.
func (s *Session) commit(next []byte) error {
	prev := s.working
	s.working = next
	if err := s.reparse(); err != nil {
		s.working = prev
		return err
	}
	return nil
}

// Save validates and writes the working buffer to path (the session path
// when empty).
//
// Saving is refused when the registers are inconsistent and no repair can be
// derived, and when the file on disk no longer hashes to the bytes this
// session loaded (ErrFileChanged). A save with a derivable repair suggestion
// proceeds; accepting or applying the fix stays the caller's decision.
//
// On success the saved bytes become the session's new original state.
func (s *Session) Save(path string) error {
	if path == "" {
		path = s.path
	}

	chk, err := s.CheckRegisters()
	if err != nil {
		return err
	}
	if !chk.OK && chk.Suggested == nil {
		return &InconsistentRegistersError{Check: chk}
	}

	if path == s.path {
		if disk, err := os.ReadFile(path); err == nil {
			if xxhash.Sum64(disk) != s.fingerprint {
				return fmt.Errorf("%s: %w", path, ErrFileChanged)
			}
		}
	}

	if err := os.WriteFile(path, s.working, 0o644); err != nil {
		return fmt.Errorf("cdf: save %s: %w", path, err)
	}

	s.path = path
	s.original = s.working
	s.fingerprint = xxhash.Sum64(s.working)
	s.edited = make(map[Key]struct{})
	return nil
}
