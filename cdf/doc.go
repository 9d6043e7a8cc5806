// Package cdf parses and edits CDFbin vehicle setup files.
//
// A CDFbin blob has no schema header. Every known field is located by
// scanning for its marker byte sequence (see package defs); the payload of
// fixed-width scalars follows the marker directly. The package exposes:
//
//   - Parse: blob + definition table -> ordered field instances
//   - BuildRanges / Ranges.Resolve: byte offset -> owning field
//   - CheckRegisters / ApplyRegisterFix: header geometry validation and
//     conservative repair
//   - EditField / OverwriteRange / RevertRange: strictly in-place edits
//   - Session: the open/edit/save lifecycle around one working buffer
//
// All mutating operations return a fresh buffer of identical length; derived
// state (instances, ranges) is always rebuilt from scratch after a mutation,
// never patched incrementally.
package cdf
