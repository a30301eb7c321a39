// Package filesystem provides filesystem implementations for mediatidy.
//
// This package contains implementations of the types.FS interface, the
// standard OS filesystem and an afero-backed filesystem used by tests, plus
// the no-overwrite move and copy helpers every pass goes through.
package filesystem
