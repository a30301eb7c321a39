// Package dedup removes byte-identical copies from a library.
//
// Files are grouped by content; in every group the first file in discovery
// order survives. Deletion is two-phase when the user asks for a preview:
// copies of everything to be deleted are staged in a quarantine folder under
// the root, the user confirms, and only then are the originals deleted and
// the quarantine removed. Without a preview the duplicates are deleted
// directly.
package dedup
