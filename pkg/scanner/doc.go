// Package scanner takes snapshots of a media library.
//
// Every pass of a run starts from a fresh snapshot: earlier passes move,
// rename and delete files, so records from a previous walk are never reused.
// Files come back in discovery order: within a directory its files (sorted by
// name) precede its subdirectories (sorted by name), recursively. Grouping
// tie-breaks in the resolvers rely on this order.
package scanner
