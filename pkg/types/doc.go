// Package types defines the core types and interfaces used throughout mediatidy.
// This includes the FileRecord data model, the grouping helpers the resolvers
// build on, and the ports (FS, MetadataProvider, DurationProvider, Confirmer)
// through which the engine reaches the filesystem, the metadata oracle and the
// user.
package types
