// Package testutil provides utilities for testing mediatidy components.
//
// Key components:
//   - Library: a throwaway media library, in memory or in a temp directory
//   - Tree assertions comparing a library against an expected file list
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Only pkg/filesystem and end-to-end CLI tests need EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
