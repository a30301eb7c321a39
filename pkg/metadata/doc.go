// Package metadata implements the MetadataProvider and DurationProvider ports.
//
// The primary adapter talks to a long-running exiftool process through
// go-exiftool. When exiftool is not installed, Native reads EXIF dates with
// goexif and sniffs the real file type from its leading bytes. XMPSidecar adds
// capture dates from .xmp sidecar files. Chain combines providers field by
// field and Cache memoizes answers for the length of a run.
//
// Every adapter treats failure as "no metadata": the engine never stops
// because a file could not be inspected.
package metadata
