// Package core runs mediatidy's passes against a library folder.
//
// Organize is the entry point of the default command. It runs the enabled
// passes strictly in order:
//
//	classify → dedup → livephoto → extfix → reap
//
// Every pass starts from a fresh walk of the target, so a pass always sees
// the tree as the previous pass left it. The quarantine folder used by the
// duplicate preview is excluded from every walk.
//
// A pass that fails records the error in its own result; later passes still
// run. Only an invalid target aborts the run, and it does so before anything
// is touched.
//
// PruneShortVideos is the standalone utility that deletes videos shorter
// than a threshold. It needs exiftool for durations.
//
// Collaborators are injected through the option structs: the filesystem,
// the metadata providers and the Confirmer. Tests pass an in-memory
// filesystem, metadata.Static and confirmations.Scripted.
package core
