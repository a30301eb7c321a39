// Package classify files media into date folders.
//
// The destination of a file depends only on the library root, the layout
// mode and the year/month of its capture timestamp:
//
//	<root>/<year>          (year mode)
//	<root>/<year>/<Mon>    (year-month mode)
//	<root>/Uncategorized   (no usable date)
//
// A year of "0000" or a month of "00" is what metadata tools report for an
// unset date; such files go to Uncategorized, never to a partial folder.
package classify
