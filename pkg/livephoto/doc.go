// Package livephoto prunes the companion files of live photos.
//
// A phone stores a live photo as a still image plus a short clip (and, on
// older devices, an .aae edit sidecar) sharing a file name stem and a capture
// timestamp. Once the library is deduplicated the still image is the one
// worth keeping: in every group holding a still image all video-class
// members are deleted. A group made only of video-class files keeps its last
// member.
package livephoto
