package types

// Answer is the user's reply to a Prompt
type Answer int

const (
	// AnswerCancel is returned for an explicit cancel or any unrecognized input
	AnswerCancel Answer = iota
	// AnswerYes approves the prompt
	AnswerYes
	// AnswerNo declines the prompt
	AnswerNo
)

// String returns the string representation of the answer
func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	default:
		return "cancel"
	}
}

// Approved reports whether the answer is an unambiguous yes
func (a Answer) Approved() bool {
	return a == AnswerYes
}

// Prompt is a request for user confirmation before a destructive action
type Prompt struct {
	// ID identifies the prompt for scripted confirmers and logs
	ID string

	// Pass is the name of the pass asking the question
	Pass string

	// Question is the text shown to the user
	Question string

	// Items lists the specific files or folders affected, for display
	Items []string

	// Cancelable marks a three-way yes/no/cancel question
	Cancelable bool
}

// Prompt IDs used by the passes
const (
	PromptDedupPreview    = "dedup.preview"
	PromptDedupCommit     = "dedup.commit"
	PromptLivePhotoDelete = "livephoto.delete"
	PromptExtensionRename = "extfix.rename"
	PromptReapForce       = "reap.force"
	PromptShortVideos     = "shortvideo.delete"
)
