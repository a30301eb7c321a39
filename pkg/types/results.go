package types

import "time"

// PassName identifies one pass of the pipeline
type PassName string

const (
	PassClassify   PassName = "classify"
	PassDedup      PassName = "dedup"
	PassLivePhoto  PassName = "livephoto"
	PassExtFix     PassName = "extfix"
	PassReap       PassName = "reap"
	PassShortVideo PassName = "shortvideo"
)

// ItemStatus is what happened to a single file or folder during a pass
type ItemStatus string

const (
	StatusMoved   ItemStatus = "moved"
	StatusRenamed ItemStatus = "renamed"
	StatusDeleted ItemStatus = "deleted"
	StatusStaged  ItemStatus = "staged"
	StatusKept    ItemStatus = "kept"
	StatusSkipped ItemStatus = "skipped"
	StatusFailed  ItemStatus = "failed"
)

// PassItem is a single entry in a pass report
type PassItem struct {
	Path    string     `json:"path" yaml:"path"`
	Target  string     `json:"target,omitempty" yaml:"target,omitempty"`
	Status  ItemStatus `json:"status" yaml:"status"`
	Message string     `json:"message,omitempty" yaml:"message,omitempty"`
}

// PassResult is the summary a pass reports to the user
type PassResult struct {
	Pass     PassName   `json:"pass" yaml:"pass"`
	Found    int        `json:"found" yaml:"found"`
	Acted    int        `json:"acted" yaml:"acted"`
	Skipped  int        `json:"skipped" yaml:"skipped"`
	Failed   int        `json:"failed" yaml:"failed"`
	Declined bool       `json:"declined" yaml:"declined"`
	Summary  string     `json:"summary" yaml:"summary"`
	Error    string     `json:"error,omitempty" yaml:"error,omitempty"`
	Items    []PassItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// NewPassResult creates an empty result for pass
func NewPassResult(pass PassName) PassResult {
	return PassResult{Pass: pass}
}

// Record appends an item and updates the counters
func (r *PassResult) Record(item PassItem) {
	r.Items = append(r.Items, item)
	switch item.Status {
	case StatusMoved, StatusRenamed, StatusDeleted:
		r.Acted++
	case StatusKept, StatusSkipped:
		r.Skipped++
	case StatusFailed:
		r.Failed++
	}
}

// Count returns how many items have the given status
func (r PassResult) Count(status ItemStatus) int {
	n := 0
	for _, item := range r.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}

// RunResult collects the pass results of one command invocation
type RunResult struct {
	Command   string       `json:"command" yaml:"command"`
	Root      string       `json:"root" yaml:"root"`
	Passes    []PassResult `json:"passes" yaml:"passes"`
	Timestamp time.Time    `json:"timestamp" yaml:"timestamp"`
}

// Pass returns the result of the named pass, if it ran
func (r *RunResult) Pass(name PassName) (PassResult, bool) {
	for _, p := range r.Passes {
		if p.Pass == name {
			return p, true
		}
	}
	return PassResult{}, false
}
