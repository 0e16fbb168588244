package state

import (
	"fmt"
	"time"
)

type ProbePhase int

const (
	ProbeIdle ProbePhase = iota
	ProbeArmed
	ProbeQuerying
	ProbeResolved
)

func (phase ProbePhase) String() string {
	switch phase {
	case ProbeArmed:
		return "armed"
	case ProbeQuerying:
		return "querying"
	case ProbeResolved:
		return "resolved"
	default:
		return "idle"
	}
}

const (
	// DebounceInterval is the quiet period after the last edit before a query goes out.
	DebounceInterval = 500 * time.Millisecond
	// DefaultProbeTimeout bounds a single existence query.
	DefaultProbeTimeout = 10 * time.Second
)

const (
	warnFolderMissing = "The folder is not available on your remote service. Please create it."
	warnProbeFailed   = "Could not check the folder on your remote service: %v"
)

// Probe debounces edits of the remote folder field into existence queries.
//
// Every edit bumps a generation counter. Timer fires and replies carry the
// generation they were issued for, and anything older than the current one is
// dropped, so restarting the timer needs no cancel handle and a reply for
// text the user has since changed can never mark the new text as existing.
type Probe struct {
	Phase   ProbePhase
	Text    string
	Exists  bool
	Warning string
	gen     uint64
}

func (probe *Probe) Generation() uint64 {
	return probe.gen
}

// Edit records new field text. The returned flag tells the caller to start a
// DebounceInterval timer for the returned generation.
func (probe *Probe) Edit(text string) (uint64, bool) {
	probe.gen++
	probe.Text = text
	probe.Exists = false
	if text == "" {
		probe.Phase = ProbeIdle
		probe.Warning = ""
		return probe.gen, false
	}
	probe.Phase = ProbeArmed
	return probe.gen, true
}

// Fire is called when the timer for gen elapses. It returns the text to query,
// or false when the timer was superseded.
func (probe *Probe) Fire(gen uint64) (string, bool) {
	if gen != probe.gen || probe.Phase != ProbeArmed {
		return "", false
	}
	probe.Phase = ProbeQuerying
	return probe.Text, true
}

// Resolve applies a reply for the query issued at gen. Stale replies are
// ignored and reported as not applied.
func (probe *Probe) Resolve(gen uint64, text string, exists bool, err error) bool {
	if gen != probe.gen || probe.Phase != ProbeQuerying || text != probe.Text {
		return false
	}
	probe.Phase = ProbeResolved
	switch {
	case err != nil:
		probe.Exists = false
		probe.Warning = fmt.Sprintf(warnProbeFailed, err)
	case exists:
		probe.Exists = true
		probe.Warning = ""
	default:
		probe.Exists = false
		probe.Warning = warnFolderMissing
	}
	return true
}

// Satisfied is the remote folder completeness rule: empty means the root.
func (probe *Probe) Satisfied() bool {
	return probe.Text == "" || probe.Exists
}
