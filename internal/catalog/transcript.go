package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Step is one labeled stage of a showcase run.
type Step struct {
	// Label names the stage, e.g. "base behavior" or "extension".
	Label string

	// Lines holds the literal output recorded during the stage.
	Lines []string

	// Err is the expected failure the stage demonstrates, if any.
	// It is part of the lesson, not a reason to abort the run.
	Err error
}

// Say records one line of observable output in "actor: text" form.
func (s *Step) Say(actor, text string) {
	s.Lines = append(s.Lines, actor+": "+text)
}

// Fail records the demonstrated failure on the step.
func (s *Step) Fail(err error) {
	s.Err = err
}

// Transcript records everything one showcase run produced.
type Transcript struct {
	// RunID uniquely identifies this run.
	RunID string

	// Showcase is the id of the showcase that ran.
	Showcase string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is how long the run took. Set when the run finishes.
	Duration time.Duration

	// Steps holds the recorded stages in execution order.
	Steps []*Step

	// Err is an unexpected run failure, if any. Expected pedagogical
	// failures live on their steps, never here.
	Err error
}

// NewTranscript starts an empty transcript for the given showcase id.
func NewTranscript(showcaseID string) *Transcript {
	return &Transcript{
		RunID:     uuid.New().String(),
		Showcase:  showcaseID,
		StartedAt: time.Now(),
	}
}

// Begin appends a new labeled step and returns it for recording.
func (t *Transcript) Begin(label string) *Step {
	s := &Step{Label: label}
	t.Steps = append(t.Steps, s)
	return s
}

// Lines returns every recorded output line across all steps, in order.
func (t *Transcript) Lines() []string {
	var lines []string
	for _, s := range t.Steps {
		lines = append(lines, s.Lines...)
	}
	return lines
}

// ConsoleLines returns the plain-text rendering of the run: each step's
// output lines in order, followed by the step's recorded failure as an
// "error: ..." line. This is the form the CLI prints and the form lesson
// snippets reproduce.
func (t *Transcript) ConsoleLines() []string {
	var lines []string
	for _, s := range t.Steps {
		lines = append(lines, s.Lines...)
		if s.Err != nil {
			lines = append(lines, "error: "+s.Err.Error())
		}
	}
	return lines
}

// Failures counts the steps that recorded an expected failure.
func (t *Transcript) Failures() int {
	n := 0
	for _, s := range t.Steps {
		if s.Err != nil {
			n++
		}
	}
	return n
}

// OK reports whether the run completed without an unexpected failure.
func (t *Transcript) OK() bool {
	return t.Err == nil
}
