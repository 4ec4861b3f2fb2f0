// Package catalog indexes the principle showcases and runs their demos.
//
// A Showcase wraps one self-contained demonstration behind a DemoFunc.
// Demos record what they did on a Transcript: ordered steps, the literal
// output lines, and any failure that is itself part of the lesson. The
// Registry provides lookup and execution, in acronym order.
package catalog

import (
	"context"

	"soliddojo/internal/principles"
)

// DemoFunc runs one showcase, recording observable output on tr.
// A non-nil return means the run itself broke (context cancellation and
// the like). The intentional violations a showcase demonstrates are
// recorded on their steps instead and never returned.
type DemoFunc func(ctx context.Context, tr *Transcript) error

// Showcase describes one runnable principle demonstration.
type Showcase struct {
	// ID is the unique registry key, the short principle id.
	ID string

	// Principle the showcase demonstrates.
	Principle principles.Principle

	// Title is a short display headline.
	Title string

	// Summary is a one-sentence description for lists.
	Summary string

	// Order fixes the position in catalog listings (acronym order).
	Order int

	// Run executes the demonstration.
	Run DemoFunc
}

// Validate checks that the showcase definition is usable.
func (s *Showcase) Validate() error {
	if s.ID == "" {
		return ErrShowcaseIDEmpty
	}
	if s.Run == nil {
		return ErrShowcaseRunNil
	}
	return nil
}
