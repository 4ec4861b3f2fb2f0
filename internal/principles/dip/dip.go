// Package dip demonstrates the Dependency Inversion Principle. Computer
// depends on the Keyboard abstraction, never on a concrete keyboard: the
// variant is injected at construction, and swapping it changes the
// computer's output without touching Computer itself.
package dip

// Keyboard is the abstraction Computer depends on.
type Keyboard interface {
	Type() string
}

// MechanicalKeyboard is one concrete variant.
type MechanicalKeyboard struct{}

// Type clacks away on the switches.
func (MechanicalKeyboard) Type() string { return "Typing on mechanical keyboard" }

// MembraneKeyboard is another concrete variant.
type MembraneKeyboard struct{}

// Type presses the quiet rubber domes.
func (MembraneKeyboard) Type() string { return "Typing on membrane keyboard" }

// Computer holds a Keyboard reference. It never constructs a concrete
// variant itself.
type Computer struct {
	keyboard Keyboard
}

// NewComputer builds a Computer around the supplied keyboard. The
// dependency arrives from outside; that is the inversion.
func NewComputer(kb Keyboard) *Computer {
	return &Computer{keyboard: kb}
}

// Type forwards verbatim to whichever keyboard was injected.
func (c *Computer) Type() string {
	return c.keyboard.Type()
}
