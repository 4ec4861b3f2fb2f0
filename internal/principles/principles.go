// Package principles defines the five SOLID principles and the canonical
// identifiers used to address their showcases throughout soliddojo.
package principles

import (
	"errors"
	"fmt"
	"strings"
)

// Principle identifies one of the five SOLID principles by its short
// lowercase id ("srp", "ocp", "lsp", "isp", "dip").
type Principle string

// The five principles, in SOLID acronym order.
const (
	SRP Principle = "srp"
	OCP Principle = "ocp"
	LSP Principle = "lsp"
	ISP Principle = "isp"
	DIP Principle = "dip"
)

// ErrUnknownPrinciple is returned by Parse when the input names none of
// the five principles.
var ErrUnknownPrinciple = errors.New("unknown principle")

// All returns the five principles in acronym order.
func All() []Principle {
	return []Principle{SRP, OCP, LSP, ISP, DIP}
}

// String returns the short id.
func (p Principle) String() string { return string(p) }

// Letter returns the letter the principle contributes to the SOLID
// acronym, or "?" for an unknown value.
func (p Principle) Letter() string {
	switch p {
	case SRP:
		return "S"
	case OCP:
		return "O"
	case LSP:
		return "L"
	case ISP:
		return "I"
	case DIP:
		return "D"
	}
	return "?"
}

// Name returns the full principle name, e.g. "Single Responsibility
// Principle" for SRP. Unknown values are returned as-is.
func (p Principle) Name() string {
	switch p {
	case SRP:
		return "Single Responsibility Principle"
	case OCP:
		return "Open/Closed Principle"
	case LSP:
		return "Liskov Substitution Principle"
	case ISP:
		return "Interface Segregation Principle"
	case DIP:
		return "Dependency Inversion Principle"
	}
	return string(p)
}

// Order returns the 1-based position of the principle in the SOLID
// acronym, or 0 for an unknown value.
func (p Principle) Order() int {
	for i, q := range All() {
		if p == q {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether p is one of the five known principles.
func (p Principle) Valid() bool { return p.Order() != 0 }

// Parse resolves user input to a Principle. It accepts the short id
// ("srp"), the acronym letter ("s"), and the full name
// ("single responsibility principle"), case-insensitively.
func Parse(s string) (Principle, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, p := range All() {
		switch in {
		case p.String(), strings.ToLower(p.Letter()), strings.ToLower(p.Name()):
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPrinciple, s)
}
