// Package isp contrasts two designs around the Interface Segregation
// Principle, using the daily care of a dog and a fish.
//
// The broad AnimalCare interface bundles feed, wash, and pet into one
// contract, so FishSitter must declare Pet even though nobody pets a
// fish. The segregated Feeder, Washer, and Petter interfaces let an
// implementer compose exactly the capabilities it truthfully supports,
// and every declared operation is total.
package isp

import (
	"errors"
	"fmt"
)

// ErrUnsupported is the failure a bundled contract forces onto an
// implementer that only supports part of it.
var ErrUnsupported = errors.New("unsupported operation")

// =============================================================================
// NON-COMPLIANT DESIGN: one bundled contract
// =============================================================================

// AnimalCare bundles every care operation into a single interface.
// Implementers must declare all three whether they support them or not.
type AnimalCare interface {
	Feed() (string, error)
	Wash() (string, error)
	Pet() (string, error)
}

// DogSitter happens to support the whole bundle.
type DogSitter struct{}

// Feed puts food in the bowl.
func (DogSitter) Feed() (string, error) { return "Feeding the dog", nil }

// Wash gives the dog a bath.
func (DogSitter) Wash() (string, error) { return "Washing the dog", nil }

// Pet scratches behind the ears.
func (DogSitter) Pet() (string, error) { return "Petting the dog", nil }

// FishSitter supports feeding and washing only, but the bundled
// contract makes it declare Pet anyway.
type FishSitter struct{}

// Feed sprinkles flakes on the water.
func (FishSitter) Feed() (string, error) { return "Feeding the fish", nil }

// Wash scrubs the tank.
func (FishSitter) Wash() (string, error) { return "Washing the fish tank", nil }

// Pet always fails: you cannot pet a fish. The failure is deterministic
// on every call.
func (FishSitter) Pet() (string, error) {
	return "", fmt.Errorf("fish sitter: %w", ErrUnsupported)
}

// =============================================================================
// COMPLIANT DESIGN: single-capability contracts
// =============================================================================

// Feeder is the feeding capability on its own.
type Feeder interface {
	Feed() string
}

// Washer is the washing capability on its own.
type Washer interface {
	Wash() string
}

// Petter is the petting capability on its own.
type Petter interface {
	Pet() string
}

// DogCare composes all three capabilities; dogs support the lot.
type DogCare struct{}

// Feed puts food in the bowl.
func (DogCare) Feed() string { return "Feeding the dog" }

// Wash gives the dog a bath.
func (DogCare) Wash() string { return "Washing the dog" }

// Pet scratches behind the ears.
func (DogCare) Pet() string { return "Petting the dog" }

// FishCare composes Feeder and Washer only. No Pet method exists, so
// there is nothing to call and nothing to fail.
type FishCare struct{}

// Feed sprinkles flakes on the water.
func (FishCare) Feed() string { return "Feeding the fish" }

// Wash scrubs the tank.
func (FishCare) Wash() string { return "Washing the fish tank" }

var _ AnimalCare = DogSitter{}
var _ AnimalCare = FishSitter{}
var _ Feeder = DogCare{}
var _ Washer = DogCare{}
var _ Petter = DogCare{}
var _ Feeder = FishCare{}
var _ Washer = FishCare{}
