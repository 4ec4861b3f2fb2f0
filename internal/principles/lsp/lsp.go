// Package lsp contrasts two designs around the Liskov Substitution
// Principle, using an engine-having car and a motor-having scooter.
//
// The broad Vehicle abstraction promises an engine start on behalf of
// every vehicle, so ElectricScooter is forced to declare a method it can
// only fail. The narrowed EngineVehicle and MotorVehicle abstractions
// let each type declare only what it can honor, and their operations
// carry no error return at all.
package lsp

import (
	"errors"
	"fmt"
)

// ErrUnsupported is the failure an over-broad abstraction forces onto an
// implementer that cannot honor it.
var ErrUnsupported = errors.New("unsupported operation")

// =============================================================================
// NON-COMPLIANT DESIGN: one abstraction for every vehicle
// =============================================================================

// Vehicle assumes every vehicle has an engine. That assumption is the
// substitution violation: callers holding a Vehicle cannot rely on
// StartEngine succeeding.
type Vehicle interface {
	StartEngine() (string, error)
}

// GasCar has an engine, so the broad contract happens to fit it.
type GasCar struct{}

// StartEngine turns the engine over. It never fails.
func (GasCar) StartEngine() (string, error) {
	return "Starting the engine", nil
}

// ElectricScooter runs on a motor. The broad Vehicle contract forces it
// to declare StartEngine anyway; the compliant half of this package
// gives it StartMotor instead.
type ElectricScooter struct{}

// StartEngine always fails: there is no engine to start. The failure is
// deterministic on every call.
func (ElectricScooter) StartEngine() (string, error) {
	return "", fmt.Errorf("electric scooter: %w", ErrUnsupported)
}

// =============================================================================
// COMPLIANT DESIGN: narrowed abstractions, total operations
// =============================================================================

// EngineVehicle is declared only by vehicles that truly have an engine.
// Without an error return, the operation cannot fail.
type EngineVehicle interface {
	StartEngine() string
}

// MotorVehicle is declared only by vehicles that run on a motor.
type MotorVehicle interface {
	StartMotor() string
}

// Car has an engine and says so.
type Car struct{}

// StartEngine turns the engine over.
func (Car) StartEngine() string { return "Starting the engine" }

// StartMotor spins the motor up. This is the operation ElectricScooter
// can honestly declare.
func (ElectricScooter) StartMotor() string { return "Starting the motor" }

var _ Vehicle = GasCar{}
var _ Vehicle = ElectricScooter{}
var _ EngineVehicle = Car{}
var _ MotorVehicle = ElectricScooter{}
