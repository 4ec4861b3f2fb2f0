// Package ocp demonstrates the Open/Closed Principle. Car is closed to
// modification: SportsCar gains a spoiler by embedding Car and adding a
// method, never by editing the base type. The inherited operations are
// Car's own methods, so their output cannot drift from the base.
package ocp

// Car is the base vehicle. Its behavior is fixed.
type Car struct{}

// StartEngine turns the engine over.
func (Car) StartEngine() string { return "Starting the engine" }

// Drive takes the car onto the road.
func (Car) Drive() string { return "Driving on the road" }

// SportsCar extends Car through embedding. It inherits StartEngine and
// Drive unchanged and adds the one capability Car lacks.
type SportsCar struct {
	Car
}

// AddSpoiler bolts a spoiler onto the back.
func (SportsCar) AddSpoiler() string { return "Adding a spoiler" }
