// Package srp demonstrates the Single Responsibility Principle with a
// small restaurant crew. Each role owns exactly one job: a change to how
// food is cooked never touches the type that serves or cleans. The three
// types share no state and never reference each other.
package srp

// Chef cooks. Nothing else.
type Chef struct{}

// Cook prepares the meal. Every call returns the identical text.
func (Chef) Cook() string { return "Cooking food" }

// Waiter serves. Nothing else.
type Waiter struct{}

// Serve carries the finished meal out to the guests.
func (Waiter) Serve() string { return "Serving food to the table" }

// Cleaner cleans. Nothing else.
type Cleaner struct{}

// Clean tidies the kitchen after service.
func (Cleaner) Clean() string { return "Cleaning the kitchen" }
