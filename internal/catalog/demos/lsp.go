package demos

import (
	"context"

	"soliddojo/internal/catalog"
	"soliddojo/internal/principles"
	"soliddojo/internal/principles/lsp"
)

// LSPShowcase demonstrates the Liskov Substitution Principle by running
// the same vehicles through a broad abstraction and a narrowed one.
func LSPShowcase() *catalog.Showcase {
	return &catalog.Showcase{
		ID:        principles.LSP.String(),
		Principle: principles.LSP,
		Title:     "Substitutes must behave",
		Summary:   "A broad Vehicle contract forces the scooter to fail. Narrowed abstractions keep every call honest.",
		Order:     3,
		Run:       runLSP,
	}
}

func runLSP(ctx context.Context, tr *catalog.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Through the broad abstraction every vehicle promises an engine.
	// The scooter cannot keep that promise.
	vehicles := []struct {
		name string
		v    lsp.Vehicle
	}{
		{"GasCar", lsp.GasCar{}},
		{"ElectricScooter", lsp.ElectricScooter{}},
	}
	broad := tr.Begin("shared abstraction")
	for _, item := range vehicles {
		out, err := item.v.StartEngine()
		if err != nil {
			broad.Fail(err)
			continue
		}
		broad.Say(item.name, out)
	}

	// Narrowed abstractions: each type declares only what it can honor,
	// and the operations cannot fail.
	narrow := tr.Begin("split abstractions")
	var engine lsp.EngineVehicle = lsp.Car{}
	narrow.Say("Car", engine.StartEngine())
	var motor lsp.MotorVehicle = lsp.ElectricScooter{}
	narrow.Say("ElectricScooter", motor.StartMotor())
	return nil
}
