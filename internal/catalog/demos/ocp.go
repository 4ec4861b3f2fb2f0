package demos

import (
	"context"

	"soliddojo/internal/catalog"
	"soliddojo/internal/principles"
	"soliddojo/internal/principles/ocp"
)

// OCPShowcase demonstrates the Open/Closed Principle: SportsCar extends
// Car without the base type changing.
func OCPShowcase() *catalog.Showcase {
	return &catalog.Showcase{
		ID:        principles.OCP.String(),
		Principle: principles.OCP,
		Title:     "Extend, don't edit",
		Summary:   "SportsCar gains a spoiler by embedding Car. The base type never changes.",
		Order:     2,
		Run:       runOCP,
	}
}

func runOCP(ctx context.Context, tr *catalog.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	car := ocp.Car{}
	base := tr.Begin("base behavior")
	base.Say("Car", car.StartEngine())
	base.Say("Car", car.Drive())

	// The inherited operations are Car's own methods; the extension
	// only adds the spoiler.
	sports := ocp.SportsCar{}
	ext := tr.Begin("extension")
	ext.Say("SportsCar", sports.StartEngine())
	ext.Say("SportsCar", sports.Drive())
	ext.Say("SportsCar", sports.AddSpoiler())
	return nil
}
