package demos

import (
	"context"

	"soliddojo/internal/catalog"
	"soliddojo/internal/principles"
	"soliddojo/internal/principles/dip"
)

// DIPShowcase demonstrates the Dependency Inversion Principle by
// swapping the keyboard a computer is built around.
func DIPShowcase() *catalog.Showcase {
	return &catalog.Showcase{
		ID:        principles.DIP.String(),
		Principle: principles.DIP,
		Title:     "Depend on abstractions",
		Summary:   "Computer types through whichever Keyboard is injected at construction. Swapping the variant changes nothing in Computer.",
		Order:     5,
		Run:       runDIP,
	}
}

func runDIP(ctx context.Context, tr *catalog.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Same consumer code both times; only the injected variant differs.
	tr.Begin("mechanical keyboard").Say("Computer", dip.NewComputer(dip.MechanicalKeyboard{}).Type())
	tr.Begin("membrane keyboard").Say("Computer", dip.NewComputer(dip.MembraneKeyboard{}).Type())
	return nil
}
