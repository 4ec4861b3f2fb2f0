package demos

import (
	"context"

	"soliddojo/internal/catalog"
	"soliddojo/internal/principles"
	"soliddojo/internal/principles/srp"
)

// SRPShowcase demonstrates the Single Responsibility Principle with the
// restaurant crew: one job per type.
func SRPShowcase() *catalog.Showcase {
	return &catalog.Showcase{
		ID:        principles.SRP.String(),
		Principle: principles.SRP,
		Title:     "One job per type",
		Summary:   "A chef cooks, a waiter serves, a cleaner cleans. No type has a second reason to change.",
		Order:     1,
		Run:       runSRP,
	}
}

func runSRP(ctx context.Context, tr *catalog.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tr.Begin("chef").Say("Chef", srp.Chef{}.Cook())
	tr.Begin("waiter").Say("Waiter", srp.Waiter{}.Serve())
	tr.Begin("cleaner").Say("Cleaner", srp.Cleaner{}.Clean())
	return nil
}
