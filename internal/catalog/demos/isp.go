package demos

import (
	"context"

	"soliddojo/internal/catalog"
	"soliddojo/internal/principles"
	"soliddojo/internal/principles/isp"
)

// ISPShowcase demonstrates the Interface Segregation Principle with the
// care of a dog and a fish.
func ISPShowcase() *catalog.Showcase {
	return &catalog.Showcase{
		ID:        principles.ISP.String(),
		Principle: principles.ISP,
		Title:     "Small interfaces, honest implementers",
		Summary:   "Bundled AnimalCare makes the fish sitter fail on Pet. Segregated capabilities drop the method entirely.",
		Order:     4,
		Run:       runISP,
	}
}

func runISP(ctx context.Context, tr *catalog.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// The bundled contract makes every sitter declare all three
	// operations. Only the fish sitter's Pet can fail, and it does.
	sitters := []struct {
		name string
		s    isp.AnimalCare
	}{
		{"DogSitter", isp.DogSitter{}},
		{"FishSitter", isp.FishSitter{}},
	}
	broad := tr.Begin("broad interface")
	for _, item := range sitters {
		for _, op := range []func() (string, error){item.s.Feed, item.s.Wash, item.s.Pet} {
			out, err := op()
			if err != nil {
				broad.Fail(err)
				continue
			}
			broad.Say(item.name, out)
		}
	}

	// Segregated capabilities: FishCare composes feed and wash only,
	// so there is no Pet to call and nothing to fail.
	seg := tr.Begin("segregated interfaces")
	dog := isp.DogCare{}
	seg.Say("DogCare", dog.Feed())
	seg.Say("DogCare", dog.Wash())
	seg.Say("DogCare", dog.Pet())
	fish := isp.FishCare{}
	seg.Say("FishCare", fish.Feed())
	seg.Say("FishCare", fish.Wash())
	return nil
}
