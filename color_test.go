package brep

import (
	"testing"

	"github.com/nat-n/brep/step"
)

func TestApplyColorChain(t *testing.T) {
	repo := step.NewRepository()
	item := repo.Add(&step.ManifoldSolidBrep{})

	styled := ApplyColorChain(repo, item, []float64{0.2})

	if repo.Len() != 1+8 {
		t.Fatalf("got %d entities, want the item and 8 style entities", repo.Len())
	}
	si := repo.Resolve(styled).(*step.StyledItem)
	if si.Item != item {
		t.Errorf("styled item points at %v, want %v", si.Item, item)
	}

	// walk the chain back down to the colour
	psa := repo.Resolve(si.Styles[0]).(*step.PresentationStyleAssignment)
	usage := repo.Resolve(psa.Styles[0]).(*step.SurfaceStyleUsage)
	if usage.Side != "BOTH" {
		t.Errorf("side: got %q, want BOTH", usage.Side)
	}
	side := repo.Resolve(usage.Style).(*step.SurfaceSideStyle)
	fillArea := repo.Resolve(side.Styles[0]).(*step.SurfaceStyleFillArea)
	fillStyle := repo.Resolve(fillArea.FillArea).(*step.FillAreaStyle)
	fillColour := repo.Resolve(fillStyle.FillStyles[0]).(*step.FillAreaStyleColour)
	colour := repo.Resolve(fillColour.FillColour).(*step.ColourRgb)

	if colour.Red != 0.2 || colour.Green != 0.8 || colour.Blue != 0.8 {
		t.Errorf("colour: got %v %v %v, want 0.2 0.8 0.8", colour.Red, colour.Green, colour.Blue)
	}
}

func TestApplyColorChainTwiceSharesNothing(t *testing.T) {
	repo := step.NewRepository()
	item := repo.Add(&step.ManifoldSolidBrep{})

	first := ApplyColorChain(repo, item, []float64{1, 0, 0})
	second := ApplyColorChain(repo, item, []float64{1, 0, 0})

	if first == second {
		t.Error("both chains returned the same STYLED_ITEM")
	}
	if n := repo.Count("COLOUR_RGB"); n != 2 {
		t.Errorf("got %d COLOUR_RGB entities, want 2", n)
	}
}
