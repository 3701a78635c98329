package brep

import "github.com/nat-n/brep/step"

const defaultChannel = 0.8

// ApplyColorChain styles item with the given RGB color and returns the
// STYLED_ITEM. Missing channels default to 0.8.
func ApplyColorChain(repo *step.Repository, item step.Ref, rgb []float64) step.Ref {
	channel := func(i int) float64 {
		if i < len(rgb) {
			return rgb[i]
		}
		return defaultChannel
	}

	colour := repo.Add(&step.ColourRgb{Red: channel(0), Green: channel(1), Blue: channel(2)})
	fillColour := repo.Add(&step.FillAreaStyleColour{FillColour: colour})
	fillStyle := repo.Add(&step.FillAreaStyle{FillStyles: []step.Ref{fillColour}})
	surfaceFill := repo.Add(&step.SurfaceStyleFillArea{FillArea: fillStyle})
	sideStyle := repo.Add(&step.SurfaceSideStyle{Styles: []step.Ref{surfaceFill}})
	usage := repo.Add(&step.SurfaceStyleUsage{Side: "BOTH", Style: sideStyle})
	assignment := repo.Add(&step.PresentationStyleAssignment{Styles: []step.Ref{usage}})
	return repo.Add(&step.StyledItem{Styles: []step.Ref{assignment}, Item: item})
}
