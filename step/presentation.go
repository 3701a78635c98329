package step

// Presentation entities used to color a shape.

type ColourRgb struct {
	Name             string
	Red, Green, Blue float64
}

func (*ColourRgb) Keyword() string { return "COLOUR_RGB" }
func (c *ColourRgb) WriteParams(e *Encoder) {
	e.String(c.Name)
	e.Real(c.Red)
	e.Real(c.Green)
	e.Real(c.Blue)
}

type FillAreaStyleColour struct {
	Name       string
	FillColour Ref // ColourRgb
}

func (*FillAreaStyleColour) Keyword() string { return "FILL_AREA_STYLE_COLOUR" }
func (f *FillAreaStyleColour) WriteParams(e *Encoder) {
	e.String(f.Name)
	e.Ref(f.FillColour)
}

type FillAreaStyle struct {
	Name       string
	FillStyles []Ref // FillAreaStyleColour
}

func (*FillAreaStyle) Keyword() string { return "FILL_AREA_STYLE" }
func (f *FillAreaStyle) WriteParams(e *Encoder) {
	e.String(f.Name)
	e.Refs(f.FillStyles)
}

type SurfaceStyleFillArea struct {
	FillArea Ref // FillAreaStyle
}

func (*SurfaceStyleFillArea) Keyword() string { return "SURFACE_STYLE_FILL_AREA" }
func (s *SurfaceStyleFillArea) WriteParams(e *Encoder) {
	e.Ref(s.FillArea)
}

type SurfaceSideStyle struct {
	Name   string
	Styles []Ref // SurfaceStyleFillArea
}

func (*SurfaceSideStyle) Keyword() string { return "SURFACE_SIDE_STYLE" }
func (s *SurfaceSideStyle) WriteParams(e *Encoder) {
	e.String(s.Name)
	e.Refs(s.Styles)
}

// SurfaceStyleUsage.Side is one of BOTH, POSITIVE or NEGATIVE.
type SurfaceStyleUsage struct {
	Side  string
	Style Ref // SurfaceSideStyle
}

func (*SurfaceStyleUsage) Keyword() string { return "SURFACE_STYLE_USAGE" }
func (s *SurfaceStyleUsage) WriteParams(e *Encoder) {
	e.Enum(s.Side)
	e.Ref(s.Style)
}

type PresentationStyleAssignment struct {
	Styles []Ref // SurfaceStyleUsage
}

func (*PresentationStyleAssignment) Keyword() string { return "PRESENTATION_STYLE_ASSIGNMENT" }
func (p *PresentationStyleAssignment) WriteParams(e *Encoder) {
	e.Refs(p.Styles)
}

type StyledItem struct {
	Name   string
	Styles []Ref // PresentationStyleAssignment
	Item   Ref
}

func (*StyledItem) Keyword() string { return "STYLED_ITEM" }
func (s *StyledItem) WriteParams(e *Encoder) {
	e.String(s.Name)
	e.Refs(s.Styles)
	e.Ref(s.Item)
}
