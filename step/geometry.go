package step

// Geometric and topological entities of the advanced B-Rep subset.

type CartesianPoint struct {
	Name    string
	X, Y, Z float64
}

func (*CartesianPoint) Keyword() string { return "CARTESIAN_POINT" }
func (p *CartesianPoint) WriteParams(e *Encoder) {
	e.String(p.Name)
	e.Reals(p.X, p.Y, p.Z)
}

type Direction struct {
	Name    string
	X, Y, Z float64
}

func (*Direction) Keyword() string { return "DIRECTION" }
func (d *Direction) WriteParams(e *Encoder) {
	e.String(d.Name)
	e.Reals(d.X, d.Y, d.Z)
}

type Vector struct {
	Name        string
	Orientation Ref // Direction
	Magnitude   float64
}

func (*Vector) Keyword() string { return "VECTOR" }
func (v *Vector) WriteParams(e *Encoder) {
	e.String(v.Name)
	e.Ref(v.Orientation)
	e.Real(v.Magnitude)
}

type Line struct {
	Name string
	Pnt  Ref // CartesianPoint
	Dir  Ref // Vector
}

func (*Line) Keyword() string { return "LINE" }
func (l *Line) WriteParams(e *Encoder) {
	e.String(l.Name)
	e.Ref(l.Pnt)
	e.Ref(l.Dir)
}

type Axis2Placement3D struct {
	Name         string
	Location     Ref // CartesianPoint
	Axis         Ref // Direction
	RefDirection Ref // Direction
}

func (*Axis2Placement3D) Keyword() string { return "AXIS2_PLACEMENT_3D" }
func (a *Axis2Placement3D) WriteParams(e *Encoder) {
	e.String(a.Name)
	e.Ref(a.Location)
	e.Ref(a.Axis)
	e.Ref(a.RefDirection)
}

type Plane struct {
	Name     string
	Position Ref // Axis2Placement3D
}

func (*Plane) Keyword() string { return "PLANE" }
func (p *Plane) WriteParams(e *Encoder) {
	e.String(p.Name)
	e.Ref(p.Position)
}

type VertexPoint struct {
	Name           string
	VertexGeometry Ref // CartesianPoint
}

func (*VertexPoint) Keyword() string { return "VERTEX_POINT" }
func (v *VertexPoint) WriteParams(e *Encoder) {
	e.String(v.Name)
	e.Ref(v.VertexGeometry)
}

type EdgeCurve struct {
	Name         string
	EdgeStart    Ref // VertexPoint
	EdgeEnd      Ref // VertexPoint
	EdgeGeometry Ref // Line
	SameSense    bool
}

func (*EdgeCurve) Keyword() string { return "EDGE_CURVE" }
func (c *EdgeCurve) WriteParams(e *Encoder) {
	e.String(c.Name)
	e.Ref(c.EdgeStart)
	e.Ref(c.EdgeEnd)
	e.Ref(c.EdgeGeometry)
	e.Bool(c.SameSense)
}

// OrientedEdge takes its start and end from EdgeElement, so they are
// written as derived.
type OrientedEdge struct {
	Name        string
	EdgeElement Ref // EdgeCurve
	Orientation bool
}

func (*OrientedEdge) Keyword() string { return "ORIENTED_EDGE" }
func (o *OrientedEdge) WriteParams(e *Encoder) {
	e.String(o.Name)
	e.Derived()
	e.Derived()
	e.Ref(o.EdgeElement)
	e.Bool(o.Orientation)
}

type EdgeLoop struct {
	Name     string
	EdgeList []Ref // OrientedEdge
}

func (*EdgeLoop) Keyword() string { return "EDGE_LOOP" }
func (l *EdgeLoop) WriteParams(e *Encoder) {
	e.String(l.Name)
	e.Refs(l.EdgeList)
}

type FaceOuterBound struct {
	Name        string
	Bound       Ref // EdgeLoop
	Orientation bool
}

func (*FaceOuterBound) Keyword() string { return "FACE_OUTER_BOUND" }
func (b *FaceOuterBound) WriteParams(e *Encoder) {
	e.String(b.Name)
	e.Ref(b.Bound)
	e.Bool(b.Orientation)
}

type AdvancedFace struct {
	Name         string
	Bounds       []Ref // FaceOuterBound
	FaceGeometry Ref   // Plane
	SameSense    bool
}

func (*AdvancedFace) Keyword() string { return "ADVANCED_FACE" }
func (f *AdvancedFace) WriteParams(e *Encoder) {
	e.String(f.Name)
	e.Refs(f.Bounds)
	e.Ref(f.FaceGeometry)
	e.Bool(f.SameSense)
}

type ClosedShell struct {
	Name     string
	CfsFaces []Ref // AdvancedFace
}

func (*ClosedShell) Keyword() string { return "CLOSED_SHELL" }
func (s *ClosedShell) WriteParams(e *Encoder) {
	e.String(s.Name)
	e.Refs(s.CfsFaces)
}

type ManifoldSolidBrep struct {
	Name  string
	Outer Ref // ClosedShell
}

func (*ManifoldSolidBrep) Keyword() string { return "MANIFOLD_SOLID_BREP" }
func (b *ManifoldSolidBrep) WriteParams(e *Encoder) {
	e.String(b.Name)
	e.Ref(b.Outer)
}
