package brep

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/nat-n/brep/step"
)

// Topology is everything one conversion produced, in creation order. The
// faces are in the order of the polygons they came from.
type Topology struct {
	Vertices []*Vertex
	Edges    []*Edge
	Faces    []*Face
	// Dropped counts the input polygons that did not yield a face.
	Dropped int

	precision int
}

// FaceRefs returns the ADVANCED_FACE refs, ready for a CLOSED_SHELL.
func (t *Topology) FaceRefs() []step.Ref {
	refs := make([]step.Ref, len(t.Faces))
	for i, f := range t.Faces {
		refs[i] = f.Ref
	}
	return refs
}

func (t *Topology) EachFace(cb func(*Face)) {
	for _, f := range t.Faces {
		cb(f)
	}
}

func (t *Topology) EachEdge(cb func(*Edge)) {
	for _, e := range t.Edges {
		cb(e)
	}
}

// VertexAt finds the vertex welded at p, if any.
func (t *Topology) VertexAt(p mgl64.Vec3) (*Vertex, bool) {
	k := Quantize(p, t.precision)
	for _, v := range t.Vertices {
		if v.Key == k {
			return v, true
		}
	}
	return nil, false
}

// EdgeBetween finds the edge joining the vertices welded at p and q, if any.
func (t *Topology) EdgeBetween(p, q mgl64.Vec3) (*Edge, bool) {
	k := MakeEdgeKey(Quantize(p, t.precision), Quantize(q, t.precision))
	for _, e := range t.Edges {
		if e.Key == k {
			return e, true
		}
	}
	return nil, false
}
