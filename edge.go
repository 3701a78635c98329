package brep

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/nat-n/brep/step"
)

// Edge is the single straight edge between two vertices, however many faces
// traverse it and in whichever direction. Start always has the smaller Key.
type Edge struct {
	Key        EdgeKey
	Start, End *Vertex
	// Direction is the unit direction of the supporting line, Start to End.
	Direction mgl64.Vec3
	// Ref points at the EDGE_CURVE entity.
	Ref  step.Ref
	Uses []*OrientedEdge
}

// OrientedEdge is one face's use of an Edge. SameDirection is true when the
// face's loop runs from Edge.Start to Edge.End.
type OrientedEdge struct {
	Edge          *Edge
	SameDirection bool
	Face          *Face
	// Ref points at the ORIENTED_EDGE entity.
	Ref step.Ref
}

// From and To give the vertices in the order the owning loop visits them.
func (oe *OrientedEdge) From() *Vertex {
	if oe.SameDirection {
		return oe.Edge.Start
	}
	return oe.Edge.End
}

func (oe *OrientedEdge) To() *Vertex {
	if oe.SameDirection {
		return oe.Edge.End
	}
	return oe.Edge.Start
}

func (e *Edge) ReferencesVertex(v *Vertex) bool {
	return e.Start == v || e.End == v
}

func (e *Edge) ReferencesFace(f *Face) bool {
	for _, use := range e.Uses {
		if use.Face == f {
			return true
		}
	}
	return false
}

// IsShared reports whether more than one loop runs along e.
func (e *Edge) IsShared() bool {
	return len(e.Uses) > 1
}

func (e *Edge) EachFace(cb func(*Face)) {
	for _, use := range e.Uses {
		cb(use.Face)
	}
}

func (e *Edge) addUse(oe *OrientedEdge) {
	assert("OrientedEdge added to the Edge it orients", oe.Edge == e)
	defer func() {
		assert("addUse of Edge succeeded", func() bool {
			// e.Uses references oe exactly once
			refCount := 0
			for _, use := range e.Uses {
				if use == oe {
					refCount++
				}
			}
			return refCount == 1
		})
	}()

	e.Uses = append(e.Uses, oe)
}

// edgeFor returns the interned Edge between a and b and whether traversing
// a->b agrees with the edge's canonical direction. a and b must not share a
// key.
func (c *conversion) edgeFor(a, b point) (edge *Edge, sameDirection bool) {
	sameDirection = a.key.Less(b.key)
	k := MakeEdgeKey(a.key, b.key)
	if e, exists := c.edges[k]; exists {
		return e, sameDirection
	}

	start, end := a, b
	if !sameDirection {
		start, end = b, a
	}
	startVertex := c.vertices[start.key]
	endVertex := c.vertices[end.key]

	d := Normalize(Subtract(end.pos, start.pos))
	dir := c.repo.Add(&step.Direction{X: d[0], Y: d[1], Z: d[2]})
	vec := c.repo.Add(&step.Vector{Orientation: dir, Magnitude: 1})
	// the line runs through the point already stored for the start vertex
	startPoint := c.repo.Resolve(startVertex.Ref).(*step.VertexPoint).VertexGeometry
	line := c.repo.Add(&step.Line{Pnt: startPoint, Dir: vec})

	edge = &Edge{
		Key:       k,
		Start:     startVertex,
		End:       endVertex,
		Direction: d,
		Ref: c.repo.Add(&step.EdgeCurve{
			EdgeStart:    startVertex.Ref,
			EdgeEnd:      endVertex.Ref,
			EdgeGeometry: line,
			SameSense:    true,
		}),
	}
	startVertex.AddEdge(edge)
	endVertex.AddEdge(edge)
	c.edges[k] = edge
	c.topology.Edges = append(c.topology.Edges, edge)
	return edge, sameDirection
}
