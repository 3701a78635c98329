package brep

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/nat-n/brep/step"
)

// Vertex is the single topological point for all input positions that
// share a Key within one conversion.
type Vertex struct {
	Key Key
	// Position is the first input position seen for Key.
	Position mgl64.Vec3
	// Ref points at the VERTEX_POINT entity.
	Ref   step.Ref
	Edges []*Edge
}

func (v *Vertex) ReferencesEdge(e1 *Edge) bool {
	for _, e2 := range v.Edges {
		if e1 == e2 {
			return true
		}
	}
	return false
}

func (v *Vertex) EachEdge(cb func(*Edge)) {
	for _, e := range v.Edges {
		cb(e)
	}
}

func (v *Vertex) AddEdge(e *Edge) {
	defer func() {
		assert("AddEdge of Vertex succeeded", func() bool {
			// v.Edges references e exactly once
			refCount := 0
			for _, eOfV := range v.Edges {
				if eOfV == e {
					refCount++
				}
			}
			return refCount == 1
		})
	}()

	v.Edges = append(v.Edges, e)
}

// vertexFor returns the interned Vertex for p, creating its point entities
// on first use.
func (c *conversion) vertexFor(p point) *Vertex {
	if v, exists := c.vertices[p.key]; exists {
		return v
	}
	pt := c.repo.Add(&step.CartesianPoint{X: p.pos[0], Y: p.pos[1], Z: p.pos[2]})
	v := &Vertex{
		Key:      p.key,
		Position: p.pos,
		Ref:      c.repo.Add(&step.VertexPoint{VertexGeometry: pt}),
	}
	c.vertices[p.key] = v
	c.topology.Vertices = append(c.topology.Vertices, v)
	return v
}
