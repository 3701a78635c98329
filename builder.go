package brep

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/nat-n/brep/step"
)

// Goal:
// -----
// Turn a polygon soup into faces that share their edges and vertices, the
// way a B-Rep needs them:
//   1. transform every input position,
//   2. split edges at T-junctions so neighbouring faces meet at vertices,
//   3. collapse consecutive duplicate positions,
//   4. weld positions into vertices by quantized key,
//   5. intern each undirected edge once and record per face whether it is
//      traversed in the edge's canonical direction,
//   6. build a planar face from each loop of three or more oriented edges.
// Polygons that degenerate along the way are dropped without complaint.

// conversion holds the vertex and edge caches of a single Convert call.
// Caches are never shared between geometries.
type conversion struct {
	repo     *step.Repository
	opts     Options
	vertices map[Key]*Vertex
	edges    map[EdgeKey]*Edge
	topology *Topology
}

func newConversion(repo *step.Repository, opts Options) *conversion {
	return &conversion{
		repo:     repo,
		opts:     opts,
		vertices: make(map[Key]*Vertex),
		edges:    make(map[EdgeKey]*Edge),
		topology: &Topology{precision: opts.Precision},
	}
}

// Convert adds the B-Rep entities for g to repo and returns the resulting
// topology. It never fails: polygons that cannot form a face are left out.
func Convert(repo *step.Repository, g *Geometry, opts Options) *Topology {
	opts = opts.withDefaults()
	c := newConversion(repo, opts)

	rings := g.rings(opts.Precision)
	rings = splitTJunctions(rings, opts.Epsilon, opts.MinEdgeLengthSq)
	for _, r := range rings {
		c.addPolygon(r)
	}

	c.topology.Dropped = len(g.Polygons) - len(c.topology.Faces)
	opts.Logger.Debug("converted geometry",
		slog.Int("polygons", len(g.Polygons)),
		slog.Int("faces", len(c.topology.Faces)),
		slog.Int("edges", len(c.topology.Edges)),
		slog.Int("vertices", len(c.topology.Vertices)),
		slog.Int("dropped", c.topology.Dropped))
	return c.topology
}

// addPolygon runs steps 3 to 6 for one split ring.
func (c *conversion) addPolygon(r ring) *Face {
	points := collapseDuplicates(r.points)
	if len(points) < 3 {
		return nil
	}

	vertices := make([]*Vertex, len(points))
	positions := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		vertices[i] = c.vertexFor(p)
		positions[i] = p.pos
	}

	loop := make([]*OrientedEdge, 0, len(points))
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		if a.key == b.key {
			continue
		}
		edge, sameDirection := c.edgeFor(a, b)
		loop = append(loop, &OrientedEdge{
			Edge:          edge,
			SameDirection: sameDirection,
			Ref: c.repo.Add(&step.OrientedEdge{
				EdgeElement: edge.Ref,
				Orientation: sameDirection,
			}),
		})
	}
	if len(loop) < 3 {
		return nil
	}

	return c.addFace(r.index, vertices, loop, positions)
}
