package brep

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/nat-n/brep/step"
)

// Frame is the placement of a planar face: an origin on the plane, the
// plane normal and an in-plane reference direction.
type Frame struct {
	Origin       mgl64.Vec3
	Normal       mgl64.Vec3
	RefDirection mgl64.Vec3
}

// planarFrame derives a Frame from the first three vertices of a loop. The
// polygon is trusted to be planar; collinear corners yield the default +Z
// normal.
func planarFrame(v0, v1, v2 mgl64.Vec3) Frame {
	edge01 := Subtract(v1, v0)
	edge02 := Subtract(v2, v0)
	return Frame{
		Origin:       v0,
		Normal:       Normalize(Cross(edge01, edge02)),
		RefDirection: Normalize(edge01),
	}
}

// Face is the planar face built from one input polygon.
type Face struct {
	// Index of the source polygon in Geometry.Polygons.
	Index    int
	Vertices []*Vertex
	Loop     []*OrientedEdge
	Frame    Frame
	// Ref points at the ADVANCED_FACE entity.
	Ref step.Ref
}

func (f *Face) ReferencesEdge(e *Edge) bool {
	for _, oe := range f.Loop {
		if oe.Edge == e {
			return true
		}
	}
	return false
}

func (f *Face) EachEdge(cb func(*OrientedEdge)) {
	for _, oe := range f.Loop {
		cb(oe)
	}
}

// addFace writes the plane, loop, bound and face entities for a loop of
// oriented edges.
func (c *conversion) addFace(index int, vertices []*Vertex, loop []*OrientedEdge, positions []mgl64.Vec3) *Face {
	frame := planarFrame(positions[0], positions[1], positions[2])

	origin := c.repo.Add(&step.CartesianPoint{X: frame.Origin[0], Y: frame.Origin[1], Z: frame.Origin[2]})
	normal := c.repo.Add(&step.Direction{X: frame.Normal[0], Y: frame.Normal[1], Z: frame.Normal[2]})
	refDir := c.repo.Add(&step.Direction{
		X: frame.RefDirection[0], Y: frame.RefDirection[1], Z: frame.RefDirection[2],
	})
	placement := c.repo.Add(&step.Axis2Placement3D{Location: origin, Axis: normal, RefDirection: refDir})
	plane := c.repo.Add(&step.Plane{Position: placement})

	edgeList := make([]step.Ref, len(loop))
	for i, oe := range loop {
		edgeList[i] = oe.Ref
	}
	edgeLoop := c.repo.Add(&step.EdgeLoop{EdgeList: edgeList})
	bound := c.repo.Add(&step.FaceOuterBound{Bound: edgeLoop, Orientation: true})

	f := &Face{
		Index:    index,
		Vertices: vertices,
		Loop:     loop,
		Frame:    frame,
		Ref: c.repo.Add(&step.AdvancedFace{
			Bounds:       []step.Ref{bound},
			FaceGeometry: plane,
			SameSense:    true,
		}),
	}
	for _, oe := range loop {
		oe.Face = f
		oe.Edge.addUse(oe)
	}
	c.topology.Faces = append(c.topology.Faces, f)
	return f
}
