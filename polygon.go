package brep

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is one planar, consistently wound face of the input soup.
type Polygon struct {
	Vertices []mgl64.Vec3
}

// Geometry is the unit of conversion: polygons that end up in one solid,
// sharing one optional transform and one optional color.
type Geometry struct {
	Polygons []Polygon `json:"polygons"`
	// Transform is a column major 4x4 matrix; any other length is ignored.
	Transform []float64 `json:"transforms,omitempty"`
	// Color is an RGB triple in [0, 1].
	Color []float64 `json:"color,omitempty"`
}

// NewPolygon builds a Polygon from raw coordinate triples.
func NewPolygon(coords ...[3]float64) Polygon {
	p := Polygon{Vertices: make([]mgl64.Vec3, len(coords))}
	for i, c := range coords {
		p.Vertices[i] = mgl64.Vec3(c)
	}
	return p
}

// A vertex is either a bare [x, y, z] or an object carrying the triple in
// pos or position. Anything else, including missing or non numeric
// components, reads as zero.
type vertexDescriptor mgl64.Vec3

func (v *vertexDescriptor) UnmarshalJSON(data []byte) error {
	*v = vertexDescriptor{}
	var obj struct {
		Pos      json.RawMessage `json:"pos"`
		Position json.RawMessage `json:"position"`
	}
	if coords, ok := coordinateTriple(data); ok {
		*v = vertexDescriptor(coords)
	} else if json.Unmarshal(data, &obj) == nil {
		if coords, ok := coordinateTriple(obj.Pos); ok {
			*v = vertexDescriptor(coords)
		} else if coords, ok := coordinateTriple(obj.Position); ok {
			*v = vertexDescriptor(coords)
		}
	}
	return nil
}

func coordinateTriple(data json.RawMessage) (coords mgl64.Vec3, ok bool) {
	var components []json.RawMessage
	if len(data) == 0 || json.Unmarshal(data, &components) != nil || len(components) < 3 {
		return
	}
	for i := 0; i < 3; i++ {
		coords[i] = numeric(components[i])
	}
	return coords, true
}

// numeric reads a JSON value as a number the lenient way: numbers as is,
// finite numeric strings parsed, true as 1, everything else as 0.
func numeric(data json.RawMessage) float64 {
	var f float64
	if json.Unmarshal(data, &f) == nil {
		return f
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		s = strings.TrimSpace(s)
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
		return 0
	}
	var b bool
	if json.Unmarshal(data, &b) == nil && b {
		return 1
	}
	return 0
}

type polygonSchema struct {
	Vertices []vertexDescriptor `json:"vertices"`
}

func (p *Polygon) UnmarshalJSON(data []byte) error {
	var parsed polygonSchema
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	p.Vertices = make([]mgl64.Vec3, len(parsed.Vertices))
	for i, v := range parsed.Vertices {
		p.Vertices[i] = mgl64.Vec3(v)
	}
	return nil
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	parsed := struct {
		Vertices [][3]float64 `json:"vertices"`
	}{make([][3]float64, len(p.Vertices))}
	for i, v := range p.Vertices {
		parsed.Vertices[i] = [3]float64(v)
	}
	return json.Marshal(parsed)
}

// point is a transformed input position together with its weld key.
type point struct {
	pos mgl64.Vec3
	key Key
}

// ring is the working form of one polygon during conversion; index is the
// position of the source polygon in Geometry.Polygons.
type ring struct {
	index  int
	points []point
}

// rings extracts and transforms the positions of every polygon with at
// least three input vertices, preserving polygon order.
func (g *Geometry) rings(precision int) []ring {
	rings := make([]ring, 0, len(g.Polygons))
	for i, poly := range g.Polygons {
		if len(poly.Vertices) < 3 {
			continue
		}
		r := ring{index: i, points: make([]point, len(poly.Vertices))}
		for j, v := range poly.Vertices {
			pos := ApplyTransform(v, g.Transform)
			r.points[j] = point{pos, Quantize(pos, precision)}
		}
		rings = append(rings, r)
	}
	return rings
}
