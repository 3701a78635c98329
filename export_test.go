package brep

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/nat-n/brep/step"
)

func TestExportColoredCube(t *testing.T) {
	cube := unitCube()
	cube.Color = []float64{1, 0, 0}

	repo := step.NewRepository()
	solids, err := Export(repo, []*Geometry{cube}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(solids) != 1 {
		t.Fatalf("got %d solids, want 1", len(solids))
	}

	for keyword, want := range map[string]int{
		"PRODUCT":                            1,
		"PRODUCT_DEFINITION_SHAPE":           1,
		"ADVANCED_FACE":                      6,
		"CLOSED_SHELL":                       1,
		"MANIFOLD_SOLID_BREP":                1,
		"STYLED_ITEM":                        1,
		"COLOUR_RGB":                         1,
		"ADVANCED_BREP_SHAPE_REPRESENTATION": 1,
		"SHAPE_DEFINITION_REPRESENTATION":    1,
		"UNCERTAINTY_MEASURE_WITH_UNIT":      1,
	} {
		if got := repo.Count(keyword); got != want {
			t.Errorf("%s: got %d entities, want %d", keyword, got, want)
		}
	}
	if repo.Count("MECHANICAL_DESIGN_GEOMETRIC_PRESENTATION_REPRESENTATION") != 1 {
		t.Error("colored export has no presentation representation")
	}

	solid := repo.Resolve(solids[0]).(*step.ManifoldSolidBrep)
	shell := repo.Resolve(solid.Outer).(*step.ClosedShell)
	if len(shell.CfsFaces) != 6 {
		t.Errorf("shell has %d faces, want 6", len(shell.CfsFaces))
	}

	var rep *step.AdvancedBrepShapeRepresentation
	repo.Each(func(_ step.Ref, ent step.Entity) {
		if r, ok := ent.(*step.AdvancedBrepShapeRepresentation); ok {
			rep = r
		}
	})
	// the origin placement followed by the solid
	if rep == nil || len(rep.Items) != 2 || rep.Items[1] != solids[0] {
		t.Errorf("shape representation items: got %+v", rep)
	}
}

func TestExportKeepsGeometriesApart(t *testing.T) {
	repo := step.NewRepository()
	solids, err := Export(repo, []*Geometry{unitCube(), unitCube()}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(solids) != 2 {
		t.Fatalf("got %d solids, want 2", len(solids))
	}
	if n := repo.Count("VERTEX_POINT"); n != 16 {
		t.Errorf("got %d VERTEX_POINT entities, want 16", n)
	}
	if n := repo.Count("STYLED_ITEM"); n != 0 {
		t.Errorf("uncolored geometries got %d STYLED_ITEM entities", n)
	}
	if n := repo.Count("MECHANICAL_DESIGN_GEOMETRIC_PRESENTATION_REPRESENTATION"); n != 0 {
		t.Errorf("uncolored export has a presentation representation")
	}
}

func TestExportWithoutFaces(t *testing.T) {
	degenerate := &Geometry{Polygons: []Polygon{
		NewPolygon([3]float64{0, 0, 0}, [3]float64{1, 0, 0}),
	}}

	repo := step.NewRepository()
	solids, err := Export(repo, []*Geometry{degenerate, nil, {}}, Options{})
	if !errors.Is(err, ErrNoGeometry) {
		t.Fatalf("got error %v, want ErrNoGeometry", err)
	}
	if len(solids) != 0 {
		t.Errorf("got %d solids, want none", len(solids))
	}
	// the product structure is there regardless
	if repo.Count("SHAPE_DEFINITION_REPRESENTATION") != 1 {
		t.Error("missing SHAPE_DEFINITION_REPRESENTATION")
	}

	out, err := ToSTEP([]*Geometry{degenerate}, Options{})
	if !errors.Is(err, ErrNoGeometry) {
		t.Errorf("ToSTEP: got error %v, want ErrNoGeometry", err)
	}
	if !strings.HasSuffix(out, "END-ISO-10303-21;\n") {
		t.Error("ToSTEP did not write a complete file for empty output")
	}
}

func TestToSTEP(t *testing.T) {
	cube := unitCube()
	cube.Color = []float64{1, 0, 0}

	var logs bytes.Buffer
	out, err := ToSTEP([]*Geometry{cube}, Options{
		Name:      "cube.step",
		Timestamp: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Logger:    slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"ISO-10303-21;\nHEADER;\n",
		"FILE_NAME('cube.step','2024-05-01T12:30:00',",
		"\nDATA;\n#1=APPLICATION_CONTEXT('core data for automotive mechanical design processes');\n",
		"COLOUR_RGB('',1.,0.,0.)",
		"SURFACE_STYLE_USAGE(.BOTH.,",
		"( LENGTH_UNIT() NAMED_UNIT(*) SI_UNIT(.MILLI.,.METRE.) )",
		"ORIENTED_EDGE('',*,*,#",
		"CARTESIAN_POINT('',(1.,1.,1.))",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if !strings.HasPrefix(out, "ISO-10303-21;") || !strings.HasSuffix(out, "ENDSEC;\nEND-ISO-10303-21;\n") {
		t.Error("output is not framed as a part file")
	}

	for _, msg := range []string{"converted geometry", "exported part"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("debug log is missing %q", msg)
		}
	}
}
