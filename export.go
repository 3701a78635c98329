package brep

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/nat-n/brep/step"
)

// ErrNoGeometry is returned when none of the geometries produced a face. The
// part file is still written, with an empty shape representation.
var ErrNoGeometry = errors.New("no geometry produced any faces")

// Export adds a complete part to repo: product structure, units and
// representation context, and one MANIFOLD_SOLID_BREP per geometry that
// yields faces, colored when the geometry carries a color.
func Export(repo *step.Repository, geoms []*Geometry, opts Options) (solids []step.Ref, err error) {
	opts = opts.withDefaults()

	appContext := repo.Add(&step.ApplicationContext{
		Application: "core data for automotive mechanical design processes",
	})
	repo.Add(&step.ApplicationProtocolDefinition{
		Status:                                "international standard",
		ApplicationInterpretedModelSchemaName: "automotive_design",
		ApplicationProtocolYear:               2000,
		Application:                           appContext,
	})
	productContext := repo.Add(&step.ProductContext{
		FrameOfReference: appContext,
		DisciplineType:   "mechanical",
	})
	product := repo.Add(&step.Product{
		ID:               "shape",
		Name:             "shape",
		FrameOfReference: []step.Ref{productContext},
	})
	productDefContext := repo.Add(&step.ProductDefinitionContext{
		Name:             "part definition",
		FrameOfReference: appContext,
		LifeCycleStage:   "design",
	})
	productDefFormation := repo.Add(&step.ProductDefinitionFormation{OfProduct: product})
	productDef := repo.Add(&step.ProductDefinition{
		ID:               "design",
		Formation:        productDefFormation,
		FrameOfReference: productDefContext,
	})
	productDefShape := repo.Add(&step.ProductDefinitionShape{Definition: productDef})

	geomContext := addRepresentationContext(repo)

	origin := repo.Add(&step.CartesianPoint{})
	zDir := repo.Add(&step.Direction{Z: 1})
	xDir := repo.Add(&step.Direction{X: 1})
	placement := repo.Add(&step.Axis2Placement3D{Location: origin, Axis: zDir, RefDirection: xDir})

	shapeItems := []step.Ref{placement}
	var colorItems []step.Ref

	for i, g := range geoms {
		if g == nil || len(g.Polygons) == 0 {
			continue
		}

		topology := Convert(repo, g, opts)
		if len(topology.Faces) == 0 {
			opts.Logger.Debug("geometry produced no faces", slog.Int("geometry", i))
			continue
		}

		shell := repo.Add(&step.ClosedShell{CfsFaces: topology.FaceRefs()})
		solid := repo.Add(&step.ManifoldSolidBrep{Outer: shell})
		shapeItems = append(shapeItems, solid)
		solids = append(solids, solid)

		if len(g.Color) >= 3 {
			colorItems = append(colorItems, ApplyColorChain(repo, solid, g.Color))
		}
	}

	shapeRep := repo.Add(&step.AdvancedBrepShapeRepresentation{
		Items:          shapeItems,
		ContextOfItems: geomContext,
	})
	repo.Add(&step.ShapeDefinitionRepresentation{
		Definition:         productDefShape,
		UsedRepresentation: shapeRep,
	})

	if len(colorItems) > 0 {
		items := make([]string, len(colorItems))
		for i, ci := range colorItems {
			items[i] = ci.String()
		}
		repo.Add(&step.Unknown{
			Name: "MECHANICAL_DESIGN_GEOMETRIC_PRESENTATION_REPRESENTATION",
			Args: []string{"''", "(" + strings.Join(items, ",") + ")", geomContext.String()},
		})
	}

	opts.Logger.Debug("exported part",
		slog.Int("geometries", len(geoms)),
		slog.Int("solids", len(solids)),
		slog.Int("colored", len(colorItems)),
		slog.Int("entities", repo.Len()))

	if len(solids) == 0 {
		err = ErrNoGeometry
	}
	return
}

// addRepresentationContext adds millimetre, radian and steradian units, a
// 1e-7 length uncertainty and the 3D geometric context that uses them.
func addRepresentationContext(repo *step.Repository) step.Ref {
	lengthUnit := repo.Add(&step.Unknown{Args: []string{
		"( LENGTH_UNIT() NAMED_UNIT(*) SI_UNIT(.MILLI.,.METRE.) )",
	}})
	angleUnit := repo.Add(&step.Unknown{Args: []string{
		"( NAMED_UNIT(*) PLANE_ANGLE_UNIT() SI_UNIT($,.RADIAN.) )",
	}})
	solidAngleUnit := repo.Add(&step.Unknown{Args: []string{
		"( NAMED_UNIT(*) SI_UNIT($,.STERADIAN.) SOLID_ANGLE_UNIT() )",
	}})
	uncertainty := repo.Add(&step.Unknown{
		Name: "UNCERTAINTY_MEASURE_WITH_UNIT",
		Args: []string{
			"LENGTH_MEASURE(1.E-07)",
			lengthUnit.String(),
			"'distance_accuracy_value'",
			"'confusion accuracy'",
		},
	})
	return repo.Add(&step.Unknown{Args: []string{
		"( GEOMETRIC_REPRESENTATION_CONTEXT(3) " +
			"GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((" + uncertainty.String() + ")) " +
			"GLOBAL_UNIT_ASSIGNED_CONTEXT((" + lengthUnit.String() + "," + angleUnit.String() + "," + solidAngleUnit.String() + ")) " +
			"REPRESENTATION_CONTEXT('Context #1','3D Context with UNIT and UNCERTAINTY') )",
	}})
}

// WriteSTEP converts geoms and writes the part file to w. ErrNoGeometry is
// returned after the (empty) part has been written.
func WriteSTEP(w io.Writer, geoms []*Geometry, opts Options) error {
	opts = opts.withDefaults()
	repo := step.NewRepository()
	_, exportErr := Export(repo, geoms, opts)
	err := repo.WritePartFile(w, step.PartFileOptions{
		Name:      opts.Name,
		Timestamp: opts.Timestamp,
	})
	if err != nil {
		return err
	}
	return exportErr
}

// ToSTEP is WriteSTEP into a string.
func ToSTEP(geoms []*Geometry, opts Options) (string, error) {
	var sb strings.Builder
	err := WriteSTEP(&sb, geoms, opts)
	return sb.String(), err
}
