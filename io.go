package brep

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

type renderedEntrySchema struct {
	Geom  *Geometry `json:"geom"`
	Color []float64 `json:"color"`
}

type renderedModelSchema struct {
	Geometries []renderedEntrySchema `json:"geometries"`
}

// Load reads geometries from JSON. Three shapes are accepted: a rendered
// model {"geometries": [{"geom": {...}, "color": [r, g, b]}]}, a single
// geometry {"polygons": [...]}, or an array of geometries.
func Load(r io.Reader) (geoms []*Geometry, err error) {
	var raw json.RawMessage
	if err = json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not parse json: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	if len(raw) > 0 && raw[0] == '[' {
		if err = json.Unmarshal(raw, &geoms); err != nil {
			return nil, fmt.Errorf("could not parse geometry list: %w", err)
		}
		return compact(geoms), nil
	}

	var probe struct {
		Geometries []json.RawMessage `json:"geometries"`
		Polygons   json.RawMessage   `json:"polygons"`
	}
	if err = json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("could not parse json object: %w", err)
	}

	switch {
	case len(probe.Geometries) > 0:
		var model renderedModelSchema
		if err = json.Unmarshal(raw, &model); err != nil {
			return nil, fmt.Errorf("could not parse rendered model: %w", err)
		}
		for _, entry := range model.Geometries {
			if entry.Geom == nil {
				continue
			}
			if len(entry.Color) > 0 && len(entry.Geom.Color) == 0 {
				entry.Geom.Color = entry.Color
			}
			geoms = append(geoms, entry.Geom)
		}
		return geoms, nil
	case len(probe.Polygons) > 0:
		g := new(Geometry)
		if err = json.Unmarshal(raw, g); err != nil {
			return nil, fmt.Errorf("could not parse geometry: %w", err)
		}
		return []*Geometry{g}, nil
	}
	return nil, errors.New("json holds neither geometries nor polygons")
}

func compact(geoms []*Geometry) []*Geometry {
	out := geoms[:0]
	for _, g := range geoms {
		if g != nil {
			out = append(out, g)
		}
	}
	return out
}

// Save writes geoms as a JSON array that Load reads back.
func Save(w io.Writer, geoms []*Geometry) error {
	if err := json.NewEncoder(w).Encode(geoms); err != nil {
		return fmt.Errorf("could not encode geometries: %w", err)
	}
	return nil
}

// LoadOBJ reads a Wavefront OBJ polygon soup. Faces keep their vertex count,
// and each o or g statement that is followed by faces starts a new geometry.
func LoadOBJ(r io.Reader) (geoms []*Geometry, err error) {
	var positions []mgl64.Vec3
	current := new(Geometry)
	flush := func() {
		if len(current.Polygons) > 0 {
			geoms = append(geoms, current)
		}
		current = new(Geometry)
	}

	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		// discard anything on this line after a #
		if commentStart := strings.Index(line, "#"); commentStart >= 0 {
			line = line[:commentStart]
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "v":
			if len(words) < 4 {
				return nil, errors.New("vertex with fewer than 3 coordinates on line " + strconv.Itoa(lineNo))
			}
			var v mgl64.Vec3
			for i := 0; i < 3; i++ {
				v[i], err = strconv.ParseFloat(words[i+1], 64)
				if err != nil {
					return nil, errors.New("error parsing OBJ vertex on line " + strconv.Itoa(lineNo))
				}
			}
			positions = append(positions, v)
		case "f":
			poly := Polygon{Vertices: make([]mgl64.Vec3, 0, len(words)-1)}
			for _, ref := range words[1:] {
				idx, err := objIndex(ref, len(positions))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				poly.Vertices = append(poly.Vertices, positions[idx])
			}
			current.Polygons = append(current.Polygons, poly)
		case "o", "g":
			flush()
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return geoms, nil
}

// objIndex resolves a face vertex reference (i, i/t, i//n or i/t/n, with
// negative i counting back from the latest vertex) to a 0-based index.
func objIndex(ref string, count int) (int, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	i, err := strconv.Atoi(ref)
	if err != nil {
		return 0, errors.New("could not parse face index from: " + ref)
	}
	if i < 0 {
		i += count
	} else {
		i--
	}
	if i < 0 || i >= count {
		return 0, errors.New("face index out of range: " + ref)
	}
	return i, nil
}

// ReadFile loads geometries from an .obj file or, for any other extension,
// from JSON.
func ReadFile(path string) (geoms []*Geometry, err error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return
	}
	defer inputFile.Close()

	if strings.EqualFold(filepath.Ext(path), ".obj") {
		return LoadOBJ(inputFile)
	}
	return Load(inputFile)
}

// WriteFile converts geoms and writes the resulting part file to path.
// ErrNoGeometry is passed through after the file has been written.
func WriteFile(path string, geoms []*Geometry, opts Options) (err error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		closeErr := outputFile.Close()
		if closeErr != nil && (err == nil || errors.Is(err, ErrNoGeometry)) {
			err = closeErr
		}
	}()

	if opts.Name == "" {
		opts.Name = filepath.Base(path)
	}
	return WriteSTEP(outputFile, geoms, opts)
}
