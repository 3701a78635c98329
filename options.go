package brep

import (
	"log/slog"
	"time"
)

// Options tunes the tolerances of a conversion and the header of the
// exported file. Zero valued fields take their value from DefaultOptions.
type Options struct {
	// Precision is the number of decimal places positions are rounded to
	// before vertices are welded.
	Precision int `json:"precision"`
	// Epsilon bounds both the distance of a point from an edge and the
	// parametric margin from its endpoints for T-junction splitting.
	Epsilon float64 `json:"epsilon"`
	// MinEdgeLengthSq is the squared length under which an edge is never
	// considered for T-junction splitting.
	MinEdgeLengthSq float64 `json:"minEdgeLengthSq"`

	// Name is written into the FILE_NAME header.
	Name string `json:"name"`
	// Timestamp is written into the FILE_NAME header, now if unset.
	Timestamp time.Time `json:"-"`

	Logger *slog.Logger `json:"-"`
}

var DefaultOptions = Options{
	Precision:       7,
	Epsilon:         1e-6,
	MinEdgeLengthSq: 1e-14,
	Name:            "shape.step",
}

func (o Options) withDefaults() Options {
	if o.Precision <= 0 {
		o.Precision = DefaultOptions.Precision
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultOptions.Epsilon
	}
	if o.MinEdgeLengthSq <= 0 {
		o.MinEdgeLengthSq = DefaultOptions.MinEdgeLengthSq
	}
	if o.Name == "" {
		o.Name = DefaultOptions.Name
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
