package brep

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"axis", vec(0, 3, 0), vec(0, 1, 0)},
		{"diagonal", vec(3, 4, 0), vec(0.6, 0.8, 0)},
		{"zero", vec(0, 0, 0), vec(0, 0, 1)},
		{"nan", vec(math.NaN(), 0, 0), vec(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); !got.ApproxEqual(tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuantize(t *testing.T) {
	base := Quantize(vec(1.5, -2.25, 0), 7)
	if want := (Key{15000000, -22500000, 0}); base != want {
		t.Errorf("Quantize: got %v, want %v", base, want)
	}
	if near := Quantize(vec(1.5+1e-8, -2.25-1e-8, 1e-9), 7); near != base {
		t.Errorf("positions 1e-8 apart got keys %v and %v", near, base)
	}
	if far := Quantize(vec(1.5+1e-6, -2.25, 0), 7); far == base {
		t.Error("positions 1e-6 apart share a key")
	}
	if negZero := Quantize(vec(math.Copysign(0, -1), -1e-9, 0), 7); negZero != (Key{}) {
		t.Errorf("negative zero: got %v, want the zero key", negZero)
	}
	if coarse := Quantize(vec(1.04, 0, 0), 1); coarse.X != 10 {
		t.Errorf("precision 1: got %v, want 10", coarse.X)
	}
	if s := base.String(); s != "15000000,-22500000,0" {
		t.Errorf("String: got %q", s)
	}
}

func TestKeyOrder(t *testing.T) {
	a := Key{0, 5, 5}
	b := Key{1, 0, 0}
	c := Key{1, 0, 1}
	if !a.Less(b) || !b.Less(c) || !a.Less(c) {
		t.Error("keys are not ordered by X, then Y, then Z")
	}
	if b.Less(a) || a.Less(a) {
		t.Error("Less is not strict")
	}

	if MakeEdgeKey(c, a) != MakeEdgeKey(a, c) {
		t.Error("edge key depends on argument order")
	}
	if k := MakeEdgeKey(c, a); k.A != a || k.B != c {
		t.Errorf("edge key %v does not start at the smaller key", k)
	}
}

func TestApplyTransform(t *testing.T) {
	p := vec(1, 2, 3)
	projective := make([]float64, 16)
	projective[0], projective[5], projective[10] = 1, 1, 1
	projective[15] = 2 // w = 2 for every point

	tests := []struct {
		name string
		m    []float64
		want mgl64.Vec3
	}{
		{"none", nil, p},
		{"wrong length", []float64{1, 2, 3}, p},
		{"identity", ComposeTransforms(nil, Translation(0, 0, 0)), p},
		{"translation", Translation(10, 20, 30), vec(11, 22, 33)},
		{"scale", Scaling(2), vec(2, 4, 6)},
		{"homogeneous divide", projective, vec(0.5, 1, 1.5)},
		{"zero w", make([]float64, 16), vec(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyTransform(p, tt.m); !got.ApproxEqual(tt.want) {
				t.Errorf("ApplyTransform(%v) = %v, want %v", p, got, tt.want)
			}
		})
	}
}

func TestComposeTransforms(t *testing.T) {
	// scale first, then translate
	m := ComposeTransforms(Translation(1, 0, 0), Scaling(3))
	if got := ApplyTransform(vec(1, 1, 1), m); !got.ApproxEqual(vec(4, 3, 3)) {
		t.Errorf("composed transform: got %v, want (4, 3, 3)", got)
	}

	if ComposeTransforms(nil, []float64{1}) != nil {
		t.Error("composing two missing transforms is not nil")
	}
	if got := ApplyTransform(vec(1, 1, 1), ComposeTransforms(nil, Scaling(2))); !got.ApproxEqual(vec(2, 2, 2)) {
		t.Errorf("missing outer: got %v", got)
	}
}

func TestParseCSFloats(t *testing.T) {
	floats, err := ParseCSFloats("1, 0.5,-2e3")
	if err != nil {
		t.Fatal(err)
	}
	if len(floats) != 3 || floats[0] != 1 || floats[1] != 0.5 || floats[2] != -2000 {
		t.Errorf("got %v", floats)
	}
	if _, err := ParseCSFloats("1,x,3"); err == nil {
		t.Error("expected an error for a non numeric value")
	}
}

func TestPointOnSegment(t *testing.T) {
	a, b := vec(0, 0, 0), vec(10, 0, 0)
	tests := []struct {
		name  string
		p     mgl64.Vec3
		ok    bool
		wantT float64
	}{
		{"middle", vec(5, 0, 0), true, 0.5},
		{"within tolerance of the line", vec(2.5, 5e-7, 0), true, 0.25},
		{"off the line", vec(5, 1e-5, 0), false, 0},
		{"beyond the end", vec(11, 0, 0), false, 0},
		{"at the start", vec(0, 0, 0), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pointOnSegment(a, b, tt.p, 1e-6)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && math.Abs(got-tt.wantT) > 1e-12 {
				t.Errorf("t: got %v, want %v", got, tt.wantT)
			}
		})
	}

	if _, ok := pointOnSegment(a, a, a, 1e-6); ok {
		t.Error("accepted a point on a zero length segment")
	}
}

func TestCollapseDuplicates(t *testing.T) {
	pt := func(x float64) point {
		pos := vec(x, 0, 0)
		return point{pos, Quantize(pos, 7)}
	}
	got := collapseDuplicates([]point{pt(0), pt(0), pt(1), pt(2), pt(2), pt(0)})
	if len(got) != 3 || got[0].pos[0] != 1 || got[1].pos[0] != 2 || got[2].pos[0] != 0 {
		t.Errorf("got %v", got)
	}
}
