package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangleJSON = `{"polygons":[
	{"vertices":[[0,0,0],[0,1,0],[1,0,0]]},
	{"vertices":[[0,0,0],[1,0,0],[0,0,1]]},
	{"vertices":[[0,0,0],[0,0,1],[0,1,0]]},
	{"vertices":[[1,0,0],[0,1,0],[0,0,1]]}
]}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOptions(t *testing.T) {
	opts, err := loadOptions(writeTemp(t, "opts.json", `{"precision":5,"name":"part.step"}`))
	if err != nil {
		t.Fatal(err)
	}
	if opts.Precision != 5 || opts.Name != "part.step" || opts.Epsilon != 1e-6 {
		t.Errorf("got %+v", opts)
	}

	if opts, err = loadOptions(""); err != nil || opts.Name != "" || opts.Precision != 7 {
		t.Errorf("without a config file: got %+v, %v", opts, err)
	}

	if _, err = loadOptions(writeTemp(t, "bad.json", `{"precision":`)); err == nil {
		t.Error("expected an error for malformed options")
	}
}

func TestRun(t *testing.T) {
	input := writeTemp(t, "tetra.json", triangleJSON)
	output := filepath.Join(filepath.Dir(input), "tetra.step")

	err := run(cliFlags{
		output:    output,
		color:     "0,0.5,1",
		transform: "1,0,0,0,0,1,0,0,0,0,1,0,5,0,0,1",
	}, input)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		"FILE_NAME('tetra.step',",
		"COLOUR_RGB('',0.,0.5,1.)",
		"CARTESIAN_POINT('',(6.,0.,0.))",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if n := strings.Count(out, "=ADVANCED_FACE("); n != 4 {
		t.Errorf("got %d faces, want 4", n)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	input := writeTemp(t, "tetra.json", triangleJSON)
	output := filepath.Join(filepath.Dir(input), "out.step")

	for name, f := range map[string]cliFlags{
		"no output":      {},
		"short color":    {output: output, color: "1,0"},
		"short matrix":   {output: output, transform: "1,0,0"},
		"numeric matrix": {output: output, transform: "a,b"},
	} {
		t.Run(name, func(t *testing.T) {
			if err := run(f, input); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRunHeaderName(t *testing.T) {
	input := writeTemp(t, "tetra.json", triangleJSON)
	dir := filepath.Dir(input)
	config := filepath.Join(dir, "opts.json")
	if err := os.WriteFile(config, []byte(`{"name":"shape.step"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		flags cliFlags
		want  string
	}{
		{"from output", cliFlags{output: filepath.Join(dir, "a.step")}, "FILE_NAME('a.step',"},
		{"from config", cliFlags{output: filepath.Join(dir, "b.step"), config: config}, "FILE_NAME('shape.step',"},
		{"from flag", cliFlags{output: filepath.Join(dir, "c.step"), config: config, name: "part.step"}, "FILE_NAME('part.step',"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.flags, input); err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(tt.flags.output)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("header does not contain %q", tt.want)
			}
		})
	}
}
