package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/nat-n/brep"
)

/*
 * Example Usages:
 *
 * Convert a JSON polygon soup to STEP:
 * brep -o /path/to/shape.step /path/to/model.json
 *
 * Convert an OBJ file, painting every solid red and shifting it up by 5mm:
 * brep -color 1,0,0 -transform 1,0,0,0,0,1,0,0,0,0,1,0,0,0,5,1 -o out.step in.obj
 *
 * Read JSON from stdin with tolerances from a config file:
 * cat model.json | brep -config opts.json -o out.step -
 */

type cliFlags struct {
	output    string
	name      string
	config    string
	color     string
	transform string
	verbose   bool
}

func parseFlags() (f cliFlags, input string) {
	flag.StringVar(&f.output, "o", "", "output .step file (required)")
	flag.StringVar(&f.name, "name", "", "file name written into the STEP header (default: base name of -o)")
	flag.StringVar(&f.config, "config", "", "JSON file with conversion options")
	flag.StringVar(&f.color, "color", "", "r,g,b color for geometries that have none")
	flag.StringVar(&f.transform, "transform", "", "16 comma seperated values of a column major 4x4 matrix applied to every geometry")
	flag.BoolVar(&f.verbose, "v", false, "verbose mode")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: brep [flags] -o output.step input.{json,obj|-}")
		flag.PrintDefaults()
	}
	flag.Parse()
	return f, flag.Arg(0)
}

// loadOptions reads conversion options over the defaults. Name is left empty
// unless the file sets it, so that the output file name can take its place.
func loadOptions(path string) (opts brep.Options, err error) {
	opts = brep.DefaultOptions
	opts.Name = ""
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err = json.Unmarshal(data, &opts); err != nil {
		err = errors.New("could not parse options from " + path + ": " + err.Error())
	}
	return
}

func loadGeometries(input string) ([]*brep.Geometry, error) {
	if input == "-" {
		return brep.Load(os.Stdin)
	}
	return brep.ReadFile(input)
}

func run(f cliFlags, input string) error {
	if input == "" || f.output == "" {
		flag.Usage()
		return errors.New("an input and an -o output are required")
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts, err := loadOptions(f.config)
	if err != nil {
		return err
	}
	opts.Logger = logger
	if f.name != "" {
		opts.Name = f.name
	}

	geoms, err := loadGeometries(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded input", slog.String("path", input), slog.Int("geometries", len(geoms)))

	if f.color != "" {
		rgb, err := brep.ParseCSFloats(f.color)
		if err != nil {
			return err
		}
		if len(rgb) != 3 {
			return errors.New("-color takes exactly three values")
		}
		for _, g := range geoms {
			if len(g.Color) == 0 {
				g.Color = rgb
			}
		}
	}

	if f.transform != "" {
		m, err := brep.ParseCSFloats(f.transform)
		if err != nil {
			return err
		}
		if len(m) != 16 {
			return errors.New("-transform takes exactly sixteen values")
		}
		for _, g := range geoms {
			g.Transform = brep.ComposeTransforms(m, g.Transform)
		}
	}

	if err = brep.WriteFile(f.output, geoms, opts); err != nil {
		return err
	}
	if f.verbose {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintln(os.Stderr, green("wrote "+f.output))
	}
	return nil
}

func main() {
	f, input := parseFlags()
	if err := run(f, input); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}
}
