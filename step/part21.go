package step

import (
	"bufio"
	"io"
	"strings"
	"time"
)

const defaultSchema = "AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }"

// PartFileOptions fills in the HEADER section of a part file.
type PartFileOptions struct {
	Name          string
	Description   string
	Author        string
	Organization  string
	Preprocessor  string
	Originating   string
	Authorization string
	Schema        string
	// Timestamp defaults to the current time.
	Timestamp time.Time
}

func (o PartFileOptions) withDefaults() PartFileOptions {
	if o.Name == "" {
		o.Name = "shape.step"
	}
	if o.Description == "" {
		o.Description = "model"
	}
	if o.Schema == "" {
		o.Schema = defaultSchema
	}
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now()
	}
	return o
}

// Encode renders a single entity as it appears after the = of an instance
// line, without the terminating semicolon.
func Encode(ent Entity) string {
	e := &Encoder{}
	ent.WriteParams(e)
	if ent.Keyword() == "" {
		return e.result()
	}
	return ent.Keyword() + "(" + e.result() + ")"
}

// WritePartFile serializes every entity in the repository, in ref order, as
// an ISO 10303-21 exchange structure.
func (r *Repository) WritePartFile(w io.Writer, opts PartFileOptions) error {
	opts = opts.withDefaults()
	bw := bufio.NewWriter(w)

	header := []string{
		"ISO-10303-21;",
		"HEADER;",
		"FILE_DESCRIPTION((" + quote(opts.Description) + "),'2;1');",
		"FILE_NAME(" + strings.Join([]string{
			quote(opts.Name),
			quote(opts.Timestamp.UTC().Format("2006-01-02T15:04:05")),
			"(" + quote(opts.Author) + ")",
			"(" + quote(opts.Organization) + ")",
			quote(opts.Preprocessor),
			quote(opts.Originating),
			quote(opts.Authorization),
		}, ",") + ");",
		"FILE_SCHEMA((" + quote(opts.Schema) + "));",
		"ENDSEC;",
		"DATA;",
	}
	for _, line := range header {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}

	r.Each(func(ref Ref, ent Entity) {
		bw.WriteString(ref.String())
		bw.WriteByte('=')
		bw.WriteString(Encode(ent))
		bw.WriteString(";\n")
	})

	bw.WriteString("ENDSEC;\n")
	bw.WriteString("END-ISO-10303-21;\n")
	return bw.Flush()
}

func (r *Repository) PartFile(opts PartFileOptions) string {
	var sb strings.Builder
	// strings.Builder never fails to write
	_ = r.WritePartFile(&sb, opts)
	return sb.String()
}
