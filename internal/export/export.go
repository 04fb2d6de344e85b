// Package export writes sampled graph frames in text formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"wavegraph/internal/core"
	"wavegraph/internal/function"
)

// Format selects the output encoding.
type Format string

const (
	// CSV writes one row per point with a header line.
	CSV Format = "csv"
	// YAML writes the whole document as a single YAML mapping.
	YAML Format = "yaml"
	// TOML writes the document with frames as arrays of tables.
	TOML Format = "toml"
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case CSV, YAML, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Point is one grid cell in a frame.
type Point struct {
	Index int     `yaml:"i" toml:"i"`
	X     float32 `yaml:"x" toml:"x"`
	Y     float32 `yaml:"y" toml:"y"`
	Z     float32 `yaml:"z" toml:"z"`
}

// Frame is the grid state after one Step.
type Frame struct {
	Tick   int     `yaml:"tick" toml:"tick"`
	Time   float32 `yaml:"time" toml:"time"`
	Points []Point `yaml:"points" toml:"points"`
}

// Document is everything written for one run.
type Document struct {
	Function   function.Name `yaml:"function" toml:"function"`
	Resolution int           `yaml:"resolution" toml:"resolution"`
	Scale      float32       `yaml:"scale" toml:"scale"`
	Frames     []Frame       `yaml:"frames" toml:"frames"`
}

// NewFrame snapshots positions at tick n and time t.
func NewFrame(n int, t float32, points []core.Vec3) Frame {
	f := Frame{Tick: n, Time: t, Points: make([]Point, len(points))}
	for i, p := range points {
		f.Points[i] = Point{Index: i, X: p.X, Y: p.Y, Z: p.Z}
	}
	return f
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case CSV:
		return writeCSV(w, doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"function", "tick", "time", "i", "x", "y", "z"}); err != nil {
		return err
	}
	name := doc.Function.String()
	for _, f := range doc.Frames {
		for _, p := range f.Points {
			rec := []string{
				name,
				strconv.Itoa(f.Tick),
				formatFloat(f.Time),
				strconv.Itoa(p.Index),
				formatFloat(p.X),
				formatFloat(p.Y),
				formatFloat(p.Z),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
