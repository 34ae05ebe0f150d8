// Package framefile reads and writes frame descriptions: a configuration
// plus a list of paths with optional per-path colors.
//
// Two encodings are supported, chosen by file extension: TOML (.toml) and
// YAML (.yaml, .yml). A minimal TOML description looks like:
//
//	[config.output]
//	blank_count = 10
//	end_count = 5
//
//	[[paths]]
//	color = "#ff0000"
//	points = [[0.1, 0.1], [0.9, 0.1], [0.5, 0.9]]
//	closed = true
//
// A path color is either a hex string in color or a float table in rgba
// (rgba = {r = 1.0, g = 0.5, b = 0.0, a = 1.0}). Save always writes rgba
// so colors survive a round trip at full precision.
//
// Configuration keys that are not present keep their ilda.DefaultConfig
// values.
package framefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ilda"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for file extensions without an encoding.
	ErrUnknownFormat = errors.New("framefile: unknown format")

	// ErrColorConflict is returned for a path that sets both color and rgba.
	ErrColorConflict = errors.New("framefile: both color and rgba set")
)

// Format is a document encoding.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf returns the format for a file name based on its extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Document is the serialized form of a frame.
type Document struct {
	Config ilda.Config `toml:"config" yaml:"config"`
	Paths  []Path      `toml:"paths" yaml:"paths"`
}

// Path is a single serialized path. With neither Color nor RGBA set the
// path takes the document's output color.
type Path struct {
	Color  string       `toml:"color,omitempty" yaml:"color,omitempty"`
	RGBA   *ilda.RGBA   `toml:"rgba,omitempty" yaml:"rgba,omitempty"`
	Closed bool         `toml:"closed,omitempty" yaml:"closed,omitempty"`
	Points [][2]float64 `toml:"points" yaml:"points"`
}

// resolveColor returns the color of the path, or def if it has none.
func (p Path) resolveColor(def ilda.RGBA) (ilda.RGBA, error) {
	switch {
	case p.Color != "" && p.RGBA != nil:
		return ilda.RGBA{}, ErrColorConflict
	case p.RGBA != nil:
		return *p.RGBA, nil
	case p.Color != "":
		return ilda.ParseHex(p.Color)
	}
	return def, nil
}

// Validate checks every path color.
func (d *Document) Validate() error {
	for i, p := range d.Paths {
		if _, err := p.resolveColor(d.Config.Output.Color); err != nil {
			return fmt.Errorf("framefile: path %d: %w", i, err)
		}
	}
	return nil
}

// Decode reads a document. Missing configuration keys keep their
// default values.
func Decode(r io.Reader, format Format) (*Document, error) {
	doc := &Document{Config: ilda.DefaultConfig()}
	var err error
	switch format {
	case TOML:
		err = toml.NewDecoder(r).Decode(doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(doc)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("framefile: decode %v: %w", format, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode writes a document.
func Encode(w io.Writer, format Format, doc *Document) error {
	var err error
	switch format {
	case TOML:
		err = toml.NewEncoder(w).Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("framefile: encode %v: %w", format, err)
	}
	return nil
}

// Frame builds a new frame from the document. Paths are added in order,
// each with its own color or the configured output color.
func (d *Document) Frame() (*ilda.Frame, error) {
	f := ilda.NewFrame(ilda.WithConfig(d.Config))
	for i, p := range d.Paths {
		c, err := p.resolveColor(d.Config.Output.Color)
		if err != nil {
			return nil, fmt.Errorf("framefile: path %d: %w", i, err)
		}
		cfg := d.Config
		cfg.Output.Color = c
		f.SetConfig(cfg)

		poly := f.AddPath()
		for _, v := range p.Points {
			poly.LineTo(v[0], v[1])
		}
		poly.Closed = p.Closed
	}
	f.SetConfig(d.Config)
	return f, nil
}

// FromFrame captures the configuration and original paths of f.
func FromFrame(f *ilda.Frame) *Document {
	doc := &Document{
		Config: f.Config(),
		Paths:  make([]Path, f.Len()),
	}
	for i := range doc.Paths {
		src := f.Path(i)
		p := Path{
			Closed: src.Closed,
			Points: make([][2]float64, src.Len()),
		}
		if c := f.PathColor(i); c != doc.Config.Output.Color {
			p.RGBA = &c
		}
		for j, v := range src.Points {
			p.Points[j] = [2]float64{v.X, v.Y}
		}
		doc.Paths[i] = p
	}
	return doc
}

// Load reads the frame description at path.
func Load(path string) (*ilda.Frame, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("framefile: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}
	ilda.Logger().Info("framefile: loaded", "path", path, "format", format, "paths", len(doc.Paths))
	return doc.Frame()
}

// Save writes the configuration and original paths of f to path.
func Save(path string, f *ilda.Frame) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, format, FromFrame(f)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // frame files are not secret
		return fmt.Errorf("framefile: %w", err)
	}
	ilda.Logger().Info("framefile: saved", "path", path, "format", format, "paths", f.Len())
	return nil
}
