package ilda

// Config holds every user-settable parameter of a Frame. It is a plain
// value: changes take effect on the next call to Frame.Update.
type Config struct {
	Path   PathConfig   `toml:"path" yaml:"path"`
	Draw   DrawConfig   `toml:"draw" yaml:"draw"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// PathConfig controls the path processing stages. Values <= 0 disable the
// corresponding stage.
type PathConfig struct {
	// SmoothAmount is the smoothing window in vertices.
	SmoothAmount int `toml:"smooth_amount" yaml:"smooth_amount"`

	// OptimizeTolerance is the simplification tolerance in frame units.
	OptimizeTolerance float64 `toml:"optimize_tolerance" yaml:"optimize_tolerance"`

	// TargetPointCount is the approximate number of vertices ALL paths of
	// the frame are resampled to. When set, the resampling spacing is
	// derived from the total path length on every pass and Spacing is
	// ignored.
	TargetPointCount int `toml:"target_point_count" yaml:"target_point_count"`

	// Spacing is the arc-length distance between resampled vertices, used
	// when TargetPointCount is disabled or the frame has no length.
	Spacing float64 `toml:"spacing" yaml:"spacing"`
}

// DrawConfig selects what the preview renderer draws.
type DrawConfig struct {
	Lines        bool `toml:"lines" yaml:"lines"`
	Points       bool `toml:"points" yaml:"points"`
	PointNumbers bool `toml:"point_numbers" yaml:"point_numbers"`
}

// OutputConfig controls point stream assembly.
type OutputConfig struct {
	// Color is assigned to paths when they are added to the frame.
	Color RGBA `toml:"color" yaml:"color"`

	// BlankCount is the number of laser-off points sent at each path end.
	BlankCount int `toml:"blank_count" yaml:"blank_count"`

	// EndCount is the number of visible repeats sent at each path end.
	EndCount int `toml:"end_count" yaml:"end_count"`

	// DoCapX clamps out of range x coordinates, otherwise they wrap.
	DoCapX bool `toml:"cap_x" yaml:"cap_x"`

	// DoCapY clamps out of range y coordinates, otherwise they wrap.
	DoCapY bool `toml:"cap_y" yaml:"cap_y"`

	Transform TransformConfig `toml:"transform" yaml:"transform"`
}

// TransformConfig is applied to every output point, in the order
// flip, scale about the frame centre, offset.
type TransformConfig struct {
	FlipX bool `toml:"flip_x" yaml:"flip_x"`
	FlipY bool `toml:"flip_y" yaml:"flip_y"`

	Offset Point `toml:"offset" yaml:"offset"`

	// Scale of exactly (0, 0) means unset and disables scaling.
	Scale Point `toml:"scale" yaml:"scale"`
}

// DefaultConfig returns the configuration a new Frame starts with.
func DefaultConfig() Config {
	return Config{
		Path: PathConfig{
			SmoothAmount:      0,
			OptimizeTolerance: 0,
			TargetPointCount:  500,
			Spacing:           0,
		},
		Draw: DrawConfig{
			Lines:        true,
			Points:       true,
			PointNumbers: false,
		},
		Output: OutputConfig{
			Color:      White,
			BlankCount: 30,
			EndCount:   30,
			DoCapX:     false,
			DoCapY:     false,
			Transform: TransformConfig{
				FlipX:  false,
				FlipY:  false,
				Offset: Pt(0, 0),
				Scale:  Pt(1, 1),
			},
		},
	}
}
