package ilda

// Option configures a Frame during creation.
//
// Example:
//
//	// Default configuration
//	f := ilda.NewFrame()
//
//	// Start from a custom configuration
//	cfg := ilda.DefaultConfig()
//	cfg.Output.BlankCount = 10
//	f := ilda.NewFrame(ilda.WithConfig(cfg))
type Option func(*frameOptions)

// frameOptions holds optional configuration for Frame creation.
type frameOptions struct {
	config Config
}

// defaultOptions returns the default frame options.
func defaultOptions() frameOptions {
	return frameOptions{
		config: DefaultConfig(),
	}
}

// WithConfig sets the initial configuration of the Frame.
func WithConfig(c Config) Option {
	return func(o *frameOptions) {
		o.config = c
	}
}

// WithColor sets the output color assigned to paths added afterwards.
func WithColor(c RGBA) Option {
	return func(o *frameOptions) {
		o.config.Output.Color = c
	}
}
