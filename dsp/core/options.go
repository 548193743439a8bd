package core

// SweepConfig defines the shared angle sweep a curve is evaluated over.
type SweepConfig struct {
	// Samples is the number of angle values in the sweep.
	Samples int
	// Loops is the number of full turns (2π each) the sweep covers.
	Loops float64
	// Periodic excludes the final angle so the sweep tiles seamlessly,
	// which FFT-based analysis relies on.
	Periodic bool
}

// SweepOption mutates a SweepConfig.
type SweepOption func(*SweepConfig)

// DefaultSweepConfig returns 10000 samples over 25 loops with the endpoint included.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Samples: 10000,
		Loops:   25,
	}
}

// WithSamples sets the sweep length.
func WithSamples(samples int) SweepOption {
	return func(cfg *SweepConfig) {
		if samples > 0 {
			cfg.Samples = samples
		}
	}
}

// WithLoops sets the number of turns covered by the sweep.
func WithLoops(loops float64) SweepOption {
	return func(cfg *SweepConfig) {
		if loops > 0 {
			cfg.Loops = loops
		}
	}
}

// WithPeriodic excludes the sweep endpoint.
func WithPeriodic() SweepOption {
	return func(cfg *SweepConfig) {
		cfg.Periodic = true
	}
}

// ApplySweepOptions applies zero or more options to the default config.
func ApplySweepOptions(opts ...SweepOption) SweepConfig {
	cfg := DefaultSweepConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
