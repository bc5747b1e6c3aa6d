package quantify

// DefaultPxToMM is the calibration factor of the deployed capture setup.
const DefaultPxToMM = 0.077

// Options configures a single quantification call.
type Options struct {
	// PxToMM converts pixel distances to millimeters. Must be > 0.
	PxToMM float64

	// Visualize is accepted for interface compatibility with callers of the
	// original pipeline and ignored; rendering is out of scope here.
	Visualize bool
}

// DefaultOptions returns the standard measurement configuration.
func DefaultOptions() Options {
	return Options{PxToMM: DefaultPxToMM}
}

// WithScale returns options with a different pixel-to-millimeter factor.
func (o Options) WithScale(pxToMM float64) Options {
	o.PxToMM = pxToMM
	return o
}

// WithVisualize returns options with the visualization flag set.
func (o Options) WithVisualize(v bool) Options {
	o.Visualize = v
	return o
}
