package boxblur

// Option configures BlurAll and the image adapters.
//
// Example:
//
//	errs := boxblur.BlurAll(bufs, 7,
//	    boxblur.WithPrecision(boxblur.PrecisionExact),
//	    boxblur.WithWorkers(4))
type Option func(*options)

// options holds optional configuration.
type options struct {
	precision Precision
	workers   int
}

// defaultOptions returns fast precision and one worker per CPU.
func defaultOptions() options {
	return options{
		precision: PrecisionFast,
		workers:   0, // GOMAXPROCS
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPrecision selects the normalization mode. The default is
// PrecisionFast.
func WithPrecision(p Precision) Option {
	return func(o *options) {
		o.precision = p
	}
}

// WithWorkers sets how many buffers BlurAll processes concurrently.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
