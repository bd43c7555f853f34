package boxblur

import (
	"errors"
	"runtime"
	"time"

	"github.com/gogpu/boxblur/internal/parallel"
)

// BlurAll blurs every buffer in bufs in place, running independent buffers
// concurrently. It returns one error per buffer, nil where the blur was
// applied.
//
// Each buffer is blurred by a single goroutine. The buffers must not share
// backing pixel memory.
func BlurAll(bufs []Buffer, radius int, opts ...Option) []error {
	o := applyOptions(opts)
	errs := make([]error, len(bufs))
	if len(bufs) == 0 {
		return errs
	}

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	pool := parallel.New(min(workers, len(bufs)))
	defer pool.Close()

	pool.Run(len(bufs), func(i int) {
		errs[i] = BlurBuffer(bufs[i], radius, o.precision)
	})

	rejected := 0
	for _, err := range errs {
		if errors.Is(err, ErrRejected) {
			rejected++
		}
	}
	Logger().Info("boxblur: batch done",
		"buffers", len(bufs), "rejected", rejected,
		"workers", pool.Workers(), "elapsed", time.Since(start))

	return errs
}
