// Command boxblur blurs image files in place of an interactive viewer.
//
// Usage:
//
//	boxblur [flags] file...
//
// Each input is decoded, converted to the requested packed format, blurred,
// and written next to the input (or to -o when there is a single input).
// Inputs that the blur rejects are written unchanged and reported.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/boxblur"
	"github.com/gogpu/boxblur/internal/pixbuf"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "boxblur:", err)
		}
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	radius    int
	precision boxblur.Precision
	format    boxblur.Format
	workers   int
	output    string
	suffix    string
	verbose   bool
	inputs    []string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg       config
		precision string
		format    string
	)

	fs := flag.NewFlagSet("boxblur", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.radius, "radius", 3, "blur radius (0-15)")
	fs.StringVar(&precision, "precision", "fast", "normalization: fast or exact")
	fs.StringVar(&format, "format", "rgba", "packed format to blur in: rgba or rgb565")
	fs.IntVar(&cfg.workers, "workers", 0, "images blurred concurrently (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.output, "o", "", "output file (single input only)")
	fs.StringVar(&cfg.suffix, "suffix", "_blur", "suffix added to output file names")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: boxblur [flags] file...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.inputs = fs.Args()

	switch strings.ToLower(precision) {
	case "fast":
		cfg.precision = boxblur.PrecisionFast
	case "exact":
		cfg.precision = boxblur.PrecisionExact
	default:
		return config{}, fmt.Errorf("unknown precision %q", precision)
	}

	switch strings.ToLower(format) {
	case "rgba", "rgba8888":
		cfg.format = boxblur.FormatRGBA8888
	case "rgb565", "565":
		cfg.format = boxblur.FormatRGB565
	default:
		return config{}, fmt.Errorf("unknown format %q", format)
	}

	if len(cfg.inputs) == 0 {
		return config{}, errors.New("no input files")
	}
	if cfg.output != "" && len(cfg.inputs) > 1 {
		return config{}, errors.New("-o requires exactly one input")
	}
	return cfg, nil
}

// outputPath returns where the blurred version of in is written.
// Inputs without an encoder (WebP) are written as PNG.
func outputPath(cfg config, in string) string {
	if cfg.output != "" {
		return cfg.output
	}
	ext := filepath.Ext(in)
	base := strings.TrimSuffix(in, ext)
	if _, err := pixbuf.EncodingFor(in); err != nil {
		ext = ".png"
	}
	return base + cfg.suffix + ext
}

// job is one input file on its way through the pipeline.
type job struct {
	in, out string
	img     *image.RGBA
	buf     boxblur.Buffer
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	boxblur.SetLogger(logger)
	defer boxblur.SetLogger(nil)

	start := time.Now()

	jobs := make([]job, 0, len(cfg.inputs))
	for _, in := range cfg.inputs {
		img, format, err := pixbuf.Load(in)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		logger.Debug("loaded", "file", in, "format", format, "size", img.Rect.Size())

		j := job{in: in, out: outputPath(cfg, in), img: img}
		if cfg.format == boxblur.FormatRGB565 {
			j.buf = boxblur.PackRGB565(img)
		} else {
			w, h := img.Rect.Dx(), img.Rect.Dy()
			j.buf = boxblur.Buffer{Pix: img.Pix, Width: w, Height: h, Stride: img.Stride, Format: boxblur.FormatRGBA8888}
		}
		jobs = append(jobs, j)
	}

	bufs := make([]boxblur.Buffer, len(jobs))
	for i := range jobs {
		bufs[i] = jobs[i].buf
	}
	errs := boxblur.BlurAll(bufs, cfg.radius,
		boxblur.WithPrecision(cfg.precision),
		boxblur.WithWorkers(cfg.workers))

	var pixels, skipped int
	for i, j := range jobs {
		if errs[i] != nil {
			skipped++
			logger.Warn("blur skipped", "file", j.in, "err", errs[i])
		} else {
			pixels += j.buf.Width * j.buf.Height
		}

		out := j.img
		if cfg.format == boxblur.FormatRGB565 && errs[i] == nil {
			out = boxblur.UnpackRGB565(j.buf)
		}
		if err := pixbuf.Save(j.out, out); err != nil {
			return fmt.Errorf("%s: %w", j.out, err)
		}
		logger.Debug("wrote", "file", j.out)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "%d of %d images blurred (%d pixels, radius %d, %v, %v) in %v\n",
		len(jobs)-skipped, len(jobs), pixels, cfg.radius, cfg.format, cfg.precision,
		time.Since(start).Round(time.Millisecond))
	return nil
}
