// Command braillize renders an image in the terminal as colored
// Unicode Braille characters.
//
// Usage:
//
//	braillize image.jpg -w 100      render at 100 characters wide
//	braillize -b -i image.png       background mode, inverted
//	braillize -d image.gif          Floyd-Steinberg dithering
//	braillize -t                    256-color self-test
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/wbrown/img2braille"
)

func main() {
	width := flag.Int("w", img2braille.DefaultWidth,
		"Output width in characters")
	background := flag.Bool("b", false,
		"Background-color render mode")
	invert := flag.Bool("i", false,
		"Invert the dot and color decision")
	dither := flag.Bool("d", false,
		"Floyd-Steinberg dithering (delegated to the preprocessor)")
	selfTest := flag.Bool("t", false,
		"Print a 256-color palette self-test instead of rendering")
	flag.BoolVar(selfTest, "test", false,
		"Alias for -t")
	backend := flag.String("backend", "magick",
		"Preprocessor backend: magick, native, or gocv")
	output := flag.String("o", "",
		"Write output to a file; a .png extension selects PNG export")
	fontPath := flag.String("font", "",
		"TTF font for PNG export (default: geometric dots)")
	fontScale := flag.Int("fontscale", img2braille.DefaultPNGScale,
		"PNG pixels per Braille dot")
	threshold := flag.Int("threshold", img2braille.DefaultThreshold,
		"Luminance cutoff for the dot decision (0-255)")
	colorMethod := flag.String("colormethod", "rgb",
		"Color distance method: rgb, lab, or redmean")
	fit := flag.Bool("fit", false,
		"Ignore -w and use the terminal width")
	aspectScale := flag.Float64("scale", img2braille.DefaultAspectScale,
		"Aspect ratio scale factor")
	verbose := flag.Bool("verbose", false,
		"Debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))

	method, ok := img2braille.MethodByName(strings.ToLower(*colorMethod))
	if !ok {
		fmt.Fprintf(os.Stderr,
			"Invalid color distance method %q, options are rgb, lab, or redmean\n",
			*colorMethod)
		os.Exit(1)
	}
	palette := img2braille.NewPalette(method)

	if *selfTest {
		img2braille.SelfTest(os.Stdout, palette)
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to an image")
		flag.PrintDefaults()
		os.Exit(1)
	}
	imagePath := flag.Arg(0)

	if *fit {
		cols, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			log.Debug("terminal size unavailable, keeping -w", "err", err)
		} else {
			*width = cols
		}
	}
	if *width <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid width %d\n", *width)
		os.Exit(1)
	}
	if *threshold < 0 || *threshold > 255 {
		fmt.Fprintf(os.Stderr, "Invalid threshold %d, must be 0-255\n", *threshold)
		os.Exit(1)
	}

	pre, err := newPreprocessor(*backend, *aspectScale, palette)
	if err != nil {
		fail(err)
	}

	begin := time.Now()
	buf, err := pre.Prepare(imagePath, *width, *dither)
	if err != nil {
		fail(err)
	}
	log.Debug("preprocessed",
		"backend", *backend,
		"buffer", fmt.Sprintf("%dx%d", buf.W, buf.H),
		"elapsed", time.Since(begin))

	renderer := img2braille.NewRenderer(
		img2braille.WithPalette(palette),
		img2braille.WithThreshold(uint8(*threshold)),
		img2braille.WithInvert(*invert),
		img2braille.WithBackground(*background),
	)

	renderStart := time.Now()
	if strings.HasSuffix(strings.ToLower(*output), ".png") {
		cells, err := renderer.RenderCells(buf)
		if err != nil {
			fail(err)
		}
		opts := img2braille.PNGOptions{
			FontPath:   *fontPath,
			Scale:      *fontScale,
			Background: *background,
		}
		if err := img2braille.WritePNG(cells, palette, *output, opts); err != nil {
			fail(err)
		}
		log.Debug("wrote PNG", "path", *output, "elapsed", time.Since(renderStart))
		return
	}

	art, err := renderer.Render(buf)
	if err != nil {
		fail(err)
	}
	log.Debug("rendered",
		"bytes", len(art),
		"elapsed", time.Since(renderStart))

	if *output != "" {
		if err := os.WriteFile(*output, []byte(art), 0644); err != nil {
			fail(err)
		}
		return
	}
	fmt.Print(art)
}

// newPreprocessor selects the backend by name.
func newPreprocessor(name string, aspectScale float64, palette *img2braille.Palette) (img2braille.Preprocessor, error) {
	switch name {
	case "magick":
		pre, err := img2braille.NewMagickPreprocessor()
		if err != nil {
			return nil, err
		}
		pre.AspectScale = aspectScale
		return pre, nil
	case "native":
		pre := img2braille.NewNativePreprocessor(palette)
		pre.AspectScale = aspectScale
		return pre, nil
	case "gocv":
		pre := img2braille.NewGocvPreprocessor(palette)
		pre.AspectScale = aspectScale
		return pre, nil
	}
	return nil, fmt.Errorf("unknown backend %q, options are magick, native, or gocv", name)
}

// fail prints a classified error message and exits non-zero.
func fail(err error) {
	switch {
	case errors.Is(err, img2braille.ErrMissingDependency):
		fmt.Fprintf(os.Stderr, "Missing dependency: %v\n", err)
	case errors.Is(err, img2braille.ErrUnreadableImage):
		fmt.Fprintf(os.Stderr, "Cannot read image: %v\n", err)
	case errors.Is(err, img2braille.ErrInvalidInput):
		fmt.Fprintf(os.Stderr, "Invalid input: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
