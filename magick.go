package img2braille

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// MagickPreprocessor delegates decoding, resizing, and dithering to
// ImageMagick, invoked as a blocking subprocess. It prefers the v7
// "magick" binary and falls back to the legacy "convert"/"identify"
// pair.
type MagickPreprocessor struct {
	// AspectScale adjusts the derived height; 1.0 keeps the source
	// aspect ratio.
	AspectScale float64

	bin      []string // argv prefix for convert operations
	identBin []string // argv prefix for identify operations
}

// NewMagickPreprocessor locates the ImageMagick binaries. A missing
// installation is reported as ErrMissingDependency.
func NewMagickPreprocessor() (*MagickPreprocessor, error) {
	if path, err := exec.LookPath("magick"); err == nil {
		return &MagickPreprocessor{
			AspectScale: DefaultAspectScale,
			bin:         []string{path},
			identBin:    []string{path, "identify"},
		}, nil
	}
	convertPath, convertErr := exec.LookPath("convert")
	identifyPath, identifyErr := exec.LookPath("identify")
	if convertErr != nil || identifyErr != nil {
		return nil, fmt.Errorf(
			"%w: install ImageMagick (neither \"magick\" nor \"convert\"/\"identify\" is on PATH)",
			ErrMissingDependency)
	}
	return &MagickPreprocessor{
		AspectScale: DefaultAspectScale,
		bin:         []string{convertPath},
		identBin:    []string{identifyPath},
	}, nil
}

// Prepare runs identify for the source dimensions, then convert with a
// forced geometry and raw RGBA output.
func (m *MagickPreprocessor) Prepare(path string, width int, dither bool) (*PixelBuffer, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	srcW, srcH, err := m.dimensions(path)
	if err != nil {
		return nil, err
	}
	pw, ph := targetGeometry(srcW, srcH, width, m.AspectScale)

	args := append(append([]string{}, m.bin[1:]...),
		convertArgs(path, pw, ph, dither)...)
	cmd := exec.Command(m.bin[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, convertError(path, err, stderr.String())
	}

	raw := stdout.Bytes()
	if len(raw) != pw*ph*4 {
		return nil, fmt.Errorf("%w: %s: got %d bytes of pixel data, want %d",
			ErrUnreadableImage, path, len(raw), pw*ph*4)
	}

	buf := NewPixelBuffer(pw, ph)
	for i := range buf.Pix {
		buf.Pix[i] = RGBA{
			R: raw[i*4],
			G: raw[i*4+1],
			B: raw[i*4+2],
			A: raw[i*4+3],
		}
	}
	return buf, nil
}

// dimensions reads the source width and height via identify.
func (m *MagickPreprocessor) dimensions(path string) (int, int, error) {
	args := append(append([]string{}, m.identBin[1:]...),
		"-format", "%w %h", path+"[0]")
	cmd := exec.Command(m.identBin[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return 0, 0, convertError(path, err, stderr.String())
	}

	fields := strings.Fields(stdout.String())
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %s: identify output %q",
			ErrUnreadableImage, path, stdout.String())
	}
	w, wErr := strconv.Atoi(fields[0])
	h, hErr := strconv.Atoi(fields[1])
	if wErr != nil || hErr != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %s: identify output %q",
			ErrUnreadableImage, path, stdout.String())
	}
	return w, h, nil
}

// convertArgs builds the ImageMagick operation list: optional
// Floyd-Steinberg dithering, a forced exact resize so the buffer
// contract holds, mild sharpening, and 8-bit raw RGBA on stdout.
func convertArgs(path string, pw, ph int, dither bool) []string {
	args := []string{path + "[0]"}
	if dither {
		args = append(args, "-dither", "FloydSteinberg", "-colors", "256")
	}
	args = append(args,
		"-resize", fmt.Sprintf("%dx%d!", pw, ph),
		"-unsharp", "0.5x0.5+0.5+0.008",
		"-depth", "8",
		"rgba:-",
	)
	return args
}

// convertError classifies a subprocess failure. A binary that vanished
// between LookPath and Run counts as a missing dependency; anything
// else is an unreadable image, with ImageMagick's own diagnostic
// attached when present.
func convertError(path string, err error, stderr string) error {
	if execErr, ok := err.(*exec.Error); ok {
		return fmt.Errorf("%w: %v", ErrMissingDependency, execErr)
	}
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = err.Error()
	}
	return fmt.Errorf("%w: %s: %s", ErrUnreadableImage, path, msg)
}
