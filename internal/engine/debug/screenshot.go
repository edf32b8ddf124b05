package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Format is an image file format for captures.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat checks a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatPNG, FormatBMP:
		return f, nil
	}
	return "", fmt.Errorf("unknown screenshot format %q", name)
}

func (f Format) encode(w io.Writer, img image.Image) error {
	if f == FormatBMP {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}

// Screenshots writes frame captures named <prefix>_<timestamp>.<format> in a
// directory.
type Screenshots struct {
	dir    string
	prefix string
	format Format
	now    func() time.Time
}

// NewScreenshots creates a PNG capture writer. An empty dir means the
// working directory.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, format: FormatPNG, now: time.Now}
}

// SetFormat selects the file format of later captures.
func (s *Screenshots) SetFormat(f Format) {
	s.format = f
}

// Filename returns the path the next capture will be written to.
func (s *Screenshots) Filename() string {
	name := fmt.Sprintf("%s_%s.%s", s.prefix, s.now().Format("2006-01-02_15-04-05.000"), s.format)
	return filepath.Join(s.dir, name)
}

// SavePixels writes bottom-up RGBA rows, as read back from OpenGL, to a new
// file and returns its path.
func (s *Screenshots) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRGBA(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.SaveImage(img)
}

// SaveImage writes img to a new file and returns its path.
func (s *Screenshots) SaveImage(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := s.Filename()
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := s.format.encode(f, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", s.format, err)
	}
	return path, nil
}

// FlipRGBA builds an image from bottom-up RGBA rows.
func FlipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}
