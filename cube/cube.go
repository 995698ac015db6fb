package cube

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrImageIndex     = errors.New("cube: image index out of range")
	ErrZoom           = errors.New("cube: zoom must be positive")
	ErrPixelCount     = errors.New("cube: pixel count must be at least 2")
	ErrFrequencyCount = errors.New("cube: invalid frequency count")
	ErrSampleShape    = errors.New("cube: inconsistent image samples")
	ErrCubeShape      = errors.New("cube: data length does not match dimensions")
	ErrSmoothWidth    = errors.New("cube: smoothing width must be non-negative")
	ErrNotImage       = errors.New("cube: primary HDU is not an image")
)

// Cube is a spectral image cube ordered (frequency, x, y) row-major:
// Data[(f*NPixX+ix)*NPixY+iy].
type Cube struct {
	NFreq, NPixX, NPixY int
	Data                []float64
}

// NewCube allocates a zeroed cube.
func NewCube(nfreq, npixX, npixY int) *Cube {
	return &Cube{
		NFreq: nfreq,
		NPixX: npixX,
		NPixY: npixY,
		Data:  make([]float64, nfreq*npixX*npixY),
	}
}

func (c *Cube) index(f, ix, iy int) int { return (f*c.NPixX+ix)*c.NPixY + iy }

// At returns the value in bin f at pixel (ix, iy).
func (c *Cube) At(f, ix, iy int) float64 { return c.Data[c.index(f, ix, iy)] }

// Plane returns the image of bin f. The slice aliases Data.
func (c *Cube) Plane(f int) []float64 {
	n := c.NPixX * c.NPixY
	return c.Data[f*n : (f+1)*n]
}

// Spectrum returns a copy of the spectrum at pixel (ix, iy).
func (c *Cube) Spectrum(ix, iy int) []float64 {
	out := make([]float64, c.NFreq)
	for f := range out {
		out[f] = c.At(f, ix, iy)
	}
	return out
}

func (c *Cube) check() error {
	if c.NFreq < 1 || c.NPixX < 1 || c.NPixY < 1 || len(c.Data) != c.NFreq*c.NPixX*c.NPixY {
		return fmt.Errorf("%w: %d values for %dx%dx%d",
			ErrCubeShape, len(c.Data), c.NFreq, c.NPixX, c.NPixY)
	}
	return nil
}

// Header describes an exported cube.
type Header struct {
	NAxis               int
	NFreq, NPixX, NPixY int
	CentFreq            float64 // mean frequency [Hz]
	DPixX, DPixY        float64 // pixel size
	DFreq               float64 // bin spacing [Hz]; NaN when irregular
	Unit                string
}

// HasDFreq reports whether the frequency bins have a regular spacing.
func (h Header) HasDFreq() bool { return !math.IsNaN(h.DFreq) }
