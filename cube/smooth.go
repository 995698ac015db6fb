package cube

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// fwhmToSigma converts a Gaussian full width at half maximum to sigma.
var fwhmToSigma = 1 / (2 * math.Sqrt(2*math.Ln2))

// Smooth convolves the spectrum of every pixel with a normalized Gaussian
// of the given FWHM in channels. Response falling beyond the first or last
// channel is reflected back, so each spectrum keeps its sum and a constant
// spectrum stays constant. fwhm == 0 leaves c unchanged.
func Smooth(c *Cube, fwhm float64) error {
	return smooth(c, fwhm, runtime.NumCPU())
}

func smooth(c *Cube, fwhm float64, workers int) error {
	if !(fwhm >= 0) {
		return fmt.Errorf("%w: %v", ErrSmoothWidth, fwhm)
	}
	if err := c.check(); err != nil {
		return err
	}
	if fwhm == 0 {
		return nil
	}

	kernel := gaussianKernel(fwhm * fwhmToSigma)
	half := len(kernel) / 2
	fullLen := c.NFreq + 2*half
	fftSize := nextPowerOf2(fullLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("cube: failed to create FFT plan: %w", err)
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}
	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(kernelFreq, kernelPadded); err != nil {
		return fmt.Errorf("cube: forward FFT failed: %w", err)
	}

	// Two real spectra share one complex transform: the kernel is real, so
	// the real and imaginary parts convolve independently.
	npix := c.NPixX * c.NPixY
	pairs := (npix + 1) / 2

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	// Each goroutine takes a smoother, and with it an FFT plan, from the
	// pool; at most workers goroutines run at once.
	var pool sync.Pool
	var g errgroup.Group
	g.SetLimit(workers)
	for p := range pairs {
		g.Go(func() error {
			s, _ := pool.Get().(*smoother)
			if s == nil {
				var err error
				if s, err = newSmoother(c, kernelFreq, half, fftSize); err != nil {
					return err
				}
			}
			defer pool.Put(s)
			return s.pair(2 * p)
		})
	}
	return g.Wait()
}

// smoother holds one goroutine's plan and buffers.
type smoother struct {
	c          *Cube
	plan       *algofft.Plan[complex128]
	kernelFreq []complex128
	half       int
	buf, freq  []complex128
	re, im     []float64
}

func newSmoother(c *Cube, kernelFreq []complex128, half, fftSize int) (*smoother, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("cube: failed to create FFT plan: %w", err)
	}
	return &smoother{
		c:          c,
		plan:       plan,
		kernelFreq: kernelFreq,
		half:       half,
		buf:        make([]complex128, fftSize),
		freq:       make([]complex128, fftSize),
		re:         make([]float64, c.NFreq),
		im:         make([]float64, c.NFreq),
	}, nil
}

// pair smooths pixels p and p+1 (when present) in place.
func (s *smoother) pair(p int) error {
	c := s.c
	npix := c.NPixX * c.NPixY
	second := p+1 < npix

	clear(s.buf)
	for f := range c.NFreq {
		v := complex(c.Data[f*npix+p], 0)
		if second {
			v += complex(0, c.Data[f*npix+p+1])
		}
		s.buf[f] = v
	}

	if err := s.plan.Forward(s.freq, s.buf); err != nil {
		return fmt.Errorf("cube: forward FFT failed: %w", err)
	}
	for i := range s.freq {
		s.freq[i] *= s.kernelFreq[i]
	}
	if err := s.plan.Inverse(s.buf, s.freq); err != nil {
		return fmt.Errorf("cube: inverse FFT failed: %w", err)
	}

	// Full convolution index n is channel n-half; fold the overhang back.
	clear(s.re)
	clear(s.im)
	for n := range c.NFreq + 2*s.half {
		f := mirror(n-s.half, c.NFreq)
		s.re[f] += real(s.buf[n])
		s.im[f] += imag(s.buf[n])
	}

	for f := range c.NFreq {
		c.Data[f*npix+p] = s.re[f]
		if second {
			c.Data[f*npix+p+1] = s.im[f]
		}
	}
	return nil
}

// gaussianKernel returns a unit-sum Gaussian sampled over +-4 sigma
// (at least one channel each side).
func gaussianKernel(sigma float64) []float64 {
	half := max(1, int(math.Ceil(4*sigma)))
	k := make([]float64, 2*half+1)
	for i := range k {
		x := float64(i-half) / sigma
		k[i] = math.Exp(-0.5 * x * x)
	}
	vecmath.ScaleBlockInPlace(k, 1/vecmath.Sum(k))
	return k
}

// mirror maps i onto [0, n) by half-sample symmetric reflection.
func mirror(i, n int) int {
	period := 2 * n
	m := i % period
	if m < 0 {
		m += period
	}
	if m >= n {
		m = period - 1 - m
	}
	return m
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
