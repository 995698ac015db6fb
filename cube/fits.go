package cube

import (
	"fmt"
	"io"
	"math"

	"github.com/astrogo/fitsio"
)

const bitpixFloat64 = -64

// Write encodes c as the primary image HDU of a FITS file. NAXIS1 is the
// fastest varying axis, so the axes are (y, x, frequency).
func Write(w io.Writer, c *Cube, h Header) error {
	if err := c.check(); err != nil {
		return err
	}

	f, err := fitsio.Create(w)
	if err != nil {
		return fmt.Errorf("cube: create fits: %w", err)
	}

	img := fitsio.NewImage(bitpixFloat64, []int{c.NPixY, c.NPixX, c.NFreq})

	cards := []fitsio.Card{
		{Name: "CENTFREQ", Value: h.CentFreq, Comment: "[Hz] mean frequency"},
		{Name: "DPIX_X", Value: h.DPixX, Comment: "pixel size along x"},
		{Name: "DPIX_Y", Value: h.DPixY, Comment: "pixel size along y"},
	}
	if h.HasDFreq() {
		cards = append(cards, fitsio.Card{Name: "DFREQ", Value: h.DFreq, Comment: "[Hz] frequency bin spacing"})
	}
	if h.Unit != "" {
		cards = append(cards, fitsio.Card{Name: "IM_UNIT", Value: h.Unit, Comment: "intensity unit"})
	}

	if err := img.Header().Append(cards...); err != nil {
		img.Close()
		f.Close()
		return fmt.Errorf("cube: fits header: %w", err)
	}

	if err := img.Write(c.Data); err != nil {
		img.Close()
		f.Close()
		return fmt.Errorf("cube: fits data: %w", err)
	}

	if err := f.Write(img); err != nil {
		img.Close()
		f.Close()
		return fmt.Errorf("cube: write fits: %w", err)
	}

	if err := img.Close(); err != nil {
		f.Close()
		return fmt.Errorf("cube: close fits image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cube: close fits: %w", err)
	}

	return nil
}

// Read decodes a cube written by [Write].
func Read(r io.ReadSeeker) (*Cube, Header, error) {
	f, err := fitsio.Open(r)
	if err != nil {
		return nil, Header{}, fmt.Errorf("cube: open fits: %w", err)
	}
	defer f.Close()

	img, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return nil, Header{}, ErrNotImage
	}

	fh := img.Header()
	axes := fh.Axes()
	if len(axes) != 3 {
		return nil, Header{}, fmt.Errorf("%w: %d axes", ErrCubeShape, len(axes))
	}

	c := NewCube(axes[2], axes[1], axes[0])
	if err := img.Read(&c.Data); err != nil {
		return nil, Header{}, fmt.Errorf("cube: read fits data: %w", err)
	}
	if err := c.check(); err != nil {
		return nil, Header{}, err
	}

	h := Header{
		NAxis:    len(axes),
		NFreq:    c.NFreq,
		NPixX:    c.NPixX,
		NPixY:    c.NPixY,
		CentFreq: floatCard(fh, "CENTFREQ"),
		DPixX:    floatCard(fh, "DPIX_X"),
		DPixY:    floatCard(fh, "DPIX_Y"),
		DFreq:    floatCard(fh, "DFREQ"),
	}
	if card := fh.Get("IM_UNIT"); card != nil {
		h.Unit, _ = card.Value.(string)
	}

	return c, h, nil
}

// floatCard returns the numeric value of a header card, or NaN when the
// card is absent or not numeric.
func floatCard(h *fitsio.Header, name string) float64 {
	card := h.Get(name)
	if card == nil {
		return math.NaN()
	}
	switch v := card.Value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return math.NaN()
	}
}
