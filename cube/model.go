package cube

import "fmt"

// Image is one synthetic observation: scattered sample positions X, Y and
// the intensity spectrum I[m] observed at sample m.
type Image struct {
	X, Y []float64
	I    [][]float64
}

// Model is the read-only view of a simulation model needed for export.
type Model interface {
	// ModelName is the model's name or storage path. Its directory is used
	// for the default output location.
	ModelName() string
	NumFrequencies() int
	Frequencies() []float64
	Images() []Image
}

func (img Image) validate(nfreq int) error {
	if len(img.X) == 0 {
		return fmt.Errorf("%w: image has no samples", ErrSampleShape)
	}
	if len(img.Y) != len(img.X) || len(img.I) != len(img.X) {
		return fmt.Errorf("%w: %d x, %d y, %d spectra",
			ErrSampleShape, len(img.X), len(img.Y), len(img.I))
	}
	for m, spectrum := range img.I {
		if len(spectrum) != nfreq {
			return fmt.Errorf("%w: sample %d has %d bins, want %d",
				ErrSampleShape, m, len(spectrum), nfreq)
		}
	}
	return nil
}

// bins transposes the per-sample spectra into per-frequency value sets.
func (img Image) bins(nfreq int) [][]float64 {
	out := make([][]float64, nfreq)
	for f := range out {
		b := make([]float64, len(img.I))
		for m, spectrum := range img.I {
			b[m] = spectrum[f]
		}
		out[f] = b
	}
	return out
}

func selectImage(images []Image, index int) (Image, error) {
	i := index
	if i < 0 {
		i += len(images)
	}
	if i < 0 || i >= len(images) {
		return Image{}, fmt.Errorf("%w: %d of %d", ErrImageIndex, index, len(images))
	}
	return images[i], nil
}
