package cube

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-rt/interp"
	"github.com/cwbudde/algo-rt/physics"
)

const (
	imageDir        = "images"
	defaultFilename = "image.fits"

	// spacingTolerance bounds the relative spread of frequency bin widths
	// for the spectral axis to count as regular.
	spacingTolerance = 1e-9
)

// Export resamples one image of model onto a regular grid and writes it as
// a FITS cube. It returns the path written, or "" when the model has no
// images.
func Export(model Model, opts ...Option) (string, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	log := cfg.logger()

	images := model.Images()
	if len(images) == 0 {
		log.Info("no images in model", "model", model.ModelName())
		return "", nil
	}

	img, err := selectImage(images, cfg.ImageIndex)
	if err != nil {
		return "", err
	}

	c, h, err := Resample(img, model.Frequencies(), model.NumFrequencies(), cfg)
	if err != nil {
		return "", err
	}

	if cfg.SmoothFWHM > 0 {
		if err := smooth(c, cfg.SmoothFWHM, cfg.Workers); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, c, h); err != nil {
		return "", err
	}

	path, err := outputPath(cfg.Filename, model.ModelName(), log)
	if err != nil {
		return "", err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("cube: remove existing file: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("cube: write file: %w", err)
	}

	log.Info("written file", "path", path)
	return path, nil
}

// outputPath resolves the target file, creating the default image
// directory when needed.
func outputPath(filename, modelName string, log *slog.Logger) (string, error) {
	if filename != "" {
		return filename, nil
	}

	abs, err := filepath.Abs(modelName)
	if err != nil {
		return "", fmt.Errorf("cube: resolve model path: %w", err)
	}
	dir := filepath.Join(filepath.Dir(abs), imageDir)

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("cube: create image directory: %w", err)
		}
		log.Info("created image directory", "dir", dir)
	} else if err != nil {
		return "", fmt.Errorf("cube: stat image directory: %w", err)
	}

	return filepath.Join(dir, defaultFilename), nil
}

// Resample interpolates img onto the cfg.NPixX x cfg.NPixY grid spanning
// the sample bounding box divided by cfg.Zoom, one plane per frequency bin,
// and builds the matching header. cfg.Logger receives the irregular
// spacing warning.
func Resample(img Image, freqs []float64, nfreq int, cfg Config) (*Cube, Header, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Header{}, err
	}
	if nfreq < 1 || len(freqs) != nfreq {
		return nil, Header{}, fmt.Errorf("%w: %d bins, %d frequencies",
			ErrFrequencyCount, nfreq, len(freqs))
	}
	if err := img.validate(nfreq); err != nil {
		return nil, Header{}, err
	}

	xs := interp.Linspace(floats.Min(img.X)/cfg.Zoom, floats.Max(img.X)/cfg.Zoom, cfg.NPixX)
	ys := interp.Linspace(floats.Min(img.Y)/cfg.Zoom, floats.Max(img.Y)/cfg.Zoom, cfg.NPixY)

	scheme, err := interp.New(cfg.Method, img.X, img.Y)
	if err != nil {
		return nil, Header{}, fmt.Errorf("cube: %w", err)
	}

	r := interp.NewResampler(scheme, xs, ys, cfg.Workers)
	c := &Cube{
		NFreq: nfreq,
		NPixX: cfg.NPixX,
		NPixY: cfg.NPixY,
		Data:  r.Cube(img.bins(nfreq)),
	}

	h := Header{
		NAxis:    3,
		NFreq:    nfreq,
		NPixX:    cfg.NPixX,
		NPixY:    cfg.NPixY,
		CentFreq: stat.Mean(freqs, nil),
		DPixX:    interp.MeanStep(xs),
		DPixY:    interp.MeanStep(ys),
		DFreq:    frequencySpacing(freqs, cfg.logger()),
		Unit:     physics.IntensityUnit,
	}

	return c, h, nil
}

// frequencySpacing returns the mean bin spacing, or NaN when there is a
// single bin or the spacing is irregular.
func frequencySpacing(freqs []float64, log *slog.Logger) float64 {
	steps := interp.Steps(freqs)
	if len(steps) == 0 {
		return math.NaN()
	}

	hi, lo := floats.Max(steps), floats.Min(steps)
	if math.Abs(physics.RelativeError(hi, lo)) > spacingTolerance {
		log.Warn("frequency bins are not equidistant, omitting DFREQ",
			"min_step", lo, "max_step", hi)
		return math.NaN()
	}

	return stat.Mean(steps, nil)
}
