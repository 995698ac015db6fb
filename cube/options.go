package cube

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rt/interp"
)

// Config controls [Export].
type Config struct {
	// Filename is the output path. Empty selects images/image.fits next
	// to the model.
	Filename string
	// ImageIndex selects the image; negative values count from the end.
	ImageIndex int
	// Zoom divides the sample bounding box to obtain the image extent.
	Zoom         float64
	NPixX, NPixY int
	Method       interp.Method
	// Workers bounds the goroutines used for resampling and smoothing;
	// values < 1 select runtime.NumCPU().
	Workers int
	// SmoothFWHM is the full width at half maximum, in channels, of a
	// Gaussian applied along the frequency axis. Zero disables smoothing.
	SmoothFWHM float64
	Logger     *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the export defaults: last image, zoom 1.3,
// 300x300 pixels, nearest-neighbour resampling, no smoothing.
func DefaultConfig() Config {
	return Config{
		ImageIndex: -1,
		Zoom:       1.3,
		NPixX:      300,
		NPixY:      300,
		Method:     interp.Nearest,
	}
}

// WithFilename sets the output path.
func WithFilename(name string) Option {
	return func(cfg *Config) {
		cfg.Filename = name
	}
}

// WithImage selects the image to export.
func WithImage(index int) Option {
	return func(cfg *Config) {
		cfg.ImageIndex = index
	}
}

// WithZoom sets the zoom factor.
func WithZoom(zoom float64) Option {
	return func(cfg *Config) {
		if zoom > 0 && !math.IsInf(zoom, 1) {
			cfg.Zoom = zoom
		}
	}
}

// WithPixels sets the grid size.
func WithPixels(nx, ny int) Option {
	return func(cfg *Config) {
		if nx >= 2 && ny >= 2 {
			cfg.NPixX, cfg.NPixY = nx, ny
		}
	}
}

// WithMethod selects the interpolation scheme.
func WithMethod(m interp.Method) Option {
	return func(cfg *Config) {
		if _, err := m.MarshalText(); err == nil {
			cfg.Method = m
		}
	}
}

// WithWorkers bounds the number of goroutines.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithSpectralSmoothing enables Gaussian smoothing along the frequency
// axis with the given FWHM in channels.
func WithSpectralSmoothing(fwhm float64) Option {
	return func(cfg *Config) {
		if fwhm >= 0 {
			cfg.SmoothFWHM = fwhm
		}
	}
}

// WithLogger sets the status logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithConfig replaces the whole configuration, typically one returned by
// [LoadConfig]. Later options still apply on top of it.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate reports configuration values Export cannot work with.
func (c Config) Validate() error {
	if !(c.Zoom > 0) || math.IsInf(c.Zoom, 1) {
		return fmt.Errorf("%w: %v", ErrZoom, c.Zoom)
	}
	if c.NPixX < 2 || c.NPixY < 2 {
		return fmt.Errorf("%w: %dx%d", ErrPixelCount, c.NPixX, c.NPixY)
	}
	if !(c.SmoothFWHM >= 0) {
		return fmt.Errorf("%w: %v", ErrSmoothWidth, c.SmoothFWHM)
	}
	if _, err := c.Method.MarshalText(); err != nil {
		return fmt.Errorf("cube: %w", err)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// fileConfig is the YAML form of Config. Absent keys keep their defaults.
type fileConfig struct {
	Filename   string   `yaml:"filename"`
	Image      *int     `yaml:"image"`
	Zoom       *float64 `yaml:"zoom"`
	NPix       *int     `yaml:"npix"`
	NPixX      *int     `yaml:"npix_x"`
	NPixY      *int     `yaml:"npix_y"`
	Method     string   `yaml:"method"`
	Workers    *int     `yaml:"workers"`
	SmoothFWHM *float64 `yaml:"smooth_fwhm"`
}

// LoadConfig reads an export configuration from a YAML file, e.g.
//
//	zoom: 1.3
//	npix: 300
//	method: linear
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cube: read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("cube: parse config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Filename = fc.Filename
	if fc.Image != nil {
		cfg.ImageIndex = *fc.Image
	}
	if fc.Zoom != nil {
		cfg.Zoom = *fc.Zoom
	}
	if fc.NPix != nil {
		cfg.NPixX, cfg.NPixY = *fc.NPix, *fc.NPix
	}
	if fc.NPixX != nil {
		cfg.NPixX = *fc.NPixX
	}
	if fc.NPixY != nil {
		cfg.NPixY = *fc.NPixY
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.SmoothFWHM != nil {
		cfg.SmoothFWHM = *fc.SmoothFWHM
	}

	m, err := interp.ParseMethod(fc.Method)
	if err != nil {
		return Config{}, fmt.Errorf("cube: parse config: %w", err)
	}
	cfg.Method = m

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
