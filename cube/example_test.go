package cube_test

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-rt/cube"
	"github.com/cwbudde/algo-rt/interp"
)

type diskModel struct {
	path  string
	image cube.Image
}

func (m diskModel) ModelName() string      { return m.path }
func (m diskModel) NumFrequencies() int    { return 2 }
func (m diskModel) Frequencies() []float64 { return []float64{1.0e11, 1.1e11} }
func (m diskModel) Images() []cube.Image   { return []cube.Image{m.image} }

func ExampleExport() {
	dir, err := os.MkdirTemp("", "cube-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	model := diskModel{
		path: filepath.Join(dir, "model.hdf5"),
		image: cube.Image{
			X: []float64{-1, 1, 1, -1},
			Y: []float64{-1, -1, 1, 1},
			I: [][]float64{{1, 2}, {1, 2}, {1, 2}, {1, 2}},
		},
	}

	path, err := cube.Export(model,
		cube.WithMethod(interp.Linear),
		cube.WithPixels(16, 16),
		cube.WithLogger(slog.New(slog.DiscardHandler)),
	)
	if err != nil {
		panic(err)
	}

	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	c, h, err := cube.Read(f)
	if err != nil {
		panic(err)
	}

	fmt.Println(filepath.Base(filepath.Dir(path)), filepath.Base(path))
	fmt.Println(c.NFreq, c.NPixX, c.NPixY)
	fmt.Printf("%.3g %.3g\n", h.CentFreq, h.DFreq)
	fmt.Printf("%.6g\n", c.At(1, 8, 8))
	// Output:
	// images image.fits
	// 2 16 16
	// 1.05e+11 1e+10
	// 2
}
