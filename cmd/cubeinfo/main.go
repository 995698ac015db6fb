// Command cubeinfo prints the header and per-channel statistics of FITS
// cubes written by the cube package.
//
// Usage:
//
//	cubeinfo [flags] image.fits ...
//
// Examples:
//
//	cubeinfo images/image.fits
//	cubeinfo -channels=false a.fits b.fits
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-rt/cube"
)

func main() {
	channels := flag.Bool("channels", true, "print per-channel statistics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cubeinfo [flags] image.fits ...\n\n")
		fmt.Fprintf(os.Stderr, "Prints the header of exported spectral cubes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := describeFile(os.Stdout, path, *channels); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func describeFile(w io.Writer, path string, channels bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	c, h, err := cube.Read(f)
	if err != nil {
		return err
	}

	return describe(w, path, c, h, channels)
}

func describe(w io.Writer, name string, c *cube.Cube, h cube.Header, channels bool) error {
	dfreq := "irregular"
	if h.HasDFreq() {
		dfreq = fmt.Sprintf("%g Hz", h.DFreq)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\t%s\n", name)
	fmt.Fprintf(tw, "Shape\t%d bins x %d x %d pixels\n", c.NFreq, c.NPixX, c.NPixY)
	fmt.Fprintf(tw, "Centre\t%g Hz\n", h.CentFreq)
	fmt.Fprintf(tw, "Spacing\t%s\n", dfreq)
	fmt.Fprintf(tw, "Pixel\t%g x %g\n", h.DPixX, h.DPixY)
	fmt.Fprintf(tw, "Unit\t%s\n", h.Unit)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if !channels {
		_, err := fmt.Fprintln(w)
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nBin\tMin\tMax\tMean\tNaN\n")
	fmt.Fprintf(tw, "---\t---\t---\t----\t---\n")
	for b := range c.NFreq {
		finite, nan := splitNaN(c.Plane(b))
		lo, hi, mean := math.NaN(), math.NaN(), math.NaN()
		if len(finite) > 0 {
			lo, hi, mean = floats.Min(finite), floats.Max(finite), stat.Mean(finite, nil)
		}
		fmt.Fprintf(tw, "%d\t%.4e\t%.4e\t%.4e\t%d\n", b, lo, hi, mean, nan)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// splitNaN returns the non-NaN values of s and the number of NaNs.
func splitNaN(s []float64) ([]float64, int) {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out, len(s) - len(out)
}
