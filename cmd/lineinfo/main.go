// Command lineinfo prints LTE radiative quantities for every transition of
// a line-data file.
//
// Usage:
//
//	lineinfo [flags] line-data.yaml
//
// Examples:
//
//	lineinfo co.yaml
//	lineinfo -temp 45 -vturb 150 co.yaml
//	lineinfo -cmb=false hco+.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-rt/line"
	"github.com/cwbudde/algo-rt/physics"
)

func main() {
	temp := flag.Float64("temp", 20, "gas temperature [K]")
	vturb := flag.Float64("vturb", 0, "turbulent velocity [m/s]")
	cmb := flag.Bool("cmb", true, "include the CMB intensity column")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lineinfo [flags] line-data.yaml\n\n")
		fmt.Fprintf(os.Stderr, "Prints LTE populations and per-transition line quantities.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lineinfo co.yaml\n")
		fmt.Fprintf(os.Stderr, "  lineinfo -temp 45 -vturb 150 co.yaml\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if !(*temp > 0) {
		fmt.Fprintf(os.Stderr, "error: temperature must be positive, got %v\n", *temp)
		os.Exit(2)
	}

	d, err := line.LoadData(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	vturb2 := (*vturb / physics.C) * (*vturb / physics.C)
	if err := printTransitions(os.Stdout, d, *temp, vturb2, *cmb); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printTransitions(w io.Writer, d *line.Data, temp, vturb2 float64, cmb bool) error {
	pop := line.LTEPopulations(d, temp)
	eta := line.Emissivity(d, pop)
	chi := line.Opacity(d, pop)
	src := line.Source(d, pop)

	name := d.Name
	if name == "" {
		name = "(unnamed)"
	}
	if _, err := fmt.Fprintf(w, "%s: %d levels, %d transitions, T = %g K\n\n", name, d.NLev, d.NRad, temp); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	head := "k\tUp\tLow\tFreq [GHz]\tWidth [Hz]\tEmissivity\tOpacity\tSource\tPlanck"
	rule := "-\t--\t---\t----------\t----------\t----------\t-------\t------\t------"
	if cmb {
		head += "\tCMB"
		rule += "\t---"
	}
	if _, err := fmt.Fprintln(tw, head); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for k := range d.NRad {
		nu := d.Frequency[k]
		row := fmt.Sprintf("%d\t%d\t%d\t%.6f\t%.4g\t%.4e\t%.4e\t%.4e\t%.4e",
			k,
			d.IRad[k],
			d.JRad[k],
			nu/1e9,
			line.DopplerWidth(d, k, temp, vturb2),
			eta[k],
			chi[k],
			src[k],
			physics.Planck(temp, nu),
		)
		if cmb {
			row += fmt.Sprintf("\t%.4e", physics.CMBIntensity(nu))
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
