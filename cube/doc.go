// Package cube resamples scattered synthetic-observation samples onto a
// regular pixel grid and exports the result as a FITS spectral image cube.
//
// The exported cube is ordered (frequency, x, y) with y varying fastest.
// Its primary header carries the cube geometry plus the keywords
//
//   - CENTFREQ: mean of the frequency bins [Hz]
//   - DPIX_X, DPIX_Y: pixel sizes in model length units
//   - DFREQ: frequency bin spacing [Hz], omitted when the bins are irregular
//   - IM_UNIT: intensity unit, "W m^-2 Hz^-1 ster^-1"
//
// # Usage
//
//	path, err := cube.Export(model,
//		cube.WithMethod(interp.Linear),
//		cube.WithPixels(256, 256),
//	)
//	if err != nil {
//		return err
//	}
//
// Configuration can also come from YAML:
//
//	cfg, err := cube.LoadConfig("export.yaml")
//	if err != nil {
//		return err
//	}
//	path, err := cube.Export(model, cube.WithConfig(cfg))
//
// Status messages go to the configured [log/slog] logger, by default a text
// handler on standard output.
package cube
