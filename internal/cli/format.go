package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Arr1738/SPIDAM-project/dsp/filter/bank"
	"github.com/Arr1738/SPIDAM-project/measure/bands"
	"github.com/Arr1738/SPIDAM-project/measure/decay"
)

// FormatSeconds formats a time in seconds with millisecond resolution.
func FormatSeconds(s float64) string {
	return fmt.Sprintf("%.3f s", s)
}

// FormatMeasure formats an optional measurement, printing "n/a" when the
// value is not available.
func FormatMeasure(s float64, ok bool) string {
	if !ok {
		return "n/a"
	}

	return FormatSeconds(s)
}

// FormatResult formats an RT60 result; undetermined results print as
// "undetermined".
func FormatResult(r decay.Result) string {
	return r.String()
}

// FormatHz formats a frequency, switching to kHz at 1000 Hz.
func FormatHz(f float64) string {
	if f >= 1000 {
		return fmt.Sprintf("%.3g kHz", f/1000)
	}

	return fmt.Sprintf("%.0f Hz", f)
}

// FormatPercent formats a fraction in [0, 1] as a percentage.
func FormatPercent(frac float64) string {
	return fmt.Sprintf("%.1f%%", 100*frac)
}

// FormatEdges formats the zero-phase filter response of a band at its
// lower and upper edges as "low / high" in dB. The forward-backward pass
// doubles the single-pass response. Open edges (0 Hz, Nyquist) print "-".
func FormatEdges(b bank.Band, sampleRate float64) string {
	edge := func(f float64) string {
		if f <= 0 || f >= sampleRate/2 {
			return "-"
		}

		return fmt.Sprintf("%.1f", 2*b.MagnitudeDB(f, sampleRate))
	}

	return edge(b.LowCutoff) + " / " + edge(b.HighCutoff)
}

// WriteBandTable writes per-band results as an aligned table. With
// verbose set it adds the filter response at the band edges, the filter
// ringing time and a reliability column.
func WriteBandTable(w io.Writer, results bands.Results, sampleRate float64, verbose bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Band\tRange\tRT60\tEnergy"
	rule := "----\t-----\t----\t------"

	if verbose {
		header += "\tEdges dB\tFilter RT60\tReliable"
		rule += "\t--------\t-----------\t--------"
	}

	if _, err := fmt.Fprintln(tw, header); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return err
	}

	for _, r := range results {
		row := fmt.Sprintf("%s\t%s - %s\t%s\t%s",
			r.Band.Name,
			FormatHz(r.Band.LowCutoff),
			FormatHz(r.Band.HighCutoff),
			FormatResult(r.Result),
			FormatPercent(r.EnergyShare),
		)

		if verbose {
			row += fmt.Sprintf("\t%s\t%s\t%s",
				FormatEdges(r.Band, sampleRate),
				FormatMeasure(r.FilterRT60, r.FilterRT60 > 0),
				yesNo(r.Reliable()),
			)
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
