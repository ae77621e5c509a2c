package main

import (
	"errors"
	"fmt"

	"github.com/Arr1738/SPIDAM-project/internal/audio"
	"github.com/Arr1738/SPIDAM-project/internal/cli"
	"github.com/Arr1738/SPIDAM-project/measure/bands"
	"github.com/Arr1738/SPIDAM-project/measure/decay"
)

var errOctaveFraction = errors.New("--octave must be 0 (off), 1 or 3")

// milestones are the curve levels printed with --verbose.
var milestones = []float64{-10, -20, -30, -40, -50, -60}

type analyzeCmd struct {
	Input string `arg:"" name:"input" help:"Input audio file (.wav, .mp3, .flac)" type:"existingfile"`

	Bands   bool    `help:"Also estimate RT60 in low, mid and high bands"`
	Octave  int     `help:"Use a 1/N-octave band bank (1 or 3) instead of three bands" default:"0" placeholder:"N"`
	MinFreq float64 `name:"min-freq" help:"Lowest octave band center in Hz" default:"20" placeholder:"HZ"`
	MaxFreq float64 `name:"max-freq" help:"Highest octave band center in Hz" default:"20000" placeholder:"HZ"`
	LowMid  float64 `name:"low-mid" help:"Low/mid crossover in Hz" default:"500" placeholder:"HZ"`
	MidHigh float64 `name:"mid-high" help:"Mid/high crossover in Hz" default:"2000" placeholder:"HZ"`
	Order   int     `help:"Butterworth order per band edge" default:"4"`
	Workers int     `help:"Bands analyzed concurrently (0 = all)" default:"0"`
	Verbose bool    `short:"v" help:"Print intermediate values"`
}

func (c *analyzeCmd) Run() error {
	clip, err := audio.Load(c.Input)
	if err != nil {
		return fmt.Errorf("loading audio: %w", err)
	}

	sampleRate := float64(clip.SampleRate)

	cli.PrintSection("Input")
	cli.PrintInfo("File", c.Input)
	cli.PrintInfo("Sample rate", fmt.Sprintf("%d Hz", clip.SampleRate))
	cli.PrintInfo("Channels", fmt.Sprintf("%d (mixed to mono)", clip.Channels))
	cli.PrintInfo("Duration", cli.FormatSeconds(clip.Duration()))

	if c.Verbose {
		cli.PrintInfo("Samples", fmt.Sprintf("%d", len(clip.Samples)))
		lv := clip.Levels()
		cli.PrintInfo("Peak", fmt.Sprintf("%.2f dBFS at %s", lv.PeakDB, cli.FormatSeconds(float64(lv.PeakIndex)/sampleRate)))
		cli.PrintInfo("RMS", fmt.Sprintf("%.2f dBFS", lv.RMSDB))
		cli.PrintInfo("Crest factor", fmt.Sprintf("%.2f dB", lv.CrestFactorDB))
	}

	analyzer := decay.NewAnalyzer(sampleRate)

	curve, err := analyzer.Curve(clip.Samples)
	if err != nil {
		return fmt.Errorf("estimating RT60: %w", err)
	}

	cli.PrintSection("Broadband")

	rows := [][2]string{{"RT60", cli.FormatResult(curve.Crossing)}}

	if c.Verbose {
		edt, edtOK := curve.EDT()
		t20, t20OK := curve.T20()
		t30, t30OK := curve.T30()

		rows = append(rows,
			[2]string{"EDT", cli.FormatMeasure(edt, edtOK)},
			[2]string{"T20", cli.FormatMeasure(t20, t20OK)},
			[2]string{"T30", cli.FormatMeasure(t30, t30OK)},
		)
	}

	cli.PrintSummary(rows)

	if c.Verbose {
		m, err := analyzer.EnergyMetrics(clip.Samples)
		if err != nil {
			return fmt.Errorf("computing energy metrics: %w", err)
		}

		cli.PrintInfo("C50", fmt.Sprintf("%.2f dB", m.C50))
		cli.PrintInfo("C80", fmt.Sprintf("%.2f dB", m.C80))
		cli.PrintInfo("D50", cli.FormatPercent(m.D50))
		cli.PrintInfo("Center time", cli.FormatSeconds(m.CenterTime))

		for _, level := range milestones {
			at, ok := curve.TimeAt(level)
			cli.PrintInfo(fmt.Sprintf("Curve %+.0f dB", level), cli.FormatMeasure(at, ok))
		}
	}

	if !curve.Crossing.Found {
		cli.PrintWarning("decay curve never falls 60 dB below its peak")
	}

	if !c.Bands && c.Octave == 0 {
		return nil
	}

	return c.runBands(sampleRate, clip.Samples)
}

func (c *analyzeCmd) runBands(sampleRate float64, samples []float64) error {
	opts := []bands.Option{
		bands.WithOrder(c.Order),
		bands.WithWorkers(c.Workers),
	}

	switch c.Octave {
	case 0:
		opts = append(opts, bands.WithCrossovers(c.LowMid, c.MidHigh))
	case 1, 3:
		opts = append(opts,
			bands.WithOctaveBands(c.Octave),
			bands.WithFrequencyRange(c.MinFreq, c.MaxFreq),
		)
	default:
		return fmt.Errorf("%w: got %d", errOctaveFraction, c.Octave)
	}

	analyzer, err := bands.NewAnalyzer(sampleRate, opts...)
	if err != nil {
		return fmt.Errorf("building band filters: %w", err)
	}

	results, err := analyzer.AnalyzeBands(samples)
	if err != nil {
		return fmt.Errorf("estimating band RT60: %w", err)
	}

	cli.PrintSection("Bands")

	if err := cli.WriteBandTable(cli.Stdout, results, sampleRate, c.Verbose); err != nil {
		return err
	}

	for _, r := range results {
		if r.Result.Found && !r.Reliable() {
			cli.PrintWarning(fmt.Sprintf("%s band: RT60 %s is within %gx of the filter's own ringing (%s)",
				r.Band.Name, cli.FormatResult(r.Result), bands.ReliabilityRatio, cli.FormatSeconds(r.FilterRT60)))
		}
	}

	return nil
}
