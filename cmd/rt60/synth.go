package main

import (
	"fmt"
	"math"

	"github.com/Arr1738/SPIDAM-project/dsp/core"
	"github.com/Arr1738/SPIDAM-project/dsp/signal"
	"github.com/Arr1738/SPIDAM-project/internal/audio"
	"github.com/Arr1738/SPIDAM-project/internal/cli"
)

type synthCmd struct {
	Output string `arg:"" name:"output" help:"Output WAV file"`

	RT60      float64 `name:"rt60" help:"Target reverberation time in seconds" default:"0.5" placeholder:"S"`
	Duration  float64 `help:"Decay length in seconds" default:"2" placeholder:"S"`
	Silence   float64 `help:"Seconds of silence appended after the decay" default:"0" placeholder:"S"`
	Rate      int     `help:"Sample rate in Hz" default:"48000"`
	Amplitude float64 `help:"Peak noise amplitude" default:"0.5"`
	Seed      int64   `help:"Noise seed" default:"1"`
	BitDepth  int     `name:"bit-depth" help:"WAV bit depth (16, 24 or 32)" default:"24"`
}

func (c *synthCmd) Run() error {
	if c.Rate <= 0 {
		return fmt.Errorf("--rate must be > 0: %d", c.Rate)
	}

	if c.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0: %g", c.Duration)
	}

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(float64(c.Rate))},
		signal.WithSeed(c.Seed),
	)

	n := int(math.Round(c.Duration * float64(c.Rate)))

	samples, err := gen.DecayingNoise(c.RT60, c.Amplitude, n)
	if err != nil {
		return fmt.Errorf("generating decay: %w", err)
	}

	samples = signal.AppendSilence(samples, int(math.Round(c.Silence*float64(c.Rate))))

	clip := &audio.Clip{Samples: samples, SampleRate: c.Rate, Channels: 1}
	if err := audio.WriteWAV(c.Output, clip, c.BitDepth); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}

	cli.PrintSuccess(fmt.Sprintf("wrote %s (%s, RT60 %s)", c.Output, cli.FormatSeconds(clip.Duration()), cli.FormatSeconds(c.RT60)))

	return nil
}
