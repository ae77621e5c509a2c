// Command rt60 estimates the reverberation time of a room recording.
//
// Usage:
//
//	rt60 analyze [flags] <input>
//	rt60 synth [flags] <output>
//	rt60 version
//
// analyze loads a WAV, MP3 or FLAC file, mixes it down to mono and prints
// the broadband RT60 from the Schroeder decay curve. With --bands it also
// splits the signal into low, mid and high bands using zero-phase
// Butterworth filters; --octave N switches to a 1/N-octave bank.
//
// synth writes exponentially decaying white noise with a known RT60,
// which analyze should recover.
//
// Examples:
//
//	rt60 analyze hall.wav
//	rt60 analyze --bands --verbose clap.flac
//	rt60 analyze --octave 3 --min-freq 100 --max-freq 8000 room.mp3
//	rt60 synth --rt60 1.2 --duration 4 test.wav
package main

import (
	"os"

	"github.com/Arr1738/SPIDAM-project/internal/cli"
	"github.com/alecthomas/kong"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

type versionCmd struct{}

func (versionCmd) Run() error {
	cli.PrintVersion(version)
	return nil
}

var CLI struct {
	Analyze analyzeCmd `cmd:"" help:"Estimate RT60 of an audio file."`
	Synth   synthCmd   `cmd:"" help:"Write decaying noise with a known RT60 to a WAV file."`
	Version versionCmd `cmd:"" help:"Show version information."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rt60"),
		kong.Description(cli.Tagline),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if err := ctx.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
