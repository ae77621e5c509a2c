package bands_test

import (
	"fmt"

	"github.com/Arr1738/SPIDAM-project/dsp/core"
	"github.com/Arr1738/SPIDAM-project/dsp/signal"
	"github.com/Arr1738/SPIDAM-project/measure/bands"
)

func ExampleAnalyzer_AnalyzeBands() {
	const sampleRate = 16000.0

	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(sampleRate)},
		signal.WithSeed(1),
	)

	buf, err := g.DecayingNoise(0.5, 0.8, 2*int(sampleRate))
	if err != nil {
		fmt.Println(err)
		return
	}

	a, err := bands.NewAnalyzer(sampleRate)
	if err != nil {
		fmt.Println(err)
		return
	}

	results, err := a.AnalyzeBands(buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, r := range results {
		fmt.Printf("%-4s found=%v\n", r.Band.Name, r.Result.Found)
	}
	// Output:
	// low  found=true
	// mid  found=true
	// high found=true
}
