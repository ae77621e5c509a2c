package audio

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

type flacDecoder struct {
	stream  *flac.Stream
	pending []float64
}

func newFLACDecoder(r io.Reader) (*flacDecoder, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create FLAC decoder: %w", err)
	}

	return &flacDecoder{stream: stream}, nil
}

func (d *flacDecoder) ReadChunk(numSamples int) ([]float64, error) {
	for len(d.pending) < numSamples {
		frame, err := d.stream.ParseNext()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}

		// one subframe per channel; interleave them for downmix
		numChans := len(frame.Subframes)
		frameLen := len(frame.Subframes[0].Samples)

		pcm := make([]int32, frameLen*numChans)
		for ch, sub := range frame.Subframes {
			for i, s := range sub.Samples {
				pcm[i*numChans+ch] = s
			}
		}

		d.pending = append(d.pending, downmix(pcm, numChans, fullScale(int(frame.BitsPerSample)))...)
	}

	if len(d.pending) == 0 {
		return nil, io.EOF
	}

	n := min(numSamples, len(d.pending))
	out := d.pending[:n:n]
	d.pending = d.pending[n:]

	return out, nil
}

func (d *flacDecoder) SampleRate() int  { return int(d.stream.Info.SampleRate) }
func (d *flacDecoder) NumChannels() int { return int(d.stream.Info.NChannels) }
