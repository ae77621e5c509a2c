package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// chunkSize is the number of mono samples requested per ReadChunk call.
const chunkSize = 4096

// Decoder streams mono samples out of an encoded audio source.
type Decoder interface {
	// ReadChunk reads up to numSamples mono samples. It returns io.EOF,
	// and no samples, once the stream is exhausted.
	ReadChunk(numSamples int) ([]float64, error)

	// SampleRate returns the audio sample rate in Hz.
	SampleRate() int

	// NumChannels returns the number of channels in the source.
	NumChannels() int
}

// NewDecoder returns a decoder for r in the given format.
func NewDecoder(r io.ReadSeeker, format Format) (Decoder, error) {
	switch format {
	case FormatWAV:
		return newWAVDecoder(r)
	case FormatMP3:
		return newMP3Decoder(r)
	case FormatFLAC:
		return newFLACDecoder(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Load decodes the file at path, choosing the decoder from its extension.
func Load(path string) (*Clip, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	clip, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return clip, nil
}

// Decode reads a whole stream into a mono Clip.
func Decode(r io.ReadSeeker, format Format) (*Clip, error) {
	d, err := NewDecoder(r, format)
	if err != nil {
		return nil, err
	}

	var samples []float64

	for {
		chunk, err := d.ReadChunk(chunkSize)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		samples = append(samples, chunk...)
	}

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	return &Clip{
		Samples:    samples,
		SampleRate: d.SampleRate(),
		Channels:   d.NumChannels(),
	}, nil
}

// downmix averages interleaved frames of numChans channels into mono.
// scale converts a raw integer sample to [-1, 1].
func downmix[T int | int32](data []T, numChans int, scale float64) []float64 {
	if numChans <= 0 {
		numChans = 1
	}

	frames := len(data) / numChans
	out := make([]float64, frames)

	for i := range frames {
		var sum float64
		for ch := range numChans {
			sum += float64(data[i*numChans+ch])
		}

		out[i] = sum / float64(numChans) / scale
	}

	return out
}
