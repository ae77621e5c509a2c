package audio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavFormatFloat is the WAVE format tag for IEEE float samples.
const wavFormatFloat = 3

type wavDecoder struct {
	decoder    *wav.Decoder
	sampleRate int
	bitDepth   int
	numChans   int
}

func newWAVDecoder(r io.ReadSeeker) (*wavDecoder, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	if decoder.WavAudioFormat == wavFormatFloat {
		return nil, fmt.Errorf("%w: IEEE float WAV", ErrUnsupportedFormat)
	}

	switch decoder.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit WAV", ErrUnsupportedFormat, decoder.BitDepth)
	}

	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("failed to seek to PCM data: %w", err)
	}

	return &wavDecoder{
		decoder:    decoder,
		sampleRate: int(decoder.SampleRate),
		bitDepth:   int(decoder.BitDepth),
		numChans:   int(decoder.NumChans),
	}, nil
}

func (d *wavDecoder) ReadChunk(numSamples int) ([]float64, error) {
	// numSamples frames of interleaved channel data
	intBuf := &audio.IntBuffer{
		Data: make([]int, numSamples*d.numChans),
		Format: &audio.Format{
			NumChannels: d.numChans,
			SampleRate:  d.sampleRate,
		},
	}

	n, err := d.decoder.PCMBuffer(intBuf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read PCM buffer: %w", err)
	}

	if n == 0 {
		return nil, io.EOF
	}

	data := intBuf.Data[:n]

	// 8-bit PCM is unsigned around 128
	if d.bitDepth == 8 {
		for i := range data {
			data[i] -= 128
		}
	}

	return downmix(data, d.numChans, fullScale(d.bitDepth)), nil
}

// fullScale is the magnitude of the most negative code at bitDepth, so
// integer PCM maps onto [-1, 1).
func fullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}

func (d *wavDecoder) SampleRate() int  { return d.sampleRate }
func (d *wavDecoder) NumChannels() int { return d.numChans }

// WriteWAV encodes the clip's mono samples as a PCM WAV file at the given
// bit depth. Samples outside [-1, 1) are clipped to the integer range.
func WriteWAV(path string, clip *Clip, bitDepth int) (err error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitDepth)
	}

	if len(clip.Samples) == 0 {
		return ErrNoSamples
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	scale := fullScale(bitDepth)

	data := make([]int, len(clip.Samples))
	for i, v := range clip.Samples {
		data[i] = int(math.Max(-scale, math.Min(scale-1, math.Round(v*scale))))
	}

	// 1 = PCM
	enc := wav.NewEncoder(f, clip.SampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: clip.SampleRate},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}

	return enc.Close()
}
