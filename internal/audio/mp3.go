package audio

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

type mp3Decoder struct {
	decoder *mp3.Decoder
}

func newMP3Decoder(r io.Reader) (*mp3Decoder, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create MP3 decoder: %w", err)
	}

	return &mp3Decoder{decoder: decoder}, nil
}

func (d *mp3Decoder) ReadChunk(numSamples int) ([]float64, error) {
	// go-mp3 always emits interleaved 16-bit little-endian stereo,
	// 4 bytes per frame.
	buf := make([]byte, numSamples*4)

	n, err := io.ReadFull(d.decoder, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read MP3 data: %w", err)
	}

	frames := n / 4
	if frames == 0 {
		return nil, io.EOF
	}

	pcm := make([]int, 2*frames)
	for i := range pcm {
		pcm[i] = int(int16(uint16(buf[2*i]) | uint16(buf[2*i+1])<<8))
	}

	return downmix(pcm, 2, fullScale(16)), nil
}

func (d *mp3Decoder) SampleRate() int { return d.decoder.SampleRate() }

// NumChannels reports the decoder output layout, which is always stereo.
func (d *mp3Decoder) NumChannels() int { return 2 }
