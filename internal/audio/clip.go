// Package audio loads audio files into mono sample buffers and writes mono
// WAV files.
//
// WAV is decoded with go-audio/wav, MP3 with hajimehoshi/go-mp3 and FLAC
// with mewkiz/flac. Every channel is mixed down to mono by averaging, and
// samples are scaled to [-1, 1]. The native sample rate is kept.
package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Arr1738/SPIDAM-project/dsp/core"
)

// Errors returned by the loaders.
var (
	ErrUnsupportedFormat = errors.New("audio: unsupported format")
	ErrInvalidWAV        = errors.New("audio: invalid WAV file")
	ErrNoSamples         = errors.New("audio: file contains no samples")
	ErrInvalidBitDepth   = errors.New("audio: bit depth must be 16, 24 or 32")
)

// Format identifies an audio container.
type Format string

// Supported formats.
const (
	FormatWAV  Format = "wav"
	FormatMP3  Format = "mp3"
	FormatFLAC Format = "flac"
)

// FormatFromPath infers the format from a file extension (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch Format(ext) {
	case FormatWAV, FormatMP3, FormatFLAC:
		return Format(ext), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Clip is a decoded mono recording.
type Clip struct {
	Samples    []float64 // mono, scaled to [-1, 1]
	SampleRate int       // Hz
	Channels   int       // channel count of the source before mixdown
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	return core.Duration(len(c.Samples), float64(c.SampleRate))
}
