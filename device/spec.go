package device

import (
    "errors"
    "fmt"
    "time"

    "github.com/dustin/go-humanize"
    "github.com/hako/durafmt"
)

var (
    ErrSpecMismatch = errors.New("audio device spec mismatch")
    ErrBufferSize = errors.New("unsupported device buffer size")
    ErrTapeTooShort = errors.New("tape shorter than one device buffer")
)

type Format int

const (
    FormatSignedInt16LE Format = iota
)

func (format Format) String() string {
    switch format {
        case FormatSignedInt16LE: return "s16le"
    }
    return fmt.Sprintf("format(%d)", int(format))
}

func (format Format) BytesPerSample() int {
    return 2
}

// device buffer sizes in samples: low latency and safe
const (
    BufferSmall = 512
    BufferLarge = 4096
)

// Spec describes the stream exchanged with the audio device
type Spec struct {
    SampleRate int
    Channels int
    Format Format
    BufferSamples int
}

func DefaultSpec() Spec {
    return Spec{
        SampleRate: 44100,
        Channels: 1,
        Format: FormatSignedInt16LE,
        BufferSamples: BufferSmall,
    }
}

func (spec Spec) FrameBytes() int {
    return spec.Channels * spec.Format.BytesPerSample()
}

// BufferBytes is how many bytes one device pull asks for
func (spec Spec) BufferBytes() int {
    return spec.BufferSamples * spec.FrameBytes()
}

// Latency is the time it takes the device to play one buffer
func (spec Spec) Latency() time.Duration {
    if spec.SampleRate <= 0 {
        return 0
    }
    return time.Duration(spec.BufferSamples) * time.Second / time.Duration(spec.SampleRate)
}

func (spec Spec) String() string {
    return fmt.Sprintf("%vhz %v channel(s) %v, %v sample buffer (%v, %v)",
        spec.SampleRate, spec.Channels, spec.Format, spec.BufferSamples,
        humanize.Bytes(uint64(spec.BufferBytes())), durafmt.Parse(spec.Latency()).LimitFirstN(2))
}

// Negotiate compares what was asked for with what the host gave back. Any
// difference is fatal; there is no degraded mode.
func Negotiate(requested Spec, obtained Spec) error {
    if err := CheckBuffer(requested); err != nil {
        return err
    }
    if requested.SampleRate != obtained.SampleRate {
        return fmt.Errorf("%w: sample rate requested %v obtained %v", ErrSpecMismatch, requested.SampleRate, obtained.SampleRate)
    }
    if requested.Channels != obtained.Channels {
        return fmt.Errorf("%w: channels requested %v obtained %v", ErrSpecMismatch, requested.Channels, obtained.Channels)
    }
    if requested.Format != obtained.Format {
        return fmt.Errorf("%w: format requested %v obtained %v", ErrSpecMismatch, requested.Format, obtained.Format)
    }
    if requested.BufferSamples != obtained.BufferSamples {
        return fmt.Errorf("%w: buffer requested %v samples obtained %v", ErrSpecMismatch, requested.BufferSamples, obtained.BufferSamples)
    }
    return nil
}

func CheckBuffer(spec Spec) error {
    if spec.BufferSamples != BufferSmall && spec.BufferSamples != BufferLarge {
        return fmt.Errorf("%w: requested %v samples, want %v or %v", ErrBufferSize, spec.BufferSamples, BufferSmall, BufferLarge)
    }
    return nil
}

// CheckTape makes sure a mono tape of size bytes can serve at least one pull
func CheckTape(spec Spec, size int) error {
    monoBuffer := spec.BufferSamples * spec.Format.BytesPerSample()
    if size < monoBuffer {
        return fmt.Errorf("%w: tape is %v, device buffer is %v", ErrTapeTooShort, humanize.Bytes(uint64(size)), humanize.Bytes(uint64(monoBuffer)))
    }
    return nil
}
