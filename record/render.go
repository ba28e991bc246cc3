package record

import (
    "encoding/binary"
    "errors"
    "fmt"
    "io"
    "log"
    "time"

    "github.com/kazzmir/tapesynth/device"

    "github.com/go-audio/audio"
    "github.com/go-audio/wav"
)

var ErrBadDuration = errors.New("render duration must be positive")

// wav format tag for integer pcm
const pcmFormat = 1

// Render reads duration worth of mono audio from source in device sized
// pulls, the same way the sound card would, and writes it to out as a 16-bit
// wav file.
func Render(source io.Reader, spec device.Spec, duration time.Duration, out io.WriteSeeker) error {
    if spec.Channels != 1 {
        return fmt.Errorf("%w: can only render mono, got %v channels", device.ErrSpecMismatch, spec.Channels)
    }
    if err := device.CheckBuffer(spec); err != nil {
        return err
    }
    if duration <= 0 {
        return fmt.Errorf("%w: %v", ErrBadDuration, duration)
    }

    total := int(duration.Seconds() * float64(spec.SampleRate))
    pull := make([]byte, spec.BufferBytes())

    buffer := &audio.IntBuffer{
        Format: &audio.Format{
            NumChannels: 1,
            SampleRate: spec.SampleRate,
        },
        Data: make([]int, 0, total),
        SourceBitDepth: 16,
    }

    for len(buffer.Data) < total {
        _, err := io.ReadFull(source, pull)
        if err != nil {
            return err
        }

        samples := min(len(pull) / 2, total - len(buffer.Data))
        for i := range samples {
            buffer.Data = append(buffer.Data, int(int16(binary.LittleEndian.Uint16(pull[i*2:]))))
        }
    }

    encoder := wav.NewEncoder(out, spec.SampleRate, 16, 1, pcmFormat)
    err := encoder.Write(buffer)
    if err != nil {
        encoder.Close()
        return err
    }

    err = encoder.Close()
    if err != nil {
        return err
    }

    log.Printf("Rendered %v samples (%v)", total, duration)
    return nil
}
