package tape

import (
    "io"
)

// Stereo presents the mono tape as 16-bit stereo frames, the only layout
// ebiten's audio player accepts. Both channels carry the same sample.
type Stereo struct {
    Tape *Tape
    mono []byte
}

// frames sizes the scratch buffer, allocated once here. Reads longer than
// that are served in several pulls rather than growing it.
func MakeStereo(tape *Tape, frames int) *Stereo {
    return &Stereo{
        Tape: tape,
        mono: make([]byte, max(frames, 1) * BytesPerSample),
    }
}

func (stereo *Stereo) Read(data []byte) (int, error) {
    frames := len(data) / 4
    if frames == 0 {
        if len(data) == 0 {
            return 0, nil
        }
        return 0, io.ErrShortBuffer
    }

    out := data[:frames * 4]
    for len(out) > 0 {
        chunk := min(len(out) / 4, len(stereo.mono) / BytesPerSample)
        mono := stereo.mono[:chunk * BytesPerSample]
        stereo.Tape.Pull(mono)

        for i := range chunk {
            low := mono[i*2+0]
            high := mono[i*2+1]
            out[i*4+0] = low
            out[i*4+1] = high
            out[i*4+2] = low
            out[i*4+3] = high
        }

        out = out[chunk * 4:]
    }

    return frames * 4, nil
}
