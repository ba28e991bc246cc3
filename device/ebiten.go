package device

import (
    "fmt"
    "log"

    "github.com/kazzmir/tapesynth/tape"

    "github.com/hajimehoshi/ebiten/v2/audio"
)

// OpenEbiten plays the tape through an existing ebiten audio context. ebiten
// players are always 16-bit stereo, so the tape is duplicated into both
// channels and requested must ask for 2 channels.
func OpenEbiten(context *audio.Context, requested Spec, source *tape.Tape) (*Output, error) {
    if err := CheckBuffer(requested); err != nil {
        return nil, err
    }
    if err := CheckTape(requested, source.Len()); err != nil {
        return nil, err
    }

    obtained := Spec{
        SampleRate: context.SampleRate(),
        Channels: 2,
        Format: FormatSignedInt16LE,
        BufferSamples: requested.BufferSamples,
    }

    if err := Negotiate(requested, obtained); err != nil {
        return nil, err
    }

    player, err := context.NewPlayer(tape.MakeStereo(source, source.Len() / tape.BytesPerSample))
    if err != nil {
        return nil, fmt.Errorf("could not create ebiten player: %w", err)
    }
    player.SetBufferSize(requested.Latency())

    log.Printf("Opened ebiten audio: %v", obtained)

    return MakeOutput(obtained, player, source), nil
}
