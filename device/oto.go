package device

import (
    "fmt"
    "log"

    "github.com/kazzmir/tapesynth/tape"

    "github.com/ebitengine/oto/v3"
)

// OpenOto opens the system audio device directly, mono signed 16 bit. Only
// one oto context may exist per process, so this is not usable alongside
// ebiten's audio.
func OpenOto(requested Spec, source *tape.Tape) (*Output, error) {
    if requested.Format != FormatSignedInt16LE {
        return nil, fmt.Errorf("%w: oto output needs %v, got %v", ErrSpecMismatch, FormatSignedInt16LE, requested.Format)
    }
    if err := CheckBuffer(requested); err != nil {
        return nil, err
    }
    if err := CheckTape(requested, source.Len()); err != nil {
        return nil, err
    }

    var options oto.NewContextOptions
    options.SampleRate = requested.SampleRate
    options.ChannelCount = requested.Channels
    options.Format = oto.FormatSignedInt16LE
    options.BufferSize = requested.Latency()

    context, ready, err := oto.NewContext(&options)
    if err != nil {
        return nil, err
    }

    log.Printf("Waiting for audio context to be ready...")
    <-ready

    player := context.NewPlayer(source)
    player.SetBufferSize(requested.BufferBytes())

    if player.Err() != nil {
        return nil, player.Err()
    }

    // oto reports nothing back, so there is no obtained spec to negotiate
    // against; CheckBuffer above is the only check that applies
    log.Printf("Opened oto device: %v", requested)

    return MakeOutput(requested, player, source), nil
}
