package device

import (
    "log"
    "sync"

    "github.com/kazzmir/tapesynth/tape"
)

// Player is the part of an oto or ebiten audio player the output drives
type Player interface {
    Play()
    Close() error
}

// Output owns a running player and the tape it pulls from
type Output struct {
    Spec Spec
    player Player
    tape *tape.Tape

    lock sync.Mutex
    closed bool
}

func MakeOutput(spec Spec, player Player, source *tape.Tape) *Output {
    return &Output{
        Spec: spec,
        player: player,
        tape: source,
    }
}

func (output *Output) Start() {
    output.lock.Lock()
    defer output.lock.Unlock()

    if output.closed {
        return
    }

    output.player.Play()
}

// Close stops the player and only then releases the tape, so a late callback
// can never see a released buffer.
func (output *Output) Close() error {
    output.lock.Lock()
    defer output.lock.Unlock()

    if output.closed {
        return nil
    }
    output.closed = true

    err := output.player.Close()
    if err != nil {
        log.Printf("Error closing audio player: %v", err)
    }

    output.tape.Release()
    return err
}
