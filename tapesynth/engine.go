package main

import (
    "log"
    "math/rand/v2"
    "time"

    "github.com/kazzmir/tapesynth/device"
    "github.com/kazzmir/tapesynth/meter"
    "github.com/kazzmir/tapesynth/synth"
    "github.com/kazzmir/tapesynth/tape"
)

// Engine bundles the synthesizer with the tape it writes into
type Engine struct {
    Synth *synth.Synth
    Tape *tape.Tape
    Meter *meter.Meter
}

func MakeEngine(config synth.Config, spec device.Spec, tapeSamples int, seed uint64) (*Engine, error) {
    if seed == 0 {
        seed = uint64(time.Now().UnixNano())
    }

    synthesizer, err := synth.MakeSynth(config, rand.New(rand.NewPCG(seed, seed >> 1)))
    if err != nil {
        return nil, err
    }

    size := tapeSamples * tape.BytesPerSample
    if err := device.CheckTape(spec, size); err != nil {
        return nil, err
    }

    source, err := tape.MakeTape(size, synthesizer)
    if err != nil {
        return nil, err
    }

    // the writer never produces more than one tape in a single call
    level := meter.MakeMeter(tapeSamples)
    synthesizer.SetMeter(level)

    log.Printf("Tape: %v samples, input to output latency up to %v", tapeSamples, time.Duration(tapeSamples) * time.Second / time.Duration(config.SampleRate))

    return &Engine{
        Synth: synthesizer,
        Tape: source,
        Meter: level,
    }, nil
}
