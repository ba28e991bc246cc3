package main

import (
    "bytes"
    "errors"
    "testing"

    "github.com/kazzmir/tapesynth/device"
    "github.com/kazzmir/tapesynth/synth"
)

func TestRetrigger(t *testing.T) {
    controls := synth.MakeControls(4)
    source := &retrigger{
        source: bytes.NewReader(make([]byte, 100)),
        controls: controls,
        interval: 40,
    }

    buffer := make([]byte, 30)
    source.Read(buffer)
    if controls.Snapshot().Trigger != synth.TriggerNone {
        t.Errorf("triggered before the interval")
    }

    source.Read(buffer)
    if controls.Snapshot().Trigger != synth.TriggerSustain {
        t.Errorf("expected a sustain trigger after 60 bytes")
    }
    if source.count != 20 {
        t.Errorf("leftover count %v", source.count)
    }
}

func TestOptionsConfig(t *testing.T) {
    options := Options{Saturation: "wrap", Waveform: "triangle", Amplitude: "speaker", Drone: true, Seconds: 1}
    config, err := options.synthConfig()
    if err != nil {
        t.Fatal(err)
    }
    if config.Saturation != synth.SaturationWrap || !config.Drone {
        t.Errorf("options not applied: %+v", config)
    }
    if config.Waveform != synth.WaveformTriangle || config.AmplitudeMax != synth.AmplitudeSpeaker {
        t.Errorf("waveform or amplitude not applied: %+v", config)
    }

    bad := []func(*Options){
        func(options *Options){ options.Saturation = "nope" },
        func(options *Options){ options.Waveform = "square" },
        func(options *Options){ options.Amplitude = "loud" },
        func(options *Options){ options.Seconds = -1 },
        func(options *Options){ options.Seconds = 0 },
    }

    for i, change := range bad {
        changed := options
        change(&changed)
        if _, err := changed.synthConfig(); !errors.Is(err, synth.ErrInvalidConfig) {
            t.Errorf("case %v: expected invalid config, got %v", i, err)
        }
    }
}

func TestMakeEngine(t *testing.T) {
    options := Options{Saturation: "clip", Waveform: "saw", Seconds: 1, Height: 0.5, Center: 0.1, Voices: 3}
    config, err := options.synthConfig()
    if err != nil {
        t.Fatal(err)
    }

    spec := defaultTestSpec()
    if _, err := MakeEngine(config, spec, 100, 1); err == nil {
        t.Errorf("a tape shorter than the device buffer should fail")
    }

    engine, err := MakeEngine(config, spec, 2048, 1)
    if err != nil {
        t.Fatal(err)
    }

    applyScripted(engine, options)
    if engine.Synth.Controls.Voices() != 3 {
        t.Errorf("voices %v", engine.Synth.Controls.Voices())
    }

    engine.Tape.Prime()
    engine.Tape.Pull(make([]byte, spec.BufferBytes()))
    if engine.Meter.Level().Chunks == 0 {
        t.Errorf("meter saw nothing")
    }
}

func defaultTestSpec() device.Spec {
    spec := device.DefaultSpec()
    spec.BufferSamples = device.BufferSmall
    return spec
}
