package main

import (
    "context"
    "io"
    "log"
    "os"
    "os/signal"
    "runtime"
    "time"

    "github.com/kazzmir/tapesynth/device"
    "github.com/kazzmir/tapesynth/synth"

    "github.com/fatih/color"
    "golang.org/x/time/rate"
)

// retrigger fires a sustain trigger every time another interval of audio has
// been read, so offline renders hear the same retriggers as live playback
type retrigger struct {
    source io.Reader
    controls *synth.Controls
    interval int
    count int
}

func (trigger *retrigger) Read(data []byte) (int, error) {
    n, err := trigger.source.Read(data)
    if trigger.interval <= 0 {
        return n, err
    }

    trigger.count += n
    for trigger.count >= trigger.interval {
        trigger.count -= trigger.interval
        trigger.controls.Trigger(synth.TriggerSustain)
    }
    return n, err
}

func runCli(options Options, config synth.Config) error {
    spec := device.DefaultSpec()
    spec.SampleRate = config.SampleRate
    spec.BufferSamples = options.BufferSamples

    engine, err := MakeEngine(config, spec, options.TapeSamples, options.Seed)
    if err != nil {
        return err
    }
    applyScripted(engine, options)
    engine.Tape.Prime()

    output, err := device.OpenOto(spec, engine.Tape)
    if err != nil {
        return err
    }
    defer output.Close()

    output.Start()

    ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
    defer cancel()

    label := color.New(color.FgCyan).SprintFunc()
    value := color.New(color.FgYellow, color.Bold).SprintfFunc()
    status := rate.Sometimes{Interval: time.Second}

    var retriggerTimer <-chan time.Time
    if options.Retrigger > 0 {
        ticker := time.NewTicker(options.Retrigger)
        defer ticker.Stop()
        retriggerTimer = ticker.C
    }

    ticker := time.NewTicker(10 * time.Millisecond)
    defer ticker.Stop()

    for {
        select {
            case <-ctx.Done():
                log.Printf("Shutting down")
                return nil
            case <-retriggerTimer:
                engine.Synth.Controls.Trigger(synth.TriggerSustain)
            case <-ticker.C:
                status.Do(func(){
                    level := engine.Meter.Level()
                    log.Printf("%v %v %v %v %v %v", label("drained"), value("%d", engine.Tape.Drained()),
                        label("rms"), value("%.3f", level.RMSFullScale()),
                        label("env"), value("%.2f", engine.Synth.EnvelopeLevel()))
                })
        }

        // keep the output reachable while the device is pulling from it
        runtime.KeepAlive(output)
    }
}
