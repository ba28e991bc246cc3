package main

import (
    "flag"
    "fmt"
    "log"
    "os"
    "strconv"
    "time"

    "github.com/kazzmir/tapesynth/device"
    "github.com/kazzmir/tapesynth/record"
    "github.com/kazzmir/tapesynth/synth"

    "github.com/hajimehoshi/ebiten/v2"
    "github.com/hajimehoshi/ebiten/v2/audio"
)

// game art is 16:9 scaled by 20
const (
    FieldWidth = 16 * 20
    FieldHeight = 9 * 20
    // window pixels per field pixel
    PixelSize = 4
)

type Options struct {
    Headless bool
    RenderPath string
    Seconds float64
    BufferSamples int
    TapeSamples int
    Saturation string
    Waveform string
    Amplitude string
    Drone bool
    Voices int
    Height float64
    Center float64
    Retrigger time.Duration
    DebugInput bool
    Seed uint64
}

func parseOptions() Options {
    var options Options

    flag.BoolVar(&options.Headless, "headless", false, "play through the audio device without opening a window")
    flag.StringVar(&options.RenderPath, "render", "", "write audio to this wav file instead of playing it")
    flag.Float64Var(&options.Seconds, "seconds", 5, "length of -render output")
    flag.IntVar(&options.BufferSamples, "buffer", device.BufferSmall, "device buffer size in samples (512 or 4096)")
    flag.IntVar(&options.TapeSamples, "tape", 4096, "tape length in samples, bounds the input latency")
    flag.StringVar(&options.Saturation, "saturation", "clip", "overflow policy for the mix: clip or wrap")
    flag.StringVar(&options.Waveform, "waveform", "saw", "voice shape: saw or triangle")
    flag.StringVar(&options.Amplitude, "amplitude", "", "per voice amplitude: headphones, speaker or a number")
    flag.BoolVar(&options.Drone, "drone", false, "play continuously instead of on triggers")
    flag.IntVar(&options.Voices, "voices", 1, "initial number of harmonics")
    flag.Float64Var(&options.Height, "height", 0.5, "pitch control for -headless and -render, 0 to 1")
    flag.Float64Var(&options.Center, "center", 0.2, "noise control for -headless and -render, 0 to 1")
    flag.DurationVar(&options.Retrigger, "retrigger", 2 * time.Second, "sustain retrigger interval for -headless and -render")
    flag.BoolVar(&options.DebugInput, "debug-input", false, "log keys that have no binding")
    flag.Uint64Var(&options.Seed, "seed", 0, "noise seed, 0 picks one from the clock")

    flag.Parse()

    return options
}

func (options Options) synthConfig() (synth.Config, error) {
    config := synth.DefaultConfig()

    saturation, err := synth.ParseSaturation(options.Saturation)
    if err != nil {
        return config, err
    }

    config.Saturation = saturation
    config.Drone = options.Drone

    config.Waveform, err = synth.ParseWaveform(options.Waveform)
    if err != nil {
        return config, err
    }

    if options.Amplitude != "" {
        config.AmplitudeMax, err = synth.ParseAmplitude(options.Amplitude)
        if err != nil {
            return config, err
        }
    }

    if options.Seconds <= 0 {
        return config, fmt.Errorf("%w: -seconds must be positive, got %v", synth.ErrInvalidConfig, options.Seconds)
    }

    return config, config.Validate()
}

// applyScripted sets the controls used when there is no pointer
func applyScripted(engine *Engine, options Options) {
    controls := engine.Synth.Controls
    controls.SetHeight(options.Height)
    controls.SetCenterDistance(options.Center)
    for range options.Voices - 1 {
        controls.StepVoices(1)
    }
    controls.Trigger(synth.TriggerSustain)
}

func runRender(options Options, config synth.Config) error {
    spec := device.DefaultSpec()
    spec.SampleRate = config.SampleRate
    spec.BufferSamples = options.BufferSamples

    engine, err := MakeEngine(config, spec, options.TapeSamples, options.Seed)
    if err != nil {
        return err
    }
    applyScripted(engine, options)
    engine.Tape.Prime()

    file, err := os.Create(options.RenderPath)
    if err != nil {
        return err
    }
    defer file.Close()

    source := &retrigger{
        source: engine.Tape,
        controls: engine.Synth.Controls,
        interval: int(options.Retrigger.Seconds() * float64(spec.SampleRate)) * spec.FrameBytes(),
    }

    return record.Render(source, spec, time.Duration(options.Seconds * float64(time.Second)), file)
}

// window geometry may be passed as positional x y w h, in which case the
// window is borderless and stays on top
func setupWindow() {
    ebiten.SetTPS(60)
    ebiten.SetWindowTitle("Tape Synth")
    ebiten.SetWindowSize(FieldWidth * PixelSize, FieldHeight * PixelSize)
    ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

    args := flag.Args()
    var geometry []int
    for _, arg := range args {
        value, err := strconv.Atoi(arg)
        if err != nil {
            log.Printf("Ignoring window argument '%v': %v", arg, err)
            return
        }
        geometry = append(geometry, value)
    }

    if len(geometry) == 0 {
        return
    }

    x, y := ebiten.WindowPosition()
    width, height := FieldWidth * PixelSize, FieldHeight * PixelSize
    for i, value := range geometry {
        switch i {
            case 0: x = value
            case 1: y = value
            case 2: width = value
            case 3: height = value
        }
    }

    log.Printf("Window (x,y): (%d,%d)", x, y)
    log.Printf("Window W x H: %d x %d", width, height)

    ebiten.SetWindowPosition(x, y)
    ebiten.SetWindowSize(width, height)
    ebiten.SetWindowDecorated(false)
    ebiten.SetWindowFloating(true)
}

func runWindow(options Options, config synth.Config) error {
    spec := device.DefaultSpec()
    spec.SampleRate = config.SampleRate
    spec.Channels = 2
    spec.BufferSamples = options.BufferSamples

    engine, err := MakeEngine(config, spec, options.TapeSamples, options.Seed)
    if err != nil {
        return err
    }

    for range options.Voices - 1 {
        engine.Synth.Controls.StepVoices(1)
    }
    engine.Tape.Prime()

    game, err := MakeGame(engine, options.DebugInput)
    if err != nil {
        return err
    }

    audioContext := audio.NewContext(config.SampleRate)
    output, err := device.OpenEbiten(audioContext, spec, engine.Tape)
    if err != nil {
        return err
    }
    defer output.Close()

    output.Start()

    setupWindow()

    err = ebiten.RunGame(game)
    if err == ebiten.Termination {
        return nil
    }
    return err
}

func main(){
    log.SetFlags(log.Lshortfile | log.Ldate | log.Lmicroseconds)

    options := parseOptions()

    config, err := options.synthConfig()
    if err != nil {
        log.Printf("Error: %v", err)
        os.Exit(1)
    }

    switch {
        case options.RenderPath != "":
            err = runRender(options, config)
        case options.Headless:
            err = runCli(options, config)
        default:
            err = runWindow(options, config)
    }

    if err != nil {
        log.Printf("Error: %v", err)
        os.Exit(1)
    }
}
