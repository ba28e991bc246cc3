package main

import (
    "bytes"
    "fmt"
    "image/color"
    "log"

    "github.com/kazzmir/tapesynth/input"
    "github.com/kazzmir/tapesynth/synth"

    "github.com/hajimehoshi/ebiten/v2"
    "github.com/hajimehoshi/ebiten/v2/inpututil"
    "github.com/hajimehoshi/ebiten/v2/text/v2"
    "github.com/hajimehoshi/ebiten/v2/vector"

    "golang.org/x/image/font/gofont/gomono"
)

func loadFont(size float64) (text.Face, error) {
    source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
    if err != nil {
        return nil, err
    }

    return &text.GoTextFace{
        Source: source,
        Size: size,
    }, nil
}

// Game is the window side: it reads the pointer and keys once per frame and
// hands the results to the synth controls
type Game struct {
    Engine *Engine
    Mapper *input.Mapper
    DebugInput bool

    face text.Face
    pointerX float64
    pointerY float64
}

func MakeGame(engine *Engine, debugInput bool) (*Game, error) {
    mapper, err := input.MakeMapper(FieldWidth, FieldHeight)
    if err != nil {
        return nil, err
    }

    face, err := loadFont(8)
    if err != nil {
        return nil, err
    }

    return &Game{
        Engine: engine,
        Mapper: mapper,
        DebugInput: debugInput,
        face: face,
        pointerX: FieldWidth / 2,
        pointerY: FieldHeight / 2,
    }, nil
}

func (game *Game) Update() error {
    controls := game.Engine.Synth.Controls

    keys := inpututil.AppendJustPressedKeys(nil)
    for _, key := range keys {
        switch key {
            case ebiten.KeyEscape, ebiten.KeyQ:
                return ebiten.Termination
            case ebiten.KeyF11:
                ebiten.SetFullscreen(!ebiten.IsFullscreen())
            case ebiten.KeySpace:
                controls.Trigger(synth.TriggerPluck)
            case ebiten.KeyEnter:
                controls.Trigger(synth.TriggerSustain)
            case ebiten.KeyArrowUp:
                log.Printf("Voices: %v", controls.StepVoices(1))
            case ebiten.KeyArrowDown:
                log.Printf("Voices: %v", controls.StepVoices(-1))
            default:
                if game.DebugInput {
                    log.Printf("Unused key %v", key)
                }
        }
    }

    x, y := ebiten.CursorPosition()
    game.pointerX, game.pointerY = game.Mapper.Clamp(float64(x), float64(y))

    height, distance := game.Mapper.Map(game.pointerX, game.pointerY)
    controls.SetHeight(height)
    controls.SetCenterDistance(distance)

    return nil
}

func (game *Game) Draw(screen *ebiten.Image) {
    screen.Fill(color.RGBA{R: 20, G: 20, B: 20, A: 255})

    lineColor := color.RGBA{R: 255, G: 255, B: 20, A: 128}
    vector.StrokeLine(screen, 0, 0, FieldWidth, FieldHeight, 1, lineColor, false)
    vector.StrokeLine(screen, FieldWidth, 0, 0, FieldHeight, 1, lineColor, false)
    vector.StrokeLine(screen, FieldWidth / 2, FieldHeight / 2, float32(game.pointerX), float32(game.pointerY), 1, lineColor, false)

    controls := game.Engine.Synth.Controls
    level := game.Engine.Meter.Level()

    status := fmt.Sprintf("voices %d  height %.2f  center %.2f\nlevel %.3f peak %.3f  env %.2f",
        controls.Voices(), controls.Height(), controls.CenterDistance(),
        level.RMSFullScale(), level.PeakFullScale(), game.Engine.Synth.EnvelopeLevel())

    var options text.DrawOptions
    options.GeoM.Translate(4, 4)
    options.LineSpacing = 10
    options.ColorScale.ScaleWithColor(color.White)
    text.Draw(screen, status, game.face, &options)
}

func (game *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
    return FieldWidth, FieldHeight
}
