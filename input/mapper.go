package input

import (
    "errors"
    "fmt"
)

var ErrBadField = errors.New("field must have a positive size")

// Mapper turns a pointer position in field coordinates into the two control
// values the synth reads. y grows downward, as on screen.
type Mapper struct {
    Width float64
    Height float64

    centerX float64
    centerY float64
    // squared distance from the center to a corner, never zero
    maxSquared float64
}

func MakeMapper(width int, height int) (*Mapper, error) {
    if width <= 0 || height <= 0 {
        return nil, fmt.Errorf("%w: %vx%v", ErrBadField, width, height)
    }

    centerX := float64(width) / 2
    centerY := float64(height) / 2

    return &Mapper{
        Width: float64(width),
        Height: float64(height),
        centerX: centerX,
        centerY: centerY,
        maxSquared: centerX * centerX + centerY * centerY,
    }, nil
}

func clampUnit(value float64) float64 {
    return min(max(value, 0), 1)
}

// Clamp pins a pointer position to the field bounds
func (mapper *Mapper) Clamp(x float64, y float64) (float64, float64) {
    return min(max(x, 0), mapper.Width), min(max(y, 0), mapper.Height)
}

// MouseHeight is 0 at the bottom edge and 1 at the top
func (mapper *Mapper) MouseHeight(y float64) float64 {
    return clampUnit((mapper.Height - y) / mapper.Height)
}

// MouseCenterDistance is 1 at the center of the field and 0 at the corners
func (mapper *Mapper) MouseCenterDistance(x float64, y float64) float64 {
    dx := x - mapper.centerX
    dy := y - mapper.centerY
    return clampUnit((mapper.maxSquared - (dx * dx + dy * dy)) / mapper.maxSquared)
}

// Map clamps the pointer to the field and returns (height, center distance)
func (mapper *Mapper) Map(x float64, y float64) (float64, float64) {
    x, y = mapper.Clamp(x, y)
    return mapper.MouseHeight(y), mapper.MouseCenterDistance(x, y)
}
