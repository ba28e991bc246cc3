package input

import (
    "errors"
    "math"
    "testing"
)

func closeTo(a float64, b float64) bool {
    return math.Abs(a - b) < 1e-9
}

func TestMakeMapperErrors(t *testing.T) {
    for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
        if _, err := MakeMapper(size[0], size[1]); !errors.Is(err, ErrBadField) {
            t.Errorf("size %v: expected bad field, got %v", size, err)
        }
    }
}

func TestMouseHeight(t *testing.T) {
    mapper, err := MakeMapper(320, 180)
    if err != nil {
        t.Fatal(err)
    }

    cases := []struct {
        y float64
        expected float64
    }{
        {180, 0},
        {0, 1},
        {90, 0.5},
        {45, 0.75},
        {-50, 1},
        {500, 0},
    }

    for _, test := range cases {
        if height := mapper.MouseHeight(test.y); !closeTo(height, test.expected) {
            t.Errorf("height at y=%v: %v, expected %v", test.y, height, test.expected)
        }
    }
}

func TestMouseCenterDistance(t *testing.T) {
    mapper, err := MakeMapper(320, 180)
    if err != nil {
        t.Fatal(err)
    }

    cases := []struct {
        x, y float64
        expected float64
    }{
        {160, 90, 1},
        {0, 0, 0},
        {320, 180, 0},
        {320, 0, 0},
        {0, 180, 0},
        // halfway along the diagonal is a quarter of the squared distance
        {80, 45, 0.75},
    }

    for _, test := range cases {
        if distance := mapper.MouseCenterDistance(test.x, test.y); !closeTo(distance, test.expected) {
            t.Errorf("distance at (%v,%v): %v, expected %v", test.x, test.y, distance, test.expected)
        }
    }
}

func TestMapClamps(t *testing.T) {
    mapper, err := MakeMapper(16, 9)
    if err != nil {
        t.Fatal(err)
    }

    for _, point := range [][2]float64{{-100, -100}, {100, 100}, {8, -3}, {-3, 4.5}, {8, 4.5}} {
        height, distance := mapper.Map(point[0], point[1])
        if height < 0 || height > 1 || distance < 0 || distance > 1 {
            t.Errorf("point %v mapped outside [0,1]: %v %v", point, height, distance)
        }
    }

    height, distance := mapper.Map(-100, -100)
    if height != 1 || distance != 0 {
        t.Errorf("top left corner mapped to %v %v", height, distance)
    }
}
