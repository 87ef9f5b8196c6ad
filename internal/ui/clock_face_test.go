package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/engine"
)

const posDelta = 0.01

func layoutFace(t *testing.T, tv engine.TimeValue, showNumerals bool, size fyne.Size) *clockFaceRenderer {
	t.Helper()
	test.NewApp().Settings().SetTheme(theme.DefaultTheme())

	face := NewClockFace()
	face.SetState(tv, showNumerals)
	r, ok := face.CreateRenderer().(*clockFaceRenderer)
	require.True(t, ok)
	r.Layout(size)
	return r
}

func assertPos(t *testing.T, wantX, wantY float64, got fyne.Position) {
	t.Helper()
	assert.InDelta(t, wantX, got.X, posDelta, "x")
	assert.InDelta(t, wantY, got.Y, posDelta, "y")
}

func TestClockFace_HandsOnReferenceDial(t *testing.T) {
	r := layoutFace(t, engine.TimeValue{Hours: 15}, true, fyne.NewSquareSize(200))

	// 3 o'clock: hour hand points right, minute hand points up.
	assertPos(t, 100, 100, r.hour.Position1)
	assertPos(t, 150, 100, r.hour.Position2)
	assertPos(t, 100, 30, r.minute.Position2)
	assert.InDelta(t, 6, r.hour.StrokeWidth, posDelta)
	assert.InDelta(t, 4, r.minute.StrokeWidth, posDelta)
}

func TestClockFace_TicksAndNumerals(t *testing.T) {
	r := layoutFace(t, engine.TimeValue{}, true, fyne.NewSquareSize(200))

	require.Len(t, r.ticks, engine.DialPositions)
	require.Len(t, r.numerals, engine.DialPositions)

	// The 12 o'clock tick is major and runs from radius 90 to 75.
	twelve := r.ticks[11]
	assertPos(t, 100, 10, twelve.Position1)
	assertPos(t, 100, 25, twelve.Position2)
	assert.InDelta(t, 6, twelve.StrokeWidth, posDelta)

	// The 1 o'clock tick is minor.
	assert.InDelta(t, 4, r.ticks[0].StrokeWidth, posDelta)

	for i, label := range r.numerals {
		assert.True(t, label.Visible(), "numeral %d", i+1)
	}
	assert.Equal(t, "12", r.numerals[11].Text)
	assert.InDelta(t, config.NumeralMajorTextSize, r.numerals[11].TextSize, posDelta)
	assert.InDelta(t, config.NumeralMinorTextSize, r.numerals[0].TextSize, posDelta)

	// Numerals are centred on their dial position.
	nine := r.numerals[8]
	center := nine.Position().AddXY(nine.Size().Width/2, nine.Size().Height/2)
	assertPos(t, 40, 100, center)
}

func TestClockFace_HidesNumerals(t *testing.T) {
	r := layoutFace(t, engine.TimeValue{Hours: 9, Minutes: 41}, false, fyne.NewSquareSize(200))

	for i, label := range r.numerals {
		assert.False(t, label.Visible(), "numeral %d", i+1)
	}
	for i, tick := range r.ticks {
		assert.True(t, tick.Visible(), "tick %d", i+1)
	}
}

func TestClockFace_ScalesAndCentres(t *testing.T) {
	// A 600x400 area holds a 400 dial offset by 100 horizontally.
	r := layoutFace(t, engine.TimeValue{Hours: 6}, true, fyne.NewSize(600, 400))

	assertPos(t, 300, 200, r.hour.Position1)
	assertPos(t, 300, 300, r.hour.Position2)
	assertPos(t, 300, 60, r.minute.Position2)
	assert.InDelta(t, 12, r.hour.StrokeWidth, posDelta)

	assertPos(t, 300-190, 200-190, r.rim.Position1)
	assertPos(t, 300+190, 200+190, r.rim.Position2)
}

func TestClockFace_MinSize(t *testing.T) {
	r := layoutFace(t, engine.TimeValue{}, true, fyne.NewSquareSize(200))
	assert.Equal(t, fyne.NewSquareSize(config.ClockFaceMinSize), r.MinSize())
}
