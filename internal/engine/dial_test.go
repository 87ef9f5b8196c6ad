package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialGeometry_Hands(t *testing.T) {
	d := DefaultDial()

	// 3:00 -> hour hand points right, minute hand points up.
	g := DialGeometry(TimeValue{Hours: 15}, d)
	assert.Equal(t, 90.0, g.Hour.Angle)
	assert.Equal(t, Point{X: 150, Y: 100}, g.Hour.Tip)
	assert.Equal(t, 0.0, g.Minute.Angle)
	assert.Equal(t, Point{X: 100, Y: 30}, g.Minute.Tip)
	assert.Equal(t, d.HourHandWidth, g.Hour.Width)
	assert.Equal(t, d.MinuteHandWidth, g.Minute.Width)

	// 6:30 -> minute hand straight down, hour hand between 6 and 7.
	g = DialGeometry(TimeValue{Hours: 6, Minutes: 30}, d)
	assert.Equal(t, Point{X: 100, Y: 170}, g.Minute.Tip)
	assert.Equal(t, 195.0, g.Hour.Angle)
	assert.Less(t, g.Hour.Tip.X, 100.0)
}

func TestDialGeometry_TicksAndNumerals(t *testing.T) {
	d := DefaultDial()
	g := DialGeometry(TimeValue{}, d)

	require.Len(t, g.Ticks, DialPositions)
	require.Len(t, g.Numerals, DialPositions)

	for i, tick := range g.Ticks {
		n := i + 1
		assert.Equal(t, n, tick.Position)
		assert.Equal(t, TickKindOf(n), tick.Kind)
		assert.Equal(t, n, g.Numerals[i].Value)
	}

	top := g.Ticks[11]
	assert.Equal(t, TickMajor, top.Kind)
	assert.Equal(t, Point{X: 100, Y: 10}, top.Outer)
	assert.Equal(t, Point{X: 100, Y: 25}, top.Inner, "major ticks are 15 units long")
	assert.Equal(t, d.MajorWidth, top.Width)

	one := g.Ticks[0]
	assert.Equal(t, TickMinor, one.Kind)
	assert.Equal(t, d.MinorWidth, one.Width)

	assert.Equal(t, Point{X: 100, Y: 40}, g.Numerals[11].At)
}

func TestDialLayout_Scale(t *testing.T) {
	d := DefaultDial()

	half := d.Scale(100)
	assert.Equal(t, 100.0, half.Size)
	assert.Equal(t, 50.0, half.CenterX)
	assert.Equal(t, 30.0, half.NumeralRadius)
	assert.Equal(t, 35.0, half.MinuteHandLength)

	assert.Equal(t, d, d.Scale(200), "scaling to the same size is a no-op")
	assert.Equal(t, DialLayout{}, DialLayout{}.Scale(50), "zero layout cannot be scaled")
}
