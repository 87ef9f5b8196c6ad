package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/engine"
)

// ClockFace draws the analog dial for a time value.
// It holds no clock logic: every coordinate comes from engine.DialGeometry.
type ClockFace struct {
	widget.BaseWidget

	time         engine.TimeValue
	showNumerals bool
}

// NewClockFace creates a dial showing midnight with numerals visible.
func NewClockFace() *ClockFace {
	f := &ClockFace{showNumerals: true}
	f.ExtendBaseWidget(f)
	return f
}

// SetState updates the displayed time and numeral visibility.
// It must be called on the UI thread.
func (f *ClockFace) SetState(t engine.TimeValue, showNumerals bool) {
	if f.time == t && f.showNumerals == showNumerals {
		return
	}
	f.time = t
	f.showNumerals = showNumerals
	f.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (f *ClockFace) CreateRenderer() fyne.WidgetRenderer {
	r := &clockFaceRenderer{
		face:   f,
		rim:    canvas.NewCircle(color.Transparent),
		hub:    canvas.NewCircle(color.Transparent),
		hour:   canvas.NewLine(color.Transparent),
		minute: canvas.NewLine(color.Transparent),
	}

	r.objects = append(r.objects, r.rim)
	for n := 1; n <= engine.DialPositions; n++ {
		tick := canvas.NewLine(color.Transparent)
		r.ticks = append(r.ticks, tick)
		r.objects = append(r.objects, tick)
	}
	for n := 1; n <= engine.DialPositions; n++ {
		label := canvas.NewText(strconv.Itoa(n), color.Transparent)
		label.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
		r.numerals = append(r.numerals, label)
		r.objects = append(r.objects, label)
	}
	// Hands above the numerals, hub above the hands.
	r.objects = append(r.objects, r.hour, r.minute, r.hub)

	r.applyTheme()
	return r
}

type clockFaceRenderer struct {
	face *ClockFace

	rim      *canvas.Circle
	hub      *canvas.Circle
	hour     *canvas.Line
	minute   *canvas.Line
	ticks    []*canvas.Line
	numerals []*canvas.Text

	objects []fyne.CanvasObject
}

func (r *clockFaceRenderer) Layout(size fyne.Size) {
	side := fyne.Min(size.Width, size.Height)
	origin := fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)

	layout := engine.DefaultDial().Scale(float64(side))
	geo := engine.DialGeometry(r.face.time, layout)
	at := func(p engine.Point) fyne.Position {
		return origin.AddXY(float32(p.X), float32(p.Y))
	}
	center := at(engine.Point{X: layout.CenterX, Y: layout.CenterY})
	scale := float32(side / float32(engine.DefaultDial().Size))

	placeCircle(r.rim, center, float32(layout.RimRadius))
	r.rim.StrokeWidth = float32(layout.RimWidth)
	placeCircle(r.hub, center, float32(layout.HubRadius))

	for i, tick := range geo.Ticks {
		line := r.ticks[i]
		line.Position1 = at(tick.Outer)
		line.Position2 = at(tick.Inner)
		line.StrokeWidth = float32(tick.Width)
	}

	for i, num := range geo.Numerals {
		label := r.numerals[i]
		label.TextSize = config.NumeralMinorTextSize * scale
		if num.Kind == engine.TickMajor {
			label.TextSize = config.NumeralMajorTextSize * scale
		}
		textSize := fyne.MeasureText(label.Text, label.TextSize, label.TextStyle)
		label.Resize(textSize)
		label.Move(at(num.At).SubtractXY(textSize.Width/2, textSize.Height/2))
		if r.face.showNumerals {
			label.Show()
		} else {
			label.Hide()
		}
	}

	placeHand(r.hour, center, at(geo.Hour.Tip), geo.Hour.Width)
	placeHand(r.minute, center, at(geo.Minute.Tip), geo.Minute.Width)
}

func (r *clockFaceRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(config.ClockFaceMinSize)
}

func (r *clockFaceRenderer) Refresh() {
	r.applyTheme()
	r.Layout(r.face.Size())
	canvas.Refresh(r.face)
}

func (r *clockFaceRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *clockFaceRenderer) Destroy() {}

// applyTheme colours the dial from the current theme.
func (r *clockFaceRenderer) applyTheme() {
	fg := theme.Color(theme.ColorNameForeground)
	muted := theme.Color(theme.ColorNameDisabled)
	primary := theme.Color(theme.ColorNamePrimary)

	r.rim.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.rim.StrokeColor = theme.Color(theme.ColorNameSeparator)
	r.hub.FillColor = primary
	r.hour.StrokeColor = fg
	r.minute.StrokeColor = primary

	for n, line := range r.ticks {
		line.StrokeColor = muted
		if engine.IsMajorTick(n + 1) {
			line.StrokeColor = fg
		}
	}
	for n, label := range r.numerals {
		label.Color = muted
		if engine.IsMajorTick(n + 1) {
			label.Color = fg
		}
	}
}

func placeCircle(c *canvas.Circle, center fyne.Position, radius float32) {
	c.Position1 = center.SubtractXY(radius, radius)
	c.Position2 = center.AddXY(radius, radius)
}

func placeHand(l *canvas.Line, center, tip fyne.Position, width float64) {
	l.Position1 = center
	l.Position2 = tip
	l.StrokeWidth = float32(width)
}
