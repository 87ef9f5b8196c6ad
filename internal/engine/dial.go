package engine

// DialLayout holds the proportions of the dial on a square canvas.
// The default layout uses a 200x200 virtual canvas centred on (100, 100).
type DialLayout struct {
	Size    float64
	CenterX float64
	CenterY float64

	RimRadius   float64
	RimWidth    float64
	HubRadius   float64
	TickOuter   float64
	MajorLength float64
	MajorWidth  float64
	MinorLength float64
	MinorWidth  float64

	NumeralRadius float64

	HourHandLength   float64
	HourHandWidth    float64
	MinuteHandLength float64
	MinuteHandWidth  float64
}

// DefaultDial returns the reference 200x200 layout.
func DefaultDial() DialLayout {
	return DialLayout{
		Size:    200,
		CenterX: 100,
		CenterY: 100,

		RimRadius:   95,
		RimWidth:    4,
		HubRadius:   6,
		TickOuter:   90,
		MajorLength: 15,
		MajorWidth:  6,
		MinorLength: 8,
		MinorWidth:  4,

		// Clear of the long ticks, which end at radius 75.
		NumeralRadius: 60,

		HourHandLength:   50,
		HourHandWidth:    6,
		MinuteHandLength: 70,
		MinuteHandWidth:  4,
	}
}

// Scale returns a copy of the layout fitted to a square of the given side.
func (d DialLayout) Scale(size float64) DialLayout {
	if d.Size == 0 || size == d.Size {
		return d
	}
	k := size / d.Size
	return DialLayout{
		Size:    size,
		CenterX: d.CenterX * k,
		CenterY: d.CenterY * k,

		RimRadius:   d.RimRadius * k,
		RimWidth:    d.RimWidth * k,
		HubRadius:   d.HubRadius * k,
		TickOuter:   d.TickOuter * k,
		MajorLength: d.MajorLength * k,
		MajorWidth:  d.MajorWidth * k,
		MinorLength: d.MinorLength * k,
		MinorWidth:  d.MinorWidth * k,

		NumeralRadius: d.NumeralRadius * k,

		HourHandLength:   d.HourHandLength * k,
		HourHandWidth:    d.HourHandWidth * k,
		MinuteHandLength: d.MinuteHandLength * k,
		MinuteHandWidth:  d.MinuteHandWidth * k,
	}
}

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// Hand is a hand drawn from the dial centre to Tip.
type Hand struct {
	Angle float64
	Tip   Point
	Width float64
}

// Tick is a dial mark drawn between Outer and Inner.
type Tick struct {
	Position int
	Kind     TickKind
	Outer    Point
	Inner    Point
	Width    float64
}

// Numeral is a dial label centred on At.
type Numeral struct {
	Value int
	Kind  TickKind
	At    Point
}

// Geometry is everything needed to draw one frame of the dial.
type Geometry struct {
	Layout   DialLayout
	Hour     Hand
	Minute   Hand
	Ticks    []Tick
	Numerals []Numeral
}

// DialGeometry derives the drawing of t on the given layout.
// Numerals are computed regardless of whether the caller shows them.
func DialGeometry(t TimeValue, d DialLayout) Geometry {
	g := Geometry{
		Layout:   d,
		Hour:     hand(HourAngle(t.Hours, t.Minutes), d.HourHandLength, d.HourHandWidth, d),
		Minute:   hand(MinuteAngle(t.Minutes), d.MinuteHandLength, d.MinuteHandWidth, d),
		Ticks:    make([]Tick, 0, DialPositions),
		Numerals: make([]Numeral, 0, DialPositions),
	}

	for n := 1; n <= DialPositions; n++ {
		kind := TickKindOf(n)
		length, width := d.MinorLength, d.MinorWidth
		if kind == TickMajor {
			length, width = d.MajorLength, d.MajorWidth
		}
		angle := NumeralAngle(n)
		ox, oy := PointOnDial(angle, d.TickOuter, d.CenterX, d.CenterY)
		ix, iy := PointOnDial(angle, d.TickOuter-length, d.CenterX, d.CenterY)
		g.Ticks = append(g.Ticks, Tick{
			Position: n,
			Kind:     kind,
			Outer:    Point{ox, oy},
			Inner:    Point{ix, iy},
			Width:    width,
		})

		nx, ny := NumeralPosition(n, d.NumeralRadius, d.CenterX, d.CenterY)
		g.Numerals = append(g.Numerals, Numeral{Value: n, Kind: kind, At: Point{nx, ny}})
	}
	return g
}

func hand(angle, length, width float64, d DialLayout) Hand {
	x, y := PointOnDial(angle, length, d.CenterX, d.CenterY)
	return Hand{Angle: angle, Tip: Point{x, y}, Width: width}
}
