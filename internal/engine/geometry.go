package engine

import "math"

const (
	degreesPerHour         = 30.0 // 360 / 12
	degreesPerMinuteOfHour = 0.5  // 30 / 60
	degreesPerMinute       = 6.0  // 360 / 60
	degreesPerNumeral      = 30.0

	// DialPositions is the number of numeral and tick positions on the dial.
	DialPositions = 12
)

// HourAngle returns the hour hand rotation in degrees, clockwise from 12.
// The hand advances continuously through the hour: 10:30 sits halfway
// between 10 and 11.
func HourAngle(hours, minutes int) float64 {
	return float64(hours%12)*degreesPerHour + float64(minutes)*degreesPerMinuteOfHour
}

// MinuteAngle returns the minute hand rotation in degrees, clockwise from 12.
func MinuteAngle(minutes int) float64 {
	return float64(minutes) * degreesPerMinute
}

// NumeralAngle returns the dial angle of numeral n (1..12).
func NumeralAngle(n int) float64 {
	return float64(n) * degreesPerNumeral
}

// NumeralPosition returns the centre point of numeral n on a dial of the
// given radius. 0 degrees points up and angles grow clockwise, so 12 sits
// directly above the centre and 6 directly below.
func NumeralPosition(n int, radius, centerX, centerY float64) (x, y float64) {
	return PointOnDial(NumeralAngle(n), radius, centerX, centerY)
}

// PointOnDial converts a clock angle in degrees to canvas coordinates,
// with y growing downwards.
func PointOnDial(angle, radius, centerX, centerY float64) (x, y float64) {
	sin, cos := clockSinCos(angle)
	return centerX + radius*sin, centerY - radius*cos
}

// clockSinCos returns exact values on the quarter turns so that 12, 3, 6 and 9
// land on the axes without floating point residue.
func clockSinCos(angle float64) (sin, cos float64) {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	switch a {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(a * math.Pi / 180)
}

// TickKind classifies a dial position for rendering emphasis.
type TickKind int

const (
	TickMinor TickKind = iota
	TickMajor
)

func (k TickKind) String() string {
	if k == TickMajor {
		return "major"
	}
	return "minor"
}

// IsMajorTick reports whether position n (1..12) is one of 3, 6, 9 or 12.
func IsMajorTick(n int) bool {
	return n%3 == 0
}

// TickKindOf classifies position n.
func TickKindOf(n int) TickKind {
	if IsMajorTick(n) {
		return TickMajor
	}
	return TickMinor
}
