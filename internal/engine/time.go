package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/analog-clock/internal/config"
)

// TimeValue is the time shown on the dial.
// Hours are 0-23, Minutes and Seconds 0-59.
type TimeValue struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// FromTime samples the wall-clock fields of t.
func FromTime(t time.Time) TimeValue {
	h, m, s := t.Clock()
	return TimeValue{Hours: h, Minutes: m, Seconds: s}
}

func (t TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// Field identifies a user-editable component of a TimeValue.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
)

func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Max returns the largest valid value of the field.
func (f Field) Max() int {
	if f == FieldHours {
		return config.MaxHours
	}
	return config.MaxMinutes
}

// Clamp bounds value to the valid range of f.
// Out-of-range input is pinned to the nearest bound, never wrapped.
func Clamp(f Field, value int) int {
	if value < 0 {
		return 0
	}
	if limit := f.Max(); value > limit {
		return limit
	}
	return value
}

// With returns a copy of t with field f set to the clamped value.
// Seconds are left untouched.
func (t TimeValue) With(f Field, value int) TimeValue {
	v := Clamp(f, value)
	switch f {
	case FieldHours:
		t.Hours = v
	case FieldMinutes:
		t.Minutes = v
	}
	return t
}

// Mode selects the source of truth for the displayed time.
type Mode int

const (
	// ModeLive refreshes the time from the system clock once per tick.
	ModeLive Mode = iota
	// ModeManual freezes the time except for explicit edits.
	ModeManual
)

func (m Mode) String() string {
	if m == ModeManual {
		return "MANUAL"
	}
	return "LIVE"
}

// MarshalText renders the mode for JSON exports.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Language is one of the two supported UI locales.
type Language int

const (
	LanguageEN Language = iota
	LanguageZH
)

// Languages lists every supported locale in display order.
var Languages = []Language{LanguageEN, LanguageZH}

// Code returns the ISO 639-1 code used by the locale files.
func (l Language) Code() string {
	if l == LanguageZH {
		return "zh"
	}
	return config.DefaultLanguage
}

func (l Language) String() string { return l.Code() }

// MarshalText renders the language code for JSON exports.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.Code()), nil
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LanguageZH {
		return LanguageEN
	}
	return LanguageZH
}

// DisplayPreferences are independent presentation flags.
type DisplayPreferences struct {
	ShowNumerals bool     `json:"show_numerals"`
	Use24Hour    bool     `json:"use_24_hour"`
	Language     Language `json:"language"`
}

// DefaultPreferences returns the startup preferences.
func DefaultPreferences() DisplayPreferences {
	return DisplayPreferences{
		ShowNumerals: true,
		Use24Hour:    true,
		Language:     LanguageEN,
	}
}
