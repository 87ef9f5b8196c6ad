package engine

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		in    int
		want  int
	}{
		{"Minutes overflow is pinned, not wrapped", FieldMinutes, 75, 59},
		{"Minutes negative", FieldMinutes, -3, 0},
		{"Minutes in range", FieldMinutes, 42, 42},
		{"Hours overflow", FieldHours, 24, 23},
		{"Hours negative", FieldHours, -1, 0},
		{"Hours upper bound", FieldHours, 23, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.field, tt.in))
		})
	}
}

func TestTimeValue_With_KeepsOtherFields(t *testing.T) {
	tv := TimeValue{Hours: 9, Minutes: 15, Seconds: 42}

	got := tv.With(FieldHours, 5)
	assert.Equal(t, TimeValue{Hours: 5, Minutes: 15, Seconds: 42}, got)

	got = tv.With(FieldMinutes, 75)
	assert.Equal(t, TimeValue{Hours: 9, Minutes: 59, Seconds: 42}, got)

	assert.Equal(t, TimeValue{Hours: 9, Minutes: 15, Seconds: 42}, tv, "receiver must not be mutated")
}

func TestFromTime_And_Sample(t *testing.T) {
	at := time.Date(2025, 6, 15, 22, 4, 58, 999, time.Local)
	assert.Equal(t, TimeValue{Hours: 22, Minutes: 4, Seconds: 58}, FromTime(at))

	fc := clockwork.NewFakeClockAt(at)
	assert.Equal(t, TimeValue{Hours: 22, Minutes: 4, Seconds: 58}, Sample(fc))
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "LIVE", ModeLive.String())
	assert.Equal(t, "MANUAL", ModeManual.String())

	assert.Equal(t, LanguageZH, LanguageEN.Toggle())
	assert.Equal(t, LanguageEN, LanguageZH.Toggle())
	assert.Equal(t, "en", LanguageEN.Code())
	assert.Equal(t, "zh", LanguageZH.Code())

	assert.Equal(t, "hours", FieldHours.String())
	assert.Equal(t, "minutes", FieldMinutes.String())
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	assert.True(t, p.ShowNumerals)
	assert.True(t, p.Use24Hour)
	assert.Equal(t, LanguageEN, p.Language)
}

func TestTimeValue_String(t *testing.T) {
	assert.Equal(t, "03:03:03", TimeValue{3, 3, 3}.String())
}
