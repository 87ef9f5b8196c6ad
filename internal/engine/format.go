package engine

import "fmt"

const (
	SuffixAM = "AM"
	SuffixPM = "PM"
)

// DigitalReadout holds the zero-padded fields of the digital display.
// Suffix is empty in 24-hour mode.
type DigitalReadout struct {
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
	Suffix  string `json:"suffix,omitempty"`
}

// FormatDigital formats a time for the digital readout.
// In 12-hour mode midnight and noon both display as "12", never "00".
func FormatDigital(hours, minutes, seconds int, use24Hour bool) DigitalReadout {
	h := hours
	suffix := ""
	if !use24Hour {
		suffix = SuffixAM
		if hours >= 12 {
			suffix = SuffixPM
		}
		h = hours % 12
		if h == 0 {
			h = 12
		}
	}
	return DigitalReadout{
		Hours:   pad2(h),
		Minutes: pad2(minutes),
		Seconds: pad2(seconds),
		Suffix:  suffix,
	}
}

// Format formats t according to prefs.
func (t TimeValue) Format(prefs DisplayPreferences) DigitalReadout {
	return FormatDigital(t.Hours, t.Minutes, t.Seconds, prefs.Use24Hour)
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}
