package engine

// Snapshot is an immutable view of the clock state handed to collaborators.
type Snapshot struct {
	Time  TimeValue          `json:"time"`
	Mode  Mode               `json:"mode"`
	Prefs DisplayPreferences `json:"preferences"`
}

// Readout formats the snapshot time with its own preferences.
func (s Snapshot) Readout() DigitalReadout {
	return s.Time.Format(s.Prefs)
}

