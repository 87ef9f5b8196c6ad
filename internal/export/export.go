// Package export renders clock snapshots for the local feed server.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/engine"
)

// State is the JSON document served on /state.json.
type State struct {
	engine.Snapshot
	Digital     engine.DigitalReadout `json:"digital"`
	HourAngle   float64               `json:"hour_angle"`
	MinuteAngle float64               `json:"minute_angle"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// NewState derives the served document from a snapshot.
func NewState(s engine.Snapshot, now time.Time) State {
	return State{
		Snapshot:    s,
		Digital:     s.Readout(),
		HourAngle:   engine.HourAngle(s.Time.Hours, s.Time.Minutes),
		MinuteAngle: engine.MinuteAngle(s.Time.Minutes),
		GeneratedAt: now.UTC(),
	}
}

// JSON encodes the state document.
func JSON(s engine.Snapshot, now time.Time) ([]byte, error) {
	data, err := json.Marshal(NewState(s, now))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrJSONEncode, err)
	}
	return data, nil
}

// ICal encodes the displayed time as a one-minute event on the day of now,
// with a display alarm at its start. Learners use it to carry a practised
// time into their calendar.
func ICal(s engine.Snapshot, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	loc := now.Location()
	start := time.Date(now.Year(), now.Month(), now.Day(), s.Time.Hours, s.Time.Minutes, 0, 0, loc)
	readout := s.Readout()
	summary := fmt.Sprintf(config.FormatEvtSummary, readout.Hours, readout.Minutes, readout.Suffix)
	if readout.Suffix == "" {
		summary = readout.Hours + config.DigitalSeparator + readout.Minutes
	}

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID,
		fmt.Sprintf(config.FormatUID, s.Time.Hours, s.Time.Minutes, start.Format(config.DateFormatUID), config.ICalDomain))
	event.Props.SetText(config.PropSummary, summary)

	stamp := ical.NewProp(config.PropDTStamp)
	stamp.SetDateTime(now.UTC())
	event.Props.Set(stamp)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDateTime(start)
	event.Props.Set(dtStart)

	duration := ical.NewProp(config.PropDuration)
	duration.SetDuration(config.ExportEventSpan)
	event.Props.Set(duration)

	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, summary)
	// Set manually to avoid a VALUE=TEXT parameter.
	trigger := ical.NewProp(config.PropTrigger)
	trigger.Value = config.ICalTrigger
	alarm.Props.Set(trigger)
	event.Children = append(event.Children, alarm)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}
