package ics

import (
	"bytes"
	"fmt"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/avld/libewscal/recurrence"
)

// Event builds a VEVENT carrying the rule as an RRULE property, with a
// generated UID and DTSTART taken from the rule's range.
func (c *Converter) Event(rec recurrence.Recurrence, summary string) (*ical.Event, error) {
	opt, err := c.Rule(rec)
	if err != nil {
		return nil, err
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.New().String())
	if summary != "" {
		event.Props.SetText(ical.PropSummary, summary)
	}
	event.Props.SetDateTime(ical.PropDateTimeStart, opt.Dtstart)
	event.Props.SetText(ical.PropRecurrenceRule, opt.String())

	c.logger.Debug("built event from recurrence", "uid", event.Props.Get(ical.PropUID).Value)
	return event, nil
}

// EncodeCalendar wraps an event in a VCALENDAR and encodes it to iCalendar
// format bytes.
func (c *Converter) EncodeCalendar(event *ical.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, c.prodID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	enc := ical.NewEncoder(&buf)
	if err := enc.Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}
