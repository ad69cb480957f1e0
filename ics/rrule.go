package ics

import (
	"fmt"

	"github.com/teambition/rrule-go"

	"github.com/avld/libewscal/recurrence"
)

// rruleWeekdays maps ISO weekday ordinals (Monday = 1) to rrule weekdays.
var rruleWeekdays = [...]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

var workWeek = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
var weekend = []rrule.Weekday{rrule.SA, rrule.SU}

// Rule converts a recurrence rule to rrule options. The rule is validated
// first; conversion itself cannot fail on a valid rule.
func (c *Converter) Rule(rec recurrence.Recurrence) (*rrule.ROption, error) {
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recurrence: %w", err)
	}

	opt := &rrule.ROption{}
	if err := applyPattern(opt, rec.Pattern); err != nil {
		return nil, err
	}
	applyRange(opt, rec.Range)

	c.logger.Debug("converted recurrence to rrule",
		"pattern", rec.Pattern.ElementName(),
		"range", rec.Range.ElementName(),
		"rrule", opt.String())
	return opt, nil
}

// RuleString converts a recurrence rule to its RRULE property value, e.g.
// "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE".
func (c *Converter) RuleString(rec recurrence.Recurrence) (string, error) {
	opt, err := c.Rule(rec)
	if err != nil {
		return "", err
	}
	return opt.String(), nil
}

func applyPattern(opt *rrule.ROption, pattern recurrence.Pattern) error {
	switch p := pattern.(type) {
	case recurrence.AbsoluteYearly:
		opt.Freq = rrule.YEARLY
		opt.Bymonth = []int{int(p.Month)}
		opt.Bymonthday = []int{p.DayOfMonth}
	case recurrence.RelativeYearly:
		opt.Freq = rrule.YEARLY
		opt.Bymonth = []int{int(p.Month)}
		applySelector(opt, p.Weekdays, p.WeekOrdinal)
	case recurrence.AbsoluteMonthly:
		opt.Freq = rrule.MONTHLY
		opt.Interval = p.Interval
		opt.Bymonthday = []int{p.DayOfMonth}
	case recurrence.RelativeMonthly:
		opt.Freq = rrule.MONTHLY
		opt.Interval = p.Interval
		applySelector(opt, p.Weekdays, p.WeekOrdinal)
	case recurrence.Weekly:
		opt.Freq = rrule.WEEKLY
		opt.Interval = p.Interval
		for _, d := range p.Weekdays {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d-1])
		}
		first := p.FirstDayOfWeek
		if first == 0 {
			first = recurrence.DefaultFirstDayOfWeek
		}
		opt.Wkst = rruleWeekdays[first-1]
	case recurrence.Daily:
		opt.Freq = rrule.DAILY
		opt.Interval = p.Interval
	default:
		return fmt.Errorf("unsupported pattern type %T", pattern)
	}
	return nil
}

// applySelector maps a weekday selector plus week ordinal onto BYDAY,
// BYSETPOS and BYMONTHDAY. "Last" becomes set position -1.
func applySelector(opt *rrule.ROption, sel recurrence.WeekdaySelector, ordinal recurrence.WeekOrdinal) {
	pos := int(ordinal)
	if ordinal == recurrence.Last {
		pos = -1
	}

	if extra, ok := sel.Extra(); ok {
		switch extra {
		case recurrence.OptionDay:
			// Nth day of the month needs no weekday filter at all.
			opt.Bymonthday = []int{pos}
		case recurrence.OptionWeekday:
			opt.Byweekday = workWeek
			opt.Bysetpos = []int{pos}
		case recurrence.OptionWeekendDay:
			opt.Byweekday = weekend
			opt.Bysetpos = []int{pos}
		}
		return
	}

	days, _ := sel.Explicit()
	for _, d := range days {
		opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d-1])
	}
	opt.Bysetpos = []int{pos}
}

func applyRange(opt *rrule.ROption, rng recurrence.Range) {
	switch r := rng.(type) {
	case recurrence.NoEnd:
		opt.Dtstart = r.Start.Time()
	case recurrence.EndDate:
		opt.Dtstart = r.Start.Time()
		opt.Until = r.End.Time()
	case recurrence.Numbered:
		opt.Dtstart = r.Start.Time()
		opt.Count = r.Count
	}
}
