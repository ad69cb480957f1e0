package recurrence

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/avld/libewscal/internal/xml"
)

// DefaultFirstDayOfWeek is the first-day-of-week policy applied when a weekly
// pattern leaves the field unset. EWS requires the element; Outlook defaults
// it to Monday.
const DefaultFirstDayOfWeek = Monday

// Pattern is the "what dates recur" half of a recurrence rule. Implementations
// are immutable value types; Encode assumes Validate has passed.
type Pattern interface {
	// ElementName is the wire tag the pattern serializes under.
	ElementName() string
	// Validate checks every field against its EWS value domain.
	Validate() error
	// Encode renders the pattern element with its children in schema order.
	Encode() *etree.Element
}

// AbsoluteYearly recurs on a fixed day of a fixed month every year, e.g.
// "May 17". If the month has fewer days than DayOfMonth, the server assumes
// the last day of the month; no clamping happens here.
type AbsoluteYearly struct {
	Month      Month
	DayOfMonth int
}

// NewAbsoluteYearly creates a validated yearly pattern.
func NewAbsoluteYearly(month Month, dayOfMonth int) (AbsoluteYearly, error) {
	p := AbsoluteYearly{Month: month, DayOfMonth: dayOfMonth}
	if err := p.Validate(); err != nil {
		return AbsoluteYearly{}, err
	}
	return p, nil
}

func (p AbsoluteYearly) ElementName() string { return "AbsoluteYearlyRecurrence" }

func (p AbsoluteYearly) Validate() error {
	if !p.Month.valid() {
		return checkRange("Month", int(p.Month), 1, 12)
	}
	return checkRange("DayOfMonth", p.DayOfMonth, 1, 31)
}

func (p AbsoluteYearly) Encode() *etree.Element {
	elem := xml.CreateTypesElement(p.ElementName())
	xml.AddTextElement(elem, "DayOfMonth", strconv.Itoa(p.DayOfMonth))
	xml.AddTextElement(elem, "Month", p.Month.String())
	return elem
}

func (p AbsoluteYearly) String() string {
	return fmt.Sprintf("Occurs on day %d of %s", p.DayOfMonth, p.Month)
}

// RelativeYearly recurs on a weekday selection within a given week of a fixed
// month every year, e.g. "the last WeekendDay of March".
type RelativeYearly struct {
	Month       Month
	WeekOrdinal WeekOrdinal
	Weekdays    WeekdaySelector
}

// NewRelativeYearly creates a validated relative yearly pattern.
func NewRelativeYearly(month Month, ordinal WeekOrdinal, weekdays WeekdaySelector) (RelativeYearly, error) {
	p := RelativeYearly{Month: month, WeekOrdinal: ordinal, Weekdays: weekdays}
	if err := p.Validate(); err != nil {
		return RelativeYearly{}, err
	}
	return p, nil
}

func (p RelativeYearly) ElementName() string { return "RelativeYearlyRecurrence" }

func (p RelativeYearly) Validate() error {
	if !p.Month.valid() {
		return checkRange("Month", int(p.Month), 1, 12)
	}
	if !p.WeekOrdinal.valid() {
		return checkRange("DayOfWeekIndex", int(p.WeekOrdinal), 1, 5)
	}
	return p.Weekdays.Validate()
}

func (p RelativeYearly) Encode() *etree.Element {
	elem := xml.CreateTypesElement(p.ElementName())
	xml.AddTextElement(elem, "DaysOfWeek", p.Weekdays.token())
	xml.AddTextElement(elem, "DayOfWeekIndex", p.WeekOrdinal.String())
	xml.AddTextElement(elem, "Month", p.Month.String())
	return elem
}

func (p RelativeYearly) String() string {
	return fmt.Sprintf("Occurs on weekdays %s in the %s week of %s", p.Weekdays, p.WeekOrdinal, p.Month)
}

// AbsoluteMonthly recurs on a fixed day of the month every Interval months.
type AbsoluteMonthly struct {
	Interval   int
	DayOfMonth int
}

// NewAbsoluteMonthly creates a validated monthly pattern.
func NewAbsoluteMonthly(interval, dayOfMonth int) (AbsoluteMonthly, error) {
	p := AbsoluteMonthly{Interval: interval, DayOfMonth: dayOfMonth}
	if err := p.Validate(); err != nil {
		return AbsoluteMonthly{}, err
	}
	return p, nil
}

func (p AbsoluteMonthly) ElementName() string { return "AbsoluteMonthlyRecurrence" }

func (p AbsoluteMonthly) Validate() error {
	if err := checkRange("Interval", p.Interval, 1, 99); err != nil {
		return err
	}
	return checkRange("DayOfMonth", p.DayOfMonth, 1, 31)
}

func (p AbsoluteMonthly) Encode() *etree.Element {
	elem := xml.CreateTypesElement(p.ElementName())
	xml.AddTextElement(elem, "Interval", strconv.Itoa(p.Interval))
	xml.AddTextElement(elem, "DayOfMonth", strconv.Itoa(p.DayOfMonth))
	return elem
}

func (p AbsoluteMonthly) String() string {
	return fmt.Sprintf("Occurs on day %d of every %d month(s)", p.DayOfMonth, p.Interval)
}

// RelativeMonthly recurs on a weekday selection within a given week of the
// month, every Interval months.
type RelativeMonthly struct {
	Interval    int
	WeekOrdinal WeekOrdinal
	Weekdays    WeekdaySelector
}

// NewRelativeMonthly creates a validated relative monthly pattern.
func NewRelativeMonthly(interval int, ordinal WeekOrdinal, weekdays WeekdaySelector) (RelativeMonthly, error) {
	p := RelativeMonthly{Interval: interval, WeekOrdinal: ordinal, Weekdays: weekdays}
	if err := p.Validate(); err != nil {
		return RelativeMonthly{}, err
	}
	return p, nil
}

func (p RelativeMonthly) ElementName() string { return "RelativeMonthlyRecurrence" }

func (p RelativeMonthly) Validate() error {
	if err := checkRange("Interval", p.Interval, 1, 99); err != nil {
		return err
	}
	if !p.WeekOrdinal.valid() {
		return checkRange("DayOfWeekIndex", int(p.WeekOrdinal), 1, 5)
	}
	return p.Weekdays.Validate()
}

func (p RelativeMonthly) Encode() *etree.Element {
	elem := xml.CreateTypesElement(p.ElementName())
	xml.AddTextElement(elem, "Interval", strconv.Itoa(p.Interval))
	xml.AddTextElement(elem, "DaysOfWeek", p.Weekdays.token())
	xml.AddTextElement(elem, "DayOfWeekIndex", p.WeekOrdinal.String())
	return elem
}

func (p RelativeMonthly) String() string {
	return fmt.Sprintf("Occurs on weekdays %s in the %s week of every %d month(s)", p.Weekdays, p.WeekOrdinal, p.Interval)
}

// Weekly recurs on an explicit weekday set every Interval weeks. Weekly
// patterns take no ExtraWeekdayOption. FirstDayOfWeek falls back to
// DefaultFirstDayOfWeek when left unset.
type Weekly struct {
	Interval       int
	Weekdays       []Weekday
	FirstDayOfWeek Weekday
}

// NewWeekly creates a validated weekly pattern with the default first day of
// week.
func NewWeekly(interval int, weekdays ...Weekday) (Weekly, error) {
	p := Weekly{Interval: interval, Weekdays: weekdays}
	if err := p.Validate(); err != nil {
		return Weekly{}, err
	}
	return p, nil
}

func (p Weekly) ElementName() string { return "WeeklyRecurrence" }

func (p Weekly) Validate() error {
	if err := checkRange("Interval", p.Interval, 1, 99); err != nil {
		return err
	}
	if len(p.Weekdays) == 0 {
		return &DomainError{Field: "DaysOfWeek", Value: nil, Allowed: "a non-empty weekday set"}
	}
	for _, d := range p.Weekdays {
		if !d.valid() {
			return &DomainError{Field: "DaysOfWeek", Value: int(d), Allowed: "in range 1 -> 7"}
		}
	}
	if p.FirstDayOfWeek != 0 && !p.FirstDayOfWeek.valid() {
		return &DomainError{Field: "FirstDayOfWeek", Value: int(p.FirstDayOfWeek), Allowed: "in range 1 -> 7"}
	}
	return nil
}

// firstDay resolves the first-day-of-week policy for rendering.
func (p Weekly) firstDay() Weekday {
	if p.FirstDayOfWeek == 0 {
		return DefaultFirstDayOfWeek
	}
	return p.FirstDayOfWeek
}

func (p Weekly) Encode() *etree.Element {
	elem := xml.CreateTypesElement(p.ElementName())
	xml.AddTextElement(elem, "Interval", strconv.Itoa(p.Interval))
	xml.AddTextElement(elem, "DaysOfWeek", weekdayListToken(p.Weekdays))
	xml.AddTextElement(elem, "FirstDayOfWeek", p.firstDay().String())
	return elem
}

func (p Weekly) String() string {
	return fmt.Sprintf("Occurs on weekdays %s of every %d week(s) where the first day of the week is %s",
		weekdayListToken(p.Weekdays), p.Interval, p.firstDay())
}

// Daily recurs every Interval days.
type Daily struct {
	Interval int
}

// NewDaily creates a validated daily pattern.
func NewDaily(interval int) (Daily, error) {
	p := Daily{Interval: interval}
	if err := p.Validate(); err != nil {
		return Daily{}, err
	}
	return p, nil
}

func (p Daily) ElementName() string { return "DailyRecurrence" }

func (p Daily) Validate() error {
	return checkRange("Interval", p.Interval, 1, 999)
}

func (p Daily) Encode() *etree.Element {
	elem := xml.CreateTypesElement(p.ElementName())
	xml.AddTextElement(elem, "Interval", strconv.Itoa(p.Interval))
	return elem
}

func (p Daily) String() string {
	return fmt.Sprintf("Occurs every %d day(s)", p.Interval)
}
