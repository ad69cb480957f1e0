package recurrence

import (
	"sort"
	"strings"

	"github.com/samber/mo"
)

// WeekdaySelector names the days a relative pattern fires on: either an
// explicit non-empty set of weekdays, or a single ExtraWeekdayOption. The two
// forms are mutually exclusive; the constructors keep mixed states
// unrepresentable, and Validate re-checks for zero values built field by
// field.
type WeekdaySelector struct {
	days  []Weekday
	extra mo.Option[ExtraWeekdayOption]
}

// OnWeekdays selects an explicit set of weekdays.
func OnWeekdays(days ...Weekday) WeekdaySelector {
	copied := make([]Weekday, len(days))
	copy(copied, days)
	return WeekdaySelector{days: copied}
}

// OnEvery selects one of the Day / Weekday / WeekendDay options.
func OnEvery(opt ExtraWeekdayOption) WeekdaySelector {
	return WeekdaySelector{extra: mo.Some(opt)}
}

// Explicit returns the explicit weekday set, sorted ascending by ordinal, and
// whether the selector holds one.
func (s WeekdaySelector) Explicit() ([]Weekday, bool) {
	if len(s.days) == 0 {
		return nil, false
	}
	sorted := make([]Weekday, len(s.days))
	copy(sorted, s.days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted, true
}

// Extra returns the ExtraWeekdayOption and whether the selector holds one.
func (s WeekdaySelector) Extra() (ExtraWeekdayOption, bool) {
	return s.extra.Get()
}

// Validate checks that exactly one of the two forms is present and that every
// value is in its domain.
func (s WeekdaySelector) Validate() error {
	if len(s.days) == 0 && s.extra.IsAbsent() {
		return &DomainError{Field: "DaysOfWeek", Value: nil, Allowed: "a non-empty weekday set or an extra weekday option"}
	}
	if len(s.days) > 0 && s.extra.IsPresent() {
		return &DomainError{Field: "DaysOfWeek", Value: s.days, Allowed: "either a weekday set or an extra weekday option, not both"}
	}
	for _, d := range s.days {
		if !d.valid() {
			return &DomainError{Field: "DaysOfWeek", Value: int(d), Allowed: "in range 1 -> 7"}
		}
	}
	if opt, ok := s.extra.Get(); ok && !opt.valid() {
		return &DomainError{Field: "DaysOfWeek", Value: int(opt), Allowed: "one of Day, Weekday, WeekendDay"}
	}
	return nil
}

// token renders the selector for a DaysOfWeek element: the option token, or
// the weekday tokens sorted ascending and space-joined.
func (s WeekdaySelector) token() string {
	if opt, ok := s.extra.Get(); ok {
		return opt.String()
	}
	days, _ := s.Explicit()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, " ")
}

// String returns the selector's days for display, comma-separated.
func (s WeekdaySelector) String() string {
	if opt, ok := s.extra.Get(); ok {
		return opt.String()
	}
	days, _ := s.Explicit()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

// weekdayListToken renders a plain weekday list (weekly patterns take no
// ExtraWeekdayOption), sorted ascending and space-joined.
func weekdayListToken(days []Weekday) string {
	sorted := make([]Weekday, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	names := make([]string, len(sorted))
	for i, d := range sorted {
		names[i] = d.String()
	}
	return strings.Join(names, " ")
}
