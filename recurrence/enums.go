package recurrence

import "fmt"

// Weekday is an ISO 8601 weekday, Monday = 1 through Sunday = 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// NewWeekday creates a Weekday from its ISO ordinal.
func NewWeekday(n int) (Weekday, error) {
	if err := checkRange("Weekday", n, 1, 7); err != nil {
		return 0, err
	}
	return Weekday(n), nil
}

func (d Weekday) valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the wire token for the weekday, e.g. "Monday".
func (d Weekday) String() string {
	if !d.valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d-1]
}

// Month is a month of the year, January = 1 through December = 12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NewMonth creates a Month from its ordinal.
func NewMonth(n int) (Month, error) {
	if err := checkRange("Month", n, 1, 12); err != nil {
		return 0, err
	}
	return Month(n), nil
}

func (m Month) valid() bool {
	return m >= January && m <= December
}

// String returns the wire token for the month, e.g. "January".
func (m Month) String() string {
	if !m.valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// WeekOrdinal selects which instance of a weekday set within a month a
// relative pattern targets. Last always means the final instance, whether the
// month has four or five of them.
type WeekOrdinal int

const (
	First WeekOrdinal = iota + 1
	Second
	Third
	Fourth
	Last
)

var weekOrdinalNames = [...]string{"First", "Second", "Third", "Fourth", "Last"}

// NewWeekOrdinal creates a WeekOrdinal from its ordinal.
func NewWeekOrdinal(n int) (WeekOrdinal, error) {
	if err := checkRange("WeekOrdinal", n, 1, 5); err != nil {
		return 0, err
	}
	return WeekOrdinal(n), nil
}

func (w WeekOrdinal) valid() bool {
	return w >= First && w <= Last
}

// String returns the wire token for the ordinal, "First" through "Last".
func (w WeekOrdinal) String() string {
	if !w.valid() {
		return fmt.Sprintf("WeekOrdinal(%d)", int(w))
	}
	return weekOrdinalNames[w-1]
}

// ExtraWeekdayOption selects "any day", "any non-weekend day" or "any weekend
// day" in place of an explicit weekday set. E.g. "first WeekendDay in March".
type ExtraWeekdayOption int

const (
	OptionDay ExtraWeekdayOption = iota + 1
	OptionWeekday
	OptionWeekendDay
)

var extraWeekdayNames = [...]string{"Day", "Weekday", "WeekendDay"}

func (o ExtraWeekdayOption) valid() bool {
	return o >= OptionDay && o <= OptionWeekendDay
}

// String returns the wire token for the option: "Day", "Weekday" or "WeekendDay".
func (o ExtraWeekdayOption) String() string {
	if !o.valid() {
		return fmt.Sprintf("ExtraWeekdayOption(%d)", int(o))
	}
	return extraWeekdayNames[o-1]
}
