/*
Package recurrence models EWS calendar recurrence rules and renders them to
the wire schema.

A rule is one Pattern (what dates recur) plus one Range (when the series
starts and stops):

	pattern, err := recurrence.NewWeekly(2, recurrence.Monday, recurrence.Wednesday)
	if err != nil {
		log.Fatal(err)
	}
	rng, err := recurrence.NewNumbered(ewstime.NewDate(2024, time.January, 1), 5)
	if err != nil {
		log.Fatal(err)
	}
	rec, err := recurrence.New(pattern, rng)
	if err != nil {
		log.Fatal(err)
	}
	elem := rec.Encode() // *etree.Element, ready for a CreateItem request body

Relative patterns select weekdays through a WeekdaySelector, which holds
either an explicit weekday set or a Day/Weekday/WeekendDay option, never both:

	pattern, err := recurrence.NewRelativeYearly(
		recurrence.March,
		recurrence.Last,
		recurrence.OnEvery(recurrence.OptionWeekendDay),
	)

# Validation

Constructors reject values outside the EWS domains with a *DomainError
carrying the field, the rejected value and the allowed range. Values built
field by field can be re-checked with Validate before encoding; Encode itself
never fails and must only be called on valid values.

# Occurrence exceptions

OccurrenceEdit records a moved occurrence and renders under a wire tag chosen
by its role (FirstOccurrence, LastOccurrence, or Occurrence inside
ModifiedOccurrences). OccurrenceDeletion records a removed occurrence by its
original date.

Expanding a rule into concrete occurrence dates is out of scope; see the ics
package for conversion to iCalendar RRULE form.
*/
package recurrence
