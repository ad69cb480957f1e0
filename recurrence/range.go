package recurrence

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/samber/mo"

	"github.com/avld/libewscal/ewstime"
	"github.com/avld/libewscal/internal/xml"
)

// Range is the "when the recurrence starts and stops" half of a rule. End
// ordering against start is not checked here; callers that need end >= start
// must enforce it themselves.
type Range interface {
	// ElementName is the wire tag the range serializes under.
	ElementName() string
	// Validate checks every field against its EWS value domain.
	Validate() error
	// Encode renders the range element with its children in schema order.
	Encode() *etree.Element
}

// NoEnd recurs forever from Start.
type NoEnd struct {
	Start ewstime.Date
}

// NewNoEnd creates a validated unbounded range.
func NewNoEnd(start ewstime.Date) (NoEnd, error) {
	r := NoEnd{Start: start}
	if err := r.Validate(); err != nil {
		return NoEnd{}, err
	}
	return r, nil
}

func (r NoEnd) ElementName() string { return "NoEndRecurrence" }

func (r NoEnd) Validate() error {
	if r.Start.IsZero() {
		return &DomainError{Field: "StartDate", Value: nil, Allowed: "a civil date"}
	}
	return nil
}

func (r NoEnd) Encode() *etree.Element {
	elem := xml.CreateTypesElement(r.ElementName())
	xml.AddTextElement(elem, "StartDate", r.Start.String())
	return elem
}

func (r NoEnd) String() string {
	return fmt.Sprintf("Starts on %s and never ends", r.Start)
}

// EndDate recurs from Start through End inclusive.
type EndDate struct {
	Start ewstime.Date
	End   ewstime.Date
}

// NewEndDate creates a validated end-dated range.
func NewEndDate(start, end ewstime.Date) (EndDate, error) {
	r := EndDate{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return EndDate{}, err
	}
	return r, nil
}

func (r EndDate) ElementName() string { return "EndDateRecurrence" }

func (r EndDate) Validate() error {
	if r.Start.IsZero() {
		return &DomainError{Field: "StartDate", Value: nil, Allowed: "a civil date"}
	}
	if r.End.IsZero() {
		return &DomainError{Field: "EndDate", Value: nil, Allowed: "a civil date"}
	}
	return nil
}

func (r EndDate) Encode() *etree.Element {
	elem := xml.CreateTypesElement(r.ElementName())
	xml.AddTextElement(elem, "StartDate", r.Start.String())
	xml.AddTextElement(elem, "EndDate", r.End.String())
	return elem
}

func (r EndDate) String() string {
	return fmt.Sprintf("Starts on %s and ends on %s", r.Start, r.End)
}

// Numbered recurs exactly Count times beginning at Start.
type Numbered struct {
	Start ewstime.Date
	Count int
}

// NewNumbered creates a validated occurrence-counted range.
func NewNumbered(start ewstime.Date, count int) (Numbered, error) {
	r := Numbered{Start: start, Count: count}
	if err := r.Validate(); err != nil {
		return Numbered{}, err
	}
	return r, nil
}

func (r Numbered) ElementName() string { return "NumberedRecurrence" }

func (r Numbered) Validate() error {
	if r.Start.IsZero() {
		return &DomainError{Field: "StartDate", Value: nil, Allowed: "a civil date"}
	}
	return checkRange("NumberOfOccurrences", r.Count, 1, 999)
}

func (r Numbered) Encode() *etree.Element {
	elem := xml.CreateTypesElement(r.ElementName())
	xml.AddTextElement(elem, "StartDate", r.Start.String())
	xml.AddTextElement(elem, "NumberOfOccurrences", strconv.Itoa(r.Count))
	return elem
}

func (r Numbered) String() string {
	return fmt.Sprintf("Starts on %s and occurs %d time(s)", r.Start, r.Count)
}

// BoundsFrom picks a Range from a start date plus an optional end date and an
// optional occurrence count: neither gives NoEnd, an end gives EndDate, a
// count gives Numbered. Supplying both is rejected.
func BoundsFrom(start ewstime.Date, end mo.Option[ewstime.Date], count mo.Option[int]) (Range, error) {
	if end.IsPresent() && count.IsPresent() {
		return nil, fmt.Errorf("unsupported start, end, count combination: end and count are mutually exclusive")
	}
	if e, ok := end.Get(); ok {
		return NewEndDate(start, e)
	}
	if n, ok := count.Get(); ok {
		return NewNumbered(start, n)
	}
	return NewNoEnd(start)
}
