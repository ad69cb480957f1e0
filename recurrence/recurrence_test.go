package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avld/libewscal/internal/xml"
)

func TestNewRecurrence(t *testing.T) {
	pattern, err := NewDaily(3)
	require.NoError(t, err)
	rng, err := NewNoEnd(date(2024, time.January, 1))
	require.NoError(t, err)

	rec, err := New(pattern, rng)
	require.NoError(t, err)
	assert.Equal(t, "Pattern: Occurs every 3 day(s), Range: Starts on 2024-01-01 and never ends", rec.String())
}

func TestNewRecurrenceRejectsMissingHalves(t *testing.T) {
	_, err := New(nil, NoEnd{Start: date(2024, time.January, 1)})
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Pattern", domainErr.Field)

	_, err = New(Daily{Interval: 1}, nil)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Range", domainErr.Field)
}

func TestNewRecurrenceRejectsInvalidHalves(t *testing.T) {
	_, err := New(Daily{Interval: 0}, NoEnd{Start: date(2024, time.January, 1)})
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Interval", domainErr.Field)
}

func TestRecurrenceEncodeSiblingOrder(t *testing.T) {
	rec := Recurrence{
		Pattern: Weekly{Interval: 2, Weekdays: []Weekday{Wednesday, Monday}},
		Range:   Numbered{Start: date(2024, time.January, 1), Count: 5},
	}
	elem := rec.Encode()
	assert.Equal(t, "Recurrence", elem.Tag)
	assert.Equal(t, "t", elem.Space)

	children := elem.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, "WeeklyRecurrence", children[0].Tag)
	assert.Equal(t, "NumberedRecurrence", children[1].Tag)

	want := `<t:Recurrence>` +
		`<t:WeeklyRecurrence><t:Interval>2</t:Interval><t:DaysOfWeek>Monday Wednesday</t:DaysOfWeek><t:FirstDayOfWeek>Monday</t:FirstDayOfWeek></t:WeeklyRecurrence>` +
		`<t:NumberedRecurrence><t:StartDate>2024-01-01</t:StartDate><t:NumberOfOccurrences>5</t:NumberOfOccurrences></t:NumberedRecurrence>` +
		`</t:Recurrence>`
	assert.Equal(t, want, xml.NormalizeXML(xml.ElementString(elem)))
}

func TestRecurrenceEncodeIsIdempotent(t *testing.T) {
	rec := Recurrence{
		Pattern: RelativeMonthly{Interval: 1, WeekOrdinal: Last, Weekdays: OnWeekdays(Sunday, Saturday)},
		Range:   EndDate{Start: date(2024, time.January, 1), End: date(2025, time.January, 1)},
	}
	first := xml.ElementString(rec.Encode())
	second := xml.ElementString(rec.Encode())
	assert.Equal(t, first, second)
}

func TestRecurrenceDocumentDeclaresNamespaces(t *testing.T) {
	rec := Recurrence{
		Pattern: Daily{Interval: 1},
		Range:   NoEnd{Start: date(2024, time.January, 1)},
	}
	doc := rec.Document()
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, xml.Types, root.SelectAttrValue("xmlns:t", ""))
}
