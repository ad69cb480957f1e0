package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeekday(t *testing.T) {
	tests := []struct {
		name    string
		ordinal int
		want    Weekday
		wantErr bool
	}{
		{name: "monday", ordinal: 1, want: Monday},
		{name: "sunday", ordinal: 7, want: Sunday},
		{name: "zero", ordinal: 0, wantErr: true},
		{name: "eight", ordinal: 8, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewWeekday(tc.ordinal)
			if tc.wantErr {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "Weekday", domainErr.Field)
				assert.Equal(t, tc.ordinal, domainErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWeekdayTokens(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Wednesday", Wednesday.String())
	assert.Equal(t, "Sunday", Sunday.String())
}

func TestNewMonth(t *testing.T) {
	m, err := NewMonth(3)
	require.NoError(t, err)
	assert.Equal(t, March, m)
	assert.Equal(t, "March", m.String())

	_, err = NewMonth(13)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Month", domainErr.Field)
}

func TestMonthTokens(t *testing.T) {
	assert.Equal(t, "January", January.String())
	assert.Equal(t, "December", December.String())
}

func TestNewWeekOrdinal(t *testing.T) {
	w, err := NewWeekOrdinal(5)
	require.NoError(t, err)
	assert.Equal(t, Last, w)
	assert.Equal(t, "Last", w.String())

	_, err = NewWeekOrdinal(6)
	assert.Error(t, err)
}

func TestExtraWeekdayOptionTokens(t *testing.T) {
	assert.Equal(t, "Day", OptionDay.String())
	assert.Equal(t, "Weekday", OptionWeekday.String())
	assert.Equal(t, "WeekendDay", OptionWeekendDay.String())
}

func TestDomainErrorMessage(t *testing.T) {
	err := &DomainError{Field: "Interval", Value: 100, Allowed: "in range 1 -> 99"}
	assert.Equal(t, `value 100 on field "Interval" must be in range 1 -> 99`, err.Error())
}
