package recurrence

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorValidate(t *testing.T) {
	tests := []struct {
		name     string
		selector WeekdaySelector
		wantErr  bool
	}{
		{name: "explicit set", selector: OnWeekdays(Monday, Friday)},
		{name: "extra option", selector: OnEvery(OptionWeekendDay)},
		{name: "empty", selector: WeekdaySelector{}, wantErr: true},
		{name: "both forms", selector: WeekdaySelector{days: []Weekday{Monday}, extra: mo.Some(OptionDay)}, wantErr: true},
		{name: "invalid weekday", selector: OnWeekdays(Weekday(9)), wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.selector.Validate()
			if tc.wantErr {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "DaysOfWeek", domainErr.Field)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSelectorExplicitSortsAscending(t *testing.T) {
	sel := OnWeekdays(Friday, Monday, Wednesday)
	days, ok := sel.Explicit()
	require.True(t, ok)
	assert.Equal(t, []Weekday{Monday, Wednesday, Friday}, days)
	assert.Equal(t, "Monday Wednesday Friday", sel.token())

	_, hasExtra := sel.Extra()
	assert.False(t, hasExtra)
}

func TestSelectorExtraToken(t *testing.T) {
	sel := OnEvery(OptionWeekendDay)
	opt, ok := sel.Extra()
	require.True(t, ok)
	assert.Equal(t, OptionWeekendDay, opt)
	assert.Equal(t, "WeekendDay", sel.token())

	_, hasDays := sel.Explicit()
	assert.False(t, hasDays)
}

func TestSelectorImmutableAgainstCallerSlice(t *testing.T) {
	input := []Weekday{Wednesday, Monday}
	sel := OnWeekdays(input...)
	input[0] = Sunday
	assert.Equal(t, "Monday Wednesday", sel.token())
}
