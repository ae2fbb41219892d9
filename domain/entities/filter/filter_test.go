package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularies(t *testing.T) {
	assert.Equal(t, []string{"chicago", "new york city", "washington"}, CityVocabulary())
	assert.Equal(t, []string{"all", "january", "february", "march", "april", "may", "june"}, MonthVocabulary())
	assert.Equal(t, []string{"all", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}, DayVocabulary())
}

func TestMonthMapsToCalendarMonth(t *testing.T) {
	month, err := ParseMonth("january")
	require.NoError(t, err)
	assert.Equal(t, time.January, month.TimeMonth())

	month, err = ParseMonth("june")
	require.NoError(t, err)
	assert.Equal(t, time.June, month.TimeMonth())
	assert.Equal(t, "June", month.Title())

	_, err = ParseMonth("july")
	assert.ErrorIs(t, err, ErrUnknownMonth)
}

func TestDayMapsToWeekday(t *testing.T) {
	expected := map[string]time.Weekday{
		"monday":    time.Monday,
		"friday":    time.Friday,
		"sunday":    time.Sunday,
		"wednesday": time.Wednesday,
	}
	for name, weekday := range expected {
		day, err := ParseDay(name)
		require.NoError(t, err)
		assert.Equal(t, weekday, day.Weekday())
	}

	_, err := ParseDay("funday")
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestSelectionMatches(t *testing.T) {
	friday := time.Date(2017, time.March, 3, 8, 0, 0, 0, time.UTC)
	sunday := time.Date(2017, time.March, 5, 8, 0, 0, 0, time.UTC)
	januaryFriday := time.Date(2017, time.January, 6, 8, 0, 0, 0, time.UTC)

	all := NewSelection(Chicago, MonthAll, DayAll)
	assert.True(t, all.Matches(friday))
	assert.True(t, all.Matches(sunday))

	marchFridays := NewSelection(Chicago, March, Friday)
	assert.True(t, marchFridays.Matches(friday))
	assert.False(t, marchFridays.Matches(sunday))
	assert.False(t, marchFridays.Matches(januaryFriday))
}

func TestParseCity(t *testing.T) {
	city, err := ParseCity("new york city")
	require.NoError(t, err)
	assert.Equal(t, NewYorkCity, city)

	_, err = ParseCity("boston")
	assert.ErrorIs(t, err, ErrUnknownCity)
}
