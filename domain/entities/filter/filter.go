package filter

import (
	"fmt"
	"strings"
	"time"
)

const AllStr = "all"

// City one of the cities with trips data available
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities returns the known cities in the order they are offered to the user
func Cities() []City {
	return []City{Chicago, NewYorkCity, Washington}
}

// Month month filter. The zero value is MonthAll.
// Only January to June are offered because the datasets cover the first half of the year.
type Month int

const (
	MonthAll Month = iota
	January
	February
	March
	April
	May
	June
)

// Day day of week filter. The zero value is DayAll.
type Day int

const (
	DayAll Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var (
	monthNames = map[Month]string{
		MonthAll: AllStr,
		January:  "january",
		February: "february",
		March:    "march",
		April:    "april",
		May:      "may",
		June:     "june",
	}

	dayToWeekday = map[Day]time.Weekday{
		Monday:    time.Monday,
		Tuesday:   time.Tuesday,
		Wednesday: time.Wednesday,
		Thursday:  time.Thursday,
		Friday:    time.Friday,
		Saturday:  time.Saturday,
		Sunday:    time.Sunday,
	}
)

// IsAll returns true if the month does not filter anything
func (m Month) IsAll() bool {
	return m == MonthAll
}

// TimeMonth returns the calendar month for m. Panics if m is MonthAll.
func (m Month) TimeMonth() time.Month {
	if m.IsAll() {
		panic("[Month] MonthAll has no calendar month")
	}
	return time.Month(m)
}

// Name returns the vocabulary token of the month, e.g: march
func (m Month) Name() string {
	return monthNames[m]
}

// Title returns the capitalized name of the month, e.g: March
func (m Month) Title() string {
	if m.IsAll() {
		return "All"
	}
	return m.TimeMonth().String()
}

// Matches returns true if t belongs to the month. MonthAll matches every time.
func (m Month) Matches(t time.Time) bool {
	return m.IsAll() || t.Month() == m.TimeMonth()
}

// IsAll returns true if the day does not filter anything
func (d Day) IsAll() bool {
	return d == DayAll
}

// Weekday returns the day of week for d. Panics if d is DayAll.
func (d Day) Weekday() time.Weekday {
	weekday, ok := dayToWeekday[d]
	if !ok {
		panic("[Day] DayAll has no weekday")
	}
	return weekday
}

// Name returns the vocabulary token of the day, e.g: friday
func (d Day) Name() string {
	if d.IsAll() {
		return AllStr
	}
	return strings.ToLower(d.Weekday().String())
}

// Title returns the capitalized name of the day, e.g: Friday
func (d Day) Title() string {
	if d.IsAll() {
		return "All"
	}
	return d.Weekday().String()
}

// Matches returns true if t falls on the day. DayAll matches every time.
func (d Day) Matches(t time.Time) bool {
	return d.IsAll() || t.Weekday() == d.Weekday()
}

// CityVocabulary returns the accepted tokens for the city prompt
func CityVocabulary() []string {
	var vocabulary []string
	for _, city := range Cities() {
		vocabulary = append(vocabulary, string(city))
	}
	return vocabulary
}

// MonthVocabulary returns the accepted tokens for the month prompt: all, january, ..., june
func MonthVocabulary() []string {
	vocabulary := make([]string, 0, len(monthNames))
	for month := MonthAll; month <= June; month++ {
		vocabulary = append(vocabulary, month.Name())
	}
	return vocabulary
}

// DayVocabulary returns the accepted tokens for the day prompt: all, monday, ..., sunday
func DayVocabulary() []string {
	vocabulary := make([]string, 0, len(dayToWeekday)+1)
	for day := DayAll; day <= Sunday; day++ {
		vocabulary = append(vocabulary, day.Name())
	}
	return vocabulary
}

// ParseCity returns the City for the given token
func ParseCity(token string) (City, error) {
	for _, city := range Cities() {
		if string(city) == token {
			return city, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCity, token)
}

// ParseMonth returns the Month for the given token
func ParseMonth(token string) (Month, error) {
	for month := MonthAll; month <= June; month++ {
		if month.Name() == token {
			return month, nil
		}
	}
	return MonthAll, fmt.Errorf("%w: %s", ErrUnknownMonth, token)
}

// ParseDay returns the Day for the given token
func ParseDay(token string) (Day, error) {
	for day := DayAll; day <= Sunday; day++ {
		if day.Name() == token {
			return day, nil
		}
	}
	return DayAll, fmt.Errorf("%w: %s", ErrUnknownDay, token)
}

// Selection struct with the filters chosen by the user
// + City: city whose trips are analyzed
// + Month: month to filter by, MonthAll to apply no month filter
// + Day: day of week to filter by, DayAll to apply no day filter
type Selection struct {
	City  City
	Month Month
	Day   Day
}

func NewSelection(city City, month Month, day Day) Selection {
	return Selection{
		City:  city,
		Month: month,
		Day:   day,
	}
}

// Matches returns true if t passes both month and day filters
func (s Selection) Matches(t time.Time) bool {
	return s.Month.Matches(t) && s.Day.Matches(t)
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.City, s.Month.Name(), s.Day.Name())
}
