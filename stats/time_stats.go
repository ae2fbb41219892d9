package stats

import (
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"fmt"
	"io"
	"strconv"
	"time"
)

// TimeStats most frequent times of travel. Month and day are only computed when the user did not filter by them,
// otherwise the answer would be the filter itself.
type TimeStats struct {
	MonthComputed   bool   `json:"-"`
	MostCommonMonth string `json:"most_common_month,omitempty"`
	DayComputed     bool   `json:"-"`
	MostCommonDay   string `json:"most_common_day,omitempty"`
	MostCommonHour  string `json:"most_common_hour"`
}

func ComputeTimeStats(table *trip.Table, selection filter.Selection) TimeStats {
	months := frequencycounter.NewFrequencyCounter[time.Month]()
	days := frequencycounter.NewFrequencyCounter[time.Weekday]()
	hours := frequencycounter.NewFrequencyCounter[int]()

	for idx := range table.Records {
		startTime := table.Records[idx].StartTime
		months.UpdateCounter(startTime.Month())
		days.UpdateCounter(startTime.Weekday())
		hours.UpdateCounter(startTime.Hour())
	}

	result := TimeStats{
		MostCommonHour: NotAvailable,
	}

	if selection.Month.IsAll() {
		result.MonthComputed = true
		result.MostCommonMonth = NotAvailable
		if month, ok := months.Mode(); ok {
			result.MostCommonMonth = month.String()
		}
	}

	if selection.Day.IsAll() {
		result.DayComputed = true
		result.MostCommonDay = NotAvailable
		if day, ok := days.Mode(); ok {
			result.MostCommonDay = day.String()
		}
	}

	if hour, ok := hours.Mode(); ok {
		result.MostCommonHour = strconv.Itoa(hour)
	}

	return result
}

func (ts TimeStats) Print(output io.Writer) {
	if ts.MonthComputed {
		fmt.Fprintln(output, "The most common month:", ts.MostCommonMonth)
	}
	if ts.DayComputed {
		fmt.Fprintln(output, "The most common day of week:", ts.MostCommonDay)
	}
	fmt.Fprintln(output, "The most common hour:", ts.MostCommonHour)
}
