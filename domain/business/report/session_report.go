package report

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/stats"
	"fmt"
	"time"
)

const sessionReportType = "session-report"

// SessionReport contains the statistics computed in one iteration of the explorer
// + Type: helps consumers to recognize what type of data is
// + City, Month, Day: filters chosen by the user
// + Trips: amount of trips that matched the filters
// + GeneratedAt: moment in which the statistics were computed
type SessionReport struct {
	Type          string              `json:"type"`
	City          string              `json:"city"`
	Month         string              `json:"month"`
	Day           string              `json:"day"`
	Trips         int                 `json:"trips"`
	GeneratedAt   time.Time           `json:"generated_at"`
	TimeStats     stats.TimeStats     `json:"time_stats"`
	StationStats  stats.StationStats  `json:"station_stats"`
	DurationStats stats.DurationStats `json:"duration_stats"`
	UserStats     stats.UserStats     `json:"user_stats"`
}

func NewSessionReport(selection filter.Selection, trips int, generatedAt time.Time) *SessionReport {
	return &SessionReport{
		Type:        sessionReportType,
		City:        string(selection.City),
		Month:       selection.Month.Name(),
		Day:         selection.Day.Name(),
		Trips:       trips,
		GeneratedAt: generatedAt,
	}
}

// GetRoutingKey returns the routing key of the report: prefix.city, e.g: report.new_york_city
func (sr *SessionReport) GetRoutingKey(prefix string) string {
	return fmt.Sprintf("%s.%s", prefix, routingKeyWord(sr.City))
}

func routingKeyWord(value string) string {
	word := []rune(value)
	for idx := range word {
		if word[idx] == ' ' || word[idx] == '.' {
			word[idx] = '_'
		}
	}
	return string(word)
}
