package stats

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	"fmt"
	"io"
)

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	TotalDuration int64    `json:"total_duration"`
	MeanDuration  *float64 `json:"mean_duration"`
}

func ComputeDurationStats(table *trip.Table) DurationStats {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for idx := range table.Records {
		accumulator.UpdateAccumulator(table.Records[idx].Duration)
	}

	result := DurationStats{
		TotalDuration: accumulator.GetTotalDuration(),
	}
	if mean, ok := accumulator.GetAverageDuration(); ok {
		result.MeanDuration = &mean
	}
	return result
}

func (ds DurationStats) Print(output io.Writer) {
	fmt.Fprintln(output, "Total travel time(seconds): ", ds.TotalDuration)

	mean := NotAvailable
	if ds.MeanDuration != nil {
		mean = formatFloat(*ds.MeanDuration)
	}
	fmt.Fprintln(output, "Mean travel time(seconds): ", mean)
}
