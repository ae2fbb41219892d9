package stats

import (
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
	"fmt"
	"io"
)

// StationStats most popular stations. The route is compared as the text "start, end", not as a pair of stations.
type StationStats struct {
	MostCommonStartStation string `json:"most_common_start_station"`
	MostCommonEndStation   string `json:"most_common_end_station"`
	MostCommonRoute        string `json:"most_common_route"`
}

func ComputeStationStats(table *trip.Table) StationStats {
	startStations := frequencycounter.NewFrequencyCounter[string]()
	endStations := frequencycounter.NewFrequencyCounter[string]()
	routes := frequencycounter.NewFrequencyCounter[string]()

	for idx := range table.Records {
		record := table.Records[idx]
		startStations.UpdateCounter(record.StartStation)
		endStations.UpdateCounter(record.EndStation)
		routes.UpdateCounter(record.Route())
	}

	return StationStats{
		MostCommonStartStation: modeOrNotAvailable(startStations),
		MostCommonEndStation:   modeOrNotAvailable(endStations),
		MostCommonRoute:        modeOrNotAvailable(routes),
	}
}

func (ss StationStats) Print(output io.Writer) {
	fmt.Fprintln(output, "Most commonly used start station:", ss.MostCommonStartStation)
	fmt.Fprintln(output, "Most commonly used end station:", ss.MostCommonEndStation)
	fmt.Fprintln(output, "Most frequent combination of start station and end station trip:", ss.MostCommonRoute)
}

func modeOrNotAvailable(counter *frequencycounter.FrequencyCounter[string]) string {
	mode, ok := counter.Mode()
	if !ok {
		return NotAvailable
	}
	return mode
}
