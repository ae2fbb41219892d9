package durationaccumulator

// DurationAccumulator struct that collects the durations of a set of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of the durations, in seconds
type DurationAccumulator struct {
	Counter       int   `json:"counter"`
	TotalDuration int64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration int64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetTotalDuration() int64 {
	return da.TotalDuration
}

// GetAverageDuration returns the mean duration. The boolean is false if no trip was collected.
func (da *DurationAccumulator) GetAverageDuration() (float64, bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return float64(da.TotalDuration) / float64(da.Counter), true
}
