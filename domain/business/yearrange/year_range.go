package yearrange

import "bikeshare/domain/business/frequencycounter"

// YearRange struct that collects birth years
// + Earliest: smallest year collected
// + MostRecent: greatest year collected
// + years: appearances of each year, used to get the most common one
type YearRange struct {
	Earliest   int
	MostRecent int
	years      *frequencycounter.FrequencyCounter[int]
}

func NewYearRange() *YearRange {
	return &YearRange{
		years: frequencycounter.NewFrequencyCounter[int](),
	}
}

func (yr *YearRange) UpdateRange(year int) {
	if yr.years.IsEmpty() || year < yr.Earliest {
		yr.Earliest = year
	}
	if yr.years.IsEmpty() || year > yr.MostRecent {
		yr.MostRecent = year
	}
	yr.years.UpdateCounter(year)
}

// IsEmpty returns true if no year was collected
func (yr *YearRange) IsEmpty() bool {
	return yr.years.IsEmpty()
}

// MostCommon returns the year that appears the most. The boolean is false if no year was collected.
func (yr *YearRange) MostCommon() (int, bool) {
	return yr.years.Mode()
}
