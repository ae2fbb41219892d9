package stats

import (
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/yearrange"
	"bikeshare/domain/entities/trip"
	"fmt"
	"io"
	"strconv"
)

type ValueCount = frequencycounter.Frequency[string]

// UserStats statistics on bikeshare users.
// Gender and birth year columns are optional: HasGender and the birth year fields are decided by the table schema.
type UserStats struct {
	UserTypes           []ValueCount `json:"user_types"`
	HasGender           bool         `json:"has_gender"`
	Genders             []ValueCount `json:"genders,omitempty"`
	EarliestBirthYear   string       `json:"earliest_birth_year"`
	MostRecentBirthYear string       `json:"most_recent_birth_year"`
	MostCommonBirthYear string       `json:"most_common_birth_year"`
}

func ComputeUserStats(table *trip.Table) UserStats {
	userTypes := frequencycounter.NewFrequencyCounter[string]()
	genders := frequencycounter.NewFrequencyCounter[string]()
	birthYears := yearrange.NewYearRange()

	for idx := range table.Records {
		record := table.Records[idx]
		if record.UserType != "" {
			userTypes.UpdateCounter(record.UserType)
		}
		if table.Schema.HasGender && record.Gender != "" {
			genders.UpdateCounter(record.Gender)
		}
		if table.Schema.HasBirthYear && record.HasBirthYear {
			birthYears.UpdateRange(record.BirthYear)
		}
	}

	result := UserStats{
		UserTypes:           userTypes.Frequencies(),
		HasGender:           table.Schema.HasGender,
		EarliestBirthYear:   NotAvailable,
		MostRecentBirthYear: NotAvailable,
		MostCommonBirthYear: NotAvailable,
	}

	if table.Schema.HasGender {
		result.Genders = genders.Frequencies()
	}

	if mostCommon, ok := birthYears.MostCommon(); ok {
		result.EarliestBirthYear = strconv.Itoa(birthYears.Earliest)
		result.MostRecentBirthYear = strconv.Itoa(birthYears.MostRecent)
		result.MostCommonBirthYear = strconv.Itoa(mostCommon)
	}

	return result
}

func (us UserStats) Print(output io.Writer) {
	fmt.Fprintln(output, "User types count:")
	printCounts(output, us.UserTypes)
	fmt.Fprint(output, "\n\n")

	if us.HasGender {
		fmt.Fprintln(output, "Genders count:")
		printCounts(output, us.Genders)
	} else {
		fmt.Fprintln(output, "Genders count:", NotAvailable)
	}
	fmt.Fprint(output, "\n\n")

	fmt.Fprintln(output, "Earliest year of birth: ", us.EarliestBirthYear)
	fmt.Fprintln(output, "Most recent year of birth: ", us.MostRecentBirthYear)
	fmt.Fprintln(output, "Most common year of birth: ", us.MostCommonBirthYear)
}

// printCounts prints one value per line with its count aligned to the right of the longest value
func printCounts(output io.Writer, counts []ValueCount) {
	width := 0
	for _, count := range counts {
		if len(count.Value) > width {
			width = len(count.Value)
		}
	}

	for _, count := range counts {
		fmt.Fprintf(output, "%-*s    %d\n", width, count.Value, count.Count)
	}
}
