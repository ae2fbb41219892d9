package trip

import (
	"time"
)

// Column names of the trips CSV files
const (
	StartTimeColumn    = "Start Time"
	StartStationColumn = "Start Station"
	EndStationColumn   = "End Station"
	DurationColumn     = "Trip Duration"
	UserTypeColumn     = "User Type"
	GenderColumn       = "Gender"
	BirthYearColumn    = "Birth Year"
)

// Field raw column/value pair as it appears in the CSV file
type Field struct {
	Column string
	Value  string
}

// Record struct that contains the data of one trip
// + StartTime: moment in which the trip begins
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: type of the user, e.g: Subscriber, Customer
// + Gender: gender of the user. Empty if unknown or if the city does not provide it
// + BirthYear: birth year of the user. Only valid if HasBirthYear is true
// + HasBirthYear: false if the cell is empty or the city does not provide it
// + Fields: every column of the row, in file order
type Record struct {
	StartTime    time.Time
	StartStation string
	EndStation   string
	Duration     int64
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool
	Fields       []Field
}

// Route returns the start and end stations joined with ", "
func (r Record) Route() string {
	return r.StartStation + ", " + r.EndStation
}

// Schema optional columns available in a trips file. It is decided once, when the header is read.
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// Table the filtered trips of a city
type Table struct {
	Schema  Schema
	Records []Record
}

func NewTable(schema Schema, records []Record) *Table {
	return &Table{
		Schema:  schema,
		Records: records,
	}
}

// Len returns the amount of trips in the table
func (t *Table) Len() int {
	return len(t.Records)
}

// Slice returns the records in [from, to). Bounds are clamped to the table size.
func (t *Table) Slice(from int, to int) []Record {
	if from >= len(t.Records) {
		return nil
	}
	if to > len(t.Records) {
		to = len(t.Records)
	}
	return t.Records[from:to]
}
