package loader

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"encoding/csv"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	loaderStr         = "table-loader"
	unnamedColumnStr  = "Unnamed: %d"
	DefaultTimeLayout = "2006-01-02 15:04:05"
)

var requiredColumns = []string{
	trip.StartTimeColumn,
	trip.StartStationColumn,
	trip.EndStationColumn,
	trip.DurationColumn,
	trip.UserTypeColumn,
}

// Loader reads the trips file of a city and keeps the trips that match the user filters
// + dataDir: directory that contains the trips files
// + cityFiles: trips file name of each city
// + timeLayout: layout of the Start Time column
// + output: where the filter notices are printed
type Loader struct {
	dataDir    string
	cityFiles  map[filter.City]string
	timeLayout string
	output     io.Writer
}

func NewLoader(dataDir string, cityFiles map[filter.City]string, timeLayout string, output io.Writer) *Loader {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	return &Loader{
		dataDir:    dataDir,
		cityFiles:  cityFiles,
		timeLayout: timeLayout,
		output:     output,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderStr, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderStr, method, message)
}

// GetFilePath returns the path to the trips file of the city
func (l *Loader) GetFilePath(city filter.City) (string, error) {
	filename, ok := l.cityFiles[city]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	return filepath.Join(l.dataDir, filename), nil
}

// Load reads the trips file of the selected city and returns the trips that match the selection
func (l *Loader) Load(selection filter.Selection) (*trip.Table, error) {
	path, err := l.GetFilePath(selection.City)
	if err != nil {
		return nil, err
	}

	tripsFile, err := os.Open(path)
	if err != nil {
		log.Debug(l.getLogMessage("Load", fmt.Sprintf("error opening %s", path), err))
		return nil, fmt.Errorf("%w %s: %w", ErrCityFile, path, err)
	}

	defer func(tripsFile *os.File) {
		err := tripsFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(tripsFile)

	table, err := l.ReadTable(tripsFile, selection)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	log.Debug(l.getLogMessage("Load", fmt.Sprintf("%v trips loaded from %s [%s]", table.Len(), path, selection), nil))
	return table, nil
}

// ReadTable parses trips in CSV format from reader. Only trips that match the selection are kept.
func (l *Loader) ReadTable(reader io.Reader, selection filter.Selection) (*trip.Table, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTripsFile
		}
		return nil, err
	}

	columns, schema, err := l.mapColumns(header)
	if err != nil {
		return nil, err
	}

	if !selection.Month.IsAll() {
		fmt.Fprintf(l.output, "Filter data by month %s...\n\n", selection.Month.Title())
	}

	if !selection.Day.IsAll() {
		fmt.Fprintf(l.output, "Filter data by day of week %s...\n\n", selection.Day.Title())
	}

	var records []trip.Record
	line := 1
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line += 1
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}

		record, err := l.getRecord(header, columns, schema, row)
		if err != nil {
			log.Debug(l.getLogMessage("ReadTable", fmt.Sprintf("invalid trip at line %v", line), err))
			return nil, fmt.Errorf("line %v: %w", line, err)
		}

		if selection.Matches(record.StartTime) {
			records = append(records, record)
		}
	}

	return trip.NewTable(schema, records), nil
}

// mapColumns returns the index of each known column in the header and the optional columns available.
func (l *Loader) mapColumns(header []string) (map[string]int, trip.Schema, error) {
	columns := make(map[string]int, len(header))
	for idx := range header {
		name := strings.TrimSpace(header[idx])
		if name == "" {
			name = fmt.Sprintf(unnamedColumnStr, idx)
		}
		header[idx] = name
		columns[name] = idx
	}

	for _, column := range requiredColumns {
		if _, ok := columns[column]; !ok {
			return nil, trip.Schema{}, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}

	_, hasGender := columns[trip.GenderColumn]
	_, hasBirthYear := columns[trip.BirthYearColumn]

	return columns, trip.Schema{HasGender: hasGender, HasBirthYear: hasBirthYear}, nil
}

func (l *Loader) getRecord(header []string, columns map[string]int, schema trip.Schema, row []string) (trip.Record, error) {
	cell := func(column string) string {
		idx := columns[column]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	startTime, err := time.Parse(l.timeLayout, cell(trip.StartTimeColumn))
	if err != nil {
		return trip.Record{}, fmt.Errorf("%w %q: %w", ErrInvalidStartTime, cell(trip.StartTimeColumn), ErrInvalidTripData)
	}

	duration, err := ParseDuration(cell(trip.DurationColumn))
	if err != nil {
		return trip.Record{}, fmt.Errorf("%w %q: %w", ErrInvalidDuration, cell(trip.DurationColumn), ErrInvalidTripData)
	}

	record := trip.Record{
		StartTime:    startTime,
		StartStation: cell(trip.StartStationColumn),
		EndStation:   cell(trip.EndStationColumn),
		Duration:     duration,
		UserType:     cell(trip.UserTypeColumn),
		Fields:       make([]trip.Field, 0, len(header)),
	}

	if schema.HasGender {
		record.Gender = cell(trip.GenderColumn)
	}

	if schema.HasBirthYear && cell(trip.BirthYearColumn) != "" {
		birthYear, err := parseWholeNumber(cell(trip.BirthYearColumn))
		if err != nil {
			return trip.Record{}, fmt.Errorf("%w %q: %w", ErrInvalidBirthYear, cell(trip.BirthYearColumn), ErrInvalidTripData)
		}
		record.BirthYear = int(birthYear)
		record.HasBirthYear = true
	}

	for idx := range header {
		value := ""
		if idx < len(row) {
			value = row[idx]
		}
		record.Fields = append(record.Fields, trip.Field{Column: header[idx], Value: value})
	}

	return record, nil
}

// ParseDuration converts a trip duration to whole seconds. Decimal values are truncated, e.g: "1782.749" -> 1782
func ParseDuration(value string) (int64, error) {
	return parseWholeNumber(strings.TrimSpace(value))
}

func parseWholeNumber(value string) (int64, error) {
	number, err := strconv.ParseInt(value, 10, 64)
	if err == nil {
		return number, nil
	}

	decimal, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(decimal) || math.IsInf(decimal, 0) {
		return 0, fmt.Errorf("%q is not a number", value)
	}
	return int64(decimal), nil
}
