package stats

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"math"
	"strconv"
	"time"
)

const (
	NotAvailable   = "N/A"
	highlightStart = "\033[1;37m"
	highlightEnd   = "\033[0m"
	highlightWidth = 5
	printerStr     = "stats-printer"
)

// Printer runs the aggregators over a table and prints their results, each one followed by the time it took
// + output: where the statistics are printed
// + highlight: if true, the first characters of the elapsed seconds are emphasized with ANSI codes
// + since: returns the time elapsed since a moment, replaced in tests
type Printer struct {
	output    io.Writer
	highlight bool
	since     func(time.Time) time.Duration
}

func NewPrinter(output io.Writer, highlight bool) *Printer {
	return &Printer{
		output:    output,
		highlight: highlight,
		since:     time.Since,
	}
}

// PrintTimeStats displays statistics on the most frequent times of travel
func (p *Printer) PrintTimeStats(table *trip.Table, selection filter.Selection) TimeStats {
	startTime := time.Now()
	fmt.Fprint(p.output, "\nCalculating The Most Frequent Times of Travel...\n\n")
	result := ComputeTimeStats(table, selection)
	result.Print(p.output)
	p.finish("PrintTimeStats", startTime)
	return result
}

// PrintStationStats displays statistics on the most popular stations and trip
func (p *Printer) PrintStationStats(table *trip.Table) StationStats {
	startTime := time.Now()
	fmt.Fprint(p.output, "\nCalculating The Most Popular Stations and Trip...\n\n")
	result := ComputeStationStats(table)
	result.Print(p.output)
	p.finish("PrintStationStats", startTime)
	return result
}

// PrintDurationStats displays statistics on the total and average trip duration
func (p *Printer) PrintDurationStats(table *trip.Table) DurationStats {
	startTime := time.Now()
	fmt.Fprint(p.output, "\nCalculating Trip Duration...\n\n")
	result := ComputeDurationStats(table)
	result.Print(p.output)
	p.finish("PrintDurationStats", startTime)
	return result
}

// PrintUserStats displays statistics on bikeshare users
func (p *Printer) PrintUserStats(table *trip.Table) UserStats {
	startTime := time.Now()
	fmt.Fprint(p.output, "\nCalculating User Stats...\n\n")
	result := ComputeUserStats(table)
	result.Print(p.output)
	p.finish("PrintUserStats", startTime)
	return result
}

func (p *Printer) finish(method string, startTime time.Time) {
	elapsed := p.since(startTime)
	log.Debugf("[component: %s][method: %s][status: OK] took %s", printerStr, method, elapsed)
	fmt.Fprintf(p.output, "\nThis took %s seconds.\n", p.formatSeconds(elapsed))
	utils.PrintHorizontalLine(p.output)
}

// formatSeconds returns the elapsed seconds. For readability, the first characters are highlighted.
func (p *Printer) formatSeconds(elapsed time.Duration) string {
	seconds := strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64)
	if !p.highlight {
		return seconds
	}
	width := highlightWidth
	if len(seconds) < width {
		width = len(seconds)
	}
	return highlightStart + seconds[:width] + highlightEnd + seconds[width:]
}

// formatFloat prints whole numbers with one decimal, e.g: 20 -> 20.0
func formatFloat(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', 1, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
